package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type ArchiveDocument struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId   uuid.UUID      `gorm:"type:uuid;not null;index"`
	UploadedBy  uuid.UUID      `gorm:"type:uuid;not null;index"`
	FileName    string         `gorm:"type:varchar(255);not null"`
	ContentType string         `gorm:"type:varchar(128)"`
	SizeBytes   int64          `gorm:"default:0"`
	StoragePath string         `gorm:"type:varchar(512);not null"`
	TextContent string         `gorm:"type:text"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (ArchiveDocument) TableName() string {
	return "archive_documents"
}

type DocumentEmbedding struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentId     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ChunkIndex     int             `gorm:"default:0"`
	Chunk          string          `gorm:"type:text"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(1536)"` // text-embedding-3-small dimensions
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
}

func (DocumentEmbedding) TableName() string {
	return "document_embeddings"
}
