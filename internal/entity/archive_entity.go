package entity

import (
	"time"

	"github.com/google/uuid"
)

type ArchiveDocument struct {
	Id          uuid.UUID
	ProjectId   uuid.UUID
	UploadedBy  uuid.UUID
	FileName    string
	ContentType string
	SizeBytes   int64
	StoragePath string
	TextContent string
	CreatedAt   time.Time
}

// DocumentEmbedding is one embedded chunk of an archive document, stored in
// a pgvector column and searched by the report assistant.
type DocumentEmbedding struct {
	Id         uuid.UUID
	DocumentId uuid.UUID
	ChunkIndex int
	Chunk      string
	Values     []float32
	CreatedAt  time.Time
}

// ScoredChunk is a search hit with cosine distance converted to similarity.
type ScoredChunk struct {
	DocumentId uuid.UUID
	FileName   string
	Chunk      string
	Score      float32
}
