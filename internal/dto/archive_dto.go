package dto

import (
	"time"

	"github.com/google/uuid"
)

type ArchiveDocumentResponse struct {
	Id          uuid.UUID `json:"id"`
	ProjectId   uuid.UUID `json:"project_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}

type UploadDocumentResponse struct {
	Id       uuid.UUID `json:"id"`
	FileName string    `json:"file_name"`
}

type ArchiveSearchRequest struct {
	ProjectId uuid.UUID
	Query     string `json:"query" validate:"required,min=1"`
	Limit     int    `json:"limit"`
}

// PublishEmbedDocumentMessage is the payload queued for the embedding
// consumer after an upload.
type PublishEmbedDocumentMessage struct {
	DocumentId uuid.UUID `json:"document_id"`
}

type ArchiveSearchHit struct {
	DocumentId uuid.UUID `json:"document_id"`
	FileName   string    `json:"file_name"`
	Snippet    string    `json:"snippet"`
	Score      float32   `json:"score"`
}
