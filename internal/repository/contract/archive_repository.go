package contract

import (
	"context"

	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ArchiveDocumentRepository interface {
	Create(ctx context.Context, doc *entity.ArchiveDocument) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByProjectId(ctx context.Context, projectId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ArchiveDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ArchiveDocument, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type DocumentEmbeddingRepository interface {
	CreateBulk(ctx context.Context, embeddings []*entity.DocumentEmbedding) error
	DeleteByDocumentId(ctx context.Context, documentId uuid.UUID) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilar runs a cosine-distance search over the caller's documents
	// and returns the closest chunks as scored hits.
	SearchSimilar(ctx context.Context, embedding []float32, limit int, projectId uuid.UUID) ([]*entity.ScoredChunk, error)
}
