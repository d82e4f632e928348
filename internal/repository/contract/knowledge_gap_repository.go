package contract

import (
	"context"

	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type KnowledgeGapRepository interface {
	Create(ctx context.Context, gap *entity.KnowledgeGap) error
	Update(ctx context.Context, gap *entity.KnowledgeGap) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByProjectId(ctx context.Context, projectId uuid.UUID) error
	DeleteAllByKeyDecisionId(ctx context.Context, decisionId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeGap, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeGap, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
