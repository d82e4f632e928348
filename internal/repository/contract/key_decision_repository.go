package contract

import (
	"context"

	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type KeyDecisionRepository interface {
	Create(ctx context.Context, decision *entity.KeyDecision) error
	Update(ctx context.Context, decision *entity.KeyDecision) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByProjectId(ctx context.Context, projectId uuid.UUID) error
	DeleteAllByIntegrationEventId(ctx context.Context, eventId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KeyDecision, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KeyDecision, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
