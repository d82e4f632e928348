package contract

import (
	"context"

	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type IntegrationEventRepository interface {
	Create(ctx context.Context, event *entity.IntegrationEvent) error
	Update(ctx context.Context, event *entity.IntegrationEvent) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByProjectId(ctx context.Context, projectId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.IntegrationEvent, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.IntegrationEvent, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
