package contract

import (
	"context"

	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TokenUsageRepository interface {
	Create(ctx context.Context, usage *entity.TokenUsage) error
	Update(ctx context.Context, usage *entity.TokenUsage) error
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.TokenUsage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TokenUsage, error)
}
