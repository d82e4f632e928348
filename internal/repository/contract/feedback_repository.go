package contract

import (
	"context"

	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/repository/specification"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feedback, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
