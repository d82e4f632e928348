package contract

import (
	"context"

	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/repository/specification"
)

type SubscriptionPlanRepository interface {
	Create(ctx context.Context, plan *entity.SubscriptionPlan) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionPlan, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionPlan, error)
}

type TenantSubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.TenantSubscription) error
	Update(ctx context.Context, subscription *entity.TenantSubscription) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TenantSubscription, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TenantSubscription, error)
}
