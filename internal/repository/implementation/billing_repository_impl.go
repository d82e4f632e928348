package implementation

import (
	"context"
	"errors"

	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/mapper"
	"rlc-hub-be/internal/model"
	"rlc-hub-be/internal/repository/contract"
	"rlc-hub-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SubscriptionPlanRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BillingMapper
}

func NewSubscriptionPlanRepository(db *gorm.DB) contract.SubscriptionPlanRepository {
	return &SubscriptionPlanRepositoryImpl{
		db:     db,
		mapper: mapper.NewBillingMapper(),
	}
}

func (r *SubscriptionPlanRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubscriptionPlanRepositoryImpl) Create(ctx context.Context, plan *entity.SubscriptionPlan) error {
	m := r.mapper.PlanToModel(plan)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*plan = *r.mapper.PlanToEntity(m)
	return nil
}

func (r *SubscriptionPlanRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionPlan, error) {
	var m model.SubscriptionPlan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PlanToEntity(&m), nil
}

func (r *SubscriptionPlanRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionPlan, error) {
	var models []*model.SubscriptionPlan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.PlansToEntities(models), nil
}

type TenantSubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BillingMapper
}

func NewTenantSubscriptionRepository(db *gorm.DB) contract.TenantSubscriptionRepository {
	return &TenantSubscriptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewBillingMapper(),
	}
}

func (r *TenantSubscriptionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TenantSubscriptionRepositoryImpl) Create(ctx context.Context, subscription *entity.TenantSubscription) error {
	m := r.mapper.SubscriptionToModel(subscription)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*subscription = *r.mapper.SubscriptionToEntity(m)
	return nil
}

func (r *TenantSubscriptionRepositoryImpl) Update(ctx context.Context, subscription *entity.TenantSubscription) error {
	m := r.mapper.SubscriptionToModel(subscription)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*subscription = *r.mapper.SubscriptionToEntity(m)
	return nil
}

func (r *TenantSubscriptionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TenantSubscription, error) {
	var m model.TenantSubscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SubscriptionToEntity(&m), nil
}

func (r *TenantSubscriptionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TenantSubscription, error) {
	var models []*model.TenantSubscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.SubscriptionsToEntities(models), nil
}
