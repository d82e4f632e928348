package implementation

import (
	"context"
	"errors"

	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/mapper"
	"rlc-hub-be/internal/model"
	"rlc-hub-be/internal/repository/contract"
	"rlc-hub-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TokenUsageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UsageMapper
}

func NewTokenUsageRepository(db *gorm.DB) contract.TokenUsageRepository {
	return &TokenUsageRepositoryImpl{
		db:     db,
		mapper: mapper.NewUsageMapper(),
	}
}

func (r *TokenUsageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TokenUsageRepositoryImpl) Create(ctx context.Context, usage *entity.TokenUsage) error {
	m := r.mapper.ToModel(usage)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*usage = *r.mapper.ToEntity(m)
	return nil
}

func (r *TokenUsageRepositoryImpl) Update(ctx context.Context, usage *entity.TokenUsage) error {
	m := r.mapper.ToModel(usage)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*usage = *r.mapper.ToEntity(m)
	return nil
}

func (r *TokenUsageRepositoryImpl) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.TokenUsage, error) {
	var m model.TokenUsage
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TokenUsageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TokenUsage, error) {
	var models []*model.TokenUsage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
