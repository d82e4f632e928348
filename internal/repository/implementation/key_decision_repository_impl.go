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

type KeyDecisionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KeyDecisionMapper
}

func NewKeyDecisionRepository(db *gorm.DB) contract.KeyDecisionRepository {
	return &KeyDecisionRepositoryImpl{
		db:     db,
		mapper: mapper.NewKeyDecisionMapper(),
	}
}

func (r *KeyDecisionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *KeyDecisionRepositoryImpl) Create(ctx context.Context, decision *entity.KeyDecision) error {
	m := r.mapper.ToModel(decision)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*decision = *r.mapper.ToEntity(m)
	return nil
}

func (r *KeyDecisionRepositoryImpl) Update(ctx context.Context, decision *entity.KeyDecision) error {
	m := r.mapper.ToModel(decision)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*decision = *r.mapper.ToEntity(m)
	return nil
}

func (r *KeyDecisionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.KeyDecision{}, id).Error
}

func (r *KeyDecisionRepositoryImpl) DeleteAllByProjectId(ctx context.Context, projectId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectId).Delete(&model.KeyDecision{}).Error
}

func (r *KeyDecisionRepositoryImpl) DeleteAllByIntegrationEventId(ctx context.Context, eventId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("integration_event_id = ?", eventId).Delete(&model.KeyDecision{}).Error
}

func (r *KeyDecisionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KeyDecision, error) {
	var m model.KeyDecision
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *KeyDecisionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KeyDecision, error) {
	var models []*model.KeyDecision
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *KeyDecisionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.KeyDecision{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
