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

type IntegrationEventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.IntegrationEventMapper
}

func NewIntegrationEventRepository(db *gorm.DB) contract.IntegrationEventRepository {
	return &IntegrationEventRepositoryImpl{
		db:     db,
		mapper: mapper.NewIntegrationEventMapper(),
	}
}

func (r *IntegrationEventRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *IntegrationEventRepositoryImpl) Create(ctx context.Context, event *entity.IntegrationEvent) error {
	m := r.mapper.ToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.ToEntity(m)
	return nil
}

func (r *IntegrationEventRepositoryImpl) Update(ctx context.Context, event *entity.IntegrationEvent) error {
	m := r.mapper.ToModel(event)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.ToEntity(m)
	return nil
}

func (r *IntegrationEventRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.IntegrationEvent{}, id).Error
}

func (r *IntegrationEventRepositoryImpl) DeleteAllByProjectId(ctx context.Context, projectId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectId).Delete(&model.IntegrationEvent{}).Error
}

func (r *IntegrationEventRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.IntegrationEvent, error) {
	var m model.IntegrationEvent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *IntegrationEventRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.IntegrationEvent, error) {
	var models []*model.IntegrationEvent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *IntegrationEventRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.IntegrationEvent{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
