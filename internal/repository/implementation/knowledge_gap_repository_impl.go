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

type KnowledgeGapRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeGapMapper
}

func NewKnowledgeGapRepository(db *gorm.DB) contract.KnowledgeGapRepository {
	return &KnowledgeGapRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeGapMapper(),
	}
}

func (r *KnowledgeGapRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *KnowledgeGapRepositoryImpl) Create(ctx context.Context, gap *entity.KnowledgeGap) error {
	m := r.mapper.ToModel(gap)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*gap = *r.mapper.ToEntity(m)
	return nil
}

func (r *KnowledgeGapRepositoryImpl) Update(ctx context.Context, gap *entity.KnowledgeGap) error {
	m := r.mapper.ToModel(gap)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*gap = *r.mapper.ToEntity(m)
	return nil
}

func (r *KnowledgeGapRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.KnowledgeGap{}, id).Error
}

func (r *KnowledgeGapRepositoryImpl) DeleteAllByProjectId(ctx context.Context, projectId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectId).Delete(&model.KnowledgeGap{}).Error
}

func (r *KnowledgeGapRepositoryImpl) DeleteAllByKeyDecisionId(ctx context.Context, decisionId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("key_decision_id = ?", decisionId).Delete(&model.KnowledgeGap{}).Error
}

func (r *KnowledgeGapRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeGap, error) {
	var m model.KnowledgeGap
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *KnowledgeGapRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeGap, error) {
	var models []*model.KnowledgeGap
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *KnowledgeGapRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.KnowledgeGap{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
