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

type ArchiveDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ArchiveMapper
}

func NewArchiveDocumentRepository(db *gorm.DB) contract.ArchiveDocumentRepository {
	return &ArchiveDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewArchiveMapper(),
	}
}

func (r *ArchiveDocumentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ArchiveDocumentRepositoryImpl) Create(ctx context.Context, doc *entity.ArchiveDocument) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *ArchiveDocumentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ArchiveDocument{}, id).Error
}

func (r *ArchiveDocumentRepositoryImpl) DeleteAllByProjectId(ctx context.Context, projectId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectId).Delete(&model.ArchiveDocument{}).Error
}

func (r *ArchiveDocumentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ArchiveDocument, error) {
	var m model.ArchiveDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ArchiveDocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ArchiveDocument, error) {
	var models []*model.ArchiveDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ArchiveDocumentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ArchiveDocument{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
