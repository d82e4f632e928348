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

type CoachConversationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CoachMapper
}

func NewCoachConversationRepository(db *gorm.DB) contract.CoachConversationRepository {
	return &CoachConversationRepositoryImpl{
		db:     db,
		mapper: mapper.NewCoachMapper(),
	}
}

func (r *CoachConversationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CoachConversationRepositoryImpl) Create(ctx context.Context, conversation *entity.CoachConversation) error {
	m := r.mapper.ToModel(conversation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*conversation = *r.mapper.ToEntity(m)
	return nil
}

func (r *CoachConversationRepositoryImpl) Update(ctx context.Context, conversation *entity.CoachConversation) error {
	m := r.mapper.ToModel(conversation)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*conversation = *r.mapper.ToEntity(m)
	return nil
}

func (r *CoachConversationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CoachConversation{}, id).Error
}

func (r *CoachConversationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CoachConversation, error) {
	var m model.CoachConversation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CoachConversationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CoachConversation, error) {
	var models []*model.CoachConversation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

type CoachMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CoachMapper
}

func NewCoachMessageRepository(db *gorm.DB) contract.CoachMessageRepository {
	return &CoachMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewCoachMapper(),
	}
}

func (r *CoachMessageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CoachMessageRepositoryImpl) Create(ctx context.Context, message *entity.CoachMessage) error {
	m := r.mapper.MessageToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.MessageToEntity(m)
	return nil
}

func (r *CoachMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CoachMessage, error) {
	var models []*model.CoachMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.MessagesToEntities(models), nil
}

func (r *CoachMessageRepositoryImpl) DeleteAllByConversationId(ctx context.Context, conversationId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("conversation_id = ?", conversationId).Delete(&model.CoachMessage{}).Error
}
