package mapper

import (
	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/model"
)

type FeedbackMapper struct{}

func NewFeedbackMapper() *FeedbackMapper {
	return &FeedbackMapper{}
}

func (m *FeedbackMapper) ToEntity(f *model.Feedback) *entity.Feedback {
	if f == nil {
		return nil
	}
	return &entity.Feedback{
		Id:        f.Id,
		UserId:    f.UserId,
		Email:     f.Email,
		Subject:   f.Subject,
		Message:   f.Message,
		Category:  f.Category,
		CreatedAt: f.CreatedAt,
	}
}

func (m *FeedbackMapper) ToModel(f *entity.Feedback) *model.Feedback {
	if f == nil {
		return nil
	}
	return &model.Feedback{
		Id:        f.Id,
		UserId:    f.UserId,
		Email:     f.Email,
		Subject:   f.Subject,
		Message:   f.Message,
		Category:  f.Category,
		CreatedAt: f.CreatedAt,
	}
}

func (m *FeedbackMapper) ToEntities(items []*model.Feedback) []*entity.Feedback {
	entities := make([]*entity.Feedback, len(items))
	for i, f := range items {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
