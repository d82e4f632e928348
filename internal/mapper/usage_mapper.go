package mapper

import (
	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/model"
)

type UsageMapper struct{}

func NewUsageMapper() *UsageMapper {
	return &UsageMapper{}
}

func (m *UsageMapper) ToEntity(u *model.TokenUsage) *entity.TokenUsage {
	if u == nil {
		return nil
	}
	return &entity.TokenUsage{
		Id:               u.Id,
		UserId:           u.UserId,
		PromptTokens:     u.PromptTokens,
		CompletionTokens: u.CompletionTokens,
		TokenLimit:       u.TokenLimit,
		PeriodStart:      u.PeriodStart,
		RefreshedAt:      u.RefreshedAt,
	}
}

func (m *UsageMapper) ToModel(u *entity.TokenUsage) *model.TokenUsage {
	if u == nil {
		return nil
	}
	return &model.TokenUsage{
		Id:               u.Id,
		UserId:           u.UserId,
		PromptTokens:     u.PromptTokens,
		CompletionTokens: u.CompletionTokens,
		TokenLimit:       u.TokenLimit,
		PeriodStart:      u.PeriodStart,
		RefreshedAt:      u.RefreshedAt,
	}
}

func (m *UsageMapper) ToEntities(usages []*model.TokenUsage) []*entity.TokenUsage {
	entities := make([]*entity.TokenUsage, len(usages))
	for i, u := range usages {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
