package mapper

import (
	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/model"
)

type CoachMapper struct{}

func NewCoachMapper() *CoachMapper {
	return &CoachMapper{}
}

func (m *CoachMapper) ToEntity(c *model.CoachConversation) *entity.CoachConversation {
	if c == nil {
		return nil
	}
	return &entity.CoachConversation{
		Id:             c.Id,
		UserId:         c.UserId,
		ConversationId: c.ConversationId,
		Title:          c.Title,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      updatedAtPtr(c.UpdatedAt),
	}
}

func (m *CoachMapper) ToModel(c *entity.CoachConversation) *model.CoachConversation {
	if c == nil {
		return nil
	}
	return &model.CoachConversation{
		Id:             c.Id,
		UserId:         c.UserId,
		ConversationId: c.ConversationId,
		Title:          c.Title,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      updatedAtValue(c.UpdatedAt),
	}
}

func (m *CoachMapper) ToEntities(conversations []*model.CoachConversation) []*entity.CoachConversation {
	entities := make([]*entity.CoachConversation, len(conversations))
	for i, c := range conversations {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *CoachMapper) MessageToEntity(msg *model.CoachMessage) *entity.CoachMessage {
	if msg == nil {
		return nil
	}
	return &entity.CoachMessage{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		Role:           entity.MessageRole(msg.Role),
		Content:        msg.Content,
		ModelId:        msg.ModelId,
		CreatedAt:      msg.CreatedAt,
	}
}

func (m *CoachMapper) MessageToModel(msg *entity.CoachMessage) *model.CoachMessage {
	if msg == nil {
		return nil
	}
	return &model.CoachMessage{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		Role:           string(msg.Role),
		Content:        msg.Content,
		ModelId:        msg.ModelId,
		CreatedAt:      msg.CreatedAt,
	}
}

func (m *CoachMapper) MessagesToEntities(msgs []*model.CoachMessage) []*entity.CoachMessage {
	entities := make([]*entity.CoachMessage, len(msgs))
	for i, msg := range msgs {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}
