package contract

import (
	"context"

	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CoachConversationRepository interface {
	Create(ctx context.Context, conversation *entity.CoachConversation) error
	Update(ctx context.Context, conversation *entity.CoachConversation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CoachConversation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CoachConversation, error)
}

type CoachMessageRepository interface {
	Create(ctx context.Context, message *entity.CoachMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CoachMessage, error)
	DeleteAllByConversationId(ctx context.Context, conversationId uuid.UUID) error
}
