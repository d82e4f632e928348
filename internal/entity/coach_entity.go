package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// CoachConversation groups the coach exchanges behind one client-generated
// correlation id. Owned by exactly one user.
type CoachConversation struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	ConversationId string
	Title          string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

type CoachMessage struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	Role           MessageRole
	Content        string
	ModelId        string
	CreatedAt      time.Time
}
