package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CoachConversation struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID      `gorm:"type:uuid;not null;index"`
	ConversationId string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_user_conversation"`
	Title          string         `gorm:"type:varchar(255)"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (CoachConversation) TableName() string {
	return "coach_conversations"
}

type CoachMessage struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId uuid.UUID `gorm:"type:uuid;not null;index"`
	Role           string    `gorm:"type:varchar(16);not null"`
	Content        string    `gorm:"type:text;not null"`
	ModelId        string    `gorm:"type:varchar(64)"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (CoachMessage) TableName() string {
	return "coach_messages"
}
