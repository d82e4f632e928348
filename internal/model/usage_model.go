package model

import (
	"time"

	"github.com/google/uuid"
)

type TokenUsage struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	PromptTokens     int64     `gorm:"default:0"`
	CompletionTokens int64     `gorm:"default:0"`
	TokenLimit       int64     `gorm:"default:0"`
	PeriodStart      time.Time `gorm:""`
	RefreshedAt      time.Time `gorm:""`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (TokenUsage) TableName() string {
	return "token_usages"
}
