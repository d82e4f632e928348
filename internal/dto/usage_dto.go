package dto

import (
	"time"

	"github.com/google/uuid"
)

type TokenUsageResponse struct {
	UserId           uuid.UUID `json:"user_id"`
	Email            string    `json:"email,omitempty"`
	PromptTokens     int64     `json:"prompt_tokens"`
	CompletionTokens int64     `json:"completion_tokens"`
	TotalTokens      int64     `json:"total_tokens"`
	TokenLimit       int64     `json:"token_limit"`
	Exceeded         bool      `json:"exceeded"`
	RefreshedAt      time.Time `json:"refreshed_at"`
}

type UpdateTokenLimitRequest struct {
	UserId     uuid.UUID `json:"user_id" validate:"required"`
	TokenLimit int64     `json:"token_limit" validate:"min=0"`
}
