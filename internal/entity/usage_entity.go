package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenUsage is the per-user AI token ledger, refreshed lazily and capped by
// a per-user limit adjustable by admins.
type TokenUsage struct {
	Id               uuid.UUID
	UserId           uuid.UUID
	PromptTokens     int64
	CompletionTokens int64
	TokenLimit       int64
	PeriodStart      time.Time
	RefreshedAt      time.Time
}

func (u *TokenUsage) Total() int64 {
	return u.PromptTokens + u.CompletionTokens
}

func (u *TokenUsage) Exceeded() bool {
	return u.TokenLimit > 0 && u.Total() >= u.TokenLimit
}
