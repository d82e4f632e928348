package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionPlan struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string         `gorm:"type:varchar(255);not null"`
	Slug          string         `gorm:"type:varchar(128);uniqueIndex;not null"`
	Price         float64        `gorm:"type:numeric(12,2);not null"`
	BillingPeriod string         `gorm:"type:varchar(16);not null;default:'monthly'"`
	TokenLimit    int64          `gorm:"default:0"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}

type TenantSubscription struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantId      uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanId        uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderId       string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	PaymentStatus string    `gorm:"type:varchar(32);not null;default:'pending'"`
	SnapToken     string    `gorm:"type:varchar(255)"`
	RedirectURL   string    `gorm:"type:varchar(512)"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (TenantSubscription) TableName() string {
	return "tenant_subscriptions"
}
