package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type SubscriptionPlan struct {
	Id            uuid.UUID
	Name          string
	Slug          string
	Price         float64
	BillingPeriod string // monthly | yearly
	TokenLimit    int64
	CreatedAt     time.Time
}

// TenantSubscription records one checkout for a tenant plan upgrade and its
// payment gateway state.
type TenantSubscription struct {
	Id            uuid.UUID
	TenantId      uuid.UUID
	PlanId        uuid.UUID
	OrderId       string
	PaymentStatus PaymentStatus
	SnapToken     string
	RedirectURL   string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
