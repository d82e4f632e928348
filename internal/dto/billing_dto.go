package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionPlanResponse struct {
	Id            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Price         float64   `json:"price"`
	BillingPeriod string    `json:"billing_period"`
	TokenLimit    int64     `json:"token_limit"`
}

type CheckoutRequest struct {
	PlanSlug string `json:"plan_slug" validate:"required"`
}

type CheckoutResponse struct {
	OrderId     string `json:"order_id"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}

// PaymentNotificationRequest mirrors the midtrans HTTP notification payload
// fields we act on.
type PaymentNotificationRequest struct {
	OrderId           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

type SubscriptionResponse struct {
	Id            uuid.UUID  `json:"id"`
	TenantId      uuid.UUID  `json:"tenant_id"`
	PlanId        uuid.UUID  `json:"plan_id"`
	OrderId       string     `json:"order_id"`
	PaymentStatus string     `json:"payment_status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}
