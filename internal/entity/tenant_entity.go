package entity

import (
	"time"

	"github.com/google/uuid"
)

type TenantStatus string

const (
	TenantStatusPending      TenantStatus = "pending"
	TenantStatusProvisioning TenantStatus = "provisioning"
	TenantStatusReady        TenantStatus = "ready"
	TenantStatusFailed       TenantStatus = "failed"
)

type Tenant struct {
	Id           uuid.UUID
	Name         string
	Slug         string
	AdminEmail   string
	Status       TenantStatus
	StatusDetail string
	PlanSlug     string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
