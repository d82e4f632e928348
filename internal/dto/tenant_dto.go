package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTenantRequest struct {
	Name       string `json:"name" validate:"required,min=1"`
	Slug       string `json:"slug" validate:"required,min=1,lowercase"`
	AdminEmail string `json:"admin_email" validate:"required,email"`
	PlanSlug   string `json:"plan_slug"`
}

type CreateTenantResponse struct {
	Id     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type TenantResponse struct {
	Id           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	AdminEmail   string     `json:"admin_email"`
	Status       string     `json:"status"`
	StatusDetail string     `json:"status_detail,omitempty"`
	PlanSlug     string     `json:"plan_slug,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

type TenantStatusResponse struct {
	Id           uuid.UUID `json:"id"`
	Status       string    `json:"status"`
	StatusDetail string    `json:"status_detail,omitempty"`
}
