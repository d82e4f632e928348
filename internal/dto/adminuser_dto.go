package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateManagedUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,min=1"`
	LastName  string `json:"last_name"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"omitempty,oneof=tenant_admin user"`
}

type UpdateManagedUserRequest struct {
	Id        uuid.UUID
	FirstName string `json:"first_name" validate:"required,min=1"`
	LastName  string `json:"last_name"`
	Role      string `json:"role" validate:"omitempty,oneof=tenant_admin user"`
	Status    string `json:"status" validate:"omitempty,oneof=active blocked"`
}

type ManagedUserResponse struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	TenantId  *string   `json:"tenant_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
