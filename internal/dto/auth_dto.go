package dto

import (
	"github.com/google/uuid"
)

// LoginRequest is accepted both as JSON and as an
// application/x-www-form-urlencoded credential exchange on /auth/token.
type LoginRequest struct {
	Email    string `json:"email" form:"username" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,min=1"`
	LastName  string `json:"last_name"`
	Password  string `json:"password" validate:"required,min=8"`
}

type AuthenticatedUser struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	TenantId  *string   `json:"tenant_id,omitempty"`
}

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	User        AuthenticatedUser `json:"user"`
}

type RegisterResponse struct {
	Id uuid.UUID `json:"id"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}
