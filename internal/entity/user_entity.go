package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleSuperAdmin  UserRole = "super_admin"
	UserRoleTenantAdmin UserRole = "tenant_admin"
	UserRoleUser        UserRole = "user"
)

type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type User struct {
	Id           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	Role         UserRole
	Status       UserStatus
	TenantId     *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type PasswordResetToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Token     string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}
