package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tenant struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string         `gorm:"type:varchar(255);not null"`
	Slug         string         `gorm:"type:varchar(128);uniqueIndex;not null"`
	AdminEmail   string         `gorm:"type:varchar(255);not null"`
	Status       string         `gorm:"type:varchar(32);not null;default:'pending'"`
	StatusDetail string         `gorm:"type:varchar(255)"`
	PlanSlug     string         `gorm:"type:varchar(128)"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Tenant) TableName() string {
	return "tenants"
}
