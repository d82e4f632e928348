package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByProjectID struct {
	ProjectID uuid.UUID
}

func (s ByProjectID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("project_id = ?", s.ProjectID)
}

type ByIntegrationEventID struct {
	IntegrationEventID uuid.UUID
}

func (s ByIntegrationEventID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("integration_event_id = ?", s.IntegrationEventID)
}

type ByKeyDecisionID struct {
	KeyDecisionID uuid.UUID
}

func (s ByKeyDecisionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("key_decision_id = ?", s.KeyDecisionID)
}

type ProjectOwnedBy struct {
	OwnerID uuid.UUID
}

func (s ProjectOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ?", s.OwnerID)
}

type ByTenantID struct {
	TenantID uuid.UUID
}

func (s ByTenantID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tenant_id = ?", s.TenantID)
}

type BySequence struct{}

func (s BySequence) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("sequence ASC")
}
