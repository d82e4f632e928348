package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Project struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	Status      string         `gorm:"type:varchar(32);not null;default:'active'"`
	OwnerId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	TenantId    *uuid.UUID     `gorm:"type:uuid;index"`
	StartDate   *time.Time     `gorm:""`
	EndDate     *time.Time     `gorm:""`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Project) TableName() string {
	return "projects"
}

type IntegrationEvent struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId   uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	EventDate   *time.Time     `gorm:""`
	Sequence    int            `gorm:"default:0"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (IntegrationEvent) TableName() string {
	return "integration_events"
}

type KeyDecision struct {
	Id                 uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId          uuid.UUID      `gorm:"type:uuid;not null;index"`
	IntegrationEventId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title              string         `gorm:"type:varchar(255);not null"`
	Description        string         `gorm:"type:text"`
	Status             string         `gorm:"type:varchar(32);not null;default:'open'"`
	Owner              string         `gorm:"type:varchar(255)"`
	DecisionMaker      string         `gorm:"type:varchar(255)"`
	DueDate            *time.Time     `gorm:""`
	CreatedAt          time.Time      `gorm:"autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime"`
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

func (KeyDecision) TableName() string {
	return "key_decisions"
}

type KnowledgeGap struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	KeyDecisionId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title         string         `gorm:"type:varchar(255);not null"`
	Description   string         `gorm:"type:text"`
	Status        string         `gorm:"type:varchar(32);not null;default:'open'"`
	Owner         string         `gorm:"type:varchar(255)"`
	Contributors  datatypes.JSON `gorm:"type:jsonb"`
	LearningPlan  string         `gorm:"type:text"`
	DueDate       *time.Time     `gorm:""`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (KnowledgeGap) TableName() string {
	return "knowledge_gaps"
}
