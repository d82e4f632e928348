package entity

import (
	"time"

	"github.com/google/uuid"
)

// The board hierarchy is strict: Project → IntegrationEvent → KeyDecision →
// KnowledgeGap. A key decision always belongs to exactly one integration
// event inside the same project; a knowledge gap to exactly one key
// decision.

type Project struct {
	Id          uuid.UUID
	Name        string
	Description string
	Status      string
	OwnerId     uuid.UUID
	TenantId    *uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type IntegrationEvent struct {
	Id          uuid.UUID
	ProjectId   uuid.UUID
	Name        string
	Description string
	EventDate   *time.Time
	Sequence    int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type KeyDecision struct {
	Id                 uuid.UUID
	ProjectId          uuid.UUID
	IntegrationEventId uuid.UUID
	Title              string
	Description        string
	Status             string
	Owner              string
	DecisionMaker      string
	DueDate            *time.Time
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

type KnowledgeGap struct {
	Id            uuid.UUID
	ProjectId     uuid.UUID
	KeyDecisionId uuid.UUID
	Title         string
	Description   string
	Status        string
	Owner         string
	Contributors  []string
	LearningPlan  string
	DueDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
