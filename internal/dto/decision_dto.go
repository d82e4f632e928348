package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateKeyDecisionRequest struct {
	ProjectId          uuid.UUID
	IntegrationEventId uuid.UUID  `json:"integration_event_id" validate:"required"`
	Title              string     `json:"title" validate:"required,min=1"`
	Description        string     `json:"description"`
	Owner              string     `json:"owner"`
	DecisionMaker      string     `json:"decision_maker"`
	DueDate            *time.Time `json:"due_date"`
}

type CreateKeyDecisionResponse struct {
	Id uuid.UUID `json:"id"`
}

// UpdateKeyDecisionRequest allows moving the decision to another integration
// event of the same project by changing IntegrationEventId.
type UpdateKeyDecisionRequest struct {
	Id                 uuid.UUID
	IntegrationEventId uuid.UUID  `json:"integration_event_id" validate:"required"`
	Title              string     `json:"title" validate:"required,min=1"`
	Description        string     `json:"description"`
	Status             string     `json:"status"`
	Owner              string     `json:"owner"`
	DecisionMaker      string     `json:"decision_maker"`
	DueDate            *time.Time `json:"due_date"`
}

type KeyDecisionResponse struct {
	Id                 uuid.UUID  `json:"id"`
	ProjectId          uuid.UUID  `json:"project_id"`
	IntegrationEventId uuid.UUID  `json:"integration_event_id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Status             string     `json:"status"`
	Owner              string     `json:"owner"`
	DecisionMaker      string     `json:"decision_maker"`
	DueDate            *time.Time `json:"due_date"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at"`
}
