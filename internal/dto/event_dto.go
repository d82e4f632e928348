package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateIntegrationEventRequest struct {
	ProjectId   uuid.UUID
	Name        string     `json:"name" validate:"required,min=1"`
	Description string     `json:"description"`
	EventDate   *time.Time `json:"event_date"`
}

type CreateIntegrationEventResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateIntegrationEventRequest struct {
	Id          uuid.UUID
	Name        string     `json:"name" validate:"required,min=1"`
	Description string     `json:"description"`
	EventDate   *time.Time `json:"event_date"`
}

// ReorderIntegrationEventsRequest carries the full ordering of a project's
// event columns; every event of the project must appear exactly once.
type ReorderIntegrationEventsRequest struct {
	ProjectId uuid.UUID
	EventIds  []uuid.UUID `json:"event_ids" validate:"required,min=1"`
}

type IntegrationEventResponse struct {
	Id          uuid.UUID  `json:"id"`
	ProjectId   uuid.UUID  `json:"project_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	EventDate   *time.Time `json:"event_date"`
	Sequence    int        `json:"sequence"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
