package events

import "time"

// Event types published on the bus.
const (
	TypeUserLogin          = "USER_LOGIN"
	TypeTenantProvisioned  = "TENANT_PROVISIONED"
	TypeTenantFailed       = "TENANT_PROVISION_FAILED"
	TypeFeedbackSubmitted  = "FEEDBACK_SUBMITTED"
	TypeSubscriptionChange = "SUBSCRIPTION_CHANGED"
)

// Event is the contract for everything published to the bus.
type Event interface {
	// EventType returns the unique code for this event (e.g. "USER_LOGIN").
	EventType() string

	// Payload returns the data carried by the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation used across services.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
