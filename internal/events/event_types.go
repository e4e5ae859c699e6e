package events

import "time"

// EventType names a resource lifecycle event.
type EventType string

const (
	EventUserCreated    EventType = "user.created"
	EventUserDeleted    EventType = "user.deleted"
	EventCatwayCreated  EventType = "catway.created"
	EventCatwayDeleted  EventType = "catway.deleted"
	EventBookingCreated EventType = "booking.created"
	EventBookingDeleted EventType = "booking.deleted"
)

// Event describes a change to a stored resource.
type Event struct {
	Type       EventType      `json:"type"`
	ResourceID string         `json:"resourceId"`
	Detail     map[string]any `json:"detail,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// NewEvent stamps an event with the current time.
func NewEvent(eventType EventType, resourceID string, detail map[string]any) Event {
	return Event{
		Type:       eventType,
		ResourceID: resourceID,
		Detail:     detail,
		OccurredAt: time.Now(),
	}
}
