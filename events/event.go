package events

import (
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
)

type EventTypeString = string
type Events = []Event

var ErrEmptyEventType = errors.New("event type must not be empty")

// Event is the contract for events published on an event bus.
//
// It is built on scalars and JSON to stay agnostic of how domain events
// are implemented in client code.
type Event interface {
	EventType() EventTypeString
	OccurredAt() time.Time
	PayloadToJSON() ([]byte, error)
}

// GenericEvent is a ready-made Event implementation carrying an arbitrary
// payload map. It is useful for tests, demos, and integrations that relay
// events without knowing their concrete domain types.
type GenericEvent struct {
	eventType  EventTypeString
	occurredAt time.Time
	payload    map[string]any
}

// BuildGenericEvent is a factory method for GenericEvent.
// Returns an error if the eventType is empty.
func BuildGenericEvent(eventType EventTypeString, occurredAt time.Time, payload map[string]any) (GenericEvent, error) {
	if eventType == "" {
		return GenericEvent{}, ErrEmptyEventType
	}

	return GenericEvent{
		eventType:  eventType,
		occurredAt: occurredAt,
		payload:    payload,
	}, nil
}

// EventType returns the string identifier for this event type.
func (e GenericEvent) EventType() EventTypeString {
	return e.eventType
}

// OccurredAt returns when this event occurred.
func (e GenericEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// PayloadToJSON marshals the payload map to JSON.
func (e GenericEvent) PayloadToJSON() ([]byte, error) {
	if e.payload == nil {
		return []byte("{}"), nil
	}

	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(e.payload)
}
