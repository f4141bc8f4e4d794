package channeladapter

import (
	"github.com/ask4gilles/mongo-criteria-eventstore-go/events"
)

// EventFilter decides which events the adapter forwards, based on their type.
type EventFilter interface {
	Accept(eventType events.EventTypeString) bool
}

// NoFilter accepts every event type. It is the default filter policy.
type NoFilter struct{}

// Accept always returns true.
func (NoFilter) Accept(events.EventTypeString) bool {
	return true
}

// TypeFilter accepts only event types on its allow-list.
type TypeFilter struct {
	allowed map[events.EventTypeString]struct{}
}

// NewTypeFilter creates a TypeFilter accepting only the given event types.
// Empty event types are ignored.
func NewTypeFilter(eventTypes ...events.EventTypeString) TypeFilter {
	allowed := make(map[events.EventTypeString]struct{}, len(eventTypes))

	for _, eventType := range eventTypes {
		if eventType == "" {
			continue
		}

		allowed[eventType] = struct{}{}
	}

	return TypeFilter{allowed: allowed}
}

// Accept returns true if the event type is on the allow-list.
func (f TypeFilter) Accept(eventType events.EventTypeString) bool {
	_, found := f.allowed[eventType]
	return found
}
