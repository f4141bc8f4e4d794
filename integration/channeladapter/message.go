package channeladapter

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ask4gilles/mongo-criteria-eventstore-go/events"
)

// ErrWrappingEventFailed is returned when an event cannot be wrapped into a Message envelope.
var ErrWrappingEventFailed = errors.New("wrapping event into message envelope failed")

// Message is the envelope the adapter sends to the message channel.
// It carries the event payload together with delivery metadata.
type Message struct {
	MessageID  string
	EventType  events.EventTypeString
	OccurredAt time.Time
	Payload    json.RawMessage
}

// MessageChannel is the external channel the adapter forwards messages to.
type MessageChannel interface {
	Send(ctx context.Context, message Message) error
}

// WrapEvent wraps the given event into a Message envelope with a fresh
// time-ordered message ID.
func WrapEvent(event events.Event) (Message, error) {
	payload, payloadErr := event.PayloadToJSON()
	if payloadErr != nil {
		return Message{}, errors.Join(ErrWrappingEventFailed, payloadErr)
	}

	messageID, idErr := uuid.NewV7()
	if idErr != nil {
		return Message{}, errors.Join(ErrWrappingEventFailed, idErr)
	}

	return Message{
		MessageID:  messageID.String(),
		EventType:  event.EventType(),
		OccurredAt: event.OccurredAt(),
		Payload:    payload,
	}, nil
}
