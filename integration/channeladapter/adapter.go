package channeladapter

import (
	"context"
	"errors"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/ask4gilles/mongo-criteria-eventstore-go/events"
)

const (
	logMsgEventForwarded       = "event forwarded to message channel"
	logMsgEventBlockedByFilter = "event blocked by filter"
	logMsgSendFailed           = "failed to send message to channel"
	logMsgDispatchPanic        = "dispatched event handler panicked"
	logAttrError               = "error"
	logAttrEventType           = "event_type"
	logAttrMessageID           = "message_id"

	poolReleaseTimeout = 3 * time.Second
)

var (
	// ErrNilEventBus is returned when a nil event bus is provided.
	ErrNilEventBus = errors.New("event bus must not be nil")

	// ErrNilMessageChannel is returned when a nil message channel is provided.
	ErrNilMessageChannel = errors.New("message channel must not be nil")

	// ErrNilEventFilter is returned when a nil event filter is provided to WithFilter.
	ErrNilEventFilter = errors.New("event filter must not be nil")

	// ErrInvalidPoolSize is returned when a non-positive dispatch pool size is supplied.
	ErrInvalidPoolSize = errors.New("dispatch pool size must be positive")

	// ErrForwardingEventFailed is returned when the message channel rejects a message.
	ErrForwardingEventFailed = errors.New("forwarding event to message channel failed")
)

// Logger interface for delivery logging, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Listener is the contract an event bus invokes to deliver events.
type Listener interface {
	CanHandle(eventType events.EventTypeString) bool
	Handle(ctx context.Context, event events.Event) error
	SequencingPolicy() SequencingPolicy
}

// EventBus is the bus the adapter subscribes itself to.
type EventBus interface {
	Subscribe(listener Listener)
}

// ChannelAdapter sends events from an event bus to a message channel.
// All events are wrapped in Message envelopes. The adapter automatically
// subscribes itself to the provided EventBus.
//
// Deliveries are independent of each other; the adapter holds no mutable
// state per delivery and is safe for concurrent invocation.
type ChannelAdapter struct {
	channel      MessageChannel
	filter       EventFilter
	logger       Logger
	dispatchPool *ants.Pool
}

// Option defines a functional option for configuring a ChannelAdapter.
type Option func(*ChannelAdapter) error

// WithFilter sets the filter that indicates which events to forward.
// Without this option all events are forwarded.
func WithFilter(filter EventFilter) Option {
	return func(a *ChannelAdapter) error {
		if filter == nil {
			return ErrNilEventFilter
		}

		a.filter = filter

		return nil
	}
}

// WithLogger sets the logger for the ChannelAdapter.
func WithLogger(logger Logger) Option {
	return func(a *ChannelAdapter) error {
		a.logger = logger
		return nil
	}
}

// WithDispatchPoolSize bounds the number of goroutines used by Dispatch.
// Without this option Dispatch handles each event on an unbounded goroutine.
func WithDispatchPoolSize(size int) Option {
	return func(a *ChannelAdapter) error {
		if size <= 0 {
			return ErrInvalidPoolSize
		}

		pool, poolErr := ants.NewPool(size, ants.WithPanicHandler(func(v any) {
			if a.logger != nil {
				a.logger.Error(logMsgDispatchPanic, logAttrError, v)
			}
		}))
		if poolErr != nil {
			return poolErr
		}

		a.dispatchPool = pool

		return nil
	}
}

// NewChannelAdapter creates an adapter forwarding events from the given
// eventBus to the given channel and subscribes it to the bus.
func NewChannelAdapter(eventBus EventBus, channel MessageChannel, options ...Option) (*ChannelAdapter, error) {
	if eventBus == nil {
		return nil, ErrNilEventBus
	}

	if channel == nil {
		return nil, ErrNilMessageChannel
	}

	adapter := &ChannelAdapter{
		channel: channel,
		filter:  NoFilter{},
	}

	for _, option := range options {
		if err := option(adapter); err != nil {
			return nil, err
		}
	}

	eventBus.Subscribe(adapter)

	return adapter, nil
}

// CanHandle reports whether the adapter's filter accepts the event type.
func (a *ChannelAdapter) CanHandle(eventType events.EventTypeString) bool {
	return a.filter.Accept(eventType)
}

// Handle wraps the given event in a Message envelope and sends it to the
// configured MessageChannel, if allowed by the filter.
func (a *ChannelAdapter) Handle(ctx context.Context, event events.Event) error {
	if !a.filter.Accept(event.EventType()) {
		a.logDebug(logMsgEventBlockedByFilter, logAttrEventType, event.EventType())
		return nil
	}

	message, wrapErr := WrapEvent(event)
	if wrapErr != nil {
		a.logError(logMsgSendFailed, wrapErr, logAttrEventType, event.EventType())
		return wrapErr
	}

	if sendErr := a.channel.Send(ctx, message); sendErr != nil {
		a.logError(logMsgSendFailed, sendErr, logAttrEventType, event.EventType())
		return errors.Join(ErrForwardingEventFailed, sendErr)
	}

	a.logDebug(logMsgEventForwarded, logAttrEventType, event.EventType(), logAttrMessageID, message.MessageID)

	return nil
}

// SequencingPolicy declares that this listener tolerates fully concurrent delivery.
func (a *ChannelAdapter) SequencingPolicy() SequencingPolicy {
	return FullConcurrencyPolicy{}
}

// Dispatch hands the event to Handle on a separate goroutine, honoring the
// full concurrency policy. With a configured dispatch pool the number of
// concurrent handlers is bounded; otherwise a plain goroutine is used.
// Handle errors are logged, not returned, since delivery is asynchronous.
func (a *ChannelAdapter) Dispatch(ctx context.Context, event events.Event) error {
	task := func() {
		if handleErr := a.Handle(ctx, event); handleErr != nil {
			a.logError(logMsgSendFailed, handleErr, logAttrEventType, event.EventType())
		}
	}

	if a.dispatchPool != nil {
		return a.dispatchPool.Submit(task)
	}

	go task()

	return nil
}

// Close releases the dispatch pool, waiting for in-flight handlers to finish.
func (a *ChannelAdapter) Close() error {
	if a.dispatchPool != nil {
		return a.dispatchPool.ReleaseTimeout(poolReleaseTimeout)
	}

	return nil
}

func (a *ChannelAdapter) logDebug(message string, args ...any) {
	if a.logger != nil {
		a.logger.Debug(message, args...)
	}
}

func (a *ChannelAdapter) logError(message string, err error, args ...any) {
	if a.logger != nil {
		allArgs := []any{logAttrError, err.Error()}
		allArgs = append(allArgs, args...)
		a.logger.Error(message, allArgs...)
	}
}
