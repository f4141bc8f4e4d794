// Demo wiring the criteria compiler and the channel adapter together:
// it compiles a criteria expression into a native mongo query document
// and relays a few filtered events from an in-memory bus to a channel
// printing the message envelopes.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ask4gilles/mongo-criteria-eventstore-go/criteria"
	"github.com/ask4gilles/mongo-criteria-eventstore-go/criteria/mongoengine"
	"github.com/ask4gilles/mongo-criteria-eventstore-go/events"
	"github.com/ask4gilles/mongo-criteria-eventstore-go/integration/channeladapter"
	"github.com/ask4gilles/mongo-criteria-eventstore-go/oteladapters"
)

const adapterConfigYAML = `
allowed_event_types:
  - BookCopyLentToReader
dispatch_pool_size: 4
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(
		slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)

	compiler, err := mongoengine.NewCompiler(
		mongoengine.WithLogger(logger),
		mongoengine.WithQueryCache(256),
	)
	if err != nil {
		return err
	}

	expression := criteria.And(
		criteria.P("payload.BookID").EqualTo("book-4711"),
		criteria.Or(
			criteria.P("sequenceNumber").GreaterThan(42),
			criteria.P("eventType").In("BookCopyLentToReader", "BookCopyReturnedByReader"),
		),
	)

	query, err := compiler.Compile(expression)
	if err != nil {
		return err
	}

	fmt.Printf("native query document: %s\n", query)

	config, err := channeladapter.LoadConfig([]byte(adapterConfigYAML))
	if err != nil {
		return err
	}

	bus := newInMemoryBus()
	channel := printingChannel{}

	options := append(config.Options(), channeladapter.WithLogger(logger))

	adapter, err := channeladapter.NewChannelAdapter(bus, channel, options...)
	if err != nil {
		return err
	}

	ctx := context.Background()

	bus.Publish(ctx, mustEvent("BookCopyLentToReader", map[string]any{"BookID": "book-4711"}))
	bus.Publish(ctx, mustEvent("BookCopyReturnedByReader", map[string]any{"BookID": "book-4711"}))
	bus.Publish(ctx, mustEvent("BookCopyLentToReader", map[string]any{"BookID": "book-4712"}))

	// Close drains the in-flight dispatches before releasing the pool.
	return adapter.Close()
}

func mustEvent(eventType string, payload map[string]any) events.Event {
	event, err := events.BuildGenericEvent(eventType, time.Now(), payload)
	if err != nil {
		panic(err)
	}

	return event
}

/***** in-memory collaborators *****/

type inMemoryBus struct {
	listeners []channeladapter.Listener
}

func newInMemoryBus() *inMemoryBus {
	return &inMemoryBus{}
}

func (b *inMemoryBus) Subscribe(listener channeladapter.Listener) {
	b.listeners = append(b.listeners, listener)
}

func (b *inMemoryBus) Publish(ctx context.Context, event events.Event) {
	for _, listener := range b.listeners {
		if !listener.CanHandle(event.EventType()) {
			continue
		}

		if adapter, ok := listener.(*channeladapter.ChannelAdapter); ok {
			_ = adapter.Dispatch(ctx, event)
			continue
		}

		_ = listener.Handle(ctx, event)
	}
}

type printingChannel struct{}

func (printingChannel) Send(_ context.Context, message channeladapter.Message) error {
	fmt.Printf("forwarded %s (%s): %s\n", message.EventType, message.MessageID, message.Payload)
	return nil
}
