// Package channeladapter forwards events from an event bus to an external
// message channel.
//
// The ChannelAdapter subscribes itself to the provided EventBus. Accepted
// events are wrapped into Message envelopes and sent to the configured
// MessageChannel. Optionally, the adapter can be configured with an
// EventFilter which blocks or accepts events based on their type; without
// a filter, all events are forwarded.
//
// The adapter declares a full concurrency sequencing policy: the bus may
// deliver events from multiple goroutines with no ordering guarantee
// between them, and each delivery is independent by contract.
package channeladapter
