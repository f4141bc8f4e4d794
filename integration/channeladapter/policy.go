package channeladapter

// SequencingPolicy declares what ordering guarantees, if any, apply to
// concurrent delivery of events to a listener.
type SequencingPolicy interface {
	AllowsConcurrentDelivery() bool
}

// FullConcurrencyPolicy declares that deliveries are independent: the bus
// may invoke the listener from multiple goroutines with no ordering
// guarantee between events.
type FullConcurrencyPolicy struct{}

// AllowsConcurrentDelivery always returns true.
func (FullConcurrencyPolicy) AllowsConcurrentDelivery() bool {
	return true
}
