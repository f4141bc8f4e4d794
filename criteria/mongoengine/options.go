package mongoengine

import (
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrInvalidCacheSize is returned when a non-positive query cache size is supplied.
var ErrInvalidCacheSize = errors.New("query cache size must be positive")

// Option defines a functional option for configuring a Compiler.
type Option func(*Compiler) error

// WithLogger sets the logger for the Compiler.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: compiled queries with compile timing and cache hits (development use)
// Error level: failed compilations with the structural violation.
func WithLogger(logger Logger) Option {
	return func(c *Compiler) error {
		c.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Compiler.
// The collector receives compile durations, compile error counts,
// and query cache hit/miss counts.
func WithMetrics(metricsCollector MetricsCollector) Option {
	return func(c *Compiler) error {
		c.metricsCollector = metricsCollector
		return nil
	}
}

// WithQueryCache enables an LRU cache of compiled documents with the given size,
// keyed by the structural identity of the expression tree.
//
// Expressions are immutable, so a cached document is always structurally
// identical to a fresh compilation. Failed compilations are never cached.
func WithQueryCache(size int) Option {
	return func(c *Compiler) error {
		if size <= 0 {
			return ErrInvalidCacheSize
		}

		cache, err := lru.New[string, Document](size)
		if err != nil {
			return err
		}

		c.queryCache = cache

		return nil
	}
}
