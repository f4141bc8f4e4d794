package mongoengine

import (
	"math"
	"time"
)

// Logger interface for compile logging, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector interface for collecting compiler performance and operational metrics.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// logDebug logs debug information if the logger is configured.
func (c *Compiler) logDebug(message string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(message, args...)
	}
}

// logError logs error information at the error level if the logger is configured.
func (c *Compiler) logError(message string, err error, args ...any) {
	if c.logger != nil {
		allArgs := []any{logAttrError, err.Error()}
		allArgs = append(allArgs, args...)
		c.logger.Error(message, allArgs...)
	}
}

// recordCompileDuration records the compile duration if the metrics collector is configured.
func (c *Compiler) recordCompileDuration(duration time.Duration, status string) {
	if c.metricsCollector != nil {
		c.metricsCollector.RecordDuration(
			metricCompileDuration,
			duration,
			map[string]string{labelStatus: status},
		)
	}
}

// incrementCounter increments a counter metric if the metrics collector is configured.
func (c *Compiler) incrementCounter(metric string) {
	if c.metricsCollector != nil {
		c.metricsCollector.IncrementCounter(metric, nil)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (c *Compiler) toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
