// Package oteladapters provides OpenTelemetry adapters for the observability
// interfaces of this module. These adapters enable plug-and-play integration
// with OpenTelemetry for users who do not want to implement the Logger and
// MetricsCollector interfaces themselves.
package oteladapters

import (
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"

	"github.com/ask4gilles/mongo-criteria-eventstore-go/criteria/mongoengine"
	"github.com/ask4gilles/mongo-criteria-eventstore-go/integration/channeladapter"
)

// SlogBridgeLogger implements the Logger interfaces of this module using the
// OpenTelemetry slog bridge. This is the recommended implementation as it
// works seamlessly with Go's standard log/slog package and routes records
// through the global OpenTelemetry LoggerProvider.
type SlogBridgeLogger struct {
	logger *slog.Logger
}

// NewSlogBridgeLogger creates a new logger backed by the OpenTelemetry slog bridge.
// The logger uses the global OpenTelemetry LoggerProvider.
func NewSlogBridgeLogger(name string) *SlogBridgeLogger {
	return &SlogBridgeLogger{logger: otelslog.NewLogger(name)}
}

// NewSlogBridgeLoggerWithHandler creates a new logger using the provided slog.Handler.
// Note: this does NOT route records through OpenTelemetry - it uses the handler as-is.
// It is provided for tests and for setups with an existing slog pipeline.
func NewSlogBridgeLoggerWithHandler(handler slog.Handler) *SlogBridgeLogger {
	return &SlogBridgeLogger{logger: slog.New(handler)}
}

// Debug logs a debug message.
func (l *SlogBridgeLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs an info message.
func (l *SlogBridgeLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *SlogBridgeLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error message.
func (l *SlogBridgeLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// Ensure SlogBridgeLogger implements the consumer-side logger interfaces.
var _ mongoengine.Logger = (*SlogBridgeLogger)(nil)
var _ channeladapter.Logger = (*SlogBridgeLogger)(nil)
