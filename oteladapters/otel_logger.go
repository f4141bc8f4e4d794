package oteladapters

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/log"

	"github.com/ask4gilles/mongo-criteria-eventstore-go/criteria/mongoengine"
	"github.com/ask4gilles/mongo-criteria-eventstore-go/integration/channeladapter"
)

// OTelLogger implements the Logger interfaces of this module using the
// OpenTelemetry logging API directly. This provides more control over log
// record creation than SlogBridgeLogger but requires manual setup of the
// log.Logger.
type OTelLogger struct {
	logger log.Logger
}

// NewOTelLogger creates a new logger emitting through the given OpenTelemetry log.Logger.
func NewOTelLogger(logger log.Logger) *OTelLogger {
	return &OTelLogger{logger: logger}
}

// Debug logs a debug message using the OpenTelemetry log API.
func (l *OTelLogger) Debug(msg string, args ...any) {
	l.emit(log.SeverityDebug, msg, args...)
}

// Info logs an info message using the OpenTelemetry log API.
func (l *OTelLogger) Info(msg string, args ...any) {
	l.emit(log.SeverityInfo, msg, args...)
}

// Warn logs a warning message using the OpenTelemetry log API.
func (l *OTelLogger) Warn(msg string, args ...any) {
	l.emit(log.SeverityWarn, msg, args...)
}

// Error logs an error message using the OpenTelemetry log API.
func (l *OTelLogger) Error(msg string, args ...any) {
	l.emit(log.SeverityError, msg, args...)
}

// emit creates and emits an OpenTelemetry log record with the specified severity.
// Args come in key-value pairs like slog.
func (l *OTelLogger) emit(severity log.Severity, msg string, args ...any) {
	record := log.Record{}
	record.SetSeverity(severity)
	record.SetBody(log.StringValue(msg))

	for i := 0; i+1 < len(args); i += 2 {
		if key, ok := args[i].(string); ok {
			record.AddAttributes(log.String(key, stringValue(args[i+1])))
		}
	}

	l.logger.Emit(context.Background(), record)
}

// stringValue converts any value to string for OpenTelemetry attributes.
func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return slog.AnyValue(v).String()
}

// Ensure OTelLogger implements the consumer-side logger interfaces.
var _ mongoengine.Logger = (*OTelLogger)(nil)
var _ channeladapter.Logger = (*OTelLogger)(nil)
