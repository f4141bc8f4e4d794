package oteladapters_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ask4gilles/mongo-criteria-eventstore-go/oteladapters"
)

func Test_SlogBridgeLogger_ForwardsAllLevels(t *testing.T) {
	handler := &recordingHandler{}
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)

	logger.Debug("debug msg", "key", "value")
	logger.Info("info msg")
	logger.Warn("warn msg")
	logger.Error("error msg", "error", "boom")

	records := handler.captured()
	require.Len(t, records, 4)
	assert.Equal(t, slog.LevelDebug, records[0].Level)
	assert.Equal(t, "debug msg", records[0].Message)
	assert.Equal(t, slog.LevelInfo, records[1].Level)
	assert.Equal(t, slog.LevelWarn, records[2].Level)
	assert.Equal(t, slog.LevelError, records[3].Level)
	assert.Equal(t, "error msg", records[3].Message)
}

func Test_SlogBridgeLogger_PassesAttributes(t *testing.T) {
	handler := &recordingHandler{}
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)

	logger.Info("with attrs", "query", `{"age":{"$gt":18}}`)

	records := handler.captured()
	require.Len(t, records, 1)

	var foundQueryAttr bool
	records[0].Attrs(func(attr slog.Attr) bool {
		if attr.Key == "query" {
			foundQueryAttr = true
			assert.Equal(t, `{"age":{"$gt":18}}`, attr.Value.String())
		}
		return true
	})

	assert.True(t, foundQueryAttr)
}

/***** test double *****/

type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h *recordingHandler) Handle(_ context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, record.Clone())

	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler {
	return h
}

func (h *recordingHandler) WithGroup(string) slog.Handler {
	return h
}

func (h *recordingHandler) captured() []slog.Record {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]slog.Record(nil), h.records...)
}
