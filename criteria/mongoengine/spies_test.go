package mongoengine_test

import (
	"sync"
	"time"
)

// loggerSpy captures log messages per level for assertions.
type loggerSpy struct {
	mu     sync.Mutex
	debugs []string
	infos  []string
	warns  []string
	errors []string
}

func (s *loggerSpy) Debug(msg string, _ ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debugs = append(s.debugs, msg)
}

func (s *loggerSpy) Info(msg string, _ ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.infos = append(s.infos, msg)
}

func (s *loggerSpy) Warn(msg string, _ ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warns = append(s.warns, msg)
}

func (s *loggerSpy) Error(msg string, _ ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, msg)
}

func (s *loggerSpy) errorMessages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.errors...)
}

// metricsCollectorSpy counts metric calls for assertions.
type metricsCollectorSpy struct {
	mu       sync.Mutex
	counters map[string]int
}

func (s *metricsCollectorSpy) RecordDuration(string, time.Duration, map[string]string) {}

func (s *metricsCollectorSpy) RecordValue(string, float64, map[string]string) {}

func (s *metricsCollectorSpy) IncrementCounter(metric string, _ map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.counters == nil {
		s.counters = make(map[string]int)
	}

	s.counters[metric]++
}

func (s *metricsCollectorSpy) counterValue(metric string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.counters[metric]
}
