package mocks

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"weatherdash.app/internal/ports"
)

// ConfigProvider is a mock of ports.ConfigProvider
type ConfigProvider struct {
	mock.Mock
}

// NewConfigProvider creates a ConfigProvider mock that asserts its expectations on cleanup
func NewConfigProvider(t *testing.T) *ConfigProvider {
	m := &ConfigProvider{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ConfigProvider) GetWeatherConfig() ports.WeatherConfig {
	return m.Called().Get(0).(ports.WeatherConfig)
}

func (m *ConfigProvider) GetServerConfig() ports.ServerConfig {
	return m.Called().Get(0).(ports.ServerConfig)
}

func (m *ConfigProvider) GetCacheConfig() ports.CacheConfig {
	return m.Called().Get(0).(ports.CacheConfig)
}

func (m *ConfigProvider) GetDashboardConfig() ports.DashboardConfig {
	return m.Called().Get(0).(ports.DashboardConfig)
}

// LogEntry is one call recorded by Logger
type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

// Logger records log calls instead of asserting on variadic field lists
type Logger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewLogger creates a recording logger
func NewLogger(t *testing.T) *Logger {
	return &Logger{}
}

func (l *Logger) Debug(msg string, fields ...ports.Field) { l.record("DEBUG", msg, fields) }
func (l *Logger) Info(msg string, fields ...ports.Field)  { l.record("INFO", msg, fields) }
func (l *Logger) Warn(msg string, fields ...ports.Field)  { l.record("WARN", msg, fields) }
func (l *Logger) Error(msg string, fields ...ports.Field) { l.record("ERROR", msg, fields) }

func (l *Logger) record(level, msg string, fields []ports.Field) {
	entry := LogEntry{Level: level, Message: msg, Fields: make(map[string]interface{}, len(fields))}
	for _, f := range fields {
		entry.Fields[f.Key] = f.Value
	}
	l.mu.Lock()
	l.entries = append(l.entries, entry)
	l.mu.Unlock()
}

// Entries returns a copy of the recorded calls
func (l *Logger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]LogEntry(nil), l.entries...)
}

// HasMessage reports whether a call with the level and message was recorded
func (l *Logger) HasMessage(level, msg string) bool {
	for _, e := range l.Entries() {
		if e.Level == level && e.Message == msg {
			return true
		}
	}
	return false
}

// MetricsCollector records metric calls in memory
type MetricsCollector struct {
	mu           sync.Mutex
	PipelineRuns map[string]int
	RemoteCalls  map[string]int
	CacheHits    int
	CacheMisses  int
}

// NewMetricsCollector creates an in-memory metrics recorder
func NewMetricsCollector(t *testing.T) *MetricsCollector {
	return &MetricsCollector{
		PipelineRuns: make(map[string]int),
		RemoteCalls:  make(map[string]int),
	}
}

func (m *MetricsCollector) RecordPipelineRun(outcome string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PipelineRuns[outcome]++
}

func (m *MetricsCollector) RecordRemoteCall(service string, success bool, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemoteCalls[service]++
}

func (m *MetricsCollector) RecordCacheHit(cacheType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MetricsCollector) RecordCacheMiss(cacheType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MetricsCollector) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return map[string]interface{}{
		"pipeline_runs": m.PipelineRuns,
		"remote_calls":  m.RemoteCalls,
	}, nil
}

// PipelineCount returns how many runs finished with the outcome
func (m *MetricsCollector) PipelineCount(outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.PipelineRuns[outcome]
}
