package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/ports"
)

type staticCacheMetrics struct {
	stats ports.CacheStats
}

func (s *staticCacheMetrics) GetStats() ports.CacheStats { return s.stats }
func (s *staticCacheMetrics) RecordHit()                 {}
func (s *staticCacheMetrics) RecordMiss()                {}

func TestMetricsCollectorAdapter_InstanceCounts(t *testing.T) {
	collector := NewMetricsCollectorAdapter(MetricsCollectorConfig{})

	collector.RecordPipelineRun("success", 120*time.Millisecond)
	collector.RecordPipelineRun("success", 80*time.Millisecond)
	collector.RecordPipelineRun("not_found", 40*time.Millisecond)
	collector.RecordRemoteCall("geocoding", true, 10*time.Millisecond)
	collector.RecordRemoteCall("weather", false, 10*time.Millisecond)

	metrics, err := collector.GetMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{"success": 2, "not_found": 1}, metrics["pipeline_runs"])
	assert.Equal(t, map[string]int64{"geocoding": 1, "weather": 1}, metrics["remote_calls"])
	assert.Equal(t, map[string]int64{"weather": 1}, metrics["remote_errors"])
	assert.NotContains(t, metrics, "cache")
}

// counterValue reads a counter from the default registry by name and labels
func counterValue(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			matched := 0
			for _, label := range metric.GetLabel() {
				if labels[label.GetName()] == label.GetValue() {
					matched++
				}
			}
			if matched == len(labels) {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestMetricsCollectorAdapter_PrometheusCounters(t *testing.T) {
	collector := NewMetricsCollectorAdapter(MetricsCollectorConfig{})
	timeout := map[string]string{"outcome": "timeout"}
	memory := map[string]string{"cache_type": "memory"}

	before := counterValue(t, "weatherdash_pipeline_runs_total", timeout)
	collector.RecordPipelineRun("timeout", time.Second)
	assert.Equal(t, before+1, counterValue(t, "weatherdash_pipeline_runs_total", timeout))

	hitsBefore := counterValue(t, "weatherdash_geocode_cache_hits_total", memory)
	missesBefore := counterValue(t, "weatherdash_geocode_cache_misses_total", memory)
	collector.RecordCacheHit("memory")
	collector.RecordCacheMiss("memory")
	collector.RecordCacheMiss("memory")
	assert.Equal(t, hitsBefore+1, counterValue(t, "weatherdash_geocode_cache_hits_total", memory))
	assert.Equal(t, missesBefore+2, counterValue(t, "weatherdash_geocode_cache_misses_total", memory))
}

func TestMetricsCollectorAdapter_SharesRegisteredCollectors(t *testing.T) {
	first := NewMetricsCollectorAdapter(MetricsCollectorConfig{})
	second := NewMetricsCollectorAdapter(MetricsCollectorConfig{})

	assert.Same(t, first.collectors, second.collectors)
}

func TestMetricsCollectorAdapter_CacheStats(t *testing.T) {
	collector := NewMetricsCollectorAdapter(MetricsCollectorConfig{})
	collector.SetCacheMetrics(&staticCacheMetrics{stats: ports.CacheStats{Hits: 3, Misses: 1, TotalOps: 4, HitRatio: 0.75}})

	metrics, err := collector.GetMetrics(context.Background())
	require.NoError(t, err)

	cache, ok := metrics["cache"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, int64(3), cache["hits"])
	assert.Equal(t, int64(1), cache["misses"])
	assert.Equal(t, 0.75, cache["hit_ratio"])
}
