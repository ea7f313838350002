package infrastructure

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"weatherdash.app/internal/ports"
)

type prometheusCollectors struct {
	pipelineRuns     *prometheus.CounterVec
	pipelineDuration *prometheus.HistogramVec
	remoteCalls      *prometheus.CounterVec
	remoteDuration   *prometheus.HistogramVec
	cacheHits        *prometheus.CounterVec
	cacheMisses      *prometheus.CounterVec
}

var (
	collectorsOnce sync.Once
	collectors     *prometheusCollectors
)

// getCollectors registers the dashboard metrics with the default registry once per process
func getCollectors() *prometheusCollectors {
	collectorsOnce.Do(func() {
		collectors = &prometheusCollectors{
			pipelineRuns: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weatherdash_pipeline_runs_total",
					Help: "Dashboard pipeline runs by outcome",
				},
				[]string{"outcome"},
			),
			pipelineDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "weatherdash_pipeline_duration_seconds",
					Help:    "Geocode, fetch and render duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"outcome"},
			),
			remoteCalls: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weatherdash_remote_calls_total",
					Help: "Calls to the geocoding and weather services",
				},
				[]string{"service", "success"},
			),
			remoteDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "weatherdash_remote_call_duration_seconds",
					Help:    "Remote call duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"service"},
			),
			cacheHits: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weatherdash_geocode_cache_hits_total",
					Help: "The total number of geocode cache hits",
				},
				[]string{"cache_type"},
			),
			cacheMisses: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weatherdash_geocode_cache_misses_total",
					Help: "The total number of geocode cache misses",
				},
				[]string{"cache_type"},
			),
		}
	})
	return collectors
}

// MetricsCollectorAdapter implements the MetricsCollector port with Prometheus
// counters. It also keeps per-instance totals for the JSON health view.
type MetricsCollectorAdapter struct {
	collectors   *prometheusCollectors
	cacheMetrics ports.CacheMetrics

	mu           sync.RWMutex
	pipelineRuns map[string]int64
	remoteCalls  map[string]int64
	remoteErrors map[string]int64
}

// MetricsCollectorConfig holds configuration for creating the metrics collector
type MetricsCollectorConfig struct {
	CacheMetrics ports.CacheMetrics
}

// NewMetricsCollectorAdapter creates a new metrics collector adapter
func NewMetricsCollectorAdapter(config MetricsCollectorConfig) *MetricsCollectorAdapter {
	return &MetricsCollectorAdapter{
		collectors:   getCollectors(),
		cacheMetrics: config.CacheMetrics,
		pipelineRuns: make(map[string]int64),
		remoteCalls:  make(map[string]int64),
		remoteErrors: make(map[string]int64),
	}
}

// SetCacheMetrics attaches the cache whose stats are reported by GetMetrics
func (m *MetricsCollectorAdapter) SetCacheMetrics(cacheMetrics ports.CacheMetrics) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheMetrics = cacheMetrics
}

func (m *MetricsCollectorAdapter) RecordPipelineRun(outcome string, duration time.Duration) {
	m.collectors.pipelineRuns.WithLabelValues(outcome).Inc()
	m.collectors.pipelineDuration.WithLabelValues(outcome).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pipelineRuns[outcome]++
}

func (m *MetricsCollectorAdapter) RecordRemoteCall(service string, success bool, duration time.Duration) {
	m.collectors.remoteCalls.WithLabelValues(service, strconv.FormatBool(success)).Inc()
	m.collectors.remoteDuration.WithLabelValues(service).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.remoteCalls[service]++
	if !success {
		m.remoteErrors[service]++
	}
}

func (m *MetricsCollectorAdapter) RecordCacheHit(cacheType string) {
	m.collectors.cacheHits.WithLabelValues(cacheType).Inc()
}

func (m *MetricsCollectorAdapter) RecordCacheMiss(cacheType string) {
	m.collectors.cacheMisses.WithLabelValues(cacheType).Inc()
}

// GetMetrics returns a snapshot of this instance's counters and the cache stats
func (m *MetricsCollectorAdapter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	metrics := map[string]interface{}{
		"pipeline_runs": copyCounts(m.pipelineRuns),
		"remote_calls":  copyCounts(m.remoteCalls),
		"remote_errors": copyCounts(m.remoteErrors),
	}

	if m.cacheMetrics != nil {
		cacheStats := m.cacheMetrics.GetStats()
		metrics["cache"] = map[string]interface{}{
			"hits":      cacheStats.Hits,
			"misses":    cacheStats.Misses,
			"total_ops": cacheStats.TotalOps,
			"hit_ratio": cacheStats.HitRatio,
			"updated":   cacheStats.LastUpdated,
		}
	}

	return metrics, nil
}

func copyCounts(in map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

var _ ports.MetricsCollector = (*MetricsCollectorAdapter)(nil)
