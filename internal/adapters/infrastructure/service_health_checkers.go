package infrastructure

import (
	"context"

	"weatherdash.app/internal/ports"
)

// Pinger is implemented by cache providers backed by a network service
type Pinger interface {
	Ping(ctx context.Context) error
}

// CacheHealthChecker implements geocode cache health checking
type CacheHealthChecker struct {
	cache     ports.CacheProvider
	cacheType string
}

// NewCacheHealthChecker creates a new cache health checker
func NewCacheHealthChecker(cache ports.CacheProvider, cacheType string) *CacheHealthChecker {
	return &CacheHealthChecker{cache: cache, cacheType: cacheType}
}

// Check pings network-backed caches; in-process caches are always healthy
func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    "healthy",
		Details: map[string]interface{}{
			"type": c.cacheType,
		},
	}

	if c.cache == nil {
		status.Status = "unhealthy"
		status.Error = "cache is not configured"
		return status
	}

	if pinger, ok := c.cache.(Pinger); ok {
		if err := pinger.Ping(ctx); err != nil {
			status.Status = "unhealthy"
			status.Error = err.Error()
		}
	}

	if stats, ok := c.cache.(ports.CacheMetrics); ok {
		cacheStats := stats.GetStats()
		status.Details["hits"] = cacheStats.Hits
		status.Details["misses"] = cacheStats.Misses
	}

	return status
}

// WeatherAPIHealthChecker reports whether the remote services are wired. It
// makes no remote call so health probes never spend API quota.
type WeatherAPIHealthChecker struct {
	geocoder ports.Geocoder
	fetcher  ports.WeatherFetcher
}

// NewWeatherAPIHealthChecker creates a new weather API health checker
func NewWeatherAPIHealthChecker(geocoder ports.Geocoder, fetcher ports.WeatherFetcher) *WeatherAPIHealthChecker {
	return &WeatherAPIHealthChecker{geocoder: geocoder, fetcher: fetcher}
}

// Check verifies the geocoder and fetcher are available
func (w *WeatherAPIHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherAPI",
		Status:    "healthy",
		Details:   map[string]interface{}{},
	}

	if w.geocoder == nil || w.fetcher == nil {
		status.Status = "unhealthy"
		status.Error = "weather services are not available"
		return status
	}

	status.Details["geocoder"] = w.geocoder.GetProviderName()
	status.Details["fetcher"] = w.fetcher.GetProviderName()
	return status
}

var (
	_ ports.CacheHealthChecker      = (*CacheHealthChecker)(nil)
	_ ports.WeatherAPIHealthChecker = (*WeatherAPIHealthChecker)(nil)
)
