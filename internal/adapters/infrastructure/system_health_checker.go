package infrastructure

import (
	"context"

	"weatherdash.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	cacheChecker      ports.CacheHealthChecker
	weatherAPIChecker ports.WeatherAPIHealthChecker
	configProvider    ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	CacheChecker      ports.CacheHealthChecker
	WeatherAPIChecker ports.WeatherAPIHealthChecker
	ConfigProvider    ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		cacheChecker:      config.CacheChecker,
		weatherAPIChecker: config.WeatherAPIChecker,
		configProvider:    config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.cacheChecker != nil {
		results["cache"] = s.cacheChecker.Check(ctx)
	}

	if s.weatherAPIChecker != nil {
		results["weatherAPI"] = s.weatherAPIChecker.Check(ctx)
	}

	if s.configProvider != nil {
		dashboardConfig := s.configProvider.GetDashboardConfig()
		weatherConfig := s.configProvider.GetWeatherConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    "healthy",
			Details: map[string]interface{}{
				"defaultLocation": dashboardConfig.DefaultLocation,
				"hourlyGroups":    dashboardConfig.HourlyGroups,
				"cacheEnabled":    weatherConfig.EnableCache,
			},
		}
	}

	return results
}

var _ ports.SystemHealthChecker = (*SystemHealthChecker)(nil)
