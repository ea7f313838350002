package infrastructure

import (
	"time"

	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetWeatherConfig returns weather configuration
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		EnableCache:     c.config.Weather.EnableCache,
		GeocodeCacheTTL: time.Duration(c.config.Weather.GeocodeCacheTTL) * time.Minute,
		RequestTimeout:  time.Duration(c.config.Weather.RequestTimeoutSeconds) * time.Second,
		IconURLTemplate: c.config.Weather.IconURLTemplate,
	}
}

// GetDashboardConfig returns the dashboard session defaults
func (c *ConfigProviderAdapter) GetDashboardConfig() ports.DashboardConfig {
	return ports.DashboardConfig{
		DefaultLocation: c.config.Dashboard.DefaultLocation,
		DefaultUnits:    c.config.Dashboard.DefaultUnits,
		HourlyGroups:    c.config.Dashboard.HourlyGroups,
	}
}

// GetCacheConfig returns cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type: c.config.Cache.Type.String(),
		Redis: ports.RedisConfig{
			Addr:         c.config.Cache.Redis.Addr,
			Password:     c.config.Cache.Redis.Password,
			DB:           c.config.Cache.Redis.DB,
			DialTimeout:  c.config.Cache.Redis.DialTimeout,
			ReadTimeout:  c.config.Cache.Redis.ReadTimeout,
			WriteTimeout: c.config.Cache.Redis.WriteTimeout,
		},
	}
}

var _ ports.ConfigProvider = (*ConfigProviderAdapter)(nil)
