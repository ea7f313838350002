package app

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"weatherdash.app/internal/adapters/external"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
)

type DependencyContainer struct {
	config  DependencyConfig
	ports   *ports.ApplicationPorts
	closers []io.Closer
}

type DependencyConfig struct {
	Weather config.WeatherConfig
	Cache   config.CacheConfig
}

func NewDependencyContainer(depConfig DependencyConfig, appConfig *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config: depConfig,
	}

	if err := container.initializePorts(appConfig); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

// NewDependencyContainerFromPorts wraps ports that were built elsewhere, mainly for tests
func NewDependencyContainerFromPorts(p *ports.ApplicationPorts) *DependencyContainer {
	return &DependencyContainer{ports: p}
}

func (c *DependencyContainer) initializePorts(appConfig *config.Config) error {
	slog.Info("Initializing ports...")

	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(nil)

	// Remote calls also go to the request log file when it can be opened
	requestLogger := logger
	if c.config.Weather.EnableLogging && c.config.Weather.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Weather.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			c.closers = append(c.closers, fileLogger)
			requestLogger = infrastructure.NewMultiLogger(logger, fileLogger)
			slog.Info("File logging enabled", "path", c.config.Weather.LogFilePath)
		}
	}

	cacheFactory := external.NewCacheProviderFactory()
	cacheProvider, err := cacheFactory.CreateCacheProvider(&c.config.Cache)
	if err != nil {
		slog.Error("Failed to create cache provider", "error", err)
		return fmt.Errorf("create cache provider: %w", err)
	}
	if closer, ok := cacheProvider.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}

	slog.Info("Cache provider initialized",
		"type", c.config.Cache.Type.String(),
		"redis_addr", c.config.Cache.Redis.Addr)

	cacheMetrics, _ := cacheProvider.(ports.CacheMetrics)
	metricsCollector := infrastructure.NewMetricsCollectorAdapter(infrastructure.MetricsCollectorConfig{
		CacheMetrics: cacheMetrics,
	})

	placeCache := external.NewPlaceCacheAdapter(cacheProvider, metricsCollector, c.config.Cache.Type.String())

	httpClient := &http.Client{Timeout: time.Duration(c.config.Weather.RequestTimeoutSeconds) * time.Second}

	var geocoder ports.Geocoder = external.NewOpenWeatherMapGeocoder(external.OpenWeatherMapParams{
		APIKey:  c.config.Weather.OpenWeatherMapKey,
		BaseURL: c.config.Weather.GeocodingBaseURL,
		Client:  httpClient,
		Logger:  logger,
	})
	var fetcher ports.WeatherFetcher = external.NewOpenWeatherMapOneCall(external.OpenWeatherMapParams{
		APIKey:  c.config.Weather.OpenWeatherMapKey,
		BaseURL: c.config.Weather.OpenWeatherMapBaseURL,
		Client:  httpClient,
		Logger:  logger,
	})

	// Both services share one API key, so they share one request budget
	limiter := external.NewSharedLimiter(c.config.Weather.RateLimitRPS, c.config.Weather.RateLimitBurst)
	geocoder = external.NewRateLimitedGeocoder(geocoder, limiter)
	fetcher = external.NewRateLimitedWeatherFetcher(fetcher, limiter)

	geocoder = external.NewGeocoderMetricsDecorator(geocoder, metricsCollector)
	fetcher = external.NewWeatherFetcherMetricsDecorator(fetcher, metricsCollector)

	if c.config.Weather.EnableLogging {
		geocoder = external.NewGeocoderLoggingDecorator(geocoder, requestLogger)
		fetcher = external.NewWeatherFetcherLoggingDecorator(fetcher, requestLogger)
		slog.Info("Weather request logging enabled")
	}

	configProvider := infrastructure.NewConfigProviderAdapter(appConfig)

	c.ports = &ports.ApplicationPorts{
		// Weather
		Geocoder:       geocoder,
		WeatherFetcher: fetcher,
		PlaceCache:     placeCache,

		// Cache
		CacheProvider: cacheProvider,
		CacheMetrics:  cacheMetrics,

		// Infrastructure
		ConfigProvider:   configProvider,
		Logger:           logger,
		MetricsCollector: metricsCollector,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Cleanup closes the request log file and the cache connection
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}
