package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/adapters/api"
	"weatherdash.app/internal/adapters/display"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	weatherUseCase *weather.UseCase
	dashboard      *dashboard.Dashboard

	// Adapters
	surface    *display.Surface
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	container *DependencyContainer
	ports     *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	container, err := NewDependencyContainer(DependencyConfig{
		Weather: cfg.Weather,
		Cache:   cfg.Cache,
	}, cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, container)
	if err != nil {
		_ = container.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, container *DependencyContainer) (*Application, error) {
	app := &Application{
		config:    cfg,
		container: container,
		ports:     container.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Geocoder: a.ports.Geocoder,
		Fetcher:  a.ports.WeatherFetcher,
		Cache:    a.ports.PlaceCache,
		Config:   a.ports.ConfigProvider,
		Logger:   a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	a.surface = display.NewSurface(a.ports.ConfigProvider.GetDashboardConfig().HourlyGroups)

	dash, err := dashboard.NewDashboard(dashboard.DashboardDependencies{
		Weather: a.weatherUseCase,
		Surface: a.surface,
		Config:  a.ports.ConfigProvider,
		Logger:  a.ports.Logger,
		Metrics: a.ports.MetricsCollector,
	})
	if err != nil {
		return fmt.Errorf("create dashboard: %w", err)
	}
	a.dashboard = dash

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	if err := api.RegisterValidators(); err != nil {
		slog.Warn("Failed to register request validators", "error", err)
	}

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		CacheChecker:      infrastructure.NewCacheHealthChecker(a.ports.CacheProvider, a.ports.ConfigProvider.GetCacheConfig().Type),
		WeatherAPIChecker: infrastructure.NewWeatherAPIHealthChecker(a.ports.Geocoder, a.ports.WeatherFetcher),
		ConfigProvider:    a.ports.ConfigProvider,
	})

	serverConfig := a.ports.ConfigProvider.GetServerConfig()
	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config:              api.ServerConfig{Port: serverConfig.Port},
		Dashboard:           a.dashboard,
		Page:                a.surface,
		MetricsCollector:    a.ports.MetricsCollector,
		SystemHealthChecker: systemHealthChecker,
		Logger:              a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	// Store router for testing access
	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", serverConfig.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start loads the default location in the background and serves HTTP until shutdown
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	go a.loadInitialDashboard(ctx)

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) loadInitialDashboard(ctx context.Context) {
	if err := a.dashboard.Initialize(ctx); err != nil {
		slog.Warn("Initial dashboard load failed", "location", a.config.Dashboard.DefaultLocation, "error", err)
		return
	}
	slog.Info("Initial dashboard loaded", "location", a.config.Dashboard.DefaultLocation)
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if a.container != nil {
		if err := a.container.Cleanup(); err != nil {
			slog.Warn("Error releasing resources", "error", err)
		}
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetDashboard returns the dashboard for testing
func (a *Application) GetDashboard() *dashboard.Dashboard {
	return a.dashboard
}
