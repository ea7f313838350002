// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to dashboard operations
package api

import (
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherdash.app/internal/adapters/display"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

//go:embed templates/*.html
var templatesFS embed.FS

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router        *gin.Engine
	config        ServerConfig
	dashboard     DashboardUseCase
	page          PageSource
	metrics       ports.MetricsCollector
	healthChecker ports.SystemHealthChecker
	logger        ports.Logger
}

// DashboardUseCase is the input controller the HTTP adapter drives
type DashboardUseCase interface {
	Search(ctx context.Context, text string) error
	ToggleUnits(ctx context.Context) error
	ShowView(name string) error
	ActivateGroup(tag int) (bool, error)
	Advance(direction string) (bool, error)
	State() dashboard.PresentationState
}

// PageSource exposes what the dashboard last wrote to the display surface
type PageSource interface {
	Page() display.Page
	TakeNotice() string
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config              ServerConfig
	Dashboard           DashboardUseCase
	Page                PageSource
	MetricsCollector    ports.MetricsCollector
	SystemHealthChecker ports.SystemHealthChecker
	Logger              ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, errors.NewConfigurationError("parse dashboard templates", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(tmpl)

	server := &HTTPServerAdapter{
		router:        router,
		config:        opts.Config,
		dashboard:     opts.Dashboard,
		page:          opts.Page,
		metrics:       opts.MetricsCollector,
		healthChecker: opts.SystemHealthChecker,
		logger:        opts.Logger,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Dashboard == nil {
		return errors.NewValidationError("dashboard is required")
	}
	if opts.Page == nil {
		return errors.NewValidationError("page source is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.SystemHealthChecker == nil {
		return errors.NewValidationError("system health checker is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	s.router.GET("/", s.showDashboard)
	s.router.POST("/search", s.submitSearch)
	s.router.POST("/units/toggle", s.submitToggleUnits)
	s.router.POST("/view/:view", s.submitView)
	s.router.POST("/hourly/groups/:tag", s.submitGroup)
	s.router.POST("/hourly/navigate/:direction", s.submitNavigate)

	api := s.router.Group("/api")
	{
		api.GET("/dashboard", s.getDashboard)
		api.POST("/search", s.search)
		api.POST("/units/toggle", s.toggleUnits)
		api.PUT("/units", s.setUnits)
		api.POST("/view/:view", s.showView)
		api.POST("/hourly/groups/:tag", s.activateGroup)
		api.POST("/hourly/navigate/:direction", s.navigate)
		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
