package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/ports"
	errorspkg "weatherdash.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError maps application errors to status codes. Remote failures reuse
// the dashboard notice text so JSON clients see the same message as the page.
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	var statusCode int
	var message string

	if !errors.As(err, &appErr) {
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
		c.JSON(statusCode, ErrorResponse{Error: message})
		return
	}

	switch appErr.Type {
	case errorspkg.ValidationError:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errorspkg.NotFoundError:
		statusCode = http.StatusNotFound
		message = dashboard.Notice(err)
	case errorspkg.StaleResponseError:
		statusCode = http.StatusConflict
		message = "Superseded by a newer request"
	case errorspkg.NetworkError, errorspkg.MalformedResponseError:
		statusCode = http.StatusServiceUnavailable
		message = dashboard.Notice(err)
	case errorspkg.TimeoutError:
		statusCode = http.StatusGatewayTimeout
		message = dashboard.Notice(err)
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}

// getMetrics handles GET /api/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	metrics, err := s.metrics.GetMetrics(c.Request.Context())
	if err != nil {
		s.logger.Error("Error getting metrics", ports.F("error", err))
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// getHealth handles GET /api/health requests. Any unhealthy component turns the response into a 503.
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	status := "healthy"
	code := http.StatusOK
	for _, result := range results {
		if result.Status != "healthy" {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(code, gin.H{
		"status":     status,
		"components": results,
	})
}
