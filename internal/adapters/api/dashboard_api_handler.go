package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/adapters/display"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// StateResponse represents the presentation state in API responses
type StateResponse struct {
	SearchString string  `json:"searchString"`
	City         string  `json:"city"`
	Region       *string `json:"region,omitempty"`
	Country      string  `json:"country"`
	Location     string  `json:"location"`
	Units        string  `json:"units"`
}

// DashboardResponse represents the HTTP response for the dashboard
type DashboardResponse struct {
	State StateResponse `json:"state"`
	Page  display.Page  `json:"page"`
}

func newStateResponse(state dashboard.PresentationState) StateResponse {
	return StateResponse{
		SearchString: state.SearchString,
		City:         state.City,
		Region:       state.Region,
		Country:      state.Country,
		Location:     state.LocationLabel(),
		Units:        state.Units.String(),
	}
}

// respondDashboard writes the current state and surface. The pending notice is
// left in place for the HTML page.
func (s *HTTPServerAdapter) respondDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, DashboardResponse{
		State: newStateResponse(s.dashboard.State()),
		Page:  s.page.Page(),
	})
}

// getDashboard handles GET /api/dashboard requests
func (s *HTTPServerAdapter) getDashboard(c *gin.Context) {
	s.respondDashboard(c)
}

// search handles POST /api/search requests
func (s *HTTPServerAdapter) search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	if err := s.dashboard.Search(c.Request.Context(), req.Location); err != nil {
		s.logger.Debug("Search failed", ports.F("location", req.Location), ports.F("error", err))
		s.handleError(c, err)
		return
	}
	s.respondDashboard(c)
}

// toggleUnits handles POST /api/units/toggle requests
func (s *HTTPServerAdapter) toggleUnits(c *gin.Context) {
	if err := s.dashboard.ToggleUnits(c.Request.Context()); err != nil {
		s.logger.Debug("Unit toggle failed", ports.F("error", err))
		s.handleError(c, err)
		return
	}
	s.respondDashboard(c)
}

// setUnits handles PUT /api/units requests. Requesting the current units does nothing.
func (s *HTTPServerAdapter) setUnits(c *gin.Context) {
	var req UnitsRequest
	if err := c.ShouldBind(&req); err != nil {
		s.handleError(c, errors.NewValidationError("units must be one of: imperial, metric"))
		return
	}

	if s.dashboard.State().Units.String() != req.Units {
		if err := s.dashboard.ToggleUnits(c.Request.Context()); err != nil {
			s.handleError(c, err)
			return
		}
	}
	s.respondDashboard(c)
}

// showView handles POST /api/view/:view requests
func (s *HTTPServerAdapter) showView(c *gin.Context) {
	if err := s.applyView(c); err != nil {
		s.handleError(c, err)
		return
	}
	s.respondDashboard(c)
}

// activateGroup handles POST /api/hourly/groups/:tag requests
func (s *HTTPServerAdapter) activateGroup(c *gin.Context) {
	if err := s.applyGroup(c); err != nil {
		s.handleError(c, err)
		return
	}
	s.respondDashboard(c)
}

// navigate handles POST /api/hourly/navigate/:direction requests
func (s *HTTPServerAdapter) navigate(c *gin.Context) {
	if err := s.applyNavigate(c); err != nil {
		s.handleError(c, err)
		return
	}
	s.respondDashboard(c)
}
