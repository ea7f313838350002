package api

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/adapters/display"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// SearchRequest carries a free-text location. An empty location is passed
// through so the dashboard can post its own notice.
type SearchRequest struct {
	Location string `json:"location" form:"location"`
}

// UnitsRequest selects a unit system explicitly
type UnitsRequest struct {
	Units string `json:"units" form:"units" binding:"required,units"`
}

type viewParams struct {
	View string `uri:"view" binding:"required,view"`
}

type groupParams struct {
	Tag int `uri:"tag" binding:"required,min=1"`
}

type navigateParams struct {
	Direction string `uri:"direction" binding:"required,direction"`
}

// dashboardPage is the data handed to the dashboard template
type dashboardPage struct {
	display.Page
	State       dashboard.PresentationState
	ToggleLabel string
}

var templateFuncs = template.FuncMap{
	"hidden": func(visible bool) template.HTMLAttr {
		if visible {
			return ""
		}
		return "hidden"
	},
}

// showDashboard handles GET / requests. A pending notice is shown once.
func (s *HTTPServerAdapter) showDashboard(c *gin.Context) {
	notice := s.page.TakeNotice()
	page := s.page.Page()
	page.Notice = notice
	state := s.dashboard.State()

	c.HTML(http.StatusOK, "dashboard.html", dashboardPage{
		Page:        page,
		State:       state,
		ToggleLabel: fmt.Sprintf("Display °%s", state.Units.Toggle().TemperatureSymbol()),
	})
}

// submitSearch handles POST /search form submissions. Failures are reported
// through the surface notice rather than the response.
func (s *HTTPServerAdapter) submitSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	if err := s.dashboard.Search(c.Request.Context(), req.Location); err != nil {
		s.logger.Debug("Search did not render", ports.F("location", req.Location), ports.F("error", err))
	}
	s.redirectHome(c)
}

// submitToggleUnits handles POST /units/toggle form submissions
func (s *HTTPServerAdapter) submitToggleUnits(c *gin.Context) {
	if err := s.dashboard.ToggleUnits(c.Request.Context()); err != nil {
		s.logger.Debug("Unit toggle did not render", ports.F("error", err))
	}
	s.redirectHome(c)
}

// submitView handles POST /view/:view form submissions
func (s *HTTPServerAdapter) submitView(c *gin.Context) {
	if err := s.applyView(c); err != nil {
		s.handleError(c, err)
		return
	}
	s.redirectHome(c)
}

// submitGroup handles POST /hourly/groups/:tag form submissions
func (s *HTTPServerAdapter) submitGroup(c *gin.Context) {
	if err := s.applyGroup(c); err != nil {
		s.handleError(c, err)
		return
	}
	s.redirectHome(c)
}

// submitNavigate handles POST /hourly/navigate/:direction form submissions
func (s *HTTPServerAdapter) submitNavigate(c *gin.Context) {
	if err := s.applyNavigate(c); err != nil {
		s.handleError(c, err)
		return
	}
	s.redirectHome(c)
}

func (s *HTTPServerAdapter) applyView(c *gin.Context) error {
	var params viewParams
	if err := c.ShouldBindUri(&params); err != nil {
		return errors.NewValidationError("view must be one of: daily, hourly")
	}
	return s.dashboard.ShowView(params.View)
}

func (s *HTTPServerAdapter) applyGroup(c *gin.Context) error {
	var params groupParams
	if err := c.ShouldBindUri(&params); err != nil {
		return errors.NewValidationError("group must be a positive number")
	}
	_, err := s.dashboard.ActivateGroup(params.Tag)
	return err
}

func (s *HTTPServerAdapter) applyNavigate(c *gin.Context) error {
	var params navigateParams
	if err := c.ShouldBindUri(&params); err != nil {
		return errors.NewValidationError("direction must be one of: previous, next")
	}
	_, err := s.dashboard.Advance(params.Direction)
	return err
}

// redirectHome sends the browser back to the dashboard after a form post
func (s *HTTPServerAdapter) redirectHome(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}
