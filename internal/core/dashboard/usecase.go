package dashboard

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/validation"
)

// WeatherService is the geocode and fetch pipeline a Dashboard drives
type WeatherService interface {
	ResolvePlace(ctx context.Context, query string) (*weather.Place, error)
	FetchSnapshot(ctx context.Context, coords weather.Coordinates, units weather.Units) (*weather.Snapshot, error)
}

// Dashboard is the input controller of one dashboard session. Runs may overlap;
// each takes a generation number and only the latest run may touch the state
// or the surface. The pending query and units track the latest request so a
// toggle issued while a search loads applies to that search, not the last
// rendered one.
type Dashboard struct {
	weather  WeatherService
	renderer *Renderer
	surface  ports.DisplaySurface
	logger   ports.Logger
	metrics  ports.MetricsCollector
	timeout  time.Duration
	initial  string

	generation atomic.Uint64

	mu           sync.Mutex
	state        PresentationState
	pendingQuery string
	pendingUnits weather.Units
	pagination   *Pagination
	view         View
}

type DashboardDependencies struct {
	Weather WeatherService
	Surface ports.DisplaySurface
	Config  ports.ConfigProvider
	Logger  ports.Logger
	Metrics ports.MetricsCollector
}

func NewDashboard(deps DashboardDependencies) (*Dashboard, error) {
	if deps.Weather == nil {
		return nil, errors.NewValidationError("weather service is required")
	}
	if deps.Surface == nil {
		return nil, errors.NewValidationError("display surface is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics collector is required")
	}

	weatherConfig := deps.Config.GetWeatherConfig()
	dashboardConfig := deps.Config.GetDashboardConfig()
	units := weather.UnitsFromString(dashboardConfig.DefaultUnits).OrDefault()

	return &Dashboard{
		weather:  deps.Weather,
		renderer: NewRenderer(weatherConfig.IconURLTemplate, dashboardConfig.HourlyGroups),
		surface:  deps.Surface,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
		timeout:  weatherConfig.RequestTimeout,
		initial:  dashboardConfig.DefaultLocation,
		state: PresentationState{
			SearchString: dashboardConfig.DefaultLocation,
			Units:        units,
		},
		pendingQuery: dashboardConfig.DefaultLocation,
		pendingUnits: units,
		pagination:   NewPagination(dashboardConfig.HourlyGroups),
		view:         ViewDaily,
	}, nil
}

// Initialize shows the daily view with the first hourly group selected and
// loads the default location.
func (d *Dashboard) Initialize(ctx context.Context) error {
	d.mu.Lock()
	d.surface.ShowView(d.view.String())
	d.surface.ShowHourlyGroup(d.pagination.Active())
	d.mu.Unlock()

	return d.Search(ctx, d.initial)
}

// Search geocodes text and loads its forecast in the latest requested units.
// Blank text is rejected without superseding a run in flight.
func (d *Dashboard) Search(ctx context.Context, text string) error {
	query, ok := validation.TrimAndValidate(text)
	if !ok {
		return d.reject("search", errors.NewValidationError("location cannot be empty"))
	}

	d.mu.Lock()
	generation := d.generation.Add(1)
	d.pendingQuery = query
	units := d.pendingUnits
	d.mu.Unlock()

	return d.run(ctx, generation, "search", query, units)
}

// ToggleUnits reloads the latest search in the other unit system. The units
// change only once that fetch has been rendered.
func (d *Dashboard) ToggleUnits(ctx context.Context) error {
	d.mu.Lock()
	generation := d.generation.Add(1)
	d.pendingUnits = d.pendingUnits.Toggle()
	query, units := d.pendingQuery, d.pendingUnits
	d.mu.Unlock()

	return d.run(ctx, generation, "toggle_units", query, units)
}

// ShowView switches between the daily and hourly blocks
func (d *Dashboard) ShowView(name string) error {
	view, err := ParseView(name)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.view = view
	d.surface.ShowView(view.String())
	if view == ViewHourly {
		d.surface.ShowHourlyGroup(d.pagination.Active())
	}
	return nil
}

// ActivateGroup selects an hourly group directly. Selecting the active group is a no-op.
func (d *Dashboard) ActivateGroup(tag int) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	changed, err := d.pagination.Activate(tag)
	if err != nil {
		return false, err
	}
	if changed {
		d.surface.ShowHourlyGroup(tag)
	}
	return changed, nil
}

// Advance moves to the previous or next hourly group, stopping at either end
func (d *Dashboard) Advance(name string) (bool, error) {
	direction, err := ParseDirection(name)
	if err != nil {
		return false, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	moved := d.pagination.Advance(direction)
	if moved {
		d.surface.ShowHourlyGroup(d.pagination.Active())
	}
	return moved, nil
}

// State returns a copy of the presentation state
func (d *Dashboard) State() PresentationState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.clone()
}

// View returns the visible forecast block
func (d *Dashboard) View() View {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.view
}

// ActiveGroup returns the tag of the visible hourly group
func (d *Dashboard) ActiveGroup() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pagination.Active()
}

// Groups returns the hourly group tags in display order
func (d *Dashboard) Groups() []int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pagination.Groups()
}

func (d *Dashboard) run(ctx context.Context, generation uint64, trigger, query string, units weather.Units) error {
	requestID := uuid.NewString()
	start := time.Now()

	fields := []ports.Field{
		ports.F("request_id", requestID),
		ports.F("trigger", trigger),
		ports.F("query", query),
		ports.F("units", units.String()),
		ports.F("generation", generation),
	}
	d.logger.Debug("Pipeline run started", fields...)

	err := d.execute(ctx, generation, query, units)
	if err != nil && !errors.IsStaleResponseError(err) && !d.settle(generation, err) {
		fields = append(fields, ports.F("error", err.Error()))
		err = errors.NewStaleResponseError(fmt.Sprintf("run %d failed after being superseded", generation))
	}

	duration := time.Since(start)
	d.metrics.RecordPipelineRun(outcomeOf(err), duration)
	fields = append(fields, ports.F("duration_ms", duration.Milliseconds()))

	switch {
	case err == nil:
		d.logger.Info("Pipeline run completed", fields...)
	case errors.IsStaleResponseError(err):
		d.logger.Debug("Pipeline run superseded", fields...)
	case stderrors.Is(err, context.Canceled):
		d.logger.Debug("Pipeline run canceled", fields...)
	default:
		fields = append(fields, ports.F("error", err.Error()))
		d.logger.Warn("Pipeline run failed", fields...)
	}
	return err
}

func (d *Dashboard) execute(ctx context.Context, generation uint64, query string, units weather.Units) error {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	place, err := d.weather.ResolvePlace(ctx, query)
	if err != nil {
		return asTimeout(ctx, err)
	}
	if err := d.checkCurrent(generation); err != nil {
		return err
	}

	snapshot, err := d.weather.FetchSnapshot(ctx, place.Coordinates, units)
	if err != nil {
		return asTimeout(ctx, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.checkCurrent(generation); err != nil {
		return err
	}

	state := stateFor(query, place, snapshot.Units)
	d.renderer.Render(d.surface, snapshot, state)
	d.surface.ShowHourlyGroup(d.pagination.Active())
	d.state = state
	return nil
}

func (d *Dashboard) checkCurrent(generation uint64) error {
	if latest := d.generation.Load(); latest != generation {
		return errors.NewStaleResponseError(
			fmt.Sprintf("run %d superseded by run %d", generation, latest))
	}
	return nil
}

// settle rolls the pending input back to the rendered state after a failed
// run and shows its notice. It does nothing once a newer run has started.
// Canceled runs leave no notice.
func (d *Dashboard) settle(generation uint64, err error) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.checkCurrent(generation) != nil {
		return false
	}
	d.pendingQuery = d.state.SearchString
	d.pendingUnits = d.state.Units
	if !stderrors.Is(err, context.Canceled) {
		d.surface.Notify(Notice(err))
	}
	return true
}

// reject reports input that never reached the pipeline
func (d *Dashboard) reject(trigger string, err error) error {
	d.mu.Lock()
	d.surface.Notify(Notice(err))
	d.mu.Unlock()

	d.metrics.RecordPipelineRun(outcomeOf(err), 0)
	d.logger.Warn("Pipeline run rejected",
		ports.F("trigger", trigger),
		ports.F("error", err.Error()))
	return err
}

func asTimeout(ctx context.Context, err error) error {
	if errors.IsTimeoutError(err) {
		return err
	}
	if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.NewTimeoutError("weather request timed out", err)
	}
	return err
}
