// Package display holds the server-side display surface. The dashboard writes
// rendered regions into it and HTTP handlers read a consistent Page back out.
package display

import (
	"sync"

	"weatherdash.app/internal/ports"
)

const (
	viewDaily  = "daily"
	viewHourly = "hourly"
)

// HourlyRow is an hourly row together with its current visibility
type HourlyRow struct {
	ports.HourlyRow
	Visible bool `json:"visible"`
}

// Dot is one hourly group indicator
type Dot struct {
	Tag    int  `json:"tag"`
	Active bool `json:"active"`
}

// Page is a point-in-time copy of every display region
type Page struct {
	Rendered   bool               `json:"rendered"`
	Current    ports.CurrentPanel `json:"current"`
	Daily      []ports.DailyRow   `json:"daily"`
	Hourly     []HourlyRow        `json:"hourly"`
	Dots       []Dot              `json:"dots"`
	View       string             `json:"view"`
	ShowDaily  bool               `json:"showDaily"`
	ShowHourly bool               `json:"showHourly"`
	ShowArrows bool               `json:"showArrows"`
	Notice     string             `json:"notice,omitempty"`
}

// Surface is a thread-safe in-memory DisplaySurface
type Surface struct {
	mu       sync.RWMutex
	groups   int
	rendered bool
	current  ports.CurrentPanel
	daily    []ports.DailyRow
	hourly   []ports.HourlyRow
	group    int
	view     string
	notice   string
}

// NewSurface creates a surface with groups hourly indicators, showing the daily block and group 1
func NewSurface(groups int) *Surface {
	if groups < 1 {
		groups = 1
	}
	return &Surface{
		groups: groups,
		group:  1,
		view:   viewDaily,
	}
}

func (s *Surface) SetCurrent(panel ports.CurrentPanel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = panel
	s.rendered = true
}

func (s *Surface) SetDailyRows(rows []ports.DailyRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.daily = append([]ports.DailyRow(nil), rows...)
}

func (s *Surface) SetHourlyRows(rows []ports.HourlyRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hourly = append([]ports.HourlyRow(nil), rows...)
}

func (s *Surface) ShowHourlyGroup(group int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.group = group
}

// ShowView ignores names other than daily and hourly
func (s *Surface) ShowView(view string) {
	if view != viewDaily && view != viewHourly {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view
}

// Notify replaces any pending notice
func (s *Surface) Notify(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = message
}

// TakeNotice returns the pending notice and clears it
func (s *Surface) TakeNotice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	notice := s.notice
	s.notice = ""
	return notice
}

// Page returns a copy of the surface. The pending notice is included but not cleared.
func (s *Surface) Page() Page {
	s.mu.RLock()
	defer s.mu.RUnlock()

	page := Page{
		Rendered:   s.rendered,
		Current:    s.current,
		Daily:      append([]ports.DailyRow(nil), s.daily...),
		Hourly:     make([]HourlyRow, 0, len(s.hourly)),
		Dots:       make([]Dot, 0, s.groups),
		View:       s.view,
		ShowDaily:  s.view == viewDaily,
		ShowHourly: s.view == viewHourly,
		ShowArrows: s.view == viewHourly,
		Notice:     s.notice,
	}

	for _, row := range s.hourly {
		page.Hourly = append(page.Hourly, HourlyRow{HourlyRow: row, Visible: row.Group == s.group})
	}
	for tag := 1; tag <= s.groups; tag++ {
		page.Dots = append(page.Dots, Dot{Tag: tag, Active: tag == s.group})
	}

	return page
}

var _ ports.DisplaySurface = (*Surface)(nil)
