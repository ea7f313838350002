package mocks

import (
	"sync"
	"testing"

	"weatherdash.app/internal/ports"
)

// DisplaySurface records what was written to it
type DisplaySurface struct {
	mu       sync.Mutex
	Current  ports.CurrentPanel
	Daily    []ports.DailyRow
	Hourly   []ports.HourlyRow
	Group    int
	View     string
	Notices  []string
	Renders  int
	GroupLog []int
}

// NewDisplaySurface creates an empty recording surface
func NewDisplaySurface(t *testing.T) *DisplaySurface {
	return &DisplaySurface{}
}

func (s *DisplaySurface) SetCurrent(panel ports.CurrentPanel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Current = panel
	s.Renders++
}

func (s *DisplaySurface) SetDailyRows(rows []ports.DailyRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Daily = rows
}

func (s *DisplaySurface) SetHourlyRows(rows []ports.HourlyRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Hourly = rows
}

func (s *DisplaySurface) ShowHourlyGroup(group int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Group = group
	s.GroupLog = append(s.GroupLog, group)
}

func (s *DisplaySurface) ShowView(view string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.View = view
}

func (s *DisplaySurface) Notify(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Notices = append(s.Notices, message)
}

// VisibleHourly returns the hourly rows of the shown group
func (s *DisplaySurface) VisibleHourly() []ports.HourlyRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []ports.HourlyRow
	for _, row := range s.Hourly {
		if row.Group == s.Group {
			rows = append(rows, row)
		}
	}
	return rows
}

// NoticeCount returns how many notices were posted
func (s *DisplaySurface) NoticeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Notices)
}

// RenderCount returns how many times the current panel was written
func (s *DisplaySurface) RenderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Renders
}
