package dashboard

import (
	"strings"

	"weatherdash.app/internal/core/weather"
	"weatherdash.app/pkg/errors"
)

// PresentationState is what the session currently shows: the last successful
// search and the unit system of the fetch that produced the displayed data.
type PresentationState struct {
	SearchString string
	City         string
	Region       *string
	Country      string
	Units        weather.Units
}

// HasRegion reports whether a non-blank region is present
func (s PresentationState) HasRegion() bool {
	return s.Region != nil && strings.TrimSpace(*s.Region) != ""
}

// LocationLabel returns "City, Region", or "City, Country" when the place has no region
func (s PresentationState) LocationLabel() string {
	if s.HasRegion() {
		return s.City + ", " + *s.Region
	}
	return s.City + ", " + s.Country
}

func (s PresentationState) clone() PresentationState {
	if s.Region != nil {
		region := *s.Region
		s.Region = &region
	}
	return s
}

// stateFor returns the state that results from a successful run
func stateFor(query string, place *weather.Place, units weather.Units) PresentationState {
	next := PresentationState{
		SearchString: query,
		City:         place.City,
		Country:      place.Country,
		Units:        units,
	}
	if place.HasRegion() {
		region := *place.Region
		next.Region = &region
	}
	return next
}

// View is one of the two mutually exclusive forecast blocks
type View int

const (
	ViewDaily View = iota
	ViewHourly
)

func (v View) String() string {
	if v == ViewHourly {
		return "hourly"
	}
	return "daily"
}

// ParseView converts a view name, rejecting anything but daily or hourly
func ParseView(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily":
		return ViewDaily, nil
	case "hourly":
		return ViewHourly, nil
	default:
		return ViewDaily, errors.NewValidationError("view must be one of: daily, hourly")
	}
}

// Direction is a relative pagination move
type Direction int

const (
	DirectionPrevious Direction = iota
	DirectionNext
)

func (d Direction) String() string {
	if d == DirectionNext {
		return "next"
	}
	return "previous"
}

// ParseDirection converts a direction name, rejecting anything but previous or next
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "previous":
		return DirectionPrevious, nil
	case "next":
		return DirectionNext, nil
	default:
		return DirectionPrevious, errors.NewValidationError("direction must be one of: previous, next")
	}
}
