package weather

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// Number of forecast rows shown after skipping today / the current hour
const (
	DailyRows  = 7
	HourlyRows = 21
)

// Units is a unit system. Switching units always means fetching again.
type Units int

const (
	UnitsUnknown Units = iota
	UnitsImperial
	UnitsMetric
)

// String returns the string representation of units
func (u Units) String() string {
	switch u {
	case UnitsImperial:
		return "imperial"
	case UnitsMetric:
		return "metric"
	default:
		return "unknown"
	}
}

// IsValid checks if the unit system is known
func (u Units) IsValid() bool {
	return u == UnitsImperial || u == UnitsMetric
}

// UnitsFromString converts string to Units enum
func UnitsFromString(s string) Units {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "imperial":
		return UnitsImperial
	case "metric":
		return UnitsMetric
	default:
		return UnitsUnknown
	}
}

// OrDefault returns imperial for an unspecified unit system
func (u Units) OrDefault() Units {
	if !u.IsValid() {
		return UnitsImperial
	}
	return u
}

// Toggle returns the other unit system
func (u Units) Toggle() Units {
	if u == UnitsMetric {
		return UnitsImperial
	}
	return UnitsMetric
}

// TemperatureSymbol returns F or C
func (u Units) TemperatureSymbol() string {
	if u == UnitsMetric {
		return "C"
	}
	return "F"
}

// SpeedSuffix returns the wind speed suffix for the unit system
func (u Units) SpeedSuffix() string {
	if u == UnitsMetric {
		return "kph"
	}
	return "mph"
}

// Coordinates is a geographic position in decimal degrees
type Coordinates struct {
	Longitude float64
	Latitude  float64
}

// Place is a resolved location. Region is nil when the place has no state or province.
type Place struct {
	City        string
	Region      *string
	Country     string
	Coordinates Coordinates
}

// HasRegion reports whether a non-blank region is present
func (p *Place) HasRegion() bool {
	return p.Region != nil && strings.TrimSpace(*p.Region) != ""
}

// IsValid validates place data
func (p *Place) IsValid() error {
	if strings.TrimSpace(p.City) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	if strings.TrimSpace(p.Country) == "" {
		return fmt.Errorf("country cannot be empty")
	}
	if p.Coordinates.Latitude < -90 || p.Coordinates.Latitude > 90 {
		return fmt.Errorf("latitude out of range")
	}
	if p.Coordinates.Longitude < -180 || p.Coordinates.Longitude > 180 {
		return fmt.Errorf("longitude out of range")
	}
	return nil
}

// Current holds current conditions. RainChanceToday comes from today's daily entry.
type Current struct {
	Timestamp       time.Time
	Temperature     float64
	FeelsLike       float64
	Humidity        float64
	WindSpeed       float64
	RainChanceToday float64
	Description     string
	Icon            string
}

// DailyEntry is one upcoming day
type DailyEntry struct {
	Date time.Time
	High float64
	Low  float64
	Icon string
}

// HourlyEntry is one upcoming hour
type HourlyEntry struct {
	Time        time.Time
	Temperature float64
	Icon        string
}

// Snapshot is one fetch's worth of weather data. It is never merged with another snapshot.
type Snapshot struct {
	Units    Units
	Location *time.Location
	Current  Current
	Daily    []DailyEntry
	Hourly   []HourlyEntry
}

// NewSnapshot validates a raw forecast and keeps the 7 days after today and
// the 21 hours after the current one.
func NewSnapshot(data *ports.ForecastData) (*Snapshot, error) {
	if data == nil {
		return nil, errors.NewMalformedResponseError("forecast is empty", nil)
	}

	units := UnitsFromString(data.Units)
	if !units.IsValid() {
		return nil, errors.NewMalformedResponseError(fmt.Sprintf("unknown unit system %q", data.Units), nil)
	}
	if data.Timezone == "" {
		return nil, errors.NewMalformedResponseError("forecast has no timezone", nil)
	}
	loc, err := time.LoadLocation(data.Timezone)
	if err != nil {
		return nil, errors.NewMalformedResponseError(fmt.Sprintf("unknown timezone %q", data.Timezone), err)
	}
	if len(data.Daily) < DailyRows+1 {
		return nil, errors.NewMalformedResponseError(
			fmt.Sprintf("expected at least %d daily entries, got %d", DailyRows+1, len(data.Daily)), nil)
	}
	if len(data.Hourly) < HourlyRows+1 {
		return nil, errors.NewMalformedResponseError(
			fmt.Sprintf("expected at least %d hourly entries, got %d", HourlyRows+1, len(data.Hourly)), nil)
	}
	if data.Current.Condition.Icon == "" {
		return nil, errors.NewMalformedResponseError("current conditions have no weather entry", nil)
	}

	snapshot := &Snapshot{
		Units:    units,
		Location: loc,
		Current: Current{
			Timestamp:       data.Current.Timestamp,
			Temperature:     data.Current.Temperature,
			FeelsLike:       data.Current.FeelsLike,
			Humidity:        data.Current.Humidity,
			WindSpeed:       data.Current.WindSpeed,
			RainChanceToday: data.Daily[0].PrecipitationChance,
			Description:     data.Current.Condition.Description,
			Icon:            data.Current.Condition.Icon,
		},
		Daily:  make([]DailyEntry, 0, DailyRows),
		Hourly: make([]HourlyEntry, 0, HourlyRows),
	}

	for i, day := range data.Daily[1 : DailyRows+1] {
		if day.Condition.Icon == "" {
			return nil, errors.NewMalformedResponseError(fmt.Sprintf("daily entry %d has no weather entry", i+1), nil)
		}
		snapshot.Daily = append(snapshot.Daily, DailyEntry{
			Date: day.Timestamp,
			High: day.High,
			Low:  day.Low,
			Icon: day.Condition.Icon,
		})
	}

	for i, hour := range data.Hourly[1 : HourlyRows+1] {
		if hour.Condition.Icon == "" {
			return nil, errors.NewMalformedResponseError(fmt.Sprintf("hourly entry %d has no weather entry", i+1), nil)
		}
		snapshot.Hourly = append(snapshot.Hourly, HourlyEntry{
			Time:        hour.Timestamp,
			Temperature: hour.Temperature,
			Icon:        hour.Condition.Icon,
		})
	}

	return snapshot, nil
}
