package ports

import (
	"context"
	"time"
)

// Coordinates is a geographic position in decimal degrees
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Place is a geocoding match. State is nil when the service reports no subdivision.
type Place struct {
	Name        string      `json:"name"`
	State       *string     `json:"state,omitempty"`
	Country     string      `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
}

// Condition is a weather condition as reported by the weather service
type Condition struct {
	Description string
	Icon        string
}

// CurrentObservation represents current conditions
type CurrentObservation struct {
	Timestamp   time.Time
	Temperature float64
	FeelsLike   float64
	Humidity    float64
	WindSpeed   float64
	Condition   Condition
}

// DailyObservation represents one day of the daily forecast
type DailyObservation struct {
	Timestamp           time.Time
	High                float64
	Low                 float64
	PrecipitationChance float64
	Condition           Condition
}

// HourlyObservation represents one hour of the hourly forecast
type HourlyObservation struct {
	Timestamp   time.Time
	Temperature float64
	Condition   Condition
}

// ForecastData is the raw forecast as returned by the weather service.
// Daily[0] is today and Hourly[0] is the current hour.
type ForecastData struct {
	Units    string
	Timezone string
	Current  CurrentObservation
	Daily    []DailyObservation
	Hourly   []HourlyObservation
}

// Geocoder resolves free-text locations to places
type Geocoder interface {
	Resolve(ctx context.Context, query string) (*Place, error)
	GetProviderName() string
}

// WeatherFetcher retrieves forecasts for coordinates in a unit system
type WeatherFetcher interface {
	Fetch(ctx context.Context, coords Coordinates, units string) (*ForecastData, error)
	GetProviderName() string
}

// PlaceCache defines the contract for caching geocoding results
type PlaceCache interface {
	Get(ctx context.Context, key string) (*Place, error)
	Set(ctx context.Context, key string, place *Place, ttl time.Duration) error
}
