package external

import (
	"context"
	"time"

	"weatherdash.app/internal/ports"
)

// GeocoderLoggingDecorator decorates a geocoder with structured logging
type GeocoderLoggingDecorator struct {
	geocoder ports.Geocoder
	logger   ports.Logger
}

// NewGeocoderLoggingDecorator creates a new logging decorator for geocoders
func NewGeocoderLoggingDecorator(geocoder ports.Geocoder, logger ports.Logger) ports.Geocoder {
	return &GeocoderLoggingDecorator{
		geocoder: geocoder,
		logger:   logger,
	}
}

// Resolve wraps the geocoder call with structured logging
func (d *GeocoderLoggingDecorator) Resolve(ctx context.Context, query string) (*ports.Place, error) {
	providerName := d.geocoder.GetProviderName()

	d.logger.Info("Geocoding request started",
		ports.F("provider", providerName),
		ports.F("query", query),
		ports.F("event", "request"))

	startTime := time.Now()
	place, err := d.geocoder.Resolve(ctx, query)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Geocoding request failed",
			ports.F("provider", providerName),
			ports.F("query", query),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Geocoding request completed",
		ports.F("provider", providerName),
		ports.F("query", query),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("name", place.Name),
		ports.F("country", place.Country))

	return place, nil
}

// GetProviderName returns the name of the wrapped geocoder with logging indication
func (d *GeocoderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.geocoder.GetProviderName() + ")"
}

// WeatherFetcherLoggingDecorator decorates a weather fetcher with structured logging
type WeatherFetcherLoggingDecorator struct {
	fetcher ports.WeatherFetcher
	logger  ports.Logger
}

// NewWeatherFetcherLoggingDecorator creates a new logging decorator for weather fetchers
func NewWeatherFetcherLoggingDecorator(fetcher ports.WeatherFetcher, logger ports.Logger) ports.WeatherFetcher {
	return &WeatherFetcherLoggingDecorator{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Fetch wraps the fetcher call with structured logging
func (d *WeatherFetcherLoggingDecorator) Fetch(ctx context.Context, coords ports.Coordinates, units string) (*ports.ForecastData, error) {
	providerName := d.fetcher.GetProviderName()

	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("latitude", coords.Latitude),
		ports.F("longitude", coords.Longitude),
		ports.F("units", units),
		ports.F("event", "request"))

	startTime := time.Now()
	data, err := d.fetcher.Fetch(ctx, coords, units)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather API request failed",
			ports.F("provider", providerName),
			ports.F("units", units),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("units", units),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("timezone", data.Timezone),
		ports.F("temperature", data.Current.Temperature),
		ports.F("daily_entries", len(data.Daily)),
		ports.F("hourly_entries", len(data.Hourly)))

	return data, nil
}

// GetProviderName returns the name of the wrapped fetcher with logging indication
func (d *WeatherFetcherLoggingDecorator) GetProviderName() string {
	return "logged(" + d.fetcher.GetProviderName() + ")"
}
