package external

import (
	"context"
	"time"

	"weatherdash.app/internal/ports"
)

// GeocoderMetricsDecorator records call counts and latency for a geocoder
type GeocoderMetricsDecorator struct {
	geocoder ports.Geocoder
	metrics  ports.MetricsCollector
}

func NewGeocoderMetricsDecorator(geocoder ports.Geocoder, metrics ports.MetricsCollector) ports.Geocoder {
	return &GeocoderMetricsDecorator{geocoder: geocoder, metrics: metrics}
}

func (d *GeocoderMetricsDecorator) Resolve(ctx context.Context, query string) (*ports.Place, error) {
	start := time.Now()
	place, err := d.geocoder.Resolve(ctx, query)
	d.metrics.RecordRemoteCall("geocoding", err == nil, time.Since(start))
	return place, err
}

func (d *GeocoderMetricsDecorator) GetProviderName() string {
	return d.geocoder.GetProviderName()
}

// WeatherFetcherMetricsDecorator records call counts and latency for a weather fetcher
type WeatherFetcherMetricsDecorator struct {
	fetcher ports.WeatherFetcher
	metrics ports.MetricsCollector
}

func NewWeatherFetcherMetricsDecorator(fetcher ports.WeatherFetcher, metrics ports.MetricsCollector) ports.WeatherFetcher {
	return &WeatherFetcherMetricsDecorator{fetcher: fetcher, metrics: metrics}
}

func (d *WeatherFetcherMetricsDecorator) Fetch(ctx context.Context, coords ports.Coordinates, units string) (*ports.ForecastData, error) {
	start := time.Now()
	data, err := d.fetcher.Fetch(ctx, coords, units)
	d.metrics.RecordRemoteCall("weather", err == nil, time.Since(start))
	return data, err
}

func (d *WeatherFetcherMetricsDecorator) GetProviderName() string {
	return d.fetcher.GetProviderName()
}
