// Package mocks provides testify mocks for the ports package.
package mocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"weatherdash.app/internal/ports"
)

// Geocoder is a mock of ports.Geocoder
type Geocoder struct {
	mock.Mock
}

// NewGeocoder creates a Geocoder mock that asserts its expectations on cleanup
func NewGeocoder(t *testing.T) *Geocoder {
	m := &Geocoder{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Geocoder) Resolve(ctx context.Context, query string) (*ports.Place, error) {
	args := m.Called(ctx, query)
	place, _ := args.Get(0).(*ports.Place)
	return place, args.Error(1)
}

func (m *Geocoder) GetProviderName() string {
	return "mock-geocoder"
}

// WeatherFetcher is a mock of ports.WeatherFetcher
type WeatherFetcher struct {
	mock.Mock
}

// NewWeatherFetcher creates a WeatherFetcher mock that asserts its expectations on cleanup
func NewWeatherFetcher(t *testing.T) *WeatherFetcher {
	m := &WeatherFetcher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *WeatherFetcher) Fetch(ctx context.Context, coords ports.Coordinates, units string) (*ports.ForecastData, error) {
	args := m.Called(ctx, coords, units)
	data, _ := args.Get(0).(*ports.ForecastData)
	return data, args.Error(1)
}

func (m *WeatherFetcher) GetProviderName() string {
	return "mock-fetcher"
}

// PlaceCache is a mock of ports.PlaceCache
type PlaceCache struct {
	mock.Mock
}

// NewPlaceCache creates a PlaceCache mock that asserts its expectations on cleanup
func NewPlaceCache(t *testing.T) *PlaceCache {
	m := &PlaceCache{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PlaceCache) Get(ctx context.Context, key string) (*ports.Place, error) {
	args := m.Called(ctx, key)
	place, _ := args.Get(0).(*ports.Place)
	return place, args.Error(1)
}

func (m *PlaceCache) Set(ctx context.Context, key string, place *ports.Place, ttl time.Duration) error {
	args := m.Called(ctx, key, place, ttl)
	return args.Error(0)
}
