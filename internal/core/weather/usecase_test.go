package weather

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

type useCaseFixture struct {
	geocoder *mocks.Geocoder
	fetcher  *mocks.WeatherFetcher
	cache    *mocks.PlaceCache
	config   *mocks.ConfigProvider
	logger   *mocks.Logger
	uc       *UseCase
}

func newUseCaseFixture(t *testing.T) *useCaseFixture {
	f := &useCaseFixture{
		geocoder: mocks.NewGeocoder(t),
		fetcher:  mocks.NewWeatherFetcher(t),
		cache:    mocks.NewPlaceCache(t),
		config:   mocks.NewConfigProvider(t),
		logger:   mocks.NewLogger(t),
	}

	uc, err := NewUseCase(UseCaseDependencies{
		Geocoder: f.geocoder,
		Fetcher:  f.fetcher,
		Cache:    f.cache,
		Config:   f.config,
		Logger:   f.logger,
	})
	require.NoError(t, err)
	f.uc = uc
	return f
}

func (f *useCaseFixture) withCache(enabled bool) {
	f.config.On("GetWeatherConfig").Return(ports.WeatherConfig{
		EnableCache:     enabled,
		GeocodeCacheTTL: time.Hour,
	})
}

func TestNewUseCase_RequiresDependencies(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{})
	assert.True(t, errors.IsValidationError(err))

	_, err = NewUseCase(UseCaseDependencies{Geocoder: mocks.NewGeocoder(t)})
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_ResolvePlace_CacheMiss(t *testing.T) {
	f := newUseCaseFixture(t)
	f.withCache(true)

	place := mocks.NewPlace("Rockville", "Maryland", "US")
	f.cache.On("Get", mock.Anything, "geocode:rockville, maryland").
		Return(nil, errors.NewNotFoundError("cache miss"))
	f.geocoder.On("Resolve", mock.Anything, "Rockville,  Maryland").Return(place, nil)
	f.cache.On("Set", mock.Anything, "geocode:rockville, maryland", place, time.Hour).Return(nil)

	result, err := f.uc.ResolvePlace(context.Background(), "  Rockville,  Maryland ")

	require.NoError(t, err)
	assert.Equal(t, "Rockville", result.City)
	require.True(t, result.HasRegion())
	assert.Equal(t, "Maryland", *result.Region)
	assert.Equal(t, "US", result.Country)
	assert.Equal(t, 39.084, result.Coordinates.Latitude)
}

func TestUseCase_ResolvePlace_CacheHit(t *testing.T) {
	f := newUseCaseFixture(t)
	f.withCache(true)

	f.cache.On("Get", mock.Anything, "geocode:paris").
		Return(mocks.NewPlace("Paris", "", "FR"), nil)

	result, err := f.uc.ResolvePlace(context.Background(), "PARIS")

	require.NoError(t, err)
	assert.Equal(t, "Paris", result.City)
	assert.False(t, result.HasRegion())
	f.geocoder.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestUseCase_ResolvePlace_CacheDisabled(t *testing.T) {
	f := newUseCaseFixture(t)
	f.withCache(false)

	f.geocoder.On("Resolve", mock.Anything, "Paris").Return(mocks.NewPlace("Paris", "", "FR"), nil)

	_, err := f.uc.ResolvePlace(context.Background(), "Paris")

	require.NoError(t, err)
	f.cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestUseCase_ResolvePlace_CacheSetFailureIsNotFatal(t *testing.T) {
	f := newUseCaseFixture(t)
	f.withCache(true)

	place := mocks.NewPlace("Paris", "", "FR")
	f.cache.On("Get", mock.Anything, "geocode:paris").Return(nil, errors.NewNotFoundError("cache miss"))
	f.geocoder.On("Resolve", mock.Anything, "Paris").Return(place, nil)
	f.cache.On("Set", mock.Anything, "geocode:paris", place, time.Hour).
		Return(errors.NewNetworkError("redis down", nil))

	result, err := f.uc.ResolvePlace(context.Background(), "Paris")

	require.NoError(t, err)
	assert.Equal(t, "Paris", result.City)
	assert.True(t, f.logger.HasMessage("WARN", "Failed to cache location"))
}

func TestUseCase_ResolvePlace_EmptyQuery(t *testing.T) {
	f := newUseCaseFixture(t)

	_, err := f.uc.ResolvePlace(context.Background(), "   ")

	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_ResolvePlace_NotFoundPropagates(t *testing.T) {
	f := newUseCaseFixture(t)
	f.withCache(false)

	f.geocoder.On("Resolve", mock.Anything, "Atlantis").
		Return(nil, errors.NewNotFoundError("no location matches \"Atlantis\""))

	_, err := f.uc.ResolvePlace(context.Background(), "Atlantis")

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "Atlantis")
}

func TestUseCase_ResolvePlace_InvalidPlace(t *testing.T) {
	f := newUseCaseFixture(t)
	f.withCache(false)

	f.geocoder.On("Resolve", mock.Anything, "Nowhere").Return(&ports.Place{Name: "Nowhere"}, nil)

	_, err := f.uc.ResolvePlace(context.Background(), "Nowhere")

	assert.True(t, errors.IsMalformedResponseError(err))
}

func TestUseCase_FetchSnapshot(t *testing.T) {
	f := newUseCaseFixture(t)
	coords := Coordinates{Latitude: 39.084, Longitude: -77.1528}

	f.fetcher.On("Fetch", mock.Anything, ports.Coordinates{Latitude: 39.084, Longitude: -77.1528}, "metric").
		Return(mocks.NewForecastData("metric"), nil)

	snapshot, err := f.uc.FetchSnapshot(context.Background(), coords, UnitsMetric)

	require.NoError(t, err)
	assert.Equal(t, UnitsMetric, snapshot.Units)
	assert.Len(t, snapshot.Daily, DailyRows)
	assert.Len(t, snapshot.Hourly, HourlyRows)
}

func TestUseCase_FetchSnapshot_DefaultsToImperial(t *testing.T) {
	f := newUseCaseFixture(t)

	f.fetcher.On("Fetch", mock.Anything, mock.Anything, "imperial").
		Return(mocks.NewForecastData("imperial"), nil)

	snapshot, err := f.uc.FetchSnapshot(context.Background(), Coordinates{}, UnitsUnknown)

	require.NoError(t, err)
	assert.Equal(t, UnitsImperial, snapshot.Units)
}

func TestUseCase_FetchSnapshot_UnitsMismatch(t *testing.T) {
	f := newUseCaseFixture(t)

	f.fetcher.On("Fetch", mock.Anything, mock.Anything, "metric").
		Return(mocks.NewForecastData("imperial"), nil)

	_, err := f.uc.FetchSnapshot(context.Background(), Coordinates{}, UnitsMetric)

	assert.True(t, errors.IsMalformedResponseError(err))
}

func TestUseCase_FetchSnapshot_NetworkError(t *testing.T) {
	f := newUseCaseFixture(t)

	f.fetcher.On("Fetch", mock.Anything, mock.Anything, "imperial").
		Return(nil, errors.NewNetworkError("connection refused", nil))

	_, err := f.uc.FetchSnapshot(context.Background(), Coordinates{}, UnitsImperial)

	assert.True(t, errors.IsNetworkError(err))
}

func TestUseCase_ResolvePlace_InvalidPlaceIsNotCached(t *testing.T) {
	f := newUseCaseFixture(t)
	f.withCache(true)

	bad := mocks.NewPlace("Nowhere", "", "XX")
	bad.Coordinates.Latitude = 123
	f.cache.On("Get", mock.Anything, "geocode:nowhere").Return(nil, errors.NewNotFoundError("cache miss"))
	f.geocoder.On("Resolve", mock.Anything, "Nowhere").Return(bad, nil)

	_, err := f.uc.ResolvePlace(context.Background(), "Nowhere")

	assert.True(t, errors.IsMalformedResponseError(err))
	f.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_ResolvePlace_InvalidCachedPlaceIsRefreshed(t *testing.T) {
	f := newUseCaseFixture(t)
	f.withCache(true)

	stale := mocks.NewPlace("Paris", "", "FR")
	stale.Coordinates.Longitude = 200
	fresh := mocks.NewPlace("Paris", "", "FR")
	f.cache.On("Get", mock.Anything, "geocode:paris").Return(stale, nil)
	f.geocoder.On("Resolve", mock.Anything, "Paris").Return(fresh, nil)
	f.cache.On("Set", mock.Anything, "geocode:paris", fresh, time.Hour).Return(nil)

	result, err := f.uc.ResolvePlace(context.Background(), "Paris")

	require.NoError(t, err)
	assert.Equal(t, fresh.Coordinates.Longitude, result.Coordinates.Longitude)
}
