package external

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

func TestGeocoderLoggingDecorator(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		geocoder := mocks.NewGeocoder(t)
		logger := mocks.NewLogger(t)
		geocoder.On("Resolve", mock.Anything, "Paris").Return(mocks.NewPlace("Paris", "", "FR"), nil)

		decorated := NewGeocoderLoggingDecorator(geocoder, logger)
		place, err := decorated.Resolve(context.Background(), "Paris")

		require.NoError(t, err)
		assert.Equal(t, "Paris", place.Name)
		assert.True(t, logger.HasMessage("INFO", "Geocoding request started"))
		assert.True(t, logger.HasMessage("INFO", "Geocoding request completed"))
		assert.Equal(t, "logged(mock-geocoder)", decorated.GetProviderName())
	})

	t.Run("Failure", func(t *testing.T) {
		geocoder := mocks.NewGeocoder(t)
		logger := mocks.NewLogger(t)
		geocoder.On("Resolve", mock.Anything, "Atlantis").Return(nil, errors.NewNotFoundError("no match"))

		_, err := NewGeocoderLoggingDecorator(geocoder, logger).Resolve(context.Background(), "Atlantis")

		assert.True(t, errors.IsNotFoundError(err))
		assert.True(t, logger.HasMessage("ERROR", "Geocoding request failed"))
	})
}

func TestWeatherFetcherLoggingDecorator(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		fetcher := mocks.NewWeatherFetcher(t)
		logger := mocks.NewLogger(t)
		fetcher.On("Fetch", mock.Anything, ports.Coordinates{}, "metric").Return(mocks.NewForecastData("metric"), nil)

		decorated := NewWeatherFetcherLoggingDecorator(fetcher, logger)
		data, err := decorated.Fetch(context.Background(), ports.Coordinates{}, "metric")

		require.NoError(t, err)
		assert.Equal(t, "metric", data.Units)
		assert.True(t, logger.HasMessage("INFO", "Weather API request completed"))
		assert.Equal(t, "logged(mock-fetcher)", decorated.GetProviderName())
	})

	t.Run("Failure", func(t *testing.T) {
		fetcher := mocks.NewWeatherFetcher(t)
		logger := mocks.NewLogger(t)
		fetcher.On("Fetch", mock.Anything, ports.Coordinates{}, "metric").
			Return(nil, errors.NewNetworkError("down", nil))

		_, err := NewWeatherFetcherLoggingDecorator(fetcher, logger).Fetch(context.Background(), ports.Coordinates{}, "metric")

		assert.True(t, errors.IsNetworkError(err))
		assert.True(t, logger.HasMessage("ERROR", "Weather API request failed"))
	})
}

func TestMetricsDecorators(t *testing.T) {
	metrics := mocks.NewMetricsCollector(t)
	geocoder := mocks.NewGeocoder(t)
	fetcher := mocks.NewWeatherFetcher(t)
	geocoder.On("Resolve", mock.Anything, "Paris").Return(mocks.NewPlace("Paris", "", "FR"), nil)
	fetcher.On("Fetch", mock.Anything, mock.Anything, "imperial").Return(nil, errors.NewNetworkError("down", nil))

	_, err := NewGeocoderMetricsDecorator(geocoder, metrics).Resolve(context.Background(), "Paris")
	require.NoError(t, err)
	_, err = NewWeatherFetcherMetricsDecorator(fetcher, metrics).Fetch(context.Background(), ports.Coordinates{}, "imperial")
	require.Error(t, err)

	assert.Equal(t, map[string]int{"geocoding": 1, "weather": 1}, metrics.RemoteCalls)
}

func TestRateLimitedDecorators(t *testing.T) {
	t.Run("SharedLimiterForwards", func(t *testing.T) {
		limiter := NewSharedLimiter(100, 2)
		geocoder := mocks.NewGeocoder(t)
		fetcher := mocks.NewWeatherFetcher(t)
		geocoder.On("Resolve", mock.Anything, "Paris").Return(mocks.NewPlace("Paris", "", "FR"), nil)
		fetcher.On("Fetch", mock.Anything, mock.Anything, "metric").Return(mocks.NewForecastData("metric"), nil)

		limitedGeocoder := NewRateLimitedGeocoder(geocoder, limiter)
		limitedFetcher := NewRateLimitedWeatherFetcher(fetcher, limiter)

		_, err := limitedGeocoder.Resolve(context.Background(), "Paris")
		require.NoError(t, err)
		_, err = limitedFetcher.Fetch(context.Background(), ports.Coordinates{}, "metric")
		require.NoError(t, err)

		assert.Equal(t, "mock-geocoder [rate limited]", limitedGeocoder.GetProviderName())
		assert.Equal(t, "mock-fetcher [rate limited]", limitedFetcher.GetProviderName())
	})

	t.Run("WaitExceedsDeadline", func(t *testing.T) {
		limiter := NewSharedLimiter(0.01, 1)
		geocoder := mocks.NewGeocoder(t)
		geocoder.On("Resolve", mock.Anything, "Paris").Return(mocks.NewPlace("Paris", "", "FR"), nil).Once()
		limited := NewRateLimitedGeocoder(geocoder, limiter)

		_, err := limited.Resolve(context.Background(), "Paris")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err = limited.Resolve(ctx, "Paris")

		assert.True(t, errors.IsTimeoutError(err))
	})

	t.Run("CallerCanceled", func(t *testing.T) {
		limiter := NewSharedLimiter(0.01, 1)
		fetcher := mocks.NewWeatherFetcher(t)
		limited := NewRateLimitedWeatherFetcher(fetcher, limiter)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := limited.Fetch(ctx, ports.Coordinates{}, "metric")

		require.Error(t, err)
		assert.True(t, stderrors.Is(err, context.Canceled))
		assert.False(t, errors.IsTimeoutError(err))
		fetcher.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPlaceCacheAdapter(t *testing.T) {
	ctx := context.Background()
	metrics := mocks.NewMetricsCollector(t)
	provider := NewMemoryCacheProvider()
	cache := NewPlaceCacheAdapter(provider, metrics, "memory")

	_, err := cache.Get(ctx, "geocode:rockville")
	assert.True(t, errors.IsNotFoundError(err))

	place := mocks.NewPlace("Rockville", "Maryland", "US")
	require.NoError(t, cache.Set(ctx, "geocode:rockville", place, time.Minute))

	cached, err := cache.Get(ctx, "geocode:rockville")
	require.NoError(t, err)
	assert.Equal(t, place, cached)

	noState := mocks.NewPlace("Monaco", "", "MC")
	require.NoError(t, cache.Set(ctx, "geocode:monaco", noState, time.Minute))
	cached, err = cache.Get(ctx, "geocode:monaco")
	require.NoError(t, err)
	assert.Nil(t, cached.State)

	assert.True(t, errors.IsValidationError(cache.Set(ctx, "geocode:nil", nil, time.Minute)))

	require.NoError(t, provider.Set(ctx, "geocode:corrupt", []byte("{"), time.Minute))
	_, err = cache.Get(ctx, "geocode:corrupt")
	assert.True(t, errors.IsMalformedResponseError(err))

	assert.Equal(t, 2, metrics.CacheHits)
	assert.Equal(t, 2, metrics.CacheMisses)
}
