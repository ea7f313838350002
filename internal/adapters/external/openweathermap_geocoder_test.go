package external

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/pkg/errors"
)

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) *OpenWeatherMapGeocoder {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewOpenWeatherMapGeocoder(OpenWeatherMapParams{
		APIKey:  "test-api-key",
		BaseURL: server.URL,
		Logger:  mocks.NewLogger(t),
	})
}

func TestOpenWeatherMapGeocoder_Resolve_Success(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/direct", r.URL.Path)
		assert.Equal(t, "Rockville, Maryland", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "test-api-key", r.URL.Query().Get("appid"))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`[{"name":"Rockville","lat":39.0840,"lon":-77.1528,"country":"US","state":"Maryland"}]`))
		assert.NoError(t, err)
	})

	place, err := geocoder.Resolve(context.Background(), "Rockville, Maryland")

	require.NoError(t, err)
	assert.Equal(t, "Rockville", place.Name)
	require.NotNil(t, place.State)
	assert.Equal(t, "Maryland", *place.State)
	assert.Equal(t, "US", place.Country)
	assert.Equal(t, 39.084, place.Coordinates.Latitude)
	assert.Equal(t, -77.1528, place.Coordinates.Longitude)
}

func TestOpenWeatherMapGeocoder_Resolve_NoState(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"Monaco","lat":43.73,"lon":7.42,"country":"MC"}]`))
	})

	place, err := geocoder.Resolve(context.Background(), "Monaco")

	require.NoError(t, err)
	assert.Nil(t, place.State)
}

func TestOpenWeatherMapGeocoder_Resolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		isError func(error) bool
	}{
		{"NoMatches", http.StatusOK, `[]`, errors.IsNotFoundError},
		{"Unauthorized", http.StatusUnauthorized, `{"cod":401,"message":"Invalid API key"}`, errors.IsNetworkError},
		{"ServerError", http.StatusInternalServerError, `oops`, errors.IsNetworkError},
		{"InvalidJSON", http.StatusOK, `{not json`, errors.IsMalformedResponseError},
		{"MissingCountry", http.StatusOK, `[{"name":"X","lat":1,"lon":2}]`, errors.IsMalformedResponseError},
		{"MissingCoordinates", http.StatusOK, `[{"name":"X","country":"Y"}]`, errors.IsMalformedResponseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			place, err := geocoder.Resolve(context.Background(), "Atlantis")

			assert.Nil(t, place)
			assert.True(t, tt.isError(err), "got %v", err)
		})
	}
}

func TestOpenWeatherMapGeocoder_Resolve_EmptyQuery(t *testing.T) {
	geocoder := NewOpenWeatherMapGeocoder(OpenWeatherMapParams{APIKey: "k"})

	_, err := geocoder.Resolve(context.Background(), "  ")

	assert.True(t, errors.IsValidationError(err))
}

func TestOpenWeatherMapGeocoder_Resolve_TransportErrors(t *testing.T) {
	t.Run("Unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()
		geocoder := NewOpenWeatherMapGeocoder(OpenWeatherMapParams{APIKey: "k", BaseURL: server.URL})

		_, err := geocoder.Resolve(context.Background(), "Paris")

		assert.True(t, errors.IsNetworkError(err))
	})

	t.Run("Deadline", func(t *testing.T) {
		release := make(chan struct{})
		geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		})
		defer close(release)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := geocoder.Resolve(ctx, "Paris")

		assert.True(t, errors.IsTimeoutError(err))
	})

	t.Run("CallerCanceled", func(t *testing.T) {
		release := make(chan struct{})
		geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		})
		defer close(release)

		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(20*time.Millisecond, cancel)

		_, err := geocoder.Resolve(ctx, "Paris")

		require.Error(t, err)
		assert.True(t, stderrors.Is(err, context.Canceled))
		assert.False(t, errors.IsNetworkError(err))
		assert.False(t, errors.IsTimeoutError(err))
	})
}

func TestOpenWeatherMapGeocoder_DefaultBaseURL(t *testing.T) {
	geocoder := NewOpenWeatherMapGeocoder(OpenWeatherMapParams{APIKey: "k"})
	assert.Equal(t, "http://api.openweathermap.org/geo/1.0", geocoder.baseURL)
	assert.Equal(t, "openweathermap-geocoding", geocoder.GetProviderName())
}
