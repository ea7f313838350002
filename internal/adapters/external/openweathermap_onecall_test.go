package external

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const oneCallStart = int64(1651258800) // 2022-04-29T19:00:00Z

func oneCallBody(t *testing.T, days, hours int) []byte {
	t.Helper()

	condition := []map[string]string{{"description": "scattered clouds", "icon": "03d"}}
	daily := make([]map[string]interface{}, 0, days)
	for i := 0; i < days; i++ {
		daily = append(daily, map[string]interface{}{
			"dt":      oneCallStart + int64(i)*86400,
			"temp":    map[string]float64{"min": 50 + float64(i), "max": 70 + float64(i)},
			"pop":     0.35,
			"weather": condition,
		})
	}
	hourly := make([]map[string]interface{}, 0, hours)
	for i := 0; i < hours; i++ {
		hourly = append(hourly, map[string]interface{}{
			"dt":      oneCallStart + int64(i)*3600,
			"temp":    60.4 + float64(i),
			"weather": condition,
		})
	}

	body, err := json.Marshal(map[string]interface{}{
		"lat":      39.084,
		"lon":      -77.1528,
		"timezone": "America/New_York",
		"current": map[string]interface{}{
			"dt":         oneCallStart,
			"temp":       71.6,
			"feels_like": 70.2,
			"humidity":   65,
			"wind_speed": 8.05,
			"weather":    condition,
		},
		"hourly": hourly,
		"daily":  daily,
	})
	require.NoError(t, err)
	return body
}

func newTestOneCall(t *testing.T, handler http.HandlerFunc) *OpenWeatherMapOneCall {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewOpenWeatherMapOneCall(OpenWeatherMapParams{
		APIKey:  "test-api-key",
		BaseURL: server.URL,
		Logger:  mocks.NewLogger(t),
	})
}

func TestOpenWeatherMapOneCall_Fetch_Success(t *testing.T) {
	body := oneCallBody(t, 8, 48)
	fetcher := newTestOneCall(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/onecall", r.URL.Path)
		assert.Equal(t, "39.084", q.Get("lat"))
		assert.Equal(t, "-77.1528", q.Get("lon"))
		assert.Equal(t, "minutely,alerts", q.Get("exclude"))
		assert.Equal(t, "metric", q.Get("units"))
		assert.Equal(t, "test-api-key", q.Get("appid"))
		_, _ = w.Write(body)
	})

	data, err := fetcher.Fetch(context.Background(), ports.Coordinates{Latitude: 39.084, Longitude: -77.1528}, "metric")

	require.NoError(t, err)
	assert.Equal(t, "metric", data.Units)
	assert.Equal(t, "America/New_York", data.Timezone)
	assert.Equal(t, time.Unix(oneCallStart, 0).UTC(), data.Current.Timestamp)
	assert.Equal(t, 71.6, data.Current.Temperature)
	assert.Equal(t, 70.2, data.Current.FeelsLike)
	assert.Equal(t, 65.0, data.Current.Humidity)
	assert.Equal(t, 8.05, data.Current.WindSpeed)
	assert.Equal(t, ports.Condition{Description: "scattered clouds", Icon: "03d"}, data.Current.Condition)

	require.Len(t, data.Daily, 8)
	assert.Equal(t, 71.0, data.Daily[1].High)
	assert.Equal(t, 51.0, data.Daily[1].Low)
	assert.Equal(t, 0.35, data.Daily[0].PrecipitationChance)
	require.Len(t, data.Hourly, 48)
	assert.Equal(t, time.Unix(oneCallStart+3600, 0).UTC(), data.Hourly[1].Timestamp)
}

func TestOpenWeatherMapOneCall_Fetch_DefaultsToImperial(t *testing.T) {
	body := oneCallBody(t, 8, 48)
	fetcher := newTestOneCall(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "imperial", r.URL.Query().Get("units"))
		_, _ = w.Write(body)
	})

	data, err := fetcher.Fetch(context.Background(), ports.Coordinates{}, "")

	require.NoError(t, err)
	assert.Equal(t, "imperial", data.Units)
}

func TestOpenWeatherMapOneCall_Fetch_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		isError func(error) bool
	}{
		{"Unauthorized", http.StatusUnauthorized, `{"cod":401}`, errors.IsNetworkError},
		{"BadGateway", http.StatusBadGateway, ``, errors.IsNetworkError},
		{"InvalidJSON", http.StatusOK, `[1,2`, errors.IsMalformedResponseError},
		{"NoCurrent", http.StatusOK, `{"timezone":"UTC","daily":[],"hourly":[]}`, errors.IsMalformedResponseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := newTestOneCall(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			data, err := fetcher.Fetch(context.Background(), ports.Coordinates{}, "imperial")

			assert.Nil(t, data)
			assert.True(t, tt.isError(err), "got %v", err)
		})
	}
}

func TestOpenWeatherMapOneCall_Fetch_InvalidUnits(t *testing.T) {
	fetcher := NewOpenWeatherMapOneCall(OpenWeatherMapParams{APIKey: "k"})

	_, err := fetcher.Fetch(context.Background(), ports.Coordinates{}, "standard")

	assert.True(t, errors.IsValidationError(err))
}

func TestOpenWeatherMapOneCall_Fetch_EmptyWeatherList(t *testing.T) {
	fetcher := newTestOneCall(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"timezone":"UTC","current":{"dt":1,"temp":1,"weather":[]},"daily":[],"hourly":[]}`))
	})

	data, err := fetcher.Fetch(context.Background(), ports.Coordinates{}, "metric")

	require.NoError(t, err)
	assert.Equal(t, ports.Condition{}, data.Current.Condition)
}
