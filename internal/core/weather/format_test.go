package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTemperature(t *testing.T) {
	tests := []struct {
		value    float64
		units    Units
		expected string
	}{
		{21.6, UnitsImperial, "22 °F"},
		{21.4, UnitsMetric, "21 °C"},
		{21.5, UnitsMetric, "22 °C"},
		{-2.5, UnitsMetric, "-2 °C"},
		{-2.6, UnitsImperial, "-3 °F"},
		{0, UnitsImperial, "0 °F"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTemperature(tt.value, tt.units))
		})
	}
}

func TestFormatPercentages(t *testing.T) {
	assert.Equal(t, "65%", FormatPercent(65))
	assert.Equal(t, "20%", FormatProbability(0.2))
	assert.Equal(t, "0%", FormatProbability(0))
	assert.Equal(t, "100%", FormatProbability(1))
}

func TestFormatWindSpeed(t *testing.T) {
	assert.Equal(t, "8.05 mph", FormatWindSpeed(8.05, UnitsImperial))
	assert.Equal(t, "3 kph", FormatWindSpeed(3, UnitsMetric))
}

func TestDateFormatting(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 19:00 UTC is 3 PM in New York during daylight saving time
	ts := time.Date(2022, time.April, 29, 19, 0, 0, 0, time.UTC)

	assert.Equal(t, "Friday, April 29th, 2022", FormatLongDate(ts, loc))
	assert.Equal(t, "3:00 PM", FormatClock(ts, loc))
	assert.Equal(t, "Friday", FormatWeekday(ts, loc))
	assert.Equal(t, "3 PM", FormatHour(ts, loc))
}

func TestFormatLongDate_UsesSnapshotTimezone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	ts := time.Date(2022, time.April, 29, 19, 0, 0, 0, time.UTC)

	assert.Equal(t, "Saturday, April 30th, 2022", FormatLongDate(ts, tokyo))
	assert.Equal(t, "4:00 AM", FormatClock(ts, tokyo))
}

func TestFormatHour_NoonAndMidnight(t *testing.T) {
	assert.Equal(t, "12 noon", FormatHour(time.Date(2022, 1, 1, 12, 0, 0, 0, time.UTC), time.UTC))
	assert.Equal(t, "12 midnight", FormatHour(time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), time.UTC))
	assert.Equal(t, "1 AM", FormatHour(time.Date(2022, 1, 1, 1, 0, 0, 0, time.UTC), time.UTC))
	assert.Equal(t, "11 PM", FormatHour(time.Date(2022, 1, 1, 23, 0, 0, 0, time.UTC), time.UTC))
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th",
		11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 23: "23rd", 31: "31st",
	}
	for day, expected := range tests {
		assert.Equal(t, expected, ordinal(day))
	}
}
