package mocks

import (
	"fmt"
	"time"

	"weatherdash.app/internal/ports"
)

// ForecastStart is the current-conditions timestamp used by NewForecastData:
// Friday, April 29th, 2022 at 3:00 PM in America/New_York.
var ForecastStart = time.Date(2022, time.April, 29, 19, 0, 0, 0, time.UTC)

// NewForecastData builds a one-call style forecast with 8 days and 48 hours.
// Daily entry i has high 70+i, low 50+i and icon "d<i>"; hourly entry i has
// temperature 60.4+i and icon "h<i>".
func NewForecastData(units string) *ports.ForecastData {
	data := &ports.ForecastData{
		Units:    units,
		Timezone: "America/New_York",
		Current: ports.CurrentObservation{
			Timestamp:   ForecastStart,
			Temperature: 71.6,
			FeelsLike:   70.2,
			Humidity:    65,
			WindSpeed:   8.05,
			Condition:   ports.Condition{Description: "scattered clouds", Icon: "03d"},
		},
	}

	for i := 0; i < 8; i++ {
		data.Daily = append(data.Daily, ports.DailyObservation{
			Timestamp:           ForecastStart.AddDate(0, 0, i),
			High:                70 + float64(i),
			Low:                 50 + float64(i),
			PrecipitationChance: 0.2,
			Condition:           ports.Condition{Description: "clear sky", Icon: fmt.Sprintf("d%d", i)},
		})
	}

	for i := 0; i < 48; i++ {
		data.Hourly = append(data.Hourly, ports.HourlyObservation{
			Timestamp:   ForecastStart.Add(time.Duration(i) * time.Hour),
			Temperature: 60.4 + float64(i),
			Condition:   ports.Condition{Description: "clear sky", Icon: fmt.Sprintf("h%d", i)},
		})
	}

	return data
}

// NewPlace builds a geocoding match; pass an empty state for places without one
func NewPlace(name, state, country string) *ports.Place {
	place := &ports.Place{
		Name:        name,
		Country:     country,
		Coordinates: ports.Coordinates{Latitude: 39.084, Longitude: -77.1528},
	}
	if state != "" {
		place.State = &state
	}
	return place
}
