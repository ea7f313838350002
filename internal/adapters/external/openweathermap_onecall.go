package external

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const defaultOneCallBaseURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherMapOneCall implements the WeatherFetcher port with the OpenWeatherMap one-call API
type OpenWeatherMapOneCall struct {
	openWeatherMapClient
}

// OneCallResponse is the subset of the one-call payload the dashboard reads
type OneCallResponse struct {
	Timezone string          `json:"timezone"`
	Current  *oneCallCurrent `json:"current"`
	Hourly   []oneCallHourly `json:"hourly"`
	Daily    []oneCallDaily  `json:"daily"`
}

type oneCallCondition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type oneCallCurrent struct {
	Dt        int64              `json:"dt"`
	Temp      float64            `json:"temp"`
	FeelsLike float64            `json:"feels_like"`
	Humidity  float64            `json:"humidity"`
	WindSpeed float64            `json:"wind_speed"`
	Weather   []oneCallCondition `json:"weather"`
}

type oneCallHourly struct {
	Dt      int64              `json:"dt"`
	Temp    float64            `json:"temp"`
	Weather []oneCallCondition `json:"weather"`
}

type oneCallDaily struct {
	Dt   int64 `json:"dt"`
	Temp struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	} `json:"temp"`
	Pop     float64            `json:"pop"`
	Weather []oneCallCondition `json:"weather"`
}

func NewOpenWeatherMapOneCall(params OpenWeatherMapParams) *OpenWeatherMapOneCall {
	return &OpenWeatherMapOneCall{
		openWeatherMapClient: newOpenWeatherMapClient("one-call weather", defaultOneCallBaseURL, params),
	}
}

// Fetch retrieves current, hourly and daily data. Minutely data and alerts are excluded.
func (o *OpenWeatherMapOneCall) Fetch(ctx context.Context, coords ports.Coordinates, units string) (*ports.ForecastData, error) {
	if units == "" {
		units = "imperial"
	}
	if units != "imperial" && units != "metric" {
		return nil, errors.NewValidationError("units must be one of: imperial, metric")
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	params.Set("exclude", "minutely,alerts")
	params.Set("units", units)

	var resp OneCallResponse
	if err := o.getJSON(ctx, "/onecall", params, &resp); err != nil {
		return nil, err
	}
	if resp.Current == nil {
		return nil, errors.NewMalformedResponseError("one-call response has no current conditions", nil)
	}

	data := &ports.ForecastData{
		Units:    units,
		Timezone: resp.Timezone,
		Current: ports.CurrentObservation{
			Timestamp:   time.Unix(resp.Current.Dt, 0).UTC(),
			Temperature: resp.Current.Temp,
			FeelsLike:   resp.Current.FeelsLike,
			Humidity:    resp.Current.Humidity,
			WindSpeed:   resp.Current.WindSpeed,
			Condition:   firstCondition(resp.Current.Weather),
		},
		Daily:  make([]ports.DailyObservation, 0, len(resp.Daily)),
		Hourly: make([]ports.HourlyObservation, 0, len(resp.Hourly)),
	}

	for _, day := range resp.Daily {
		data.Daily = append(data.Daily, ports.DailyObservation{
			Timestamp:           time.Unix(day.Dt, 0).UTC(),
			High:                day.Temp.Max,
			Low:                 day.Temp.Min,
			PrecipitationChance: day.Pop,
			Condition:           firstCondition(day.Weather),
		})
	}
	for _, hour := range resp.Hourly {
		data.Hourly = append(data.Hourly, ports.HourlyObservation{
			Timestamp:   time.Unix(hour.Dt, 0).UTC(),
			Temperature: hour.Temp,
			Condition:   firstCondition(hour.Weather),
		})
	}

	return data, nil
}

func (o *OpenWeatherMapOneCall) GetProviderName() string {
	return "openweathermap-onecall"
}

// firstCondition returns the primary weather entry; an empty list yields an empty condition
func firstCondition(conditions []oneCallCondition) ports.Condition {
	if len(conditions) == 0 {
		return ports.Condition{}
	}
	return ports.Condition{
		Description: conditions[0].Description,
		Icon:        conditions[0].Icon,
	}
}
