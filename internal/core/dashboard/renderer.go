package dashboard

import (
	"fmt"

	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
)

// Renderer projects a snapshot onto the display surface. It holds no session
// state; every label it prints uses the units of the snapshot being rendered.
type Renderer struct {
	iconURLTemplate string
	groups          int
}

func NewRenderer(iconURLTemplate string, groups int) *Renderer {
	return &Renderer{
		iconURLTemplate: iconURLTemplate,
		groups:          groups,
	}
}

// IconURL expands the icon template for a condition code
func (r *Renderer) IconURL(code string) string {
	return fmt.Sprintf(r.iconURLTemplate, code)
}

// Render writes the current-conditions panel, the daily rows and the hourly rows
func (r *Renderer) Render(surface ports.DisplaySurface, snapshot *weather.Snapshot, state PresentationState) {
	units := snapshot.Units
	loc := snapshot.Location
	current := snapshot.Current

	surface.SetCurrent(ports.CurrentPanel{
		Description: current.Description,
		Location:    state.LocationLabel(),
		Date:        weather.FormatLongDate(current.Timestamp, loc),
		Time:        weather.FormatClock(current.Timestamp, loc),
		Temperature: weather.FormatTemperature(current.Temperature, units),
		IconURL:     r.IconURL(current.Icon),
		FeelsLike:   weather.FormatTemperature(current.FeelsLike, units),
		Humidity:    weather.FormatPercent(current.Humidity),
		RainChance:  weather.FormatProbability(current.RainChanceToday),
		WindSpeed:   weather.FormatWindSpeed(current.WindSpeed, units),
	})

	daily := make([]ports.DailyRow, 0, len(snapshot.Daily))
	for _, day := range snapshot.Daily {
		daily = append(daily, ports.DailyRow{
			Day:     weather.FormatWeekday(day.Date, loc),
			High:    weather.FormatTemperature(day.High, units),
			Low:     weather.FormatTemperature(day.Low, units),
			IconURL: r.IconURL(day.Icon),
		})
	}
	surface.SetDailyRows(daily)

	hourly := make([]ports.HourlyRow, 0, len(snapshot.Hourly))
	for i, hour := range snapshot.Hourly {
		hourly = append(hourly, ports.HourlyRow{
			Hour:        weather.FormatHour(hour.Time, loc),
			Temperature: weather.FormatTemperature(hour.Temperature, units),
			IconURL:     r.IconURL(hour.Icon),
			Group:       GroupForRow(i, len(snapshot.Hourly), r.groups),
		})
	}
	surface.SetHourlyRows(hourly)
}
