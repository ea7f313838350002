package weather

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// roundHalfUp rounds .5 toward positive infinity, so -2.5 becomes -2
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// FormatTemperature renders a temperature such as "22 °F"
func FormatTemperature(v float64, units Units) string {
	return fmt.Sprintf("%d °%s", roundHalfUp(v), units.TemperatureSymbol())
}

// FormatPercent renders a 0-100 value such as "65%"
func FormatPercent(v float64) string {
	return fmt.Sprintf("%d%%", roundHalfUp(v))
}

// FormatProbability renders a 0-1 probability as a percentage
func FormatProbability(p float64) string {
	return FormatPercent(p * 100)
}

// FormatWindSpeed renders the speed as reported with the unit system's suffix
func FormatWindSpeed(v float64, units Units) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + units.SpeedSuffix()
}

// FormatLongDate renders e.g. "Friday, April 29th, 2022"
func FormatLongDate(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	return fmt.Sprintf("%s, %s %s, %d", t.Weekday(), t.Month(), ordinal(t.Day()), t.Year())
}

// FormatClock renders e.g. "3:04 PM"
func FormatClock(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("3:04 PM")
}

// FormatWeekday renders e.g. "Monday"
func FormatWeekday(t time.Time, loc *time.Location) string {
	return t.In(loc).Weekday().String()
}

// FormatHour renders e.g. "3 PM", "12 noon" or "12 midnight"
func FormatHour(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	switch t.Hour() {
	case 0:
		return "12 midnight"
	case 12:
		return "12 noon"
	default:
		return t.Format("3 PM")
	}
}

func ordinal(day int) string {
	suffix := "th"
	if day%100 < 11 || day%100 > 13 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(day) + suffix
}
