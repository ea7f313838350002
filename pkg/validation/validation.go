package validation

import (
	"strings"
)

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidUnits validates a unit system name
func IsValidUnits(units string) bool {
	return units == "imperial" || units == "metric"
}

// IsValidView validates a forecast view name
func IsValidView(view string) bool {
	return view == "daily" || view == "hourly"
}

// IsValidDirection validates an hourly pagination direction
func IsValidDirection(direction string) bool {
	return direction == "previous" || direction == "next"
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// NormalizeKey lowercases and collapses whitespace so equivalent searches share a cache key
func NormalizeKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
