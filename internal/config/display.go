package config

import (
	"log/slog"
	"strings"
)

// LogValue renders the configuration for structured logs with secrets masked
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Group("server",
			slog.Int("port", c.Server.Port)),
		slog.Group("weather",
			slog.String("apiKey", maskString(c.Weather.OpenWeatherMapKey)),
			slog.String("geocodingBaseURL", c.Weather.GeocodingBaseURL),
			slog.String("oneCallBaseURL", c.Weather.OpenWeatherMapBaseURL),
			slog.Int("requestTimeoutSeconds", c.Weather.RequestTimeoutSeconds),
			slog.Float64("rateLimitRPS", c.Weather.RateLimitRPS),
			slog.Bool("enableCache", c.Weather.EnableCache),
			slog.Bool("enableLogging", c.Weather.EnableLogging)),
		slog.Group("dashboard",
			slog.String("defaultLocation", c.Dashboard.DefaultLocation),
			slog.String("defaultUnits", c.Dashboard.DefaultUnits),
			slog.Int("hourlyGroups", c.Dashboard.HourlyGroups)),
		slog.Group("cache",
			slog.String("type", c.Cache.Type.String()),
			slog.String("redisAddr", c.Cache.Redis.Addr),
			slog.String("redisPassword", maskString(c.Cache.Redis.Password))),
	)
}

// maskString keeps the first and last two characters of longer secrets
func maskString(s string) string {
	switch {
	case s == "":
		return ""
	case len(s) <= 4:
		return strings.Repeat("*", len(s))
	default:
		return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
	}
}

var _ slog.LogValuer = (*Config)(nil)
