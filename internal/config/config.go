package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/validation"
)

const (
	maxRedisDB               = 15
	maxCacheTTLMinutes       = 1440
	maxRequestTimeoutSeconds = 120
	maxPortNumber            = 65535
	maxHourlyGroups          = 21
)

// Config represents the application configuration structure
type Config struct {
	Server    ServerConfig    `split_words:"true"`
	Weather   WeatherConfig   `split_words:"true"`
	Dashboard DashboardConfig `split_words:"true"`
	Cache     CacheConfig     `split_words:"true"`
	LogLevel  string          `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type WeatherConfig struct {
	OpenWeatherMapKey     string  `envconfig:"OPENWEATHERMAP_API_KEY" required:"true"`
	GeocodingBaseURL      string  `envconfig:"OPENWEATHERMAP_GEO_BASE_URL" default:"http://api.openweathermap.org/geo/1.0"`
	OpenWeatherMapBaseURL string  `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	IconURLTemplate       string  `envconfig:"WEATHER_ICON_URL_TEMPLATE" default:"http://openweathermap.org/img/wn/%s@2x.png"`
	RequestTimeoutSeconds int     `envconfig:"WEATHER_REQUEST_TIMEOUT_SECONDS" default:"10"`
	RateLimitRPS          float64 `envconfig:"WEATHER_RATE_LIMIT_RPS" default:"1"`
	RateLimitBurst        int     `envconfig:"WEATHER_RATE_LIMIT_BURST" default:"5"`
	EnableCache           bool    `envconfig:"WEATHER_ENABLE_CACHE" default:"true"`
	GeocodeCacheTTL       int     `envconfig:"GEOCODE_CACHE_TTL_MINUTES" default:"60"`
	EnableLogging         bool    `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath           string  `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_requests.log"`
}

type DashboardConfig struct {
	DefaultLocation string `envconfig:"DASHBOARD_DEFAULT_LOCATION" default:"Rockville, Maryland"`
	DefaultUnits    string `envconfig:"DASHBOARD_DEFAULT_UNITS" default:"imperial"`
	HourlyGroups    int    `envconfig:"DASHBOARD_HOURLY_GROUPS" default:"4"`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type  CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	Redis RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Dashboard.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if w.OpenWeatherMapKey == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_KEY cannot be empty", nil)
	}
	if err := validateBaseURL("OPENWEATHERMAP_GEO_BASE_URL", w.GeocodingBaseURL); err != nil {
		return err
	}
	if err := validateBaseURL("OPENWEATHERMAP_API_BASE_URL", w.OpenWeatherMapBaseURL); err != nil {
		return err
	}
	if strings.Count(w.IconURLTemplate, "%s") != 1 {
		return errors.NewConfigurationError("WEATHER_ICON_URL_TEMPLATE must contain exactly one %s placeholder", nil)
	}
	if w.RequestTimeoutSeconds < 1 || w.RequestTimeoutSeconds > maxRequestTimeoutSeconds {
		return errors.NewConfigurationError("WEATHER_REQUEST_TIMEOUT_SECONDS must be between 1 and 120 seconds", nil)
	}
	if w.RateLimitRPS <= 0 {
		return errors.NewConfigurationError("WEATHER_RATE_LIMIT_RPS must be positive", nil)
	}
	if w.RateLimitBurst < 1 {
		return errors.NewConfigurationError("WEATHER_RATE_LIMIT_BURST must be at least 1", nil)
	}
	if w.GeocodeCacheTTL < 1 || w.GeocodeCacheTTL > maxCacheTTLMinutes {
		return errors.NewConfigurationError("GEOCODE_CACHE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	return nil
}

func validateBaseURL(key, value string) error {
	if value == "" {
		return errors.NewConfigurationError(key+" cannot be empty", nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(key+" must start with http:// or https://", nil)
	}
	return nil
}

func (d *DashboardConfig) Validate() error {
	if !validation.IsNotEmpty(d.DefaultLocation) {
		return errors.NewConfigurationError("DASHBOARD_DEFAULT_LOCATION cannot be empty", nil)
	}
	if !validation.IsValidUnits(d.DefaultUnits) {
		return errors.NewConfigurationError("DASHBOARD_DEFAULT_UNITS must be one of: imperial, metric", nil)
	}
	if d.HourlyGroups < 1 || d.HourlyGroups > maxHourlyGroups {
		return errors.NewConfigurationError(
			fmt.Sprintf("DASHBOARD_HOURLY_GROUPS must be between 1 and %d", maxHourlyGroups), nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}
