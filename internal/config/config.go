package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"

	"auraweather.app/pkg/errors"
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
	Weather  WeatherConfig  `split_words:"true"`
	Cache    CacheConfig    `split_words:"true"`
	App      AppConfig      `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080" validate:"gte=1,lte=65535"`
}

// AppConfig seeds the state store at process start.
type AppConfig struct {
	DefaultCity        string `envconfig:"APP_DEFAULT_CITY" default:"New Delhi" validate:"required"`
	DefaultHorizonDays int    `envconfig:"APP_DEFAULT_HORIZON_DAYS" default:"3" validate:"gte=1"`
	LogLevel           string `envconfig:"APP_LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
}

// ProviderMode selects between the live providers and canned demo data.
type ProviderMode int

const (
	ProviderModeUnknown ProviderMode = iota
	ProviderModeLive
	ProviderModeDemo
)

// String returns the string representation of provider mode
func (m ProviderMode) String() string {
	switch m {
	case ProviderModeLive:
		return "live"
	case ProviderModeDemo:
		return "demo"
	default:
		return "unknown"
	}
}

// IsValid checks if the provider mode is valid
func (m ProviderMode) IsValid() bool {
	return m == ProviderModeLive || m == ProviderModeDemo
}

// ProviderModeFromString converts string to ProviderMode enum
func ProviderModeFromString(s string) ProviderMode {
	switch s {
	case "live":
		return ProviderModeLive
	case "demo":
		return ProviderModeDemo
	default:
		return ProviderModeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (m *ProviderMode) UnmarshalText(text []byte) error {
	*m = ProviderModeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (m ProviderMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

type WeatherConfig struct {
	APIKey           string       `envconfig:"WEATHER_API_KEY"`
	BaseURL          string       `envconfig:"WEATHER_API_BASE_URL" default:"https://api.weatherapi.com/v1" validate:"url"`
	OpenMeteoBaseURL string       `envconfig:"OPENMETEO_BASE_URL" default:"https://api.open-meteo.com/v1" validate:"url"`
	Mode             ProviderMode `envconfig:"WEATHER_PROVIDER_MODE" default:"live"`
	NativeHorizon    int          `envconfig:"WEATHER_NATIVE_HORIZON_DAYS" default:"3" validate:"gte=1"`
	AllowedHorizons  []int        `envconfig:"WEATHER_ALLOWED_HORIZONS" default:"3,5,7" validate:"min=1"`
	EnableCache      bool         `envconfig:"WEATHER_ENABLE_CACHE" default:"true"`
	CacheTTLMinutes  int          `envconfig:"WEATHER_CACHE_TTL_MINUTES" default:"10" validate:"gte=1,lte=1440"`
	RateLimitRPS     float64      `envconfig:"WEATHER_RATE_LIMIT_RPS" default:"0"`
	RateLimitBurst   int          `envconfig:"WEATHER_RATE_LIMIT_BURST" default:"1" validate:"gte=1"`
	DemoDelayMs      int          `envconfig:"WEATHER_DEMO_DELAY_MS" default:"300" validate:"gte=0"`
}

// DatabaseDriver selects the persistence backend for preferences and
// favorites.
type DatabaseDriver string

const (
	DriverSQLite   DatabaseDriver = "sqlite"
	DriverPostgres DatabaseDriver = "postgres"
)

type DatabaseConfig struct {
	Driver   DatabaseDriver `envconfig:"DB_DRIVER" default:"sqlite" validate:"oneof=sqlite postgres"`
	Path     string         `envconfig:"DB_PATH" default:"aura.db"`
	Host     string         `envconfig:"DB_HOST" default:"localhost"`
	Port     int            `envconfig:"DB_PORT" default:"5432" validate:"gte=1,lte=65535"`
	User     string         `envconfig:"DB_USER" default:"postgres"`
	Password string         `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string         `envconfig:"DB_NAME" default:"auraweather"`
	SSLMode  string         `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
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
	DB           int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0,lte=15"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5" validate:"gte=1"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3" validate:"gte=1"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3" validate:"gte=1"`
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
	if err := validator.New().Struct(c); err != nil {
		return errors.NewConfigurationError("invalid configuration", err)
	}

	if !c.Weather.Mode.IsValid() {
		return errors.NewConfigurationError("weather provider mode must be live or demo", nil)
	}
	if c.Weather.Mode == ProviderModeLive && c.Weather.APIKey == "" {
		return errors.NewConfigurationError("WEATHER_API_KEY is required in live mode", nil)
	}
	if !c.Cache.Type.IsValid() {
		return errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", c.Cache.Type.String()), nil)
	}

	defaultHorizonAllowed := false
	for _, d := range c.Weather.AllowedHorizons {
		if d == c.App.DefaultHorizonDays {
			defaultHorizonAllowed = true
			break
		}
	}
	if !defaultHorizonAllowed {
		return errors.NewConfigurationError(
			fmt.Sprintf("default horizon %d is not in the allowed set", c.App.DefaultHorizonDays), nil)
	}

	return nil
}
