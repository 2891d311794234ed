package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Submission targets.
const (
	TargetLog      = "log"
	TargetPostgres = "postgres"
)

// ErrMissingAPIKey is returned when no Places API key is configured.
var ErrMissingAPIKey = errors.New("config: GOOGLE_MAPS_API_KEY is required")

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Env              string        `mapstructure:"ENV"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
	ServerAddress    string        `mapstructure:"SERVER_ADDRESS"`
	GoogleMapsAPIKey string        `mapstructure:"GOOGLE_MAPS_API_KEY"`
	PlacesCountry    string        `mapstructure:"PLACES_COUNTRY"`
	PlacesTypes      string        `mapstructure:"PLACES_TYPES"`
	SubmissionTarget string        `mapstructure:"SUBMISSION_TARGET"`
	DBSource         string        `mapstructure:"DB_SOURCE"`
	SessionTTL       time.Duration `mapstructure:"SESSION_TTL"`
}

var keys = []string{
	"ENV", "LOG_LEVEL", "SERVER_ADDRESS", "GOOGLE_MAPS_API_KEY", "PLACES_COUNTRY",
	"PLACES_TYPES", "SUBMISSION_TARGET", "DB_SOURCE", "SESSION_TTL",
}

// LoadConfig reads app.env from path, if present, and lets environment
// variables override it. Settings only the HTTP server needs are checked
// separately by ValidateServer.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("PLACES_COUNTRY", "ca")
	v.SetDefault("PLACES_TYPES", "address")
	v.SetDefault("SUBMISSION_TARGET", TargetLog)
	v.SetDefault("SESSION_TTL", "30m")

	v.AutomaticEnv()
	// AutomaticEnv only covers keys viper already knows about.
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Types splits PLACES_TYPES into the widget's result-type list.
func (c Config) Types() []string {
	var out []string
	for _, t := range strings.Split(c.PlacesTypes, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ValidateServer checks the settings the address form server needs on top of
// what LoadConfig already checked.
func (c Config) ValidateServer() error {
	if strings.TrimSpace(c.GoogleMapsAPIKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func (c Config) validate() error {
	switch c.SubmissionTarget {
	case TargetLog:
	case TargetPostgres:
		if c.DBSource == "" {
			return fmt.Errorf("config: DB_SOURCE is required when SUBMISSION_TARGET=%s", TargetPostgres)
		}
	default:
		return fmt.Errorf("config: unknown SUBMISSION_TARGET %q", c.SubmissionTarget)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("config: SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	return nil
}
