// Package config loads FitJourney settings from an optional YAML file, an
// optional .env file and FITJOURNEY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment override (FITJOURNEY_UI_BREAKPOINT).
	EnvPrefix = "FITJOURNEY"
	// FileName is the config file base name searched when no path is given.
	FileName = "fitjourney"
)

type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

type UIConfig struct {
	Breakpoint int  `mapstructure:"breakpoint"` // columns; narrower terminals get the mobile layout
	Mouse      bool `mapstructure:"mouse"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // json or text
	Output     string `mapstructure:"output"` // stderr, discard, or file path
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

type TracingConfig struct {
	Endpoint    string `mapstructure:"endpoint"` // empty disables export
	ServiceName string `mapstructure:"service_name"`
	Insecure    bool   `mapstructure:"insecure"`
}

// Load reads configuration. An empty path searches the working directory and
// the user config dir for fitjourney.yaml; a missing file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "fitjourney"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	applyOTELEnv(&cfg.Tracing)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.breakpoint", 110)
	v.SetDefault("ui.mouse", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output", defaultLogPath())
	v.SetDefault("logging.max_size", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age", 14)

	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.service_name", "")
	v.SetDefault("tracing.insecure", true)
}

// applyOTELEnv falls back to the standard OpenTelemetry variables when the
// tracing section leaves them unset.
func applyOTELEnv(t *TracingConfig) {
	if t.Endpoint == "" {
		t.Endpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	}
	if t.ServiceName == "" {
		t.ServiceName = os.Getenv("OTEL_SERVICE_NAME")
	}
	if t.ServiceName == "" {
		t.ServiceName = "fitjourney"
	}
}

// defaultLogPath keeps logs off the terminal, which the TUI owns.
func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "discard"
	}
	return filepath.Join(dir, "fitjourney", "fitjourney.log")
}
