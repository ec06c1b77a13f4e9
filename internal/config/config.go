// Package config provides configuration management for replace-errors.
//
// Configuration is loaded from:
// 1. config.yaml file (optional)
// 2. Environment variables (LOG_LEVEL, LOG_FORMAT, REPORT_FAIL_ON_ERRORS)
// 3. Default values
//
// The scan root, file suffix and text encoding are fixed and are not part
// of the configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration structure.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Report ReportConfig `mapstructure:"report"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// ReportConfig controls how the run outcome is surfaced.
type ReportConfig struct {
	// FailOnErrors makes the process exit non-zero when any file failed.
	FailOnErrors bool `mapstructure:"fail_on_errors"`
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// log.level → LOG_LEVEL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks for configuration errors.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	if c.Log.Level == "" {
		return fmt.Errorf("log.level must not be empty")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Log
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

	// Report
	v.SetDefault("report.fail_on_errors", false)
}
