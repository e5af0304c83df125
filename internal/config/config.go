// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port           string `mapstructure:"PORT"`
	Env            string `mapstructure:"APP_ENV"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`

	// CurrentUserID is the demo viewer identity: the user all
	// viewer-relative state (likes, unread flags, feed) belongs to.
	CurrentUserID uint `mapstructure:"CURRENT_USER_ID"`

	// SimulatedLatencyMS delays every store operation to exercise
	// asynchronous UI states. Zero disables the delay.
	SimulatedLatencyMS int `mapstructure:"SIMULATED_LATENCY_MS"`

	// FixturesDir points at seed data files; empty uses the embedded
	// fixtures.
	FixturesDir string `mapstructure:"FIXTURES_DIR"`

	// DemoUsers adds that many generated users (with posts and follows)
	// on top of the fixtures.
	DemoUsers int `mapstructure:"DEMO_USERS"`

	TracingEnabled      bool    `mapstructure:"TRACING_ENABLED"`
	TracingExporter     string  `mapstructure:"TRACING_EXPORTER"`
	TracingOTLPEndpoint string  `mapstructure:"TRACING_OTLP_ENDPOINT"`
	TracingSamplerRatio float64 `mapstructure:"TRACING_SAMPLER_RATIO"`
}

// SimulatedLatency returns the configured store delay as a duration.
func (c *Config) SimulatedLatency() time.Duration {
	return time.Duration(c.SimulatedLatencyMS) * time.Millisecond
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; defaults and environment cover everything.
	_ = viper.ReadInConfig()

	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	if env != "development" && env != "" {
		viper.SetConfigName("config." + env)
		if err := viper.MergeInConfig(); err == nil {
			log.Printf("Loaded profile-specific configuration: config.%s.yml", env)
		}
	}

	viper.SetDefault("PORT", "8480")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173")
	viper.SetDefault("CURRENT_USER_ID", 1)
	viper.SetDefault("SIMULATED_LATENCY_MS", 0)
	viper.SetDefault("FIXTURES_DIR", "")
	viper.SetDefault("DEMO_USERS", 0)
	viper.SetDefault("TRACING_ENABLED", false)
	viper.SetDefault("TRACING_EXPORTER", "stdout")
	viper.SetDefault("TRACING_OTLP_ENDPOINT", "localhost:4318")
	viper.SetDefault("TRACING_SAMPLER_RATIO", 1.0)

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present and sane.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.CurrentUserID == 0 {
		return errors.New("CURRENT_USER_ID must be a positive integer")
	}
	if c.SimulatedLatencyMS < 0 {
		return errors.New("SIMULATED_LATENCY_MS cannot be negative")
	}
	if c.DemoUsers < 0 {
		return errors.New("DEMO_USERS cannot be negative")
	}
	switch c.TracingExporter {
	case "", "stdout", "otlp":
	default:
		return fmt.Errorf("TRACING_EXPORTER must be \"stdout\" or \"otlp\", got %q", c.TracingExporter)
	}
	return nil
}
