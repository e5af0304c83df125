package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		Port:            "8480",
		Env:             "development",
		CurrentUserID:   1,
		TracingExporter: "stdout",
	}
}

func TestValidate(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())

	t.Run("missing port", func(t *testing.T) {
		cfg := validConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing viewer", func(t *testing.T) {
		cfg := validConfig()
		cfg.CurrentUserID = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative latency", func(t *testing.T) {
		cfg := validConfig()
		cfg.SimulatedLatencyMS = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative demo users", func(t *testing.T) {
		cfg := validConfig()
		cfg.DemoUsers = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown tracing exporter", func(t *testing.T) {
		cfg := validConfig()
		cfg.TracingExporter = "jaeger"
		assert.Error(t, cfg.Validate())
	})
}

func TestSimulatedLatency(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, time.Duration(0), cfg.SimulatedLatency())

	cfg.SimulatedLatencyMS = 250
	assert.Equal(t, 250*time.Millisecond, cfg.SimulatedLatency())
}
