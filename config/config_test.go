package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, time.Second/60, cfg.TickDuration())
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("KORIN_TICK_RATE", "30")
	t.Setenv("KORIN_STEP_MODE", "variable")
	t.Setenv("KORIN_MAX_CATCH_UP_STEPS", "0")
	t.Setenv("KORIN_LOG_LEVEL", "debug")
	t.Setenv("KORIN_HEADLESS", "true")
	t.Setenv("KORIN_STATSD_ADDRESS", "localhost:8125")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30.0, cfg.TickRate)
	assert.Equal(t, "variable", cfg.StepMode)
	assert.Equal(t, 0, cfg.MaxCatchUpSteps)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.True(t, cfg.Headless)
	assert.Equal(t, "localhost:8125", cfg.StatsdAddress)
	assert.Equal(t, DefaultMaxEntities, cfg.MaxEntities, "unset values keep their defaults")
}

func TestLoadFromFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "korin.config")
	require.NoError(t, os.WriteFile(path, []byte("KORIN_TICK_RATE=120\nKORIN_MAX_ENTITIES=10\n"), 0o600))
	t.Setenv("KORIN_MAX_ENTITIES", "20")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 120.0, cfg.TickRate)
	assert.Equal(t, 20, cfg.MaxEntities, "environment overrides the file")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.config"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("KORIN_STEP_MODE", "sometimes")
	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }, true},
		{"bad step mode", func(c *Config) { c.StepMode = "turbo" }, true},
		{"upper case step mode", func(c *Config) { c.StepMode = "Variable" }, false},
		{"negative catch-up", func(c *Config) { c.MaxCatchUpSteps = -1 }, true},
		{"no entities", func(c *Config) { c.MaxEntities = 0 }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"negative frame interval", func(c *Config) { c.FrameIntervalMS = -5 }, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScreenDimensions(t *testing.T) {
	w, h := GetScreenDimensions()
	ww, wh := GetWindowSize()
	assert.Equal(t, w*WindowScale, ww)
	assert.Equal(t, h*WindowScale, wh)
	assert.Equal(t, 16*time.Millisecond, Default().FrameInterval())
}
