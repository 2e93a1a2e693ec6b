package config

import (
	"os"
	"strings"
	"time"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

const (
	DefaultTickRate        = 60
	DefaultStepMode        = "fixed"
	DefaultMaxCatchUpSteps = 5
	DefaultMaxEntities     = 5000
	DefaultLogLevel        = "info"
)

// Config holds the runtime settings. Values come from the defaults, then an
// optional key=value file, then KORIN_* environment variables.
type Config struct {
	// Simulation ticks per second
	TickRate float64 `config:"KORIN_TICK_RATE"`
	// "fixed" or "variable"
	StepMode string `config:"KORIN_STEP_MODE"`
	// Steps a fixed-step iteration may run to catch up; 0 is unbounded
	MaxCatchUpSteps int `config:"KORIN_MAX_CATCH_UP_STEPS"`
	MaxEntities     int `config:"KORIN_MAX_ENTITIES"`

	LogLevel  string `config:"KORIN_LOG_LEVEL"`
	PrettyLog bool   `config:"KORIN_PRETTY_LOG"`

	// host:port of a statsd agent; empty disables metrics
	StatsdAddress string `config:"KORIN_STATSD_ADDRESS"`

	// Directory of JSON entity templates; empty uses the bundled ones
	TemplateDir string `config:"KORIN_TEMPLATE_DIR"`
	// Templates spawned at startup
	SpawnTemplates []string `config:"KORIN_SPAWN"`

	Headless bool `config:"KORIN_HEADLESS"`
	// Sleep between headless iterations, in milliseconds
	FrameIntervalMS int `config:"KORIN_FRAME_INTERVAL_MS"`
}

// Default returns the configuration used when nothing is overridden
func Default() Config {
	return Config{
		TickRate:        DefaultTickRate,
		StepMode:        DefaultStepMode,
		MaxCatchUpSteps: DefaultMaxCatchUpSteps,
		MaxEntities:     DefaultMaxEntities,
		LogLevel:        DefaultLogLevel,
		SpawnTemplates:  []string{"player", "crate", "drifter"},
		FrameIntervalMS: 16,
	}
}

// Load reads the configuration. path may be empty; a named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	builder := jlconfig.FromEnv()
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return cfg, eris.Wrapf(err, "config file %s", path)
		}
		builder = jlconfig.From(path).FromEnv()
	}
	if err := builder.To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "failed to parse config")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, eris.Wrap(err, "failed to validate config")
	}
	return cfg, nil
}

// Validate checks that every setting is usable
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return eris.Errorf("tick rate must be positive, got %v", c.TickRate)
	}
	switch strings.ToLower(c.StepMode) {
	case "fixed", "variable":
	default:
		return eris.Errorf("step mode must be fixed or variable, got %q", c.StepMode)
	}
	if c.MaxCatchUpSteps < 0 {
		return eris.Errorf("max catch-up steps cannot be negative, got %d", c.MaxCatchUpSteps)
	}
	if c.MaxEntities <= 0 {
		return eris.Errorf("max entities must be positive, got %d", c.MaxEntities)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return eris.Wrapf(err, "log level %q", c.LogLevel)
	}
	if c.FrameIntervalMS < 0 {
		return eris.Errorf("frame interval cannot be negative, got %d", c.FrameIntervalMS)
	}
	return nil
}

// TickDuration returns the length of one simulation tick
func (c Config) TickDuration() time.Duration {
	return time.Duration(float64(time.Second) / c.TickRate)
}

// FrameInterval returns the sleep between headless iterations
func (c Config) FrameInterval() time.Duration {
	return time.Duration(c.FrameIntervalMS) * time.Millisecond
}

// Level returns the parsed log level, or info when it does not parse
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
