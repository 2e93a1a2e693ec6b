// Package loop drives wall-clock time into simulation ticks.
//
// Two stepping disciplines are available and one is chosen per loop:
//
//   - FixedStep accumulates real elapsed time as lag and runs as many
//     constant-size simulation steps as the lag allows before rendering.
//   - VariableStep runs exactly one simulation step per iteration using the
//     previous iteration's measured delta, clamped after long pauses.
package loop

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"ebiten-korin/telemetry"
)

// Mode selects the stepping discipline.
type Mode int

const (
	FixedStep Mode = iota
	VariableStep
)

func (m Mode) String() string {
	switch m {
	case FixedStep:
		return "fixed"
	case VariableStep:
		return "variable"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "fixed" or "variable" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed", "":
		return FixedStep, nil
	case "variable":
		return VariableStep, nil
	default:
		return FixedStep, eris.Errorf("unknown step mode %q", s)
	}
}

const (
	// DefaultTickDuration is the nominal length of one tick.
	DefaultTickDuration = time.Second / 60

	// DefaultMaxCatchUpSteps bounds the simulation steps run in one fixed-step
	// iteration. Lag past the bound is dropped.
	DefaultMaxCatchUpSteps = 5

	// maxVariableDelta is the largest delta a variable step accepts. Longer
	// deltas, e.g. after a suspend or a debugger pause, become one nominal tick.
	maxVariableDelta = time.Second
)

// Simulator advances the simulation by one step of dt seconds.
type Simulator interface {
	Dispatch(dt float64)
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Loop runs input sampling, simulation and rendering once per iteration.
//
// A Loop is not safe for concurrent use; it runs on the same goroutine that
// mutates the world.
type Loop struct {
	sim    Simulator
	mode   Mode
	tick   time.Duration
	clock  Clock
	input  func()
	render func()
	logger zerolog.Logger

	maxCatchUp    int
	frameInterval time.Duration

	lastTime      time.Time
	lag           time.Duration
	variableDelta time.Duration
	ticks         uint64
}

// New creates a loop that steps sim.
func New(sim Simulator, opts ...Option) *Loop {
	l := &Loop{
		sim:        sim,
		mode:       FixedStep,
		tick:       DefaultTickDuration,
		clock:      systemClock{},
		input:      func() {},
		render:     func() {},
		logger:     zerolog.Nop(),
		maxCatchUp: DefaultMaxCatchUpSteps,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.Reset()
	return l
}

// Reset restarts timing from the current clock reading and clears lag.
func (l *Loop) Reset() {
	l.lastTime = l.clock.Now()
	l.lag = 0
	l.variableDelta = l.tick
}

// Mode returns the stepping discipline.
func (l *Loop) Mode() Mode { return l.mode }

// TickDuration returns the nominal tick length.
func (l *Loop) TickDuration() time.Duration { return l.tick }

// Lag returns the real time not yet simulated. It is always zero in
// variable-step mode.
func (l *Loop) Lag() time.Duration { return l.lag }

// Ticks returns the number of simulation steps run so far.
func (l *Loop) Ticks() uint64 { return l.ticks }

// Step runs one wall-clock iteration: input, simulation, render.
func (l *Loop) Step() {
	l.Advance()
	l.RenderFrame()
}

// Advance samples input and runs the simulation steps owed for this
// iteration without rendering. It returns the number of steps run. Hosts that
// render on their own schedule call Advance and RenderFrame separately.
func (l *Loop) Advance() int {
	if l.mode == VariableStep {
		return l.advanceVariable()
	}
	return l.advanceFixed()
}

// RenderFrame runs the render hook.
func (l *Loop) RenderFrame() {
	start := time.Now()
	l.render()
	telemetry.EmitTickStat(start, "render")
}

// Run iterates until ctx is done and returns the context's error.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info().
		Str("mode", l.mode.String()).
		Dur("tick", l.tick).
		Int("max_catch_up_steps", l.maxCatchUp).
		Msg("Starting loop")
	l.Reset()
	for {
		select {
		case <-ctx.Done():
			l.logger.Info().Uint64("ticks", l.ticks).Msg("Loop stopped")
			return ctx.Err()
		default:
		}
		start := l.clock.Now()
		l.Step()
		if l.frameInterval > 0 {
			if rest := l.frameInterval - l.clock.Now().Sub(start); rest > 0 {
				time.Sleep(rest)
			}
		}
	}
}

func (l *Loop) advanceFixed() int {
	now := l.clock.Now()
	delta := now.Sub(l.lastTime)
	l.lastTime = now
	l.lag += delta

	l.sampleInput()

	steps := 0
	for l.lag >= l.tick {
		if l.maxCatchUp > 0 && steps >= l.maxCatchUp {
			dropped := l.lag - l.lag%l.tick
			l.lag %= l.tick
			l.logger.Warn().
				Int("steps", steps).
				Dur("dropped", dropped).
				Msg("Simulation fell behind, dropping lag")
			break
		}
		l.simulate(l.tick)
		l.lag -= l.tick
		steps++
	}
	telemetry.EmitCatchUp(steps, l.lag)
	return steps
}

func (l *Loop) advanceVariable() int {
	l.sampleInput()
	l.simulate(l.variableDelta)

	now := l.clock.Now()
	delta := now.Sub(l.lastTime)
	l.lastTime = now
	if delta > maxVariableDelta {
		l.logger.Debug().Dur("delta", delta).Msg("Clamping long frame to one tick")
		delta = l.tick
	}
	l.variableDelta = delta
	return 1
}

func (l *Loop) sampleInput() {
	start := time.Now()
	l.input()
	telemetry.EmitTickStat(start, "input")
}

func (l *Loop) simulate(step time.Duration) {
	start := time.Now()
	l.sim.Dispatch(step.Seconds())
	l.ticks++
	telemetry.EmitTickStat(start, "simulate")
}
