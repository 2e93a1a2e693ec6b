package loop

import (
	"time"

	"github.com/rs/zerolog"
)

type Option func(l *Loop)

// WithMode selects fixed or variable stepping.
func WithMode(mode Mode) Option {
	return func(l *Loop) {
		l.mode = mode
	}
}

// WithTickDuration sets the nominal tick length.
func WithTickDuration(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.tick = d
		}
	}
}

// WithClock replaces the wall clock, mostly for tests.
func WithClock(clock Clock) Option {
	return func(l *Loop) {
		if clock != nil {
			l.clock = clock
		}
	}
}

// WithInput sets the hook that samples input devices once per iteration.
func WithInput(fn func()) Option {
	return func(l *Loop) {
		if fn != nil {
			l.input = fn
		}
	}
}

// WithRender sets the hook that draws the current state once per iteration.
func WithRender(fn func()) Option {
	return func(l *Loop) {
		if fn != nil {
			l.render = fn
		}
	}
}

// WithMaxCatchUpSteps bounds fixed-step catch-up per iteration. Zero removes
// the bound.
func WithMaxCatchUpSteps(n int) Option {
	return func(l *Loop) {
		if n >= 0 {
			l.maxCatchUp = n
		}
	}
}

// WithFrameInterval makes Run sleep out the rest of each iteration so it
// takes at least d. Zero keeps Run spinning.
func WithFrameInterval(d time.Duration) Option {
	return func(l *Loop) {
		if d >= 0 {
			l.frameInterval = d
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}
