package reporter

import (
	"time"

	"github.com/AndreyAkinshin/conreport/pkg/console"
)

// Option configures a ConsoleReporter.
type Option func(*options)

type options struct {
	strategy console.Strategy
	coverage *Coverage
	now      func() time.Time
}

// WithStrategy selects the rendering strategy explicitly.
func WithStrategy(s console.Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithCapabilities selects the rendering strategy from host capabilities.
func WithCapabilities(caps console.Capabilities) Option {
	return func(o *options) {
		o.strategy = console.Detect(caps)
	}
}

// WithCoverage enables the coverage check performed at run end.
func WithCoverage(cov Coverage) Option {
	return func(o *options) {
		o.coverage = &cov
	}
}

// WithClock replaces time.Now, used for run durations.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
