package anneal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/stringart/strategy"
)

// Option configures the annealing algorithm via functional arguments.
// An invalid Option is recorded and surfaced by New as
// strategy.ErrOptionViolation.
type Option func(*Options)

// Options holds the annealing parameters.
type Options struct {
	// MaxLines is the fixed length of the chain being optimized.
	MaxLines int

	// StartTemp and EndTemp bound the temperature schedule; the run stops
	// once the temperature is no longer above EndTemp.
	StartTemp float64
	EndTemp   float64

	// CoolingRate multiplies the temperature after every iteration, in (0,1).
	CoolingRate float64

	// LineDarkness is the darkness each line adds; pixels saturate at 255.
	LineDarkness uint32

	// ReportEvery emits a progress event every ReportEvery iterations.
	ReportEvery int

	// Seed selects a deterministic source; 0 ⇒ a fixed default seed.
	// Ignored when Rand is set.
	Seed int64

	// Rand, when non-nil, is used instead of Seed. It is consumed by every
	// Run and must not be shared across goroutines.
	Rand *rand.Rand

	err error
}

// DefaultOptions returns MaxLines=500, StartTemp=1000, EndTemp=1e-3,
// CoolingRate=0.99, LineDarkness=25, ReportEvery=10, Seed=0.
func DefaultOptions() Options {
	return Options{
		MaxLines:     500,
		StartTemp:    1000,
		EndTemp:      1e-3,
		CoolingRate:  0.99,
		LineDarkness: 25,
		ReportEvery:  10,
	}
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 1) }

// WithMaxLines sets the chain length; n < 0 is rejected.
func WithMaxLines(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxLines cannot be negative (%d)", strategy.ErrOptionViolation, n)
			return
		}
		o.MaxLines = n
	}
}

// WithStartTemp sets the initial temperature; t must be finite and > 0.
func WithStartTemp(t float64) Option {
	return func(o *Options) {
		if !positive(t) {
			o.err = fmt.Errorf("%w: StartTemp must be positive (%g)", strategy.ErrOptionViolation, t)
			return
		}
		o.StartTemp = t
	}
}

// WithEndTemp sets the stopping temperature; t must be finite and > 0.
func WithEndTemp(t float64) Option {
	return func(o *Options) {
		if !positive(t) {
			o.err = fmt.Errorf("%w: EndTemp must be positive (%g)", strategy.ErrOptionViolation, t)
			return
		}
		o.EndTemp = t
	}
}

// WithCoolingRate sets the cooling factor; r must lie in (0,1).
func WithCoolingRate(r float64) Option {
	return func(o *Options) {
		if !(r > 0 && r < 1) {
			o.err = fmt.Errorf("%w: CoolingRate must be in (0,1) (%g)", strategy.ErrOptionViolation, r)
			return
		}
		o.CoolingRate = r
	}
}

// WithLineDarkness sets the per-line darkness; d must be in [1,255].
func WithLineDarkness(d int) Option {
	return func(o *Options) {
		if d < 1 || d > 255 {
			o.err = fmt.Errorf("%w: LineDarkness must be in [1,255] (%d)", strategy.ErrOptionViolation, d)
			return
		}
		o.LineDarkness = uint32(d)
	}
}

// WithReportEvery sets the reporting period; k must be ≥ 1.
func WithReportEvery(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: ReportEvery must be ≥ 1 (%d)", strategy.ErrOptionViolation, k)
			return
		}
		o.ReportEvery = k
	}
}

// WithSeed selects a deterministic source.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies an explicit source; nil is rejected.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: Rand cannot be nil", strategy.ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}
