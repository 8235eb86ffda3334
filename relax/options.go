package relax

import (
	"fmt"

	"github.com/katalvlaran/stringart/strategy"
)

// Option configures the relaxation algorithm via functional arguments.
// An invalid Option is recorded and surfaced by New as
// strategy.ErrOptionViolation.
type Option func(*Options)

// Options holds the relaxation parameters.
type Options struct {
	// ReplayDarkness is the darkness each wrap adds when the final
	// sequence is replayed onto the display canvas.
	ReplayDarkness uint32

	// SolveDarkness is the value every rasterized pixel carries in the
	// contribution matrix. With 1, a weight reads as "wraps needed".
	SolveDarkness float64

	// MaxIter bounds the solver's passive-set solves; 0 ⇒ 3·chords.
	MaxIter int

	// Tolerance is the solver's gradient threshold; 0 ⇒ automatic.
	Tolerance float64

	err error
}

// DefaultOptions returns ReplayDarkness=25, SolveDarkness=1 and automatic
// solver limits.
func DefaultOptions() Options {
	return Options{ReplayDarkness: 25, SolveDarkness: 1}
}

// WithReplayDarkness sets the replay darkness; d must be in [1,255].
func WithReplayDarkness(d int) Option {
	return func(o *Options) {
		if d < 1 || d > 255 {
			o.err = fmt.Errorf("%w: ReplayDarkness must be in [1,255] (%d)", strategy.ErrOptionViolation, d)
			return
		}
		o.ReplayDarkness = uint32(d)
	}
}

// WithSolveDarkness sets the contribution value; v must be > 0.
func WithSolveDarkness(v float64) Option {
	return func(o *Options) {
		if !(v > 0) {
			o.err = fmt.Errorf("%w: SolveDarkness must be > 0 (%g)", strategy.ErrOptionViolation, v)
			return
		}
		o.SolveDarkness = v
	}
}

// WithMaxIter bounds the solver; n < 0 is rejected.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIter cannot be negative (%d)", strategy.ErrOptionViolation, n)
			return
		}
		o.MaxIter = n
	}
}

// WithTolerance sets the solver's gradient threshold; tol < 0 is rejected.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol < 0 {
			o.err = fmt.Errorf("%w: Tolerance cannot be negative (%g)", strategy.ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}
