package greedy

import (
	"fmt"

	"github.com/katalvlaran/stringart/strategy"
)

// Option configures the greedy algorithm via functional arguments.
// An invalid Option is recorded and surfaced by New as
// strategy.ErrOptionViolation.
type Option func(*Options)

// Options holds the greedy parameters.
type Options struct {
	// MaxLines is the number of lines to commit. Zero draws nothing.
	MaxLines int

	// LineDarkness is the darkness a single line adds to each pixel
	// (saturated at 255 within one line).
	LineDarkness uint32

	// StartPin is the pin the thread starts from.
	StartPin int

	err error
}

// DefaultOptions returns MaxLines=200, LineDarkness=25, StartPin=0.
func DefaultOptions() Options {
	return Options{MaxLines: 200, LineDarkness: 25}
}

// WithMaxLines sets the number of lines; n < 0 is rejected.
func WithMaxLines(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxLines cannot be negative (%d)", strategy.ErrOptionViolation, n)
			return
		}
		o.MaxLines = n
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

// WithStartPin sets the starting pin; p < 0 is rejected here and p ≥ N
// at Run time.
func WithStartPin(p int) Option {
	return func(o *Options) {
		if p < 0 {
			o.err = fmt.Errorf("%w: StartPin cannot be negative (%d)", strategy.ErrOptionViolation, p)
			return
		}
		o.StartPin = p
	}
}
