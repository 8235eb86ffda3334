// Package strategy defines the contract shared by every stringart
// synthesis algorithm: a Strategy turns a target image and a pin set into
// a lazy, finite stream of progress Events.
//
// Streaming model:
//
//	Run returns an iter.Seq[Event]. Nothing is computed until the caller
//	ranges over it; every Event is a suspension point, and state only
//	changes between two Events. Breaking out of the range loop or
//	cancelling the context stops the computation at the next suspension
//	point. A stream is single-use: ranging twice restarts nothing useful
//	and is not supported.
//
// Events own their buffers: canvases and sequences attached to an Event
// are copies and may be retained by the consumer.
package strategy

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/stringart/canvas"
	"github.com/katalvlaran/stringart/chords"
	"github.com/katalvlaran/stringart/pins"
)

// Sentinel errors for strategy input validation.
var (
	// ErrNilTarget is returned when the target image is nil or malformed.
	ErrNilTarget = errors.New("strategy: target image is nil or malformed")

	// ErrTooFewPins is returned when fewer than two pins are supplied.
	ErrTooFewPins = errors.New("strategy: at least two pins are required")

	// ErrPinsOutOfBounds is returned when a pin lies outside the target.
	ErrPinsOutOfBounds = errors.New("strategy: pin outside target bounds")

	// ErrOptionViolation is returned by constructors when an Option is invalid.
	ErrOptionViolation = errors.New("strategy: invalid option supplied")
)

// Strategy is one synthesis algorithm.
type Strategy interface {
	// Name returns the registry name of the algorithm.
	Name() string

	// Run validates its inputs and returns the event stream. Validation
	// failures are returned immediately; nothing runs before the first pull.
	Run(ctx context.Context, target *canvas.Gray, set pins.PinSet) (iter.Seq[Event], error)
}

// Event is one progress snapshot.
//
// Not every field is set on every event; see each algorithm for which
// fields it fills. Progress is always set and never decreases within a
// stream.
type Event struct {
	// Status is a human-readable description of the current stage.
	Status string

	// Progress is the completion fraction in [0,1].
	Progress float64

	// Canvas is the display rendering (darker = more string).
	Canvas *canvas.Gray

	// Residual is the remaining darkness to cover (greedy only).
	Residual *canvas.Gray

	// Heatmap holds one weight per chord, aligned with Chords (relaxation only).
	Heatmap []float64

	// Chords is the catalog matching Heatmap (relaxation only).
	Chords []chords.Chord

	// LineNum is the 1-based index of the line just drawn. For annealing it
	// is the iteration count.
	LineNum int

	// Segment is the chord just committed; valid when HasSegment is true.
	Segment    chords.Segment
	HasSegment bool

	// Failed marks a terminal failure event; Err carries the cause.
	Failed bool
	Err    error

	// Error is the current squared reconstruction error, when known.
	Error float64

	// Temperature, Accepted and Iteration describe annealing state.
	Temperature float64
	Accepted    bool
	Iteration   int

	// Sequence is the complete result, attached to the final event.
	Sequence chords.Sequence
}

// Validate checks a target and pin set against each other and returns the
// inverted target (darkness) every algorithm works on.
func Validate(target *canvas.Gray, set pins.PinSet) ([]int32, error) {
	if target == nil || target.Validate() != nil {
		return nil, ErrNilTarget
	}
	if len(set) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPins, len(set))
	}
	if !set.InBounds(target.Height, target.Width) {
		return nil, fmt.Errorf("%w: %dx%d image", ErrPinsOutOfBounds, target.Height, target.Width)
	}

	return canvas.Darkness(target), nil
}

// Outcome summarizes a drained stream.
type Outcome struct {
	Events   []Event
	Sequence chords.Sequence
	Final    Event
	Failed   bool
	Err      error
}

// Drain pulls every event from seq and collects the result. The sequence
// is taken from the last event that carries one; if none does, it is
// rebuilt from the per-line segments.
func Drain(seq iter.Seq[Event]) Outcome {
	var (
		out     Outcome
		lines   chords.Sequence
		gotFull bool
	)
	for ev := range seq {
		out.Events = append(out.Events, ev)
		if ev.HasSegment {
			lines = append(lines, ev.Segment)
		}
		if ev.Sequence != nil {
			out.Sequence = ev.Sequence
			gotFull = true
		}
		if ev.Failed {
			out.Failed = true
			out.Err = ev.Err
		}
	}
	if len(out.Events) > 0 {
		out.Final = out.Events[len(out.Events)-1]
	}
	if !gotFull {
		out.Sequence = lines
	}

	return out
}

// Canceled reports whether ctx has been canceled or has expired.
func Canceled(ctx context.Context) bool {
	return ctx != nil && ctx.Err() != nil
}
