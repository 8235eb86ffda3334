// Package greedy implements greedy residual minimization for string art.
//
// Algorithm Outline:
//  1. Rasterize every chord once (canvas.LineCache).
//  2. Start at StartPin with an empty canvas and an empty sequence.
//  3. For each step, score every pin ≠ current by the squared error
//     Σ(darkness − (canvas + line))² and keep the first minimum found in
//     pin order.
//  4. Commit: append the segment, add its line to the canvas, move to the
//     chosen pin, emit one Event.
//  5. Stop after MaxLines steps.
//
// The squared error is updated incrementally: adding darkness d on a line
// changes the error only on the line's pixels, by Σ d² − 2d(b−c). This is
// exactly the full-image error, so the argmin and its tie-breaks are the
// same as a from-scratch evaluation.
//
// Complexity: O(MaxLines · N · P) for N pins and P pixels per line,
// plus O(N² · P) to build the cache. Deterministic.
package greedy

import (
	"context"
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/stringart/canvas"
	"github.com/katalvlaran/stringart/chords"
	"github.com/katalvlaran/stringart/internal/logging"
	"github.com/katalvlaran/stringart/pins"
	"github.com/katalvlaran/stringart/strategy"
)

// Name is the registry name of the greedy strategy.
const Name = "greedy"

// Greedy is the greedy residual strategy.
type Greedy struct {
	opts Options
}

// New builds a Greedy strategy from DefaultOptions and opts.
func New(opts ...Option) (*Greedy, error) {
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
		if o.err != nil {
			return nil, o.err
		}
	}

	return &Greedy{opts: o}, nil
}

// Name implements strategy.Strategy.
func (g *Greedy) Name() string { return Name }

// Options returns the effective parameters.
func (g *Greedy) Options() Options { return g.opts }

// Run implements strategy.Strategy.
//
// Every event carries LineNum, Segment, Canvas, Residual, Error and
// Progress = LineNum/MaxLines. The last line event also carries the full
// Sequence.
func (g *Greedy) Run(ctx context.Context, target *canvas.Gray, set pins.PinSet) (iter.Seq[strategy.Event], error) {
	darkness, err := strategy.Validate(target, set)
	if err != nil {
		return nil, err
	}
	if g.opts.StartPin >= len(set) {
		return nil, fmt.Errorf("%w: StartPin %d with %d pins", strategy.ErrOptionViolation, g.opts.StartPin, len(set))
	}
	if ctx == nil {
		ctx = context.Background()
	}
	opts := g.opts

	return func(yield func(strategy.Event) bool) {
		run(ctx, target, set, darkness, opts, yield)
	}, nil
}

// run is the body of the greedy stream.
func run(ctx context.Context, target *canvas.Gray, set pins.PinSet, darkness []int32, opts Options, yield func(strategy.Event) bool) {
	log := logging.For(Name)
	log.Debug("greedy run started",
		"pins", len(set), "width", target.Width, "height", target.Height,
		"max_lines", opts.MaxLines, "line_darkness", opts.LineDarkness)

	cache, err := canvas.NewLineCache(set, target.Width, target.Height)
	if err != nil {
		yield(strategy.Event{Status: err.Error(), Progress: 1, Failed: true, Err: err})
		return
	}
	acc, err := canvas.New(target.Width, target.Height)
	if err != nil {
		yield(strategy.Event{Status: err.Error(), Progress: 1, Failed: true, Err: err})
		return
	}
	current, _ := acc.SquaredError(darkness)

	var (
		n        = len(set)
		d        = int64(opts.LineDarkness)
		cur      = opts.StartPin
		seq      = make(chords.Sequence, 0, opts.MaxLines)
		line     int
		next     int
		best     int
		bestErr  int64
		score    int64
		bestPix  []int32
		pixels   []int32
		accVals  = acc.Values()
		residual *canvas.Gray
	)
	for line = 1; line <= opts.MaxLines; line++ {
		if strategy.Canceled(ctx) {
			log.Debug("greedy run canceled", "lines", len(seq))
			return
		}

		best, bestErr, bestPix = -1, math.MaxInt64, nil
		for next = 0; next < n; next++ {
			if next == cur {
				continue
			}
			pixels = cache.Pixels(chords.Canonical(cur, next))
			score = current + lineDelta(pixels, darkness, accVals, d)
			if score < bestErr {
				best, bestErr, bestPix = next, score, pixels
			}
		}
		if best < 0 {
			break
		}

		acc.AddPixels(bestPix, opts.LineDarkness)
		current = bestErr
		seg := chords.Segment{From: cur, To: best}
		seq = append(seq, seg)
		cur = best

		residual, _ = acc.Residual(darkness)
		ev := strategy.Event{
			Status:     fmt.Sprintf("Drawing line %d/%d", line, opts.MaxLines),
			Progress:   float64(line) / float64(opts.MaxLines),
			Canvas:     acc.Display(),
			Residual:   residual,
			LineNum:    line,
			Segment:    seg,
			HasSegment: true,
			Error:      float64(current),
		}
		if line == opts.MaxLines {
			ev.Sequence = seq.Clone()
		}
		if !yield(ev) {
			return
		}
	}

	log.Info("greedy run finished", "lines", len(seq), "error", current)
}

// lineDelta returns the change in squared error when darkness d is added
// on pixels: Σ (b − c − d)² − (b − c)² = Σ d² − 2d(b − c).
func lineDelta(pixels []int32, darkness []int32, acc []uint32, d int64) int64 {
	var (
		delta int64
		p     int32
	)
	for _, p = range pixels {
		delta += d*d - 2*d*(int64(darkness[p])-int64(acc[p]))
	}

	return delta
}
