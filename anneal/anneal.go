// Package anneal implements simulated annealing over fixed-length string
// chains.
//
// State is a connected walk of MaxLines segments over the pins, started as
// a random walk that never stays on a pin. Each iteration:
//  1. Pick a random segment and give it a new random destination, distinct
//     from its origin and from the destination of the following segment.
//     The following segment starts from the new destination, so the chain
//     stays connected and no segment joins a pin to itself.
//  2. Render the whole candidate chain (8-bit, saturating at 255) and score
//     it by squared error against the inverted target.
//  3. Accept if the error drops, otherwise with probability exp(−Δ/T).
//  4. T ← T·CoolingRate.
//
// The run stops once T ≤ EndTemp, which takes
// ⌈log(EndTemp/StartTemp) / log(CoolingRate)⌉ iterations.
//
// Randomness comes only from Options.Rand or a source seeded from
// Options.Seed; identical seeds give identical streams.
//
// Complexity: O(iterations · MaxLines · P) for P pixels per line.
package anneal

import (
	"context"
	"fmt"
	"iter"
	"math"
	"math/rand"

	"github.com/katalvlaran/stringart/canvas"
	"github.com/katalvlaran/stringart/chords"
	"github.com/katalvlaran/stringart/internal/logging"
	"github.com/katalvlaran/stringart/pins"
	"github.com/katalvlaran/stringart/strategy"
)

// Name is the registry name of the annealing strategy.
const Name = "anneal"

// Anneal is the simulated annealing strategy.
type Anneal struct {
	opts Options
}

// New builds an Anneal strategy from DefaultOptions and opts.
func New(opts ...Option) (*Anneal, error) {
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
		if o.err != nil {
			return nil, o.err
		}
	}

	return &Anneal{opts: o}, nil
}

// Name implements strategy.Strategy.
func (a *Anneal) Name() string { return Name }

// Options returns the effective parameters.
func (a *Anneal) Options() Options { return a.opts }

// Run implements strategy.Strategy.
//
// Every ReportEvery-th iteration emits Status, Progress = 1 − T/StartTemp,
// Canvas, Accepted, Iteration, LineNum (= Iteration), Temperature and
// Error. The final event is "Done!" at progress 1 with the final Canvas,
// Error and Sequence.
func (a *Anneal) Run(ctx context.Context, target *canvas.Gray, set pins.PinSet) (iter.Seq[strategy.Event], error) {
	darkness, err := strategy.Validate(target, set)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	opts := a.opts

	return func(yield func(strategy.Event) bool) {
		rng := opts.Rand
		if rng == nil {
			rng = rngFromSeed(opts.Seed)
		}
		run(ctx, target, set, darkness, opts, rng, yield)
	}, nil
}

// chain is the walk being optimized plus its rendering.
type chain struct {
	walk   []int
	canvas *canvas.Canvas
	err    int64
}

// render redraws walk onto c from scratch and returns its squared error.
func render(cache *canvas.LineCache, c *canvas.Canvas, walk []int, d uint32, darkness []int32) int64 {
	c.Reset()
	var i int
	for i = 0; i+1 < len(walk); i++ {
		c.AddPixels(cache.Pixels(chords.Canonical(walk[i], walk[i+1])), d)
	}
	e, _ := c.SquaredError(darkness)

	return e
}

// sequenceOf converts a pin walk to segments.
func sequenceOf(walk []int) chords.Sequence {
	seq := make(chords.Sequence, 0, max(len(walk)-1, 0))
	var i int
	for i = 0; i+1 < len(walk); i++ {
		seq = append(seq, chords.Segment{From: walk[i], To: walk[i+1]})
	}

	return seq
}

func run(ctx context.Context, target *canvas.Gray, set pins.PinSet, darkness []int32, opts Options, rng *rand.Rand, yield func(strategy.Event) bool) {
	log := logging.For(Name)
	log.Debug("anneal run started",
		"pins", len(set), "width", target.Width, "height", target.Height,
		"max_lines", opts.MaxLines, "start_temp", opts.StartTemp,
		"end_temp", opts.EndTemp, "cooling_rate", opts.CoolingRate)

	cache, err := canvas.NewLineCache(set, target.Width, target.Height)
	if err != nil {
		yield(strategy.Event{Status: err.Error(), Progress: 1, Failed: true, Err: err})
		return
	}
	newCanvas := func() *canvas.Canvas {
		c, _ := canvas.New(target.Width, target.Height, canvas.WithLimit(canvas.ByteLimit))
		return c
	}

	var (
		n    = len(set)
		d    = opts.LineDarkness
		cur  = chain{walk: randomChain(rng, n, opts.MaxLines), canvas: newCanvas()}
		cand = chain{walk: make([]int, len(cur.walk)), canvas: newCanvas()}
	)
	cur.err = render(cache, cur.canvas, cur.walk, d, darkness)
	initial := cur.err

	var (
		temp      = opts.StartTemp
		iteration int
		accepts   int
		idx       int
		next      int
		accepted  bool
		delta     float64
	)
	for opts.MaxLines > 0 && temp > opts.EndTemp {
		if strategy.Canceled(ctx) {
			log.Debug("anneal run canceled", "iteration", iteration)
			return
		}
		iteration++

		// Propose: new destination for segment idx.
		idx = rng.Intn(opts.MaxLines)
		next = cur.walk[idx]
		if idx+2 < len(cur.walk) {
			next = cur.walk[idx+2]
		}
		copy(cand.walk, cur.walk)
		cand.walk[idx+1] = pinExcept(rng, n, cur.walk[idx], next)
		cand.err = render(cache, cand.canvas, cand.walk, d, darkness)

		// Metropolis acceptance.
		delta = float64(cand.err - cur.err)
		accepted = delta < 0 || rng.Float64() < math.Exp(-delta/temp)
		if accepted {
			cur, cand = cand, cur
			accepts++
		}

		temp *= opts.CoolingRate

		if iteration%opts.ReportEvery == 0 {
			if !yield(strategy.Event{
				Status:      fmt.Sprintf("Temp: %.2f, Error: %.0f", temp, float64(cur.err)),
				Progress:    1 - temp/opts.StartTemp,
				Canvas:      cur.canvas.Display(),
				LineNum:     iteration,
				Iteration:   iteration,
				Accepted:    accepted,
				Temperature: temp,
				Error:       float64(cur.err),
			}) {
				return
			}
		}
	}
	if strategy.Canceled(ctx) {
		return
	}

	yield(strategy.Event{
		Status:      "Done!",
		Progress:    1,
		Canvas:      cur.canvas.Display(),
		Iteration:   iteration,
		Temperature: temp,
		Error:       float64(cur.err),
		Sequence:    sequenceOf(cur.walk),
	})

	log.Info("anneal run finished",
		"lines", opts.MaxLines, "iterations", iteration, "accepted", accepts,
		"initial_error", initial, "error", cur.err)
}
