// Package relax implements the continuous-relaxation strategy: solve a
// non-negative least-squares problem over every chord, round the weights
// to wrap counts, and wind them in one Eulerian traversal.
//
// Algorithm Outline:
//  1. Column k of A is chord k rasterized with SolveDarkness; b is the
//     inverted target. Both are flattened in row-major pixel order.
//  2. x = argmin ‖Ax − b‖², x ≥ 0 (nnls.Problem).
//  3. wraps[k] = round(x[k]), clamped at zero.
//  4. WrapGraph: wraps[k] parallel edges per chord, bridges between
//     components, parity edges between odd pins in pin order.
//  5. Hierholzer traversal becomes the sequence.
//  6. Replay the sequence with ReplayDarkness, one event per line.
//
// Events, in order:
//
//	0.2          Solving for chord weights...
//	0.5          Visualizing chord weights...   (Heatmap, Chords)
//	0.8          Building string path...
//	0.8 + 0.2·i/L  Drawing line i/L               (Canvas, LineNum, Segment)
//	1.0          Done!                          (Canvas, Sequence)
//
// A failed solve replaces everything after the first event with a single
// Failed event at progress 1.
//
// Cost is dominated by the Gram matrix and the solve: O(C²) memory and
// O(iter·k³) time for C = N(N−1)/2 chords. Meant for modest pin counts.
package relax

import (
	"context"
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/stringart/canvas"
	"github.com/katalvlaran/stringart/chords"
	"github.com/katalvlaran/stringart/internal/logging"
	"github.com/katalvlaran/stringart/nnls"
	"github.com/katalvlaran/stringart/pins"
	"github.com/katalvlaran/stringart/strategy"
	"github.com/katalvlaran/stringart/wrapgraph"
)

// Name is the registry name of the relaxation strategy.
const Name = "relax"

// Progress checkpoints of the fixed phases.
const (
	progressSolve  = 0.2
	progressWeight = 0.5
	progressPath   = 0.8
)

// Relax is the continuous-relaxation strategy.
type Relax struct {
	opts Options
}

// New builds a Relax strategy from DefaultOptions and opts.
func New(opts ...Option) (*Relax, error) {
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
		if o.err != nil {
			return nil, o.err
		}
	}

	return &Relax{opts: o}, nil
}

// Name implements strategy.Strategy.
func (r *Relax) Name() string { return Name }

// Options returns the effective parameters.
func (r *Relax) Options() Options { return r.opts }

// Run implements strategy.Strategy.
func (r *Relax) Run(ctx context.Context, target *canvas.Gray, set pins.PinSet) (iter.Seq[strategy.Event], error) {
	darkness, err := strategy.Validate(target, set)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	opts := r.opts

	return func(yield func(strategy.Event) bool) {
		run(ctx, target, set, darkness, opts, yield)
	}, nil
}

// fail emits the terminal failure event.
func fail(yield func(strategy.Event) bool, err error) {
	yield(strategy.Event{
		Status:   fmt.Sprintf("Error during NNLS: %v", err),
		Progress: 1,
		Failed:   true,
		Err:      err,
	})
}

func run(ctx context.Context, target *canvas.Gray, set pins.PinSet, darkness []int32, opts Options, yield func(strategy.Event) bool) {
	log := logging.For(Name)
	log.Debug("relax run started",
		"pins", len(set), "width", target.Width, "height", target.Height,
		"replay_darkness", opts.ReplayDarkness)

	cache, err := canvas.NewLineCache(set, target.Width, target.Height)
	if err != nil {
		fail(yield, err)
		return
	}
	catalog := chords.All(len(set))

	// Phase 1: assemble the problem.
	b := make([]float64, len(darkness))
	var i int
	for i = range darkness {
		b[i] = float64(darkness[i])
	}
	problem, err := nnls.NewProblem(b)
	if err != nil {
		fail(yield, err)
		return
	}
	for i = range catalog {
		if err = problem.AddColumn(cache.At(i), opts.SolveDarkness); err != nil {
			fail(yield, err)
			return
		}
	}
	if !yield(strategy.Event{Status: "Solving for chord weights...", Progress: progressSolve}) || strategy.Canceled(ctx) {
		return
	}

	// Phase 2: solve.
	solverOpts := nnls.DefaultOptions()
	solverOpts.MaxIter = opts.MaxIter
	solverOpts.Tolerance = opts.Tolerance
	res, err := problem.Solve(solverOpts)
	if err != nil {
		log.Warn("relax solve failed", "chords", len(catalog), "error", err)
		fail(yield, err)
		return
	}
	log.Debug("relax solve finished", "iterations", res.Iterations, "residual", res.ResidualNorm)

	// Phase 3: round to wrap counts.
	wraps := make([]int, len(res.X))
	heatmap := make([]float64, len(res.X))
	copy(heatmap, res.X)
	for i = range res.X {
		wraps[i] = max(int(math.Round(res.X[i])), 0)
	}
	if !yield(strategy.Event{
		Status:   "Visualizing chord weights...",
		Progress: progressWeight,
		Heatmap:  heatmap,
		Chords:   catalog,
	}) || strategy.Canceled(ctx) {
		return
	}

	// Phase 4: wrap graph.
	g, err := wrapgraph.FromWraps(len(set), catalog, wraps)
	if err != nil {
		fail(yield, err)
		return
	}
	wrapEdges := g.EdgeCount()
	bridges, parity := g.Eulerize()
	log.Debug("relax wrap graph built",
		"wraps", wrapEdges, "bridges", bridges, "parity", parity)
	if !yield(strategy.Event{Status: "Building string path...", Progress: progressPath}) || strategy.Canceled(ctx) {
		return
	}

	// Phase 5: traversal.
	seq, err := g.Trail()
	if err != nil {
		fail(yield, err)
		return
	}

	// Phase 6: replay.
	acc, err := canvas.New(target.Width, target.Height)
	if err != nil {
		fail(yield, err)
		return
	}
	total := len(seq)
	var s chords.Segment
	for i, s = range seq {
		acc.AddPixels(cache.Segment(s), opts.ReplayDarkness)
		if !yield(strategy.Event{
			Status:     fmt.Sprintf("Drawing line %d/%d", i+1, total),
			Progress:   progressPath + (1-progressPath)*float64(i+1)/float64(total),
			Canvas:     acc.Display(),
			LineNum:    i + 1,
			Segment:    s,
			HasSegment: true,
		}) || strategy.Canceled(ctx) {
			return
		}
	}

	final := seq.Clone()
	if final == nil {
		final = chords.Sequence{}
	}
	errSq, _ := acc.SquaredError(darkness)
	yield(strategy.Event{
		Status:   "Done!",
		Progress: 1,
		Canvas:   acc.Display(),
		Error:    float64(errSq),
		Sequence: final,
	})

	log.Info("relax run finished", "lines", total, "bridges", bridges, "parity", parity)
}
