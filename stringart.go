package stringart

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"

	"github.com/katalvlaran/stringart/anneal"
	"github.com/katalvlaran/stringart/greedy"
	"github.com/katalvlaran/stringart/internal/logging"
	"github.com/katalvlaran/stringart/relax"
	"github.com/katalvlaran/stringart/strategy"
)

// ErrUnknownStrategy is returned by New for a name that is not registered.
var ErrUnknownStrategy = errors.New("stringart: unknown strategy")

// Params is the flat parameter set shared by all strategies. Zero values
// keep each strategy's default; fields a strategy does not use are
// ignored.
type Params struct {
	// MaxLines bounds the lines drawn (greedy) or fixes the chain length
	// (anneal).
	MaxLines int

	// LineDarkness is the darkness per line; for relax it is the replay
	// darkness.
	LineDarkness int

	// StartPin is the first pin of the greedy thread.
	StartPin int

	// MaxIter and Tolerance tune the relaxation solver.
	MaxIter   int
	Tolerance float64

	// StartTemp, EndTemp, CoolingRate and ReportEvery shape annealing.
	StartTemp   float64
	EndTemp     float64
	CoolingRate float64
	ReportEvery int

	// Seed selects the annealing source; Rand overrides it.
	Seed int64
	Rand *rand.Rand
}

// factory builds a strategy from Params.
type factory func(Params) (strategy.Strategy, error)

var registry = map[string]factory{
	greedy.Name: newGreedy,
	relax.Name:  newRelax,
	anneal.Name: newAnneal,
}

// Names returns the registered strategy names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// New returns the strategy registered under name, configured from p.
//
// Errors: ErrUnknownStrategy, or strategy.ErrOptionViolation for an
// invalid parameter.
func New(name string, p Params) (strategy.Strategy, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownStrategy, name, Names())
	}

	return f(p)
}

// SetLogger installs l for every stringart package. A nil l restores the
// default silent logger. Safe to call concurrently with running strategies.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

func newGreedy(p Params) (strategy.Strategy, error) {
	var opts []greedy.Option
	if p.MaxLines != 0 {
		opts = append(opts, greedy.WithMaxLines(p.MaxLines))
	}
	if p.LineDarkness != 0 {
		opts = append(opts, greedy.WithLineDarkness(p.LineDarkness))
	}
	if p.StartPin != 0 {
		opts = append(opts, greedy.WithStartPin(p.StartPin))
	}

	s, err := greedy.New(opts...)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func newRelax(p Params) (strategy.Strategy, error) {
	var opts []relax.Option
	if p.LineDarkness != 0 {
		opts = append(opts, relax.WithReplayDarkness(p.LineDarkness))
	}
	if p.MaxIter != 0 {
		opts = append(opts, relax.WithMaxIter(p.MaxIter))
	}
	if p.Tolerance != 0 {
		opts = append(opts, relax.WithTolerance(p.Tolerance))
	}

	s, err := relax.New(opts...)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func newAnneal(p Params) (strategy.Strategy, error) {
	var opts []anneal.Option
	if p.MaxLines != 0 {
		opts = append(opts, anneal.WithMaxLines(p.MaxLines))
	}
	if p.LineDarkness != 0 {
		opts = append(opts, anneal.WithLineDarkness(p.LineDarkness))
	}
	if p.StartTemp != 0 {
		opts = append(opts, anneal.WithStartTemp(p.StartTemp))
	}
	if p.EndTemp != 0 {
		opts = append(opts, anneal.WithEndTemp(p.EndTemp))
	}
	if p.CoolingRate != 0 {
		opts = append(opts, anneal.WithCoolingRate(p.CoolingRate))
	}
	if p.ReportEvery != 0 {
		opts = append(opts, anneal.WithReportEvery(p.ReportEvery))
	}
	if p.Rand != nil {
		opts = append(opts, anneal.WithRand(p.Rand))
	} else {
		opts = append(opts, anneal.WithSeed(p.Seed))
	}

	s, err := anneal.New(opts...)
	if err != nil {
		return nil, err
	}

	return s, nil
}
