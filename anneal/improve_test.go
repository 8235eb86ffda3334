package anneal

import (
	"context"
	"testing"

	"github.com/katalvlaran/stringart/canvas"
	"github.com/katalvlaran/stringart/pins"
	"github.com/katalvlaran/stringart/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_ImprovesOverInitialChain: across seeds, the final error is
// below the error of the random starting chain drawn from the same seed.
func TestRun_ImprovesOverInitialChain(t *testing.T) {
	const (
		size  = 40
		lines = 30
		n     = 12
	)
	target, err := canvas.NewGrayFilled(size, size, 255)
	require.NoError(t, err)
	target.FillRect(12, 12, 28, 28, 0)
	darkness := canvas.Darkness(target)
	set, err := pins.Generate(n, size, size)
	require.NoError(t, err)
	lc, err := canvas.NewLineCache(set, size, size)
	require.NoError(t, err)
	scratch, err := canvas.New(size, size, canvas.WithLimit(canvas.ByteLimit))
	require.NoError(t, err)

	var (
		improved         int
		sumInit, sumDone float64
		seed             int64
	)
	for seed = 1; seed <= 10; seed++ {
		walk := randomChain(rngFromSeed(seed), n, lines)
		initial := render(lc, scratch, walk, 25, darkness)

		a, err := New(WithMaxLines(lines), WithCoolingRate(0.95), WithSeed(seed))
		require.NoError(t, err)
		stream, err := a.Run(context.Background(), target, set)
		require.NoError(t, err)
		out := strategy.Drain(stream)

		if out.Final.Error < float64(initial) {
			improved++
		}
		sumInit += float64(initial)
		sumDone += out.Final.Error
	}

	assert.GreaterOrEqual(t, improved, 8)
	assert.Less(t, sumDone, sumInit)
}

func TestRandomChain_NoRepeats(t *testing.T) {
	rng := rngFromSeed(9)
	for _, n := range []int{2, 3, 7} {
		walk := randomChain(rng, n, 100)
		require.Len(t, walk, 101)
		for i := 1; i < len(walk); i++ {
			assert.NotEqual(t, walk[i-1], walk[i])
			assert.True(t, walk[i] >= 0 && walk[i] < n)
		}
	}
	assert.Nil(t, randomChain(rng, 5, 0))
}
