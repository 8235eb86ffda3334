package wrapgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/stringart/chords"
	"github.com/katalvlaran/stringart/wrapgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edgeMultiset counts canonical chords in a sequence.
func edgeMultiset(seq chords.Sequence) map[chords.Chord]int {
	m := map[chords.Chord]int{}
	for _, s := range seq {
		m[s.Chord()]++
	}

	return m
}

// graphMultiset counts canonical chords over the graph's edges.
func graphMultiset(g *wrapgraph.Graph) map[chords.Chord]int {
	m := map[chords.Chord]int{}
	for _, e := range g.Edges() {
		m[chords.Canonical(e.U, e.V)]++
	}

	return m
}

// -----------------------------------------------------------------------------
// Construction
// -----------------------------------------------------------------------------

func TestFromWraps_ParallelEdges(t *testing.T) {
	catalog := chords.All(4)
	wraps := []int{2, 0, 1, 0, 0, 3}

	g, err := wrapgraph.FromWraps(4, catalog, wraps)
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())
	assert.Equal(t, 6, g.CountKind(wrapgraph.Wrap))

	d0, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 3, d0)
	d3, err := g.Degree(3)
	require.NoError(t, err)
	assert.Equal(t, 4, d3)

	// 0–1 ×2, 0–3 ×1, 2–3 ×3
	assert.Equal(t, []int{0, 2}, g.OddVertices())
}

func TestFromWraps_Invalid(t *testing.T) {
	_, err := wrapgraph.FromWraps(4, chords.All(4), []int{1})
	assert.ErrorIs(t, err, wrapgraph.ErrBadWraps)

	_, err = wrapgraph.FromWraps(4, chords.All(4), []int{0, 0, -1, 0, 0, 0})
	assert.ErrorIs(t, err, wrapgraph.ErrBadWraps)

	_, err = wrapgraph.FromWraps(0, nil, nil)
	assert.ErrorIs(t, err, wrapgraph.ErrBadVertexCount)

	g, err := wrapgraph.NewGraph(3)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 1, wrapgraph.Wrap)
	assert.ErrorIs(t, err, wrapgraph.ErrLoopNotAllowed)
	_, err = g.AddEdge(0, 3, wrapgraph.Wrap)
	assert.ErrorIs(t, err, wrapgraph.ErrVertexNotFound)
	_, err = g.Degree(-1)
	assert.ErrorIs(t, err, wrapgraph.ErrVertexNotFound)
}

// -----------------------------------------------------------------------------
// Repair
// -----------------------------------------------------------------------------

// TestRepairParity_PairsInVertexOrder checks the arbitrary pairing:
// odd vertices (1,2,4,6) become edges 1–2 and 4–6.
func TestRepairParity_PairsInVertexOrder(t *testing.T) {
	g, err := wrapgraph.NewGraph(7)
	require.NoError(t, err)
	for _, e := range [][2]int{{1, 0}, {0, 2}, {4, 5}, {5, 6}, {0, 3}, {3, 0}} {
		_, err = g.AddEdge(e[0], e[1], wrapgraph.Wrap)
		require.NoError(t, err)
	}
	require.Equal(t, []int{1, 2, 4, 6}, g.OddVertices())

	assert.Equal(t, 2, g.RepairParity())
	assert.Empty(t, g.OddVertices())

	edges := g.Edges()
	added := edges[len(edges)-2:]
	assert.Equal(t, wrapgraph.Parity, added[0].Kind)
	assert.Equal(t, [2]int{1, 2}, [2]int{added[0].U, added[0].V})
	assert.Equal(t, [2]int{4, 6}, [2]int{added[1].U, added[1].V})
}

func TestConnectComponents(t *testing.T) {
	g, err := wrapgraph.NewGraph(8)
	require.NoError(t, err)
	for _, e := range [][2]int{{6, 7}, {7, 6}, {1, 2}, {2, 3}, {3, 1}} {
		_, err = g.AddEdge(e[0], e[1], wrapgraph.Wrap)
		require.NoError(t, err)
	}
	assert.Equal(t, [][]int{{1, 2, 3}, {6, 7}}, g.Components())

	bridges, parity := g.Eulerize()
	assert.Equal(t, 1, bridges)
	assert.Equal(t, 1, parity, "the bridge makes 1 and 6 odd")
	assert.Len(t, g.Components(), 1)
	assert.Empty(t, g.OddVertices())
	assert.Equal(t, 1, g.CountKind(wrapgraph.Bridge))
	assert.Equal(t, 1, g.CountKind(wrapgraph.Parity))
	assert.Equal(t, "bridge", wrapgraph.Bridge.String())
}

// -----------------------------------------------------------------------------
// Trail
// -----------------------------------------------------------------------------

func TestTrail_Empty(t *testing.T) {
	g, err := wrapgraph.NewGraph(5)
	require.NoError(t, err)
	seq, err := g.Trail()
	require.NoError(t, err)
	assert.Empty(t, seq)
}

func TestTrail_Circuit(t *testing.T) {
	g, err := wrapgraph.FromWraps(4, chords.All(4), []int{2, 0, 0, 1, 1, 1})
	require.NoError(t, err)
	// degrees: 0→2, 1→4, 2→2, 3→2 (all even)
	require.Empty(t, g.OddVertices())

	seq, err := g.Trail()
	require.NoError(t, err)
	require.Len(t, seq, g.EdgeCount())
	assert.True(t, seq.Connected())
	assert.Equal(t, seq[0].From, seq[len(seq)-1].To, "circuit closes")
	assert.Equal(t, 0, seq[0].From, "starts at lowest vertex with edges")
	assert.Equal(t, graphMultiset(g), edgeMultiset(seq))
}

func TestTrail_OpenPath(t *testing.T) {
	g, err := wrapgraph.NewGraph(4)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}} {
		_, err = g.AddEdge(e[0], e[1], wrapgraph.Wrap)
		require.NoError(t, err)
	}
	seq, err := g.Trail()
	require.NoError(t, err)
	require.Len(t, seq, 4)
	assert.Equal(t, 2, seq[0].From, "open path starts at the first odd vertex")
	assert.Equal(t, 3, seq[len(seq)-1].To)
	assert.True(t, seq.Connected())
}

func TestTrail_NotEulerian(t *testing.T) {
	g, err := wrapgraph.NewGraph(6)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {2, 3}} {
		_, err = g.AddEdge(e[0], e[1], wrapgraph.Wrap)
		require.NoError(t, err)
	}
	_, err = g.Trail()
	assert.ErrorIs(t, err, wrapgraph.ErrNotEulerian, "two components")

	star, err := wrapgraph.NewGraph(4)
	require.NoError(t, err)
	for _, v := range []int{1, 2, 3} {
		_, err = star.AddEdge(0, v, wrapgraph.Wrap)
		require.NoError(t, err)
	}
	_, err = star.Trail()
	assert.ErrorIs(t, err, wrapgraph.ErrNotEulerian, "four odd vertices")
}

// TestTrail_RandomWrapsEulerized: after Eulerize, any wrap vector yields a
// circuit that consumes every edge exactly once.
func TestTrail_RandomWrapsEulerized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var trial int
	for trial = 0; trial < 50; trial++ {
		n := 2 + rng.Intn(15)
		catalog := chords.All(n)
		wraps := make([]int, len(catalog))
		for k := range wraps {
			if rng.Float64() < 0.15 {
				wraps[k] = 1 + rng.Intn(4)
			}
		}
		g, err := wrapgraph.FromWraps(n, catalog, wraps)
		require.NoError(t, err)
		g.Eulerize()

		seq, err := g.Trail()
		require.NoError(t, err, "trial %d", trial)
		require.Len(t, seq, g.EdgeCount(), "trial %d", trial)
		assert.Equal(t, graphMultiset(g), edgeMultiset(seq), "trial %d", trial)
		if len(seq) > 0 {
			assert.True(t, seq.Connected(), "trial %d", trial)
			assert.Equal(t, seq[0].From, seq[len(seq)-1].To, "trial %d", trial)
		}
		for _, s := range seq {
			assert.False(t, s.Degenerate())
		}
	}
}
