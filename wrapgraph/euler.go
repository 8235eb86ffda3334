package wrapgraph

import (
	"fmt"

	"github.com/katalvlaran/stringart/chords"
)

// Trail returns a walk that uses every edge exactly once, using
// Hierholzer's algorithm.
//
// Start vertex:
//   - exactly two odd-degree vertices ⇒ open path from the lower one;
//   - no odd-degree vertex ⇒ closed circuit from the lowest vertex that
//     has an edge.
//
// A graph without edges yields an empty sequence and no error.
//
// Errors: ErrNotEulerian when edges span several components or more than
// two vertices have odd degree.
//
// Complexity: O(N + E).
func (g *Graph) Trail() (chords.Sequence, error) {
	if len(g.edges) == 0 {
		return nil, nil
	}
	if comps := len(g.Components()); comps != 1 {
		return nil, fmt.Errorf("%w: %d components", ErrNotEulerian, comps)
	}

	odd := g.OddVertices()
	var start int
	switch len(odd) {
	case 0:
		for start = 0; len(g.adj[start]) == 0; start++ {
		}
	case 2:
		start = odd[0]
	default:
		return nil, fmt.Errorf("%w: %d odd vertices", ErrNotEulerian, len(odd))
	}

	walk := g.hierholzer(start)
	if len(walk) != len(g.edges)+1 {
		return nil, fmt.Errorf("%w: walk covers %d of %d edges", ErrNotEulerian, len(walk)-1, len(g.edges))
	}

	seq := make(chords.Sequence, len(walk)-1)
	var i int
	for i = 0; i+1 < len(walk); i++ {
		seq[i] = chords.Segment{From: walk[i], To: walk[i+1]}
	}

	return seq, nil
}

// hierholzer returns the vertex walk starting at start.
//
// Edges are consumed through a per-vertex cursor over the incidence lists
// and a used flag per edge ID, so parallel edges are told apart and each
// removal is O(1).
func (g *Graph) hierholzer(start int) []int {
	var (
		used    = make([]bool, len(g.edges))
		cursor  = make([]int, g.n)
		stack   = []int{start}
		circuit = make([]int, 0, len(g.edges)+1)
		u, id   int
	)
	for len(stack) > 0 {
		u = stack[len(stack)-1]
		for cursor[u] < len(g.adj[u]) && used[g.adj[u][cursor[u]]] {
			cursor[u]++
		}
		if cursor[u] == len(g.adj[u]) {
			// no unused edge left: backtrack
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
			continue
		}
		id = g.adj[u][cursor[u]]
		used[id] = true
		stack = append(stack, g.edges[id].other(u))
	}

	// circuit is built in reverse; flip it so it begins at start.
	var l, r int
	for l, r = 0, len(circuit)-1; l < r; l, r = l+1, r-1 {
		circuit[l], circuit[r] = circuit[r], circuit[l]
	}

	return circuit
}
