package wrapgraph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/stringart/chords"
)

// Sentinel errors for wrap graph operations.
var (
	// ErrBadVertexCount is returned when a graph is created with no vertices.
	ErrBadVertexCount = errors.New("wrapgraph: vertex count must be > 0")

	// ErrVertexNotFound is returned for a vertex outside 0..N−1.
	ErrVertexNotFound = errors.New("wrapgraph: vertex not found")

	// ErrLoopNotAllowed is returned when an edge would join a pin to itself.
	ErrLoopNotAllowed = errors.New("wrapgraph: self-loop not allowed")

	// ErrBadWraps is returned when wrap counts do not match the catalog or
	// are negative.
	ErrBadWraps = errors.New("wrapgraph: invalid wrap counts")

	// ErrNotEulerian is returned when no single trail can use every edge.
	ErrNotEulerian = errors.New("wrapgraph: graph has no Eulerian trail")
)

// EdgeKind records why an edge exists.
type EdgeKind int

const (
	// Wrap edges come from rounded chord weights.
	Wrap EdgeKind = iota

	// Bridge edges join otherwise separate components.
	Bridge

	// Parity edges pair up odd-degree vertices.
	Parity
)

// String implements fmt.Stringer.
func (k EdgeKind) String() string {
	switch k {
	case Wrap:
		return "wrap"
	case Bridge:
		return "bridge"
	case Parity:
		return "parity"
	default:
		return fmt.Sprintf("EdgeKind(%d)", int(k))
	}
}

// Edge is one undirected edge between pins U and V.
type Edge struct {
	ID   int
	U    int
	V    int
	Kind EdgeKind
}

// other returns the endpoint of e opposite to u.
func (e Edge) other(u int) int {
	if e.U == u {
		return e.V
	}

	return e.U
}

// Graph is an undirected multigraph over pins 0..N−1.
// Not safe for concurrent mutation; a graph belongs to one run.
type Graph struct {
	n     int
	edges []Edge
	adj   [][]int // vertex → incident edge IDs, insertion order
}

// NewGraph returns an empty graph on n vertices.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadVertexCount, n)
	}

	return &Graph{n: n, adj: make([][]int, n)}, nil
}

// FromWraps builds the graph with wraps[k] parallel edges for catalog[k].
//
// Errors: ErrBadWraps when lengths differ or a count is negative, plus any
// AddEdge error for chords outside 0..n−1.
//
// Complexity: O(n + Σ wraps).
func FromWraps(n int, catalog []chords.Chord, wraps []int) (*Graph, error) {
	if len(catalog) != len(wraps) {
		return nil, fmt.Errorf("%w: %d chords vs %d counts", ErrBadWraps, len(catalog), len(wraps))
	}
	g, err := NewGraph(n)
	if err != nil {
		return nil, err
	}
	var k, r int
	for k = range catalog {
		if wraps[k] < 0 {
			return nil, fmt.Errorf("%w: chord %v has %d wraps", ErrBadWraps, catalog[k], wraps[k])
		}
		for r = 0; r < wraps[k]; r++ {
			if _, err = g.AddEdge(catalog[k].I, catalog[k].J, Wrap); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// AddEdge appends an edge u–v and returns its ID.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, kind EdgeKind) (int, error) {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return 0, fmt.Errorf("%w: edge %d-%d on %d vertices", ErrVertexNotFound, u, v, g.n)
	}
	if u == v {
		return 0, fmt.Errorf("%w: vertex %d", ErrLoopNotAllowed, u)
	}
	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, U: u, V: v, Kind: kind})
	g.adj[u] = append(g.adj[u], id)
	g.adj[v] = append(g.adj[v], id)

	return id, nil
}

// VertexCount returns N.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of edges of every kind.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// CountKind returns the number of edges of the given kind.
func (g *Graph) CountKind(kind EdgeKind) int {
	var (
		c int
		e Edge
	)
	for _, e = range g.edges {
		if e.Kind == kind {
			c++
		}
	}

	return c
}

// Edges returns a copy of all edges in ID order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Degree returns the number of edge endpoints at v.
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= g.n {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	return len(g.adj[v]), nil
}

// OddVertices returns the odd-degree vertices in ascending order.
func (g *Graph) OddVertices() []int {
	var (
		out []int
		v   int
	)
	for v = 0; v < g.n; v++ {
		if len(g.adj[v])%2 == 1 {
			out = append(out, v)
		}
	}

	return out
}

// Components returns the connected components that contain at least one
// edge, each sorted ascending, ordered by their lowest vertex. Isolated
// vertices are omitted.
//
// Complexity: O(N + E).
func (g *Graph) Components() [][]int {
	seen := make([]bool, g.n)
	var (
		out   [][]int
		v     int
		stack []int
		u, id int
		w     int
	)
	for v = 0; v < g.n; v++ {
		if seen[v] || len(g.adj[v]) == 0 {
			continue
		}
		comp := []int{}
		seen[v] = true
		stack = append(stack[:0], v)
		for len(stack) > 0 {
			u = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, u)
			for _, id = range g.adj[u] {
				w = g.edges[id].other(u)
				if !seen[w] {
					seen[w] = true
					stack = append(stack, w)
				}
			}
		}
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out
}

// ConnectComponents adds one Bridge edge between the lowest vertices of
// each pair of consecutive components and returns how many it added.
func (g *Graph) ConnectComponents() int {
	comps := g.Components()
	var i int
	for i = 1; i < len(comps); i++ {
		// distinct components never share a vertex, so no loop is possible
		_, _ = g.AddEdge(comps[i-1][0], comps[i][0], Bridge)
	}

	return max(len(comps)-1, 0)
}

// RepairParity pairs the odd-degree vertices in ascending order, adding
// one Parity edge per pair, and returns how many it added. Afterwards
// every vertex has even degree.
func (g *Graph) RepairParity() int {
	odd := g.OddVertices()
	var i int
	for i = 0; i+1 < len(odd); i += 2 {
		_, _ = g.AddEdge(odd[i], odd[i+1], Parity)
	}

	return len(odd) / 2
}

// Eulerize runs ConnectComponents then RepairParity.
func (g *Graph) Eulerize() (bridges, parity int) {
	bridges = g.ConnectComponents()
	parity = g.RepairParity()

	return bridges, parity
}
