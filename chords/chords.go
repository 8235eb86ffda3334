// Package chords enumerates the unordered pin pairs of a pin set and
// defines the directed Segment and Sequence types that every synthesis
// strategy produces.
//
// Canonical form: a Chord always stores I < J. Catalog order is row-major
// (I ascending, then J ascending) and is the stable iteration order used
// for tie-breaks, so results are reproducible across runs.
package chords

import "fmt"

// Chord is an unordered pin pair in canonical form (I < J).
type Chord struct {
	I int
	J int
}

// Canonical returns the chord {a, b} with its endpoints sorted.
func Canonical(a, b int) Chord {
	if a > b {
		a, b = b, a
	}

	return Chord{I: a, J: b}
}

// String implements fmt.Stringer.
func (c Chord) String() string {
	return fmt.Sprintf("(%d,%d)", c.I, c.J)
}

// Count returns n·(n−1)/2, the number of chords over n pins.
// Non-positive n yields 0.
func Count(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// All returns every canonical chord over n pins in row-major order.
// For n < 2 the catalog is empty.
//
// Complexity: O(n²) time and memory.
func All(n int) []Chord {
	out := make([]Chord, 0, Count(n))
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			out = append(out, Chord{I: i, J: j})
		}
	}

	return out
}

// Index returns the catalog position of c among chords over n pins, or −1
// if c is not a valid canonical chord for n.
//
// Row i starts after Σ_{r<i}(n−1−r) = i·(2n−i−1)/2 entries.
//
// Complexity: O(1).
func Index(n int, c Chord) int {
	if c.I < 0 || c.J >= n || c.I >= c.J {
		return -1
	}

	return c.I*(2*n-c.I-1)/2 + (c.J - c.I - 1)
}

// Segment is a chord as it is physically wound: from pin From to pin To.
type Segment struct {
	From int
	To   int
}

// Chord returns the canonical chord underlying s.
func (s Segment) Chord() Chord { return Canonical(s.From, s.To) }

// Degenerate reports whether s connects a pin to itself.
func (s Segment) Degenerate() bool { return s.From == s.To }

// String implements fmt.Stringer.
func (s Segment) String() string {
	return fmt.Sprintf("%d->%d", s.From, s.To)
}

// Sequence is the ordered list of segments making up a string-art piece.
type Sequence []Segment

// Connected reports whether every segment starts where the previous ended.
func (q Sequence) Connected() bool {
	var i int
	for i = 1; i < len(q); i++ {
		if q[i].From != q[i-1].To {
			return false
		}
	}

	return true
}

// Pins returns the visited pin walk: From of the first segment followed by
// every To. Only meaningful for connected sequences; an empty sequence
// yields nil.
func (q Sequence) Pins() []int {
	if len(q) == 0 {
		return nil
	}
	walk := make([]int, 0, len(q)+1)
	walk = append(walk, q[0].From)
	var s Segment
	for _, s = range q {
		walk = append(walk, s.To)
	}

	return walk
}

// Clone returns an independent copy of q.
func (q Sequence) Clone() Sequence {
	if q == nil {
		return nil
	}
	out := make(Sequence, len(q))
	copy(out, q)

	return out
}
