package canvas

import (
	"fmt"

	"github.com/katalvlaran/stringart/chords"
	"github.com/katalvlaran/stringart/pins"
)

// LineCache holds the rasterization of every chord over a pin set, in
// catalog order, as flattened pixel offsets.
//
// Every strategy evaluates thousands of candidate chords; keeping their
// pixel paths resident for the whole run turns each evaluation into a walk
// over a short slice.
//
// Memory: O(C·P) for C = N(N−1)/2 chords of P pixels on average.
type LineCache struct {
	n      int
	width  int
	height int
	lines  [][]int32
}

// NewLineCache rasterizes every chord of set onto a width×height grid.
func NewLineCache(set pins.PinSet, width, height int) (*LineCache, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidShape, width, height)
	}
	all := chords.All(len(set))
	lc := &LineCache{n: len(set), width: width, height: height, lines: make([][]int32, len(all))}
	var (
		k int
		c chords.Chord
	)
	for k, c = range all {
		lc.lines[k] = lineIndices(set[c.I], set[c.J], width, height)
	}

	return lc, nil
}

// Pins returns the number of pins the cache was built for.
func (lc *LineCache) Pins() int { return lc.n }

// Len returns the number of cached chords.
func (lc *LineCache) Len() int { return len(lc.lines) }

// At returns the pixels of the k-th catalog chord.
func (lc *LineCache) At(k int) []int32 { return lc.lines[k] }

// Pixels returns the pixels of chord c, or nil if c is not a valid chord.
func (lc *LineCache) Pixels(c chords.Chord) []int32 {
	k := chords.Index(lc.n, c)
	if k < 0 {
		return nil
	}

	return lc.lines[k]
}

// Segment returns the pixels of the chord underlying s.
func (lc *LineCache) Segment(s chords.Segment) []int32 {
	return lc.Pixels(s.Chord())
}

// Render accumulates every segment of seq onto c with the given darkness.
// Degenerate segments (a pin to itself) are skipped.
func (lc *LineCache) Render(c *Canvas, seq chords.Sequence, darkness uint32) error {
	if c.width != lc.width || c.height != lc.height {
		return ErrShapeMismatch
	}
	var s chords.Segment
	for _, s = range seq {
		c.AddPixels(lc.Segment(s), darkness)
	}

	return nil
}
