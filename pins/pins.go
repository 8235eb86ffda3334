package pins

import (
	"errors"
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

// Sentinel errors for pin layout.
var (
	// ErrTooFewPins is returned when fewer than two pins are requested.
	ErrTooFewPins = errors.New("pins: at least two pins are required")

	// ErrInvalidShape is returned when an image dimension is non-positive.
	ErrInvalidShape = errors.New("pins: image dimensions must be > 0")

	// ErrPinIndex is returned when a segment references a pin outside the set.
	ErrPinIndex = errors.New("pins: pin index out of range")
)

// Pin is an integer pixel coordinate (Row = y, Col = x).
type Pin struct {
	Row int
	Col int
}

// Coord returns the pin as a geom.Coord (X = column, Y = row).
func (p Pin) Coord() geom.Coord {
	return geom.Coord{X: float64(p.Col), Y: float64(p.Row)}
}

// PinSet is an ordered set of pins; the slice index is the pin identifier.
type PinSet []Pin

// Len returns the number of pins.
func (s PinSet) Len() int { return len(s) }

// InBounds reports whether every pin lies inside a height×width image.
func (s PinSet) InBounds(height, width int) bool {
	var p Pin
	for _, p = range s {
		if p.Row < 0 || p.Row >= height || p.Col < 0 || p.Col >= width {
			return false
		}
	}

	return true
}

// Generate places numPins pins evenly on the circle inscribed in a
// height×width image.
//
// Steps:
//  1. Validate numPins ≥ 2 and both dimensions > 0.
//  2. Derive the image rectangle, its center and radius = min(w/2, h/2) − 1.
//  3. For k = 0..N−1 rotate the unit vector by 2π·k/N, scale, translate.
//  4. Round to the nearest pixel and clamp into bounds (only effective for
//     images one pixel wide or tall, where the radius goes negative).
//
// Complexity: O(N).
func Generate(numPins, height, width int) (PinSet, error) {
	if numPins < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPins, numPins)
	}
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidShape, height, width)
	}

	bounds := geom.Rect{
		Min: geom.Coord{X: 0, Y: 0},
		Max: geom.Coord{X: float64(width), Y: float64(height)},
	}
	center := geom.Coord{X: bounds.Width() / 2, Y: bounds.Height() / 2}
	radius := math.Min(center.X, center.Y) - 1

	set := make(PinSet, numPins)
	var (
		k     int
		theta float64
		pos   geom.Coord
	)
	for k = 0; k < numPins; k++ {
		theta = 2 * math.Pi * float64(k) / float64(numPins)
		pos = geom.Coord{X: math.Cos(theta), Y: math.Sin(theta)}.Times(radius).Plus(center)
		set[k] = Pin{
			Row: clamp(int(math.Round(pos.Y)), height),
			Col: clamp(int(math.Round(pos.X)), width),
		}
	}

	return set, nil
}

// clamp limits v to [0, n−1].
func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}

	return v
}
