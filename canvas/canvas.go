package canvas

import (
	"fmt"

	"github.com/katalvlaran/stringart/pins"
)

// ByteLimit is the saturation limit of an 8-bit canvas.
const ByteLimit uint32 = 255

// Option configures a Canvas at creation.
type Option func(*Canvas)

// WithLimit makes every addition saturate at limit. A zero limit means
// unbounded accumulation.
func WithLimit(limit uint32) Option {
	return func(c *Canvas) { c.limit = limit }
}

// Canvas is a per-pixel darkness accumulator.
//
// Values are uint32, so repeated additions far beyond a single line's 8-bit
// depth cannot overflow for any realistic line count.
type Canvas struct {
	width  int
	height int
	limit  uint32 // 0 = unbounded
	acc    []uint32
}

// New returns an all-zero width×height canvas.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidShape, width, height)
	}
	c := &Canvas{width: width, height: height, acc: make([]uint32, width*height)}
	var opt Option
	for _, opt = range opts {
		opt(c)
	}

	return c, nil
}

// Width returns the canvas width.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height.
func (c *Canvas) Height() int { return c.height }

// Limit returns the saturation limit, 0 when unbounded.
func (c *Canvas) Limit() uint32 { return c.limit }

// Value returns the accumulated darkness at (row, col).
func (c *Canvas) Value(row, col int) uint32 {
	return c.acc[row*c.width+col]
}

// Values exposes the accumulator in row-major order. Callers must not
// retain it across mutations.
func (c *Canvas) Values() []uint32 { return c.acc }

// Reset zeroes the accumulator.
func (c *Canvas) Reset() {
	clear(c.acc)
}

// Clone returns an independent copy.
func (c *Canvas) Clone() *Canvas {
	acc := make([]uint32, len(c.acc))
	copy(acc, c.acc)

	return &Canvas{width: c.width, height: c.height, limit: c.limit, acc: acc}
}

// add accumulates darkness at flat offset i, honouring the limit.
func (c *Canvas) add(i int32, darkness uint32) {
	v := c.acc[i] + darkness
	if c.limit != 0 && v > c.limit {
		v = c.limit
	}
	c.acc[i] = v
}

// Draw rasterizes the chord a→b and adds darkness to every pixel on it.
// Pixels outside the canvas are skipped.
func (c *Canvas) Draw(a, b pins.Pin, darkness uint32) {
	var i int32
	for _, i = range lineIndices(a, b, c.width, c.height) {
		c.add(i, darkness)
	}
}

// AddPixels adds darkness to each flattened pixel offset.
func (c *Canvas) AddPixels(pixels []int32, darkness uint32) {
	var i int32
	for _, i = range pixels {
		c.add(i, darkness)
	}
}

// Display returns the render view: clip to [0,255], then invert, so that
// a blank canvas renders white and heavy accumulation renders black.
func (c *Canvas) Display() *Gray {
	out := &Gray{Width: c.width, Height: c.height, Pix: make([]uint8, len(c.acc))}
	var (
		i int
		v uint32
	)
	for i, v = range c.acc {
		out.Pix[i] = 255 - clip8(int64(v))
	}

	return out
}

// Residual returns clip(darkness − accumulated, 0, 255) per pixel, where
// darkness is the inverted target as produced by Darkness.
func (c *Canvas) Residual(darkness []int32) (*Gray, error) {
	if len(darkness) != len(c.acc) {
		return nil, ErrShapeMismatch
	}
	out := &Gray{Width: c.width, Height: c.height, Pix: make([]uint8, len(c.acc))}
	var i int
	for i = range c.acc {
		out.Pix[i] = clip8(int64(darkness[i]) - int64(c.acc[i]))
	}

	return out, nil
}

// SquaredError returns Σ (darkness − accumulated)² over all pixels. The
// comparison uses the raw accumulator, not the clipped display.
func (c *Canvas) SquaredError(darkness []int32) (int64, error) {
	if len(darkness) != len(c.acc) {
		return 0, ErrShapeMismatch
	}
	var (
		sum int64
		d   int64
		i   int
	)
	for i = range c.acc {
		d = int64(darkness[i]) - int64(c.acc[i])
		sum += d * d
	}

	return sum, nil
}

// clip8 limits v to [0,255].
func clip8(v int64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}

	return uint8(v)
}
