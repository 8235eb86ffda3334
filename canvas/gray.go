package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Sentinel errors for image and canvas handling.
var (
	// ErrInvalidShape is returned when a dimension is non-positive or the
	// pixel buffer does not match Width×Height.
	ErrInvalidShape = errors.New("canvas: invalid image shape")

	// ErrShapeMismatch is returned when two buffers of different size meet.
	ErrShapeMismatch = errors.New("canvas: shape mismatch")
)

// Gray is a row-major 8-bit grayscale image.
type Gray struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewGray returns a black Width×Height image.
func NewGray(width, height int) (*Gray, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidShape, width, height)
	}

	return &Gray{Width: width, Height: height, Pix: make([]uint8, width*height)}, nil
}

// NewGrayFilled returns a Width×Height image with every pixel set to v.
func NewGrayFilled(width, height int, v uint8) (*Gray, error) {
	g, err := NewGray(width, height)
	if err != nil {
		return nil, err
	}
	var i int
	for i = range g.Pix {
		g.Pix[i] = v
	}

	return g, nil
}

// Validate checks the dimensions against the backing slice.
func (g *Gray) Validate() error {
	if g == nil || g.Width <= 0 || g.Height <= 0 || len(g.Pix) != g.Width*g.Height {
		return ErrInvalidShape
	}

	return nil
}

// At returns the intensity at (row, col). Out-of-range reads return 0.
func (g *Gray) At(row, col int) uint8 {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return 0
	}

	return g.Pix[row*g.Width+col]
}

// Set writes v at (row, col); out-of-range writes are ignored.
func (g *Gray) Set(row, col int, v uint8) {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return
	}
	g.Pix[row*g.Width+col] = v
}

// FillRect sets every pixel in rows [r0,r1) and columns [c0,c1) to v.
func (g *Gray) FillRect(r0, c0, r1, c1 int, v uint8) {
	var r, c int
	for r = r0; r < r1; r++ {
		for c = c0; c < c1; c++ {
			g.Set(r, c, v)
		}
	}
}

// Sum returns the total intensity of g.
func (g *Gray) Sum() int64 {
	var (
		s int64
		v uint8
	)
	for _, v = range g.Pix {
		s += int64(v)
	}

	return s
}

// Clone returns a deep copy of g.
func (g *Gray) Clone() *Gray {
	pix := make([]uint8, len(g.Pix))
	copy(pix, g.Pix)

	return &Gray{Width: g.Width, Height: g.Height, Pix: pix}
}

// Invert returns a new image with every pixel mapped to 255 − v.
// Invert(Invert(g)) equals g.
func Invert(g *Gray) *Gray {
	out := &Gray{Width: g.Width, Height: g.Height, Pix: make([]uint8, len(g.Pix))}
	var (
		i int
		v uint8
	)
	for i, v = range g.Pix {
		out.Pix[i] = 255 - v
	}

	return out
}

// Darkness returns the inverted intensities of g (255 − v) widened to
// int32, the form every error computation works on.
func Darkness(g *Gray) []int32 {
	out := make([]int32, len(g.Pix))
	var (
		i int
		v uint8
	)
	for i, v = range g.Pix {
		out[i] = 255 - int32(v)
	}

	return out
}

// FromImage converts any image.Image into a Gray using the standard
// luminance model of color.GrayModel.
func FromImage(img image.Image) (*Gray, error) {
	b := img.Bounds()
	g, err := NewGray(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	var x, y int
	for y = b.Min.Y; y < b.Max.Y; y++ {
		for x = b.Min.X; x < b.Max.X; x++ {
			g.Pix[(y-b.Min.Y)*g.Width+(x-b.Min.X)] = color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
		}
	}

	return g, nil
}

// ToImage returns g as an *image.Gray sharing no memory with g.
func (g *Gray) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	var r int
	for r = 0; r < g.Height; r++ {
		copy(img.Pix[r*img.Stride:r*img.Stride+g.Width], g.Pix[r*g.Width:(r+1)*g.Width])
	}

	return img
}
