package canvas_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/katalvlaran/stringart/canvas"
	"github.com/katalvlaran/stringart/chords"
	"github.com/katalvlaran/stringart/pins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Line rasterizer
// -----------------------------------------------------------------------------

// TestLine_EndpointsAndConnectivity checks the digital-line contract over
// every octant: both endpoints present, 8-connected, no repeats.
func TestLine_EndpointsAndConnectivity(t *testing.T) {
	center := pins.Pin{Row: 20, Col: 20}
	targets := []pins.Pin{
		{Row: 20, Col: 35}, {Row: 31, Col: 38}, {Row: 39, Col: 29}, {Row: 40, Col: 20},
		{Row: 33, Col: 2}, {Row: 20, Col: 0}, {Row: 5, Col: 3}, {Row: 0, Col: 28},
		{Row: 20, Col: 20},
	}
	for _, b := range targets {
		pts := canvas.Line(center, b)
		require.NotEmpty(t, pts)
		assert.Equal(t, canvas.Point{Row: center.Row, Col: center.Col}, pts[0], "start %v", b)
		assert.Equal(t, canvas.Point{Row: b.Row, Col: b.Col}, pts[len(pts)-1], "end %v", b)

		want := max(abs(b.Row-center.Row), abs(b.Col-center.Col)) + 1
		assert.Len(t, pts, want, "gap-free length to %v", b)

		seen := map[canvas.Point]bool{}
		for i, p := range pts {
			assert.False(t, seen[p], "repeated pixel %v", p)
			seen[p] = true
			if i > 0 {
				q := pts[i-1]
				assert.LessOrEqual(t, abs(p.Row-q.Row), 1)
				assert.LessOrEqual(t, abs(p.Col-q.Col), 1)
			}
		}
	}
}

// TestLine_Symmetric: a chord covers the same pixels in either direction.
func TestLine_Symmetric(t *testing.T) {
	a := pins.Pin{Row: 3, Col: 1}
	for _, b := range []pins.Pin{{Row: 17, Col: 8}, {Row: 0, Col: 12}, {Row: 9, Col: 30}, {Row: 3, Col: 0}} {
		fwd := canvas.Line(a, b)
		rev := canvas.Line(b, a)
		require.Len(t, rev, len(fwd))
		for i := range fwd {
			assert.Equal(t, fwd[i], rev[len(rev)-1-i], "%v->%v at %d", a, b, i)
		}
	}
}

// TestCanvas_DrawMarksEndpoints: a diagonal stroke darkens both endpoints
// and its midpoint.
func TestCanvas_DrawMarksEndpoints(t *testing.T) {
	c, err := canvas.New(50, 50)
	require.NoError(t, err)

	c.Draw(pins.Pin{Row: 10, Col: 10}, pins.Pin{Row: 40, Col: 40}, 25)

	assert.EqualValues(t, 25, c.Value(10, 10))
	assert.EqualValues(t, 25, c.Value(40, 40))
	assert.EqualValues(t, 25, c.Value(25, 25))
	assert.EqualValues(t, 0, c.Value(10, 40))

	var total uint64
	for _, v := range c.Values() {
		total += uint64(v)
	}
	assert.EqualValues(t, 31*25, total)
}

// -----------------------------------------------------------------------------
// Saturation & views
// -----------------------------------------------------------------------------

func TestCanvas_Saturation(t *testing.T) {
	a, b := pins.Pin{Row: 0, Col: 0}, pins.Pin{Row: 0, Col: 4}

	limited, err := canvas.New(5, 1, canvas.WithLimit(canvas.ByteLimit))
	require.NoError(t, err)
	wide, err := canvas.New(5, 1)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		limited.Draw(a, b, 25)
		wide.Draw(a, b, 25)
	}
	assert.EqualValues(t, 255, limited.Value(0, 2))
	assert.EqualValues(t, 500, wide.Value(0, 2))

	// Both render fully black once clipped.
	assert.Equal(t, limited.Display().Pix, wide.Display().Pix)
	assert.Equal(t, []uint8{0, 0, 0, 0, 0}, wide.Display().Pix)
}

func TestCanvas_DisplayAndResidual(t *testing.T) {
	target, err := canvas.NewGrayFilled(3, 1, 255)
	require.NoError(t, err)
	target.Pix[0] = 0   // black → darkness 255
	target.Pix[1] = 155 // darkness 100

	c, err := canvas.New(3, 1)
	require.NoError(t, err)
	c.AddPixels([]int32{0, 1, 2}, 150)

	assert.Equal(t, []uint8{105, 105, 105}, c.Display().Pix)

	res, err := c.Residual(canvas.Darkness(target))
	require.NoError(t, err)
	assert.Equal(t, []uint8{105, 0, 0}, res.Pix)

	sq, err := c.SquaredError(canvas.Darkness(target))
	require.NoError(t, err)
	assert.EqualValues(t, 105*105+50*50+150*150, sq)

	_, err = c.Residual([]int32{1})
	assert.ErrorIs(t, err, canvas.ErrShapeMismatch)
}

// TestInvert_RoundTrip: inverting twice is the identity.
func TestInvert_RoundTrip(t *testing.T) {
	g, err := canvas.NewGray(16, 16)
	require.NoError(t, err)
	for i := range g.Pix {
		g.Pix[i] = uint8(i * 7)
	}
	assert.Equal(t, g.Pix, canvas.Invert(canvas.Invert(g)).Pix)

	c, err := canvas.New(16, 16)
	require.NoError(t, err)
	c.Draw(pins.Pin{Row: 0, Col: 0}, pins.Pin{Row: 15, Col: 9}, 300)
	d := c.Display()
	assert.Equal(t, d.Pix, canvas.Invert(canvas.Invert(d)).Pix)
}

// -----------------------------------------------------------------------------
// Line cache
// -----------------------------------------------------------------------------

func TestLineCache_MatchesDraw(t *testing.T) {
	set, err := pins.Generate(12, 40, 40)
	require.NoError(t, err)
	lc, err := canvas.NewLineCache(set, 40, 40)
	require.NoError(t, err)
	require.Equal(t, chords.Count(12), lc.Len())
	assert.Equal(t, 12, lc.Pins())

	for k, ch := range chords.All(12) {
		direct, err := canvas.New(40, 40)
		require.NoError(t, err)
		direct.Draw(set[ch.I], set[ch.J], 1)

		cached, err := canvas.New(40, 40)
		require.NoError(t, err)
		cached.AddPixels(lc.At(k), 1)

		require.Equal(t, direct.Values(), cached.Values(), "chord %v", ch)
	}
	assert.Nil(t, lc.Pixels(chords.Chord{I: 4, J: 4}))
}

func TestLineCache_Render(t *testing.T) {
	set, err := pins.Generate(6, 20, 20)
	require.NoError(t, err)
	lc, err := canvas.NewLineCache(set, 20, 20)
	require.NoError(t, err)

	c, err := canvas.New(20, 20, canvas.WithLimit(canvas.ByteLimit))
	require.NoError(t, err)
	require.NoError(t, lc.Render(c, chords.Sequence{{From: 0, To: 3}, {From: 3, To: 0}}, 200))
	assert.EqualValues(t, 255, c.Value(set[0].Row, set[0].Col))

	small, err := canvas.New(5, 5)
	require.NoError(t, err)
	assert.ErrorIs(t, lc.Render(small, nil, 1), canvas.ErrShapeMismatch)
}

// -----------------------------------------------------------------------------
// Gray conversions
// -----------------------------------------------------------------------------

func TestGray_ImageRoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(2, 3, 6, 5))
	src.Set(2, 3, color.White)
	src.Set(5, 4, color.RGBA{R: 128, G: 128, B: 128, A: 255})

	g, err := canvas.FromImage(src)
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	assert.Equal(t, 4, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.EqualValues(t, 255, g.At(0, 0))
	assert.EqualValues(t, 128, g.At(1, 3))

	back := g.ToImage()
	assert.EqualValues(t, 255, back.GrayAt(0, 0).Y)
	assert.Equal(t, g.Sum(), canvas.Invert(canvas.Invert(g)).Sum())
}

func TestNew_InvalidShape(t *testing.T) {
	_, err := canvas.New(0, 3)
	assert.ErrorIs(t, err, canvas.ErrInvalidShape)
	_, err = canvas.NewGray(3, -1)
	assert.ErrorIs(t, err, canvas.ErrInvalidShape)
	assert.ErrorIs(t, (&canvas.Gray{Width: 2, Height: 2}).Validate(), canvas.ErrInvalidShape)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
