package canvas

import "github.com/katalvlaran/stringart/pins"

// Point is a pixel coordinate.
type Point struct {
	Row int
	Col int
}

// Line returns the Bresenham pixel path from a to b, both endpoints
// included. Consecutive points are 8-neighbours and no point repeats.
// The path is traced from the lexicographically smaller endpoint, so
// Line(a, b) and Line(b, a) cover the same pixels in reverse order.
//
// Complexity: O(max(|Δrow|, |Δcol|)).
func Line(a, b pins.Pin) []Point {
	if b.Row < a.Row || (b.Row == a.Row && b.Col < a.Col) {
		out := bresenham(b, a)
		var l, r int
		for l, r = 0, len(out)-1; l < r; l, r = l+1, r-1 {
			out[l], out[r] = out[r], out[l]
		}

		return out
	}

	return bresenham(a, b)
}

// bresenham traces the integer line from a to b.
func bresenham(a, b pins.Pin) []Point {
	var (
		x0, y0 = a.Col, a.Row
		x1, y1 = b.Col, b.Row
		dx     = abs(x1 - x0)
		dy     = abs(y1 - y0)
		sx     = 1
		sy     = 1
	)
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	out := make([]Point, 0, max(dx, dy)+1)
	err := dx - dy
	var e2 int
	for {
		out = append(out, Point{Row: y0, Col: x0})
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 = 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}

	return out
}

// lineIndices returns the flattened in-bounds pixel offsets of Line(a, b)
// for a width×height buffer.
func lineIndices(a, b pins.Pin, width, height int) []int32 {
	pts := Line(a, b)
	out := make([]int32, 0, len(pts))
	var p Point
	for _, p = range pts {
		if p.Row < 0 || p.Row >= height || p.Col < 0 || p.Col >= width {
			continue
		}
		out = append(out, int32(p.Row*width+p.Col))
	}

	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
