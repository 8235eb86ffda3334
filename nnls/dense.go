package nnls

import (
	"fmt"
	"math"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c zero matrix.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col). NaN and ±Inf are rejected.
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// at is the unchecked accessor used in hot loops.
func (m *Dense) at(row, col int) float64 { return m.data[row*m.c+col] }

// MatVec returns m·x.
//
// Complexity: O(r*c).
func (m *Dense) MatVec(x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, fmt.Errorf("MatVec: %d cols vs %d entries: %w", m.c, len(x), ErrDimensionMismatch)
	}
	out := make([]float64, m.r)
	var (
		i, j int
		s    float64
	)
	for i = 0; i < m.r; i++ {
		s = 0
		for j = 0; j < m.c; j++ {
			s += m.data[i*m.c+j] * x[j]
		}
		out[i] = s
	}

	return out, nil
}

// Gram returns AᵀA (c×c) and Aᵀb for A = m.
//
// Complexity: O(r*c²).
func (m *Dense) Gram(b []float64) (*Dense, []float64, error) {
	if len(b) != m.r {
		return nil, nil, fmt.Errorf("Gram: %d rows vs %d targets: %w", m.r, len(b), ErrDimensionMismatch)
	}
	g, _ := NewDense(m.c, m.c)
	atb := make([]float64, m.c)
	var (
		i, j, k int
		row     []float64
		v       float64
	)
	for i = 0; i < m.r; i++ {
		row = m.data[i*m.c : (i+1)*m.c]
		for j = 0; j < m.c; j++ {
			v = row[j]
			if v == 0 {
				continue
			}
			atb[j] += v * b[i]
			for k = j; k < m.c; k++ {
				g.data[j*m.c+k] += v * row[k]
			}
		}
	}
	// mirror the upper triangle
	for j = 0; j < m.c; j++ {
		for k = j + 1; k < m.c; k++ {
			g.data[k*m.c+j] = g.data[j*m.c+k]
		}
	}

	return g, atb, nil
}
