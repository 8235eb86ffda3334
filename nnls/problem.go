package nnls

import (
	"fmt"
	"math"
)

// column is a sparse column whose non-zero entries all share one value.
type column struct {
	rows  []int32
	value float64
}

// Problem is min ‖Ax − b‖² where A is assembled column by column from
// sparse, uniform-valued columns. Rasterized lines are exactly this shape:
// a short list of pixels, all carrying the same darkness.
type Problem struct {
	b    []float64
	cols []column
}

// NewProblem starts a problem with right-hand side b. b is not copied.
func NewProblem(b []float64) (*Problem, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty target", ErrBadShape)
	}
	var v float64
	for _, v = range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNaNInf
		}
	}

	return &Problem{b: b}, nil
}

// AddColumn appends a column with value at every listed row. rows must
// not repeat.
func (p *Problem) AddColumn(rows []int32, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return ErrNaNInf
	}
	var r int32
	for _, r = range rows {
		if r < 0 || int(r) >= len(p.b) {
			return fmt.Errorf("AddColumn: row %d of %d: %w", r, len(p.b), ErrOutOfRange)
		}
	}
	p.cols = append(p.cols, column{rows: rows, value: value})

	return nil
}

// Rows returns the number of rows of A.
func (p *Problem) Rows() int { return len(p.b) }

// Cols returns the number of columns added so far.
func (p *Problem) Cols() int { return len(p.cols) }

// Gram returns AᵀA and Aᵀb.
//
// Stage 1: invert the columns into a per-row list of covering columns.
// Stage 2: every pair of columns sharing a row contributes vᵢ·vⱼ.
//
// Complexity: O(Σ_rows k²) where k is the number of columns covering a
// row; memory O(nnz + c²).
func (p *Problem) Gram() (*Dense, []float64, error) {
	n := len(p.cols)
	if n == 0 {
		return nil, nil, fmt.Errorf("%w: no columns", ErrBadShape)
	}
	cover := make([][]int32, len(p.b))
	atb := make([]float64, n)
	var (
		j   int
		col column
		r   int32
	)
	for j, col = range p.cols {
		for _, r = range col.rows {
			cover[r] = append(cover[r], int32(j))
			atb[j] += col.value * p.b[r]
		}
	}

	g, _ := NewDense(n, n)
	var (
		list   []int32
		a, b   int
		ja, jb int32
		va     float64
	)
	for _, list = range cover {
		for a = 0; a < len(list); a++ {
			ja = list[a]
			va = p.cols[ja].value
			for b = a; b < len(list); b++ {
				jb = list[b]
				g.data[int(ja)*n+int(jb)] += va * p.cols[jb].value
			}
		}
	}
	// columns are appended in increasing order, so ja ≤ jb above: mirror.
	for a = 0; a < n; a++ {
		for b = a + 1; b < n; b++ {
			g.data[b*n+a] = g.data[a*n+b]
		}
	}

	return g, atb, nil
}

// Solve runs Lawson–Hanson on the assembled problem.
func (p *Problem) Solve(opts Options) (Result, error) {
	g, atb, err := p.Gram()
	if err != nil {
		return Result{}, err
	}
	var bb, v float64
	for _, v = range p.b {
		bb += v * v
	}

	return solveGram(g, atb, bb, opts)
}
