// Package nnls solves non-negative least squares problems:
//
//	minimize ‖Ax − b‖²   subject to   x ≥ 0
//
// with the Lawson–Hanson active-set method, run entirely on the normal
// equations (AᵀA, Aᵀb). Forming the Gram matrix once makes every
// passive-set solve a small dense Cholesky factorization, which suits the
// string-art case of many short sparse columns (Problem) as well as small
// dense systems (SolveDense).
//
// Algorithm Outline:
//  1. x = 0, passive set P = ∅, gradient w = Aᵀb − AᵀA·x.
//  2. While some j ∉ P has w_j > Tolerance: move the largest into P.
//  3. Solve the unconstrained subproblem on P. If some s_j ≤ 0, step
//     from x toward s until the first variable hits zero, drop the zeroed
//     variables from P and re-solve.
//  4. Accept s, recompute w, repeat.
//
// Errors:
//   - ErrNoConvergence — MaxIter subproblem solves were not enough.
//   - ErrSingular      — a passive-set system was not positive definite.
//   - ErrNaNInf        — non-finite data or an arithmetic blow-up.
//
// Complexity: O(iter · k³) for passive sets of size k, plus the Gram build.
package nnls

import (
	"fmt"
	"math"
)

// Options tunes the solver. Zero values select defaults.
type Options struct {
	// MaxIter bounds the number of passive-set solves; 0 ⇒ 3·cols.
	MaxIter int

	// Tolerance is the gradient threshold for entering the passive set;
	// 0 ⇒ 1e-10·max(1, max|Aᵀb|).
	Tolerance float64

	// Ridge is added to the diagonal of every passive-set system, relative
	// to the largest diagonal entry of AᵀA. Negative values are invalid.
	Ridge float64
}

// DefaultOptions returns automatic MaxIter and Tolerance and a 1e-12
// relative ridge.
func DefaultOptions() Options {
	return Options{Ridge: 1e-12}
}

// Result is the solver output.
type Result struct {
	// X is the non-negative solution, one entry per column.
	X []float64

	// ResidualNorm is ‖Ax − b‖.
	ResidualNorm float64

	// Iterations is the number of passive-set solves performed.
	Iterations int
}

// SolveDense solves the problem for a dense A.
func SolveDense(a *Dense, b []float64, opts Options) (Result, error) {
	if a == nil {
		return Result{}, ErrBadShape
	}
	g, atb, err := a.Gram(b)
	if err != nil {
		return Result{}, err
	}
	var bb, v float64
	for _, v = range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Result{}, ErrNaNInf
		}
		bb += v * v
	}

	return solveGram(g, atb, bb, opts)
}

// solveGram is the Lawson–Hanson core on G = AᵀA, atb = Aᵀb, bb = ‖b‖².
func solveGram(g *Dense, atb []float64, bb float64, opts Options) (Result, error) {
	n := g.c
	if len(atb) != n || g.r != n {
		return Result{}, ErrDimensionMismatch
	}
	if opts.Ridge < 0 || opts.MaxIter < 0 || opts.Tolerance < 0 {
		return Result{}, fmt.Errorf("nnls: negative option: %w", ErrBadShape)
	}

	maxIter := opts.MaxIter
	if maxIter == 0 {
		maxIter = 3 * n
	}
	tol := opts.Tolerance
	if tol == 0 {
		tol = 1e-10 * math.Max(1, maxAbs(atb))
	}
	var (
		diagMax float64
		i       int
	)
	for i = 0; i < n; i++ {
		diagMax = math.Max(diagMax, g.at(i, i))
	}
	ridge := opts.Ridge * diagMax

	var (
		x       = make([]float64, n)
		s       = make([]float64, n)
		w       = make([]float64, n)
		passive = make([]bool, n)
		iters   int
		t       int
		wmax    float64
		alpha   float64
		a       float64
		j       int
		err     error
	)
	copy(w, atb)

	for {
		// Stage 2: pick the most violated non-passive variable.
		t, wmax = -1, tol
		for j = 0; j < n; j++ {
			if !passive[j] && w[j] > wmax {
				t, wmax = j, w[j]
			}
		}
		if t < 0 {
			break
		}
		passive[t] = true

		// Stage 3: inner feasibility loop.
		for {
			if iters >= maxIter {
				return Result{X: x, Iterations: iters}, fmt.Errorf("after %d solves: %w", iters, ErrNoConvergence)
			}
			iters++
			if err = solvePassive(g, atb, passive, ridge, s); err != nil {
				return Result{X: x, Iterations: iters}, err
			}

			alpha = math.Inf(1)
			for j = 0; j < n; j++ {
				if passive[j] && s[j] <= 0 {
					a = 0
					if x[j]-s[j] > 0 {
						a = x[j] / (x[j] - s[j])
					}
					if a < alpha {
						alpha = a
					}
				}
			}
			if math.IsInf(alpha, 1) {
				copy(x, s)
				break
			}
			for j = 0; j < n; j++ {
				x[j] += alpha * (s[j] - x[j])
				if passive[j] && x[j] <= 0 {
					passive[j] = false
					x[j] = 0
				}
			}
			// Force out the variable that caused the step, guarding against
			// round-off leaving it marginally positive.
			for j = 0; j < n; j++ {
				if passive[j] && s[j] <= 0 && x[j] <= tol*1e-6 {
					passive[j] = false
					x[j] = 0
				}
			}
		}

		// Stage 4: new gradient.
		gradient(g, atb, x, w)
	}

	for j = 0; j < n; j++ {
		if math.IsNaN(x[j]) || math.IsInf(x[j], 0) {
			return Result{Iterations: iters}, ErrNaNInf
		}
	}

	return Result{X: x, ResidualNorm: residualNorm(g, atb, bb, x), Iterations: iters}, nil
}

// gradient writes w = atb − G·x.
func gradient(g *Dense, atb, x, w []float64) {
	n := g.c
	var (
		i, j int
		sum  float64
	)
	for i = 0; i < n; i++ {
		sum = atb[i]
		for j = 0; j < n; j++ {
			if x[j] != 0 {
				sum -= g.data[i*n+j] * x[j]
			}
		}
		w[i] = sum
	}
}

// solvePassive solves G[P,P]·s_P = atb[P] by Cholesky and writes s with
// zeros outside P.
func solvePassive(g *Dense, atb []float64, passive []bool, ridge float64, s []float64) error {
	n := g.c
	idx := make([]int, 0, n)
	var j int
	for j = 0; j < n; j++ {
		s[j] = 0
		if passive[j] {
			idx = append(idx, j)
		}
	}
	k := len(idx)
	if k == 0 {
		return nil
	}

	// L is the lower Cholesky factor, stored row-major k×k.
	l := make([]float64, k*k)
	var (
		r, c, m int
		sum     float64
	)
	for r = 0; r < k; r++ {
		for c = 0; c <= r; c++ {
			sum = g.data[idx[r]*n+idx[c]]
			if r == c {
				sum += ridge
			}
			for m = 0; m < c; m++ {
				sum -= l[r*k+m] * l[c*k+m]
			}
			if r == c {
				if !(sum > 0) {
					return fmt.Errorf("pivot %d of %d: %w", r, k, ErrSingular)
				}
				l[r*k+r] = math.Sqrt(sum)
			} else {
				l[r*k+c] = sum / l[c*k+c]
			}
		}
	}

	// forward: L·y = atb[P]
	y := make([]float64, k)
	for r = 0; r < k; r++ {
		sum = atb[idx[r]]
		for m = 0; m < r; m++ {
			sum -= l[r*k+m] * y[m]
		}
		y[r] = sum / l[r*k+r]
	}
	// backward: Lᵀ·z = y
	for r = k - 1; r >= 0; r-- {
		sum = y[r]
		for m = r + 1; m < k; m++ {
			sum -= l[m*k+r] * s[idx[m]]
		}
		s[idx[r]] = sum / l[r*k+r]
		if math.IsNaN(s[idx[r]]) || math.IsInf(s[idx[r]], 0) {
			return ErrNaNInf
		}
	}

	return nil
}

// residualNorm evaluates ‖Ax − b‖ = sqrt(‖b‖² − 2xᵀAᵀb + xᵀGx) without A.
func residualNorm(g *Dense, atb []float64, bb float64, x []float64) float64 {
	n := g.c
	var (
		i, j   int
		quad   float64
		linear float64
		row    float64
	)
	for i = 0; i < n; i++ {
		if x[i] == 0 {
			continue
		}
		linear += x[i] * atb[i]
		row = 0
		for j = 0; j < n; j++ {
			row += g.data[i*n+j] * x[j]
		}
		quad += x[i] * row
	}
	r := bb - 2*linear + quad
	if r < 0 {
		r = 0
	}

	return math.Sqrt(r)
}

// maxAbs returns max |v|.
func maxAbs(v []float64) float64 {
	var (
		m float64
		e float64
	)
	for _, e = range v {
		m = math.Max(m, math.Abs(e))
	}

	return m
}
