// Package nnls: sentinel error set.
//
// Every solver failure is one of these sentinels; callers match them with
// errors.Is. Context is added at the boundary with fmt.Errorf("…: %w").
package nnls

import "errors"

var (
	// ErrBadShape is returned for non-positive dimensions.
	ErrBadShape = errors.New("nnls: invalid shape")

	// ErrOutOfRange is returned by indexers for an index outside the matrix.
	ErrOutOfRange = errors.New("nnls: index out of range")

	// ErrDimensionMismatch is returned when operand sizes disagree.
	ErrDimensionMismatch = errors.New("nnls: dimension mismatch")

	// ErrNaNInf is returned when a NaN or ±Inf value reaches the solver.
	ErrNaNInf = errors.New("nnls: NaN or Inf encountered")

	// ErrSingular is returned when a passive-set system has a non-positive
	// Cholesky pivot.
	ErrSingular = errors.New("nnls: singular passive-set system")

	// ErrNoConvergence is returned when the iteration budget is exhausted.
	ErrNoConvergence = errors.New("nnls: iteration limit reached without convergence")
)
