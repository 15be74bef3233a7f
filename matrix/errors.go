// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping across logs. Kernels wrap with fmt.Errorf("<Op>: %w", ErrX);
// callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index/non-square -> malformed input -> dimension mismatch -> NaN/Inf.
// Every operand is checked for nil before any shape is inspected.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive or too large to address as a single buffer.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or Add on different shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrMalformedInput signals that caller-supplied data does not match the
	// declared shape (ragged rows, wrong row count), or that a column-vector-only
	// operation such as ToArray received a matrix with Cols != 1.
	ErrMalformedInput = errors.New("matrix: malformed input")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf component where the numeric policy
	// (WithValidateNaNInf) requires finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
