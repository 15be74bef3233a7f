// SPDX-License-Identifier: MIT

// Package matrix: domain-facing types.
// This file contains ONLY the public read-only Matrix interface. Errors and
// options live in dedicated files (errors.go, options.go).
package matrix

import "github.com/katalvlaran/qlinalg/cplx"

// Matrix is a read-only view of a rectangular grid of complex values.
//
// Every kernel in this package accepts Matrix and returns a freshly allocated
// *Dense. Passing *Dense operands unlocks flat-slice fast paths; any other
// implementation is served through At.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (cplx.Complex, error)
}
