// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (standard gates, random operators).
//   • Keep all data finite unless a test is explicitly about NaN/Inf propagation.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/qlinalg/cplx"
	"github.com/katalvlaran/qlinalg/matrix"
)

// tol is the absolute tolerance used for floating-point scenario checks.
const tol = 1e-9

// invSqrt2 is 1/√2, the Hadamard normalization.
var invSqrt2 = 1 / math.Sqrt2

// approx treats float64 values within tol as equal in cmp comparisons.
var approx = cmpopts.EquateApprox(0, tol)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Kernels then take the generic At-based path instead of the *Dense fast path.
type hide struct{ matrix.Matrix }

// hugeShape reports an arbitrary shape without backing storage, so shape
// checks can be exercised without allocating. Every entry reads as zero.
type hugeShape struct{ rows, cols int }

func (h hugeShape) Rows() int { return h.rows }
func (h hugeShape) Cols() int { return h.cols }

func (h hugeShape) At(i, j int) (cplx.Complex, error) { return cplx.Zero, nil }

// c is a terse constructor for fixtures.
func c(re, im float64) cplx.Complex { return cplx.New(re, im) }

// r is a terse constructor for real fixtures.
func r(re float64) cplx.Complex { return cplx.Real(re) }

// MustDense ALLOCATES an r×c zero *Dense or fails the test.
func MustDense(t testing.TB, rows, cols int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", rows, cols, err)
	}

	return m
}

// MustFrom BUILDS a *Dense from explicit rows or fails the test.
// The shape is taken from data, which must be rectangular.
func MustFrom(t testing.TB, data [][]cplx.Complex) *matrix.Dense {
	t.Helper()
	rows := len(data)
	cols := 0
	if rows > 0 {
		cols = len(data[0])
	}
	m, err := matrix.NewDenseFrom(rows, cols, data)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", rows, cols, err)
	}

	return m
}

// MustIdentity RETURNS I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) cplx.Complex {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandDense RETURNS a new rows×cols *Dense with deterministic U(-1,1)
// components for the given seed.
func RandDense(t testing.TB, rows, cols int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([][]cplx.Complex, rows)
	for i := range data {
		data[i] = make([]cplx.Complex, cols)
		for j := range data[i] {
			data[i][j] = c(rng.Float64()*2-1, rng.Float64()*2-1)
		}
	}

	return MustFrom(t, data)
}

// PauliX is the bit-flip gate [[0,1],[1,0]].
func PauliX(t testing.TB) *matrix.Dense {
	return MustFrom(t, [][]cplx.Complex{
		{cplx.Zero, cplx.One},
		{cplx.One, cplx.Zero},
	})
}

// PauliY is [[0,-i],[i,0]].
func PauliY(t testing.TB) *matrix.Dense {
	return MustFrom(t, [][]cplx.Complex{
		{cplx.Zero, cplx.NegI},
		{cplx.I, cplx.Zero},
	})
}

// Hadamard is 1/√2·[[1,1],[1,-1]].
func Hadamard(t testing.TB) *matrix.Dense {
	return MustFrom(t, [][]cplx.Complex{
		{r(invSqrt2), r(invSqrt2)},
		{r(invSqrt2), r(-invSqrt2)},
	})
}

// CNOT is the controlled-X gate with qubit 0 (most significant) as control.
func CNOT(t testing.TB) *matrix.Dense {
	return MustFrom(t, [][]cplx.Complex{
		{r(1), r(0), r(0), r(0)},
		{r(0), r(1), r(0), r(0)},
		{r(0), r(0), r(0), r(1)},
		{r(0), r(0), r(1), r(0)},
	})
}

// RequireClose FAILS the test unless got and want have the same shape and
// agree entry-wise within tol. On failure both matrices are dumped.
func RequireClose(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(want, got, matrix.WithEpsilon(tol))
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("matrices differ\nwant:\n%v\ngot:\n%v\nraw got: %s", want, got, spew.Sdump(rowsOf(t, got)))
	}
}

// rowsOf EXTRACTS [][]cplx.Complex from any Matrix.
func rowsOf(t testing.TB, m matrix.Matrix) [][]cplx.Complex {
	t.Helper()
	out := make([][]cplx.Complex, m.Rows())
	for i := range out {
		out[i] = make([]cplx.Complex, m.Cols())
		for j := range out[i] {
			out[i][j] = MustAt(t, m, i, j)
		}
	}

	return out
}

// RequireSameEntries compares entries with go-cmp, tolerating float drift.
func RequireSameEntries(t testing.TB, want, got [][]cplx.Complex) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}
