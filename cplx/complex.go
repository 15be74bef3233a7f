// SPDX-License-Identifier: MIT

// Package cplx - complex scalar with value semantics.
//
// Purpose:
//   - Represent one complex amplitude as an explicit (Real, Imag) pair of float64.
//   - Provide side-effect-free arithmetic: every operation returns a new value.
//
// Numeric policy:
//   - IEEE-754 double precision throughout. NaN and ±Inf propagate exactly as the
//     component formulas dictate; nothing here special-cases them.
//   - Products are converted to float64 before being summed, which forbids the
//     compiler from fusing them into FMA instructions. Results are therefore
//     identical on every GOARCH.
//
// Complexity quicksheet:
//   - Every operation is O(1) and allocation-free.

package cplx

import (
	"math"
	"strconv"
)

// Complex is a complex number stored as two float64 components.
// The zero value is 0+0i. Values are copied on assignment; no method mutates
// its receiver.
type Complex struct {
	Real float64 // real part
	Imag float64 // imaginary part
}

// Named constants for the common units.
var (
	Zero = Complex{}         // 0+0i, the additive identity
	One  = Complex{Real: 1}  // 1+0i, the multiplicative identity
	I    = Complex{Imag: 1}  // 0+1i, the imaginary unit
	NegI = Complex{Imag: -1} // 0-1i
)

// New returns re + im·i.
func New(re, im float64) Complex {
	return Complex{Real: re, Imag: im}
}

// Real returns re + 0i.
func Real(re float64) Complex {
	return Complex{Real: re}
}

// FromComplex128 converts a builtin complex128.
func FromComplex128(z complex128) Complex {
	return Complex{Real: real(z), Imag: imag(z)}
}

// FromPolar returns r·e^{iθ} = r·cos θ + i·r·sin θ.
func FromPolar(r, theta float64) Complex {
	s, c := math.Sincos(theta)

	return Complex{Real: r * c, Imag: r * s}
}

// Add returns a + b component-wise.
// Total function; NaN/Inf propagate per IEEE-754.
// Complexity: O(1).
func Add(a, b Complex) Complex {
	return Complex{Real: a.Real + b.Real, Imag: a.Imag + b.Imag}
}

// Mul returns the complex product a·b:
//
//	(a.Real*b.Real - a.Imag*b.Imag) + (a.Real*b.Imag + a.Imag*b.Real)i
//
// Implementation:
//   - Stage 1: form the four partial products, each rounded to float64.
//   - Stage 2: combine them with one subtraction and one addition.
//
// Behavior highlights:
//   - Total; no recovery of infinities is attempted (unlike C99 Annex G),
//     so Inf·0 parts yield NaN exactly as the formula does.
//
// Complexity:
//   - Time O(1), Space O(1).
func Mul(a, b Complex) Complex {
	rr := float64(a.Real * b.Real) // explicit conversions prevent FMA fusion
	ii := float64(a.Imag * b.Imag)
	ri := float64(a.Real * b.Imag)
	ir := float64(a.Imag * b.Real)

	return Complex{Real: rr - ii, Imag: ri + ir}
}

// Sub returns a - b component-wise.
func Sub(a, b Complex) Complex {
	return Complex{Real: a.Real - b.Real, Imag: a.Imag - b.Imag}
}

// Add is the method form of Add(z, w).
func (z Complex) Add(w Complex) Complex { return Add(z, w) }

// Mul is the method form of Mul(z, w).
func (z Complex) Mul(w Complex) Complex { return Mul(z, w) }

// Sub is the method form of Sub(z, w).
func (z Complex) Sub(w Complex) Complex { return Sub(z, w) }

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{Real: -z.Real, Imag: -z.Imag}
}

// Conj returns the complex conjugate z̄ = Real - Imag·i.
func (z Complex) Conj() Complex {
	return Complex{Real: z.Real, Imag: -z.Imag}
}

// Scale multiplies both components by the real factor f.
func (z Complex) Scale(f float64) Complex {
	return Complex{Real: z.Real * f, Imag: z.Imag * f}
}

// Abs returns the modulus |z|, computed with math.Hypot to avoid
// intermediate overflow.
func (z Complex) Abs() float64 {
	return math.Hypot(z.Real, z.Imag)
}

// Abs2 returns |z|², the probability weight of an amplitude.
func (z Complex) Abs2() float64 {
	return float64(z.Real*z.Real) + float64(z.Imag*z.Imag)
}

// Complex128 converts z to the builtin complex type.
func (z Complex) Complex128() complex128 {
	return complex(z.Real, z.Imag)
}

// IsNaN reports whether either component is NaN.
func (z Complex) IsNaN() bool {
	return math.IsNaN(z.Real) || math.IsNaN(z.Imag)
}

// IsInf reports whether either component is ±Inf.
func (z Complex) IsInf() bool {
	return math.IsInf(z.Real, 0) || math.IsInf(z.Imag, 0)
}

// IsFinite reports whether both components are finite.
func (z Complex) IsFinite() bool {
	return !z.IsNaN() && !z.IsInf()
}

// String renders z as "(re+imi)" using %g formatting, matching the layout
// fmt uses for complex128.
func (z Complex) String() string {
	buf := make([]byte, 0, 32)
	buf = append(buf, '(')
	buf = strconv.AppendFloat(buf, z.Real, 'g', -1, 64)
	if math.IsNaN(z.Imag) || (!math.Signbit(z.Imag) && !math.IsInf(z.Imag, 1)) {
		buf = append(buf, '+')
	}
	buf = strconv.AppendFloat(buf, z.Imag, 'g', -1, 64)
	buf = append(buf, 'i', ')')

	return string(buf)
}
