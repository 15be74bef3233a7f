package cplx_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/qlinalg/cplx"
	. "github.com/smartystreets/goconvey/convey"
)

// sample draws n deterministic complex values with components in [-10, 10).
func sample(seed int64, n int) []cplx.Complex {
	rng := rand.New(rand.NewSource(seed))
	out := make([]cplx.Complex, n)
	for i := range out {
		out[i] = cplx.New(rng.Float64()*20-10, rng.Float64()*20-10)
	}

	return out
}

func TestComplexArithmetic(t *testing.T) {
	Convey("Given two complex values", t, func() {
		a := cplx.New(1, 2)
		b := cplx.New(3, -4)

		Convey("When adding them", func() {
			sum := cplx.Add(a, b)

			Convey("Then the components are summed", func() {
				So(sum, ShouldResemble, cplx.New(4, -2))
			})

			Convey("And the inputs are left untouched", func() {
				So(a, ShouldResemble, cplx.New(1, 2))
				So(b, ShouldResemble, cplx.New(3, -4))
			})
		})

		Convey("When multiplying them", func() {
			// (1+2i)(3-4i) = 3 - 4i + 6i - 8i² = 11 + 2i
			So(cplx.Mul(a, b), ShouldResemble, cplx.New(11, 2))
			So(a.Mul(b), ShouldResemble, cplx.New(11, 2))
		})

		Convey("When subtracting them", func() {
			So(cplx.Sub(a, b), ShouldResemble, cplx.New(-2, 6))
			So(a.Sub(b).Add(b), ShouldResemble, a)
		})
	})

	Convey("Given the imaginary unit", t, func() {
		Convey("Then i² is -1", func() {
			So(cplx.Mul(cplx.I, cplx.I), ShouldResemble, cplx.New(-1, 0))
		})

		Convey("Then i·(-i) is 1", func() {
			So(cplx.I.Mul(cplx.NegI), ShouldResemble, cplx.One)
		})
	})
}

func TestComplexProperties(t *testing.T) {
	vals := sample(42, 64)

	Convey("Given a deterministic sample of complex values", t, func() {
		Convey("Then Add and Mul commute exactly", func() {
			for i := 0; i+1 < len(vals); i++ {
				a, b := vals[i], vals[i+1]
				So(cplx.Add(a, b), ShouldResemble, cplx.Add(b, a))
				So(cplx.Mul(a, b), ShouldResemble, cplx.Mul(b, a))
			}
		})

		Convey("Then Mul distributes over Add within tolerance", func() {
			for i := 0; i+2 < len(vals); i++ {
				a, b, c := vals[i], vals[i+1], vals[i+2]
				lhs := cplx.Mul(a, cplx.Add(b, c))
				rhs := cplx.Add(cplx.Mul(a, b), cplx.Mul(a, c))
				So(lhs.Real, ShouldAlmostEqual, rhs.Real, 1e-9)
				So(lhs.Imag, ShouldAlmostEqual, rhs.Imag, 1e-9)
			}
		})

		Convey("Then Zero and One are identities", func() {
			for _, z := range vals {
				So(cplx.Add(z, cplx.Zero), ShouldResemble, z)
				So(cplx.Mul(z, cplx.One), ShouldResemble, z)
			}
		})

		Convey("Then z·z̄ equals |z|² on the real axis", func() {
			for _, z := range vals {
				p := z.Mul(z.Conj())
				So(p.Real, ShouldAlmostEqual, z.Abs2(), 1e-9)
				So(p.Imag, ShouldAlmostEqual, 0, 1e-12)
				So(z.Abs(), ShouldAlmostEqual, math.Sqrt(z.Abs2()), 1e-9)
			}
		})
	})
}

func TestComplexNonFinitePropagation(t *testing.T) {
	Convey("Given non-finite inputs", t, func() {
		nan := cplx.New(math.NaN(), 0)
		inf := cplx.New(math.Inf(1), 0)

		Convey("Then NaN propagates through Add", func() {
			So(cplx.Add(nan, cplx.One).IsNaN(), ShouldBeTrue)
		})

		Convey("Then Inf propagates through Add", func() {
			sum := cplx.Add(inf, cplx.One)
			So(math.IsInf(sum.Real, 1), ShouldBeTrue)
			So(sum.IsFinite(), ShouldBeFalse)
		})

		Convey("Then Inf·i follows the component formula", func() {
			// real: Inf*0 - 0*1 = NaN; imag: Inf*1 + 0*0 = Inf
			p := cplx.Mul(inf, cplx.I)
			So(math.IsNaN(p.Real), ShouldBeTrue)
			So(math.IsInf(p.Imag, 1), ShouldBeTrue)
		})
	})
}

func TestComplexConversions(t *testing.T) {
	Convey("Given conversions to and from the builtin type", t, func() {
		z := cplx.New(0.5, -1.25)

		So(cplx.FromComplex128(z.Complex128()), ShouldResemble, z)
		So(z.Complex128(), ShouldEqual, complex(0.5, -1.25))
	})

	Convey("Given a polar form", t, func() {
		z := cplx.FromPolar(2, math.Pi/2)

		So(z.Real, ShouldAlmostEqual, 0, 1e-12)
		So(z.Imag, ShouldAlmostEqual, 2, 1e-12)
		So(z.ApproxEqual(cplx.New(0, 2), 1e-12), ShouldBeTrue)
	})

	Convey("Given values printed with String", t, func() {
		So(cplx.New(1, 2).String(), ShouldEqual, "(1+2i)")
		So(cplx.New(1, -2).String(), ShouldEqual, "(1-2i)")
		So(cplx.New(0.5, math.Inf(1)).String(), ShouldEqual, "(0.5+Infi)")
		So(cplx.New(1, math.Copysign(0, -1)).String(), ShouldEqual, "(1-0i)")
	})
}

func TestApproxEqual(t *testing.T) {
	Convey("Given two nearly equal values", t, func() {
		a := cplx.New(1, 1)
		b := cplx.New(1+1e-12, 1-1e-12)

		So(cplx.ApproxEqual(a, b, 1e-9), ShouldBeTrue)
		So(a.ApproxEqual(b, 0), ShouldBeTrue)
		So(a.ApproxEqual(cplx.New(1.1, 1), 1e-9), ShouldBeFalse)
	})

	Convey("Given a NaN component", t, func() {
		n := cplx.New(math.NaN(), 0)

		So(n.ApproxEqual(n, 1), ShouldBeFalse)
	})
}
