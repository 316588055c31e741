package funcs_test

import (
	"math/cmplx"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/zplot/internal/funcs"
	"github.com/san-kum/zplot/internal/grid"
)

// divisorSeries computes Σ d(m)·z^m directly, the closed counterpart
// of the type-1 Lambert series.
func divisorSeries(z complex128, terms int) complex128 {
	var s complex128
	for m := 1; m <= terms; m++ {
		d := 0
		for k := 1; k <= m; k++ {
			if m%k == 0 {
				d++
			}
		}
		s += complex(float64(d), 0) * cmplx.Pow(z, complex(float64(m), 0))
	}
	return s
}

var _ = Describe("Lambert-series summators", func() {
	insidePoints := []complex128{0.3, -0.5, 0.2 + 0.4i, -0.1 - 0.6i}
	outsidePoints := []complex128{1.5, -2, 1 + 1i, 0.9 - 0.9i}

	Describe("Lambert1", func() {
		It("matches the divisor-count power series inside the disk", func() {
			for _, z := range insidePoints {
				out := funcs.Lambert1(grid.Scalar(z), 1000)
				Expect(cmplx.Abs(out.Data[0]-divisorSeries(z, 200))).To(
					BeNumerically("<", 1e-10), "z = %v", z)
			}
		})

		It("masks every point outside the unit disk regardless of n", func() {
			for _, n := range []int{5, 100, 2000} {
				out := funcs.Lambert1(grid.FromSlice(outsidePoints), n)
				for i, v := range out.Data {
					Expect(grid.IsNaN(v)).To(BeTrue(), "n=%d z=%v", n, outsidePoints[i])
				}
			}
		})
	})

	Describe("LambertPhi", func() {
		It("sums to z/(1-z)² inside the disk", func() {
			for _, z := range append(insidePoints, 0.9, -0.9, 0.6+0.6i) {
				out := funcs.LambertPhi(grid.Scalar(z), 1000)
				want := z / ((1 - z) * (1 - z))
				Expect(cmplx.Abs(out.Data[0]-want)).To(
					BeNumerically("<", 1e-8*(1+cmplx.Abs(want))), "z = %v", z)
			}
		})

		It("masks outside the unit disk", func() {
			out := funcs.LambertPhi(grid.FromSlice(outsidePoints), 0)
			for _, v := range out.Data {
				Expect(grid.IsNaN(v)).To(BeTrue())
			}
		})
	})

	Describe("LambertVonMangoldt", func() {
		It("matches direct summation", func() {
			n := 50
			for _, z := range insidePoints {
				out := funcs.LambertVonMangoldt(grid.Scalar(z), n)
				var want complex128
				for k := 2; k <= n; k++ {
					want += cmplx.Log(complex(float64(k), 0)) * cmplx.Pow(z, complex(float64(k), 0))
				}
				Expect(cmplx.Abs(out.Data[0]-want)).To(BeNumerically("<", 1e-12), "z = %v", z)
			}
		})

		It("masks outside the unit disk", func() {
			out := funcs.LambertVonMangoldt(grid.FromSlice(outsidePoints), 10)
			for _, v := range out.Data {
				Expect(grid.IsNaN(v)).To(BeTrue())
			}
		})
	})

	Describe("LambertLiouville", func() {
		It("sums square-exponent powers", func() {
			n := 6
			for _, z := range insidePoints {
				out := funcs.LambertLiouville(grid.Scalar(z), n)
				var want complex128
				for k := 0; k < n; k++ {
					want += cmplx.Pow(z, complex(float64(k*k), 0))
				}
				Expect(cmplx.Abs(out.Data[0]-want)).To(BeNumerically("<", 1e-12), "z = %v", z)
			}
		})

		It("keeps the boundary of the disk", func() {
			out := funcs.LambertLiouville(grid.Scalar(1i), 0)
			Expect(grid.IsNaN(out.Data[0])).To(BeFalse())
		})

		It("masks outside the unit disk", func() {
			out := funcs.LambertLiouville(grid.FromSlice(outsidePoints), 0)
			for _, v := range out.Data {
				Expect(grid.IsNaN(v)).To(BeTrue())
			}
		})
	})

	Describe("EulerFunction", func() {
		It("keeps inside points finite and masks outside points", func() {
			out := funcs.EulerFunction(grid.FromRows([][]complex128{{0.5, 1.5}}), 1000)
			Expect(out.Shape).To(Equal([]int{1, 2}))
			Expect(grid.IsNaN(out.At(0, 0))).To(BeFalse())
			Expect(cmplx.IsInf(out.At(0, 0))).To(BeFalse())
			Expect(grid.IsNaN(out.At(0, 1))).To(BeTrue())
		})

		It("matches the direct product for small n", func() {
			z := complex128(0.4 + 0.2i)
			out := funcs.EulerFunction(grid.Scalar(z), 4)
			want := (1 - z) * (1 - z*z) * (1 - z*z*z) * (1 - z*z*z*z)
			Expect(cmplx.Abs(out.Data[0] - want)).To(BeNumerically("<", 1e-14))
		})
	})

	Describe("MaskOutsideUnitDisk", func() {
		It("replaces only the outside points and preserves shape", func() {
			src := grid.FromSlice([]complex128{0.5, 2, 1i, -1.01})
			vals := grid.FromSlice([]complex128{10, 20, 30, 40})
			out := funcs.MaskOutsideUnitDisk(src, vals)

			Expect(out.SameShape(vals)).To(BeTrue())
			Expect(out.Data[0]).To(Equal(complex128(10)))
			Expect(grid.IsNaN(out.Data[1])).To(BeTrue())
			Expect(out.Data[2]).To(Equal(complex128(30)))
			Expect(grid.IsNaN(out.Data[3])).To(BeTrue())
			// input untouched
			Expect(vals.Data[1]).To(Equal(complex128(20)))
		})
	})
})
