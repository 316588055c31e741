package funcs

import (
	"math"
	"math/cmplx"

	"github.com/san-kum/zplot/internal/grid"
)

// Default truncation lengths. Chosen for visual adequacy on a
// 400-pixel grid rather than a fixed accuracy target; all entry points
// accept an explicit term count, with n <= 0 selecting the default.
const (
	DefaultLambert1Terms    = 100
	DefaultVonMangoldtTerms = 1000
	DefaultLiouvilleTerms   = 30
	DefaultEulerTerms       = 1000
	DefaultPhiTerms         = 100
)

func termCount(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}

// MaskOutsideUnitDisk returns vals with the sentinel substituted at
// every index whose source point lies strictly outside the unit disk.
// The boundary |z| = 1 is kept. Separating the mask from the summation
// keeps the divergence policy independently testable.
func MaskOutsideUnitDisk(src, vals *grid.Array) *grid.Array {
	out := vals.Clone()
	for i, z := range src.Data {
		if cmplx.Abs(z) > 1 {
			out.Data[i] = grid.NaN()
		}
	}
	return out
}

// Lambert1 evaluates the truncated Lambert series
// Σ_{k=1}^{n} z^k / (1 - z^k), the generating function of the
// divisor-count sequence. Points outside the unit disk are masked.
func Lambert1(z *grid.Array, n int) *grid.Array {
	n = termCount(n, DefaultLambert1Terms)
	out := grid.Map(func(z complex128) complex128 {
		zn := z
		var s complex128
		for k := 0; k < n; k++ {
			s += zn / (1 - zn)
			zn *= z
		}
		return s
	}, z)
	return MaskOutsideUnitDisk(z, out)
}

// LambertPhi evaluates the totient-weighted Lambert series
// Σ_{k=1}^{n} φ(k)·z^k / (1 - z^k), which sums to the closed form
// z/(1-z)² inside the unit disk.
func LambertPhi(z *grid.Array, n int) *grid.Array {
	n = termCount(n, DefaultPhiTerms)
	phi := totients(n)
	out := grid.Map(func(z complex128) complex128 {
		zn := z
		var s complex128
		for k := 1; k <= n; k++ {
			s += complex(float64(phi[k]), 0) * zn / (1 - zn)
			zn *= z
		}
		return s
	}, z)
	return MaskOutsideUnitDisk(z, out)
}

// totients sieves Euler's totient function for 1..n.
func totients(n int) []int {
	phi := make([]int, n+1)
	for i := 0; i <= n; i++ {
		phi[i] = i
	}
	for p := 2; p <= n; p++ {
		if phi[p] == p { // p prime
			for m := p; m <= n; m += p {
				phi[m] -= phi[m] / p
			}
		}
	}
	return phi
}

// LambertVonMangoldt evaluates Σ_{k=1}^{n} ln(k)·z^k, the power series
// with von Mangoldt-style logarithmic weights. Points outside the unit
// disk are masked.
func LambertVonMangoldt(z *grid.Array, n int) *grid.Array {
	n = termCount(n, DefaultVonMangoldtTerms)
	logs := make([]float64, n+1)
	for k := 2; k <= n; k++ {
		logs[k] = math.Log(float64(k))
	}
	out := grid.Map(func(z complex128) complex128 {
		zn := z
		var s complex128
		for k := 1; k <= n; k++ {
			s += complex(logs[k], 0) * zn
			zn *= z
		}
		return s
	}, z)
	return MaskOutsideUnitDisk(z, out)
}

// LambertLiouville evaluates Σ_{k=0}^{n-1} z^(k²). The running power
// advances by odd steps, z^((k+1)²) = z^(k²)·z^(2k+1), so no large
// exponentiations are recomputed. Points outside the unit disk are
// masked.
func LambertLiouville(z *grid.Array, n int) *grid.Array {
	n = termCount(n, DefaultLiouvilleTerms)
	out := grid.Map(func(z complex128) complex128 {
		p := complex(1, 0)   // z^(k²)
		odd := z             // z^(2k+1)
		z2 := z * z
		var s complex128
		for k := 0; k < n; k++ {
			s += p
			p *= odd
			odd *= z2
		}
		return s
	}, z)
	return MaskOutsideUnitDisk(z, out)
}

// EulerFunction evaluates the truncated Euler product
// Π_{k=1}^{n} (1 - z^k). An element whose running power still exceeds
// magnitude 1 after truncation is masked; this matches the unit-disk
// cutoff and avoids contour artifacts right at the boundary.
func EulerFunction(z *grid.Array, n int) *grid.Array {
	n = termCount(n, DefaultEulerTerms)
	return grid.Map(func(z complex128) complex128 {
		out := complex(1, 0)
		zk := z
		for k := 0; k < n; k++ {
			out *= 1 - zk
			zk *= z
		}
		if cmplx.Abs(zk) > 1 {
			return grid.NaN()
		}
		return out
	}, z)
}
