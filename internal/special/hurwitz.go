package special

import (
	"math"
	"math/cmplx"
)

// emCoeff[j] = B_{2(j+1)} / (2(j+1))!, the Euler-Maclaurin correction
// coefficients.
var emCoeff = [...]float64{
	1.0 / 12.0,
	-1.0 / 720.0,
	1.0 / 30240.0,
	-1.0 / 1209600.0,
	1.0 / 47900160.0,
	-691.0 / 1307674368000.0,
	1.0 / 74724249600.0,
	-3617.0 / 10670622842880000.0,
	43867.0 / 5109094217170944000.0,
	-174611.0 / 802857662698291200000.0,
}

func isBad(z complex128) bool {
	return math.IsNaN(real(z)) || math.IsNaN(imag(z)) ||
		math.IsInf(real(z), 0) || math.IsInf(imag(z), 0)
}

// HurwitzZeta evaluates the generalized zeta function
//
//	ζ(s, a) = Σ_{k≥0} (k+a)^(-s)
//
// by Euler-Maclaurin summation, analytically continued to all s ≠ 1.
// The shift parameter a may be any complex number except zero and the
// negative integers, which sit on poles of the shifted terms.
func HurwitzZeta(s, a complex128) (complex128, error) {
	if s == 1 {
		return 0, ErrPole
	}

	var sum complex128

	// Pull a into Re(a) >= 1 term by term. Each pulled term is a
	// plain power, so the continuation in a is exact.
	for real(a) < 1 {
		if imag(a) == 0 && real(a) == math.Trunc(real(a)) && real(a) <= 0 {
			return 0, ErrDomain
		}
		sum += cmplx.Pow(a, -s)
		a += 1
	}

	// Truncation point grows with |Im s| to keep the asymptotic tail
	// inside its region of validity.
	n := 20 + int(math.Abs(imag(s))/2)
	if n > 300 {
		n = 300
	}

	for k := 0; k < n; k++ {
		sum += cmplx.Pow(a+complex(float64(k), 0), -s)
	}

	q := a + complex(float64(n), 0)
	sum += cmplx.Pow(q, 1-s) / (s - 1)
	sum += cmplx.Pow(q, -s) / 2

	// Correction terms: B_{2j}/(2j)! · s(s+1)…(s+2j-2) · q^(-s-2j+1).
	t := cmplx.Pow(q, -s-1)
	poch := s
	q2 := q * q
	for j, c := range emCoeff {
		term := complex(c, 0) * poch * t
		sum += term
		if cmplx.Abs(term) < 1e-18*(1+cmplx.Abs(sum)) {
			break
		}
		k := float64(2 * (j + 1))
		poch *= (s + complex(k-1, 0)) * (s + complex(k, 0))
		t /= q2
	}

	if isBad(sum) {
		return 0, ErrNoConverge
	}
	return sum, nil
}

// Zeta evaluates the Riemann zeta function ζ(s) = ζ(s, 1).
func Zeta(s complex128) (complex128, error) {
	return HurwitzZeta(s, 1)
}
