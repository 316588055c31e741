package special

import "math/cmplx"

// Euler-Mascheroni constant.
const eulerGamma = 0.57721566490153286

const (
	seriesMax = 200
	seriesTol = 1e-16
)

// SinInt evaluates the sine integral Si(z) by its everywhere-convergent
// power series Σ (-1)^k z^(2k+1) / ((2k+1)(2k+1)!).
func SinInt(z complex128) complex128 {
	t := z // z^(2k+1)/(2k+1)!
	sum := z
	sign := complex(-1, 0)
	z2 := z * z
	for k := 1; k < seriesMax; k++ {
		kk := float64(2 * k)
		t *= z2 / complex(kk*(kk+1), 0)
		term := sign * t / complex(kk+1, 0)
		sum += term
		if cmplx.Abs(term) < seriesTol*(1+cmplx.Abs(sum)) {
			break
		}
		sign = -sign
	}
	return sum
}

// CosInt evaluates the cosine integral
// Ci(z) = γ + log z + Σ (-1)^k z^(2k) / (2k·(2k)!), principal log.
func CosInt(z complex128) complex128 {
	sum := complex(eulerGamma, 0) + cmplx.Log(z)
	t := complex(1, 0) // z^(2k)/(2k)!
	sign := complex(-1, 0)
	z2 := z * z
	for k := 1; k < seriesMax; k++ {
		kk := float64(2 * k)
		t *= z2 / complex(kk*(kk-1), 0)
		term := sign * t / complex(kk, 0)
		sum += term
		if cmplx.Abs(term) < seriesTol*(1+cmplx.Abs(sum)) {
			break
		}
		sign = -sign
	}
	return sum
}

// ExpIntEi evaluates the exponential integral
// Ei(z) = γ + log z + Σ z^k / (k·k!), principal log.
func ExpIntEi(z complex128) complex128 {
	sum := complex(eulerGamma, 0) + cmplx.Log(z)
	t := complex(1, 0) // z^k/k!
	for k := 1; k < seriesMax; k++ {
		t *= z / complex(float64(k), 0)
		term := t / complex(float64(k), 0)
		sum += term
		if cmplx.Abs(term) < seriesTol*(1+cmplx.Abs(sum)) {
			break
		}
	}
	return sum
}

// ExpIntE1 evaluates E1(z) = -γ - log z - Σ (-z)^k / (k·k!),
// principal log.
func ExpIntE1(z complex128) complex128 {
	sum := complex(-eulerGamma, 0) - cmplx.Log(z)
	t := complex(1, 0) // (-z)^k/k!
	for k := 1; k < seriesMax; k++ {
		t *= -z / complex(float64(k), 0)
		term := t / complex(float64(k), 0)
		sum -= term
		if cmplx.Abs(term) < seriesTol*(1+cmplx.Abs(sum)) {
			break
		}
	}
	return sum
}

// Erf evaluates the error function by its Maclaurin series
// (2/√π) Σ (-1)^k z^(2k+1) / (k!·(2k+1)).
func Erf(z complex128) complex128 {
	const twoOverSqrtPi = 1.1283791670955126

	t := z // z^(2k+1)/k!
	sum := z
	sign := complex(-1, 0)
	z2 := z * z
	for k := 1; k < seriesMax; k++ {
		t *= z2 / complex(float64(k), 0)
		term := sign * t / complex(float64(2*k+1), 0)
		sum += term
		if cmplx.Abs(term) < seriesTol*(1+cmplx.Abs(sum)) {
			break
		}
		sign = -sign
	}
	return complex(twoOverSqrtPi, 0) * sum
}
