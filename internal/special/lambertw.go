package special

import (
	"math"
	"math/cmplx"
)

// LambertW solves w·exp(w) = z on the principal branch using Halley
// iteration seeded from the asymptotic log form.
func LambertW(z complex128) (complex128, error) {
	if z == 0 {
		return 0, nil
	}

	w := cmplx.Log(z)
	if cmplx.Abs(z) > math.E {
		w -= cmplx.Log(w)
	} else if cmplx.Abs(z) < 0.3 {
		// Near the origin w ≈ z is a better seed than the log.
		w = z
	}

	const maxIter = 60
	const tol = 1e-14
	for i := 0; i < maxIter; i++ {
		e := cmplx.Exp(w)
		f := w*e - z
		den := e*(w+1) - (w+2)*f/(2*(w+1))
		if den == 0 {
			break
		}
		dw := f / den
		w2 := w - dw
		if cmplx.Abs(dw) < tol*(1+cmplx.Abs(w2)) {
			return w2, nil
		}
		w = w2
	}
	return 0, ErrNoConverge
}
