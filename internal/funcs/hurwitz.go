package funcs

import (
	"github.com/san-kum/zplot/internal/grid"
	"github.com/san-kum/zplot/internal/special"
)

// HurwitzZeta evaluates ζ(s_i, a) for every element s_i of s, with the
// shift parameter a held fixed. Elements where the backend fails become
// the NaN sentinel.
func HurwitzZeta(s *grid.Array, a complex128) *grid.Array {
	return grid.MapErr(func(z complex128) (complex128, error) {
		return special.HurwitzZeta(z, a)
	}, s)
}

// HurwitzZetaA evaluates ζ(s, a_i) for every element a_i of a, with the
// exponent s held fixed. This is the companion entry point to
// [HurwitzZeta] for figures that sweep the shift parameter instead.
func HurwitzZetaA(s complex128, a *grid.Array) *grid.Array {
	return grid.MapErr(func(z complex128) (complex128, error) {
		return special.HurwitzZeta(s, z)
	}, a)
}

// Zeta evaluates the Riemann zeta function, ζ(z) = ζ(z, 1).
func Zeta(z *grid.Array) *grid.Array {
	return HurwitzZeta(z, 1)
}
