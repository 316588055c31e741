package funcs

import (
	"math"
	"math/cmplx"

	"github.com/san-kum/zplot/internal/grid"
	"github.com/san-kum/zplot/internal/special"
)

// Bernoulli evaluates the Bernoulli function B(z) = -z·ζ(1-z), the
// reflection-formula interpolation of the Bernoulli numbers.
func Bernoulli(z *grid.Array) *grid.Array {
	return grid.MapErr(func(z complex128) (complex128, error) {
		v, err := special.Zeta(1 - z)
		return -z * v, err
	}, z)
}

// DirichletEta evaluates the alternating zeta function
// η(z) = (1 - 2^(1-z))·ζ(z).
func DirichletEta(z *grid.Array) *grid.Array {
	return grid.MapErr(func(z complex128) (complex128, error) {
		v, err := special.Zeta(z)
		return (1 - cmplx.Pow(2, 1-z)) * v, err
	}, z)
}

// RiemannXi evaluates the Riemann xi function
// ξ(z) = ½·z·(z-1)·π^(-z/2)·Γ(z/2)·ζ(z), principal branch of the
// power.
func RiemannXi(z *grid.Array) *grid.Array {
	pi := complex(math.Pi, 0)
	return grid.MapErr(func(z complex128) (complex128, error) {
		v, err := special.Zeta(z)
		if err != nil {
			return 0, err
		}
		return 0.5 * z * (z - 1) * cmplx.Pow(pi, -z/2) * special.Gamma(z/2) * v, nil
	}, z)
}

// Polygamma evaluates ψ_n, the n-th derivative of the digamma
// function, element-wise over z. Order 0 is the digamma function
// itself; higher orders use ψ_n(z) = (-1)^(n+1)·n!·ζ(n+1, z), sweeping
// the shift parameter of the Hurwitz zeta backend.
func Polygamma(z *grid.Array, order int) *grid.Array {
	if order == 0 {
		return grid.Map(special.Digamma, z)
	}

	coeff := complex(1, 0)
	for k := 2; k <= order; k++ {
		coeff *= complex(float64(k), 0)
	}
	if order%2 == 0 {
		coeff = -coeff
	}
	s := complex(float64(order+1), 0)

	out := HurwitzZetaA(s, z)
	for i := range out.Data {
		out.Data[i] *= coeff
	}
	return out
}
