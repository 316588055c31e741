// Package catalog holds the figure table: every named complex function
// the generator knows how to draw, together with its output filename
// and viewing rectangle.
package catalog

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/san-kum/zplot/internal/funcs"
	"github.com/san-kum/zplot/internal/grid"
	"github.com/san-kum/zplot/internal/render"
	"github.com/san-kum/zplot/internal/special"
)

// Figure is one catalog entry.
type Figure struct {
	Name       string
	File       string
	F          render.FieldFunc
	XMin, XMax float64
	YMin, YMax float64
	AbsScaling float64 // 0 means linear
	Contours   bool
}

// XRange returns the horizontal sampling range at the given width.
func (f Figure) XRange(width int) grid.Range {
	return grid.Range{Min: f.XMin, Max: f.XMax, N: width}
}

// YRange returns the vertical range; the sample count is derived from
// the aspect ratio by the renderer.
func (f Figure) YRange() grid.Range {
	return grid.Range{Min: f.YMin, Max: f.YMax}
}

// pointwise lifts a scalar function into a FieldFunc.
func pointwise(f func(complex128) complex128) render.FieldFunc {
	return func(a *grid.Array) *grid.Array {
		return grid.Map(f, a)
	}
}

// fallible is pointwise for scalar backends that can fail; failures
// become the NaN sentinel per point.
func fallible(f func(complex128) (complex128, error)) render.FieldFunc {
	return func(a *grid.Array) *grid.Array {
		return grid.MapErr(f, a)
	}
}

func sq(name, file string, f render.FieldFunc, half float64) Figure {
	return Figure{Name: name, File: file, F: f, XMin: -half, XMax: half, YMin: -half, YMax: half}
}

// Params are the tunable truncation lengths of the series figures.
// Zero values select the defaults in internal/funcs.
type Params struct {
	Lambert1Terms    int
	LambertPhiTerms  int
	VonMangoldtTerms int
	LiouvilleTerms   int
	EulerTerms       int
}

var figures = buildFigures(Params{})

func buildFigures(p Params) []Figure {
	pi := complex(math.Pi, 0)

	fs := []Figure{
		sq("z1", "z1.png", pointwise(func(z complex128) complex128 { return z }), 2),
		sq("z2", "z2.png", pointwise(func(z complex128) complex128 { return z * z }), 2),
		sq("z3", "z3.png", pointwise(func(z complex128) complex128 { return z * z * z }), 2),

		sq("1z", "1z.png", pointwise(func(z complex128) complex128 { return 1 / z }), 2),
		sq("1z2", "1z2.png", pointwise(func(z complex128) complex128 { return 1 / (z * z) }), 2),
		sq("1z3", "1z3.png", pointwise(func(z complex128) complex128 { return 1 / (z * z * z) }), 2),

		sq("moebius1", "moebius1.png", pointwise(func(z complex128) complex128 {
			return (z + 1) / (z - 1)
		}), 5),
		sq("moebius2", "moebius2.png", pointwise(func(z complex128) complex128 {
			return (z + 1.5 - 0.5i) * (1.5 - 0.5i) / (z - 1.5 + 0.5i) * (-1.5 + 0.5i)
		}), 5),
		sq("moebius3", "moebius3.png", pointwise(func(z complex128) complex128 {
			return (-1i * z) / (1i*z + 1.5 - 0.5i)
		}), 5),

		sq("z6+1", "z6+1.png", pointwise(func(z complex128) complex128 {
			return cmplx.Pow(z, 6) + 1
		}), 1.5),
		sq("z6-1", "z6-1.png", pointwise(func(z complex128) complex128 {
			return cmplx.Pow(z, 6) - 1
		}), 1.5),
		sq("z-6+1", "z-6+1.png", pointwise(func(z complex128) complex128 {
			return cmplx.Pow(z, -6) + 1
		}), 1.5),

		sq("zz", "zz.png", pointwise(func(z complex128) complex128 { return cmplx.Pow(z, z) }), 3),
		sq("1zz", "1zz.png", pointwise(func(z complex128) complex128 { return cmplx.Pow(1/z, z) }), 3),
		sq("z1z", "z1z.png", pointwise(func(z complex128) complex128 { return cmplx.Pow(z, 1/z) }), 3),

		sq("root2", "root2.png", pointwise(cmplx.Sqrt), 2),
		sq("root3", "root3.png", pointwise(func(z complex128) complex128 {
			return cmplx.Pow(z, 1.0/3.0)
		}), 2),
		sq("root4", "root4.png", pointwise(func(z complex128) complex128 {
			return cmplx.Pow(z, 0.25)
		}), 2),

		sq("log", "log.png", pointwise(cmplx.Log), 2),
		sq("exp", "exp.png", pointwise(cmplx.Exp), 3),
		sq("exp2", "exp2.png", pointwise(func(z complex128) complex128 {
			return cmplx.Pow(2, z)
		}), 3),

		// non-analytic demonstrations
		sq("re", "re.png", pointwise(func(z complex128) complex128 {
			return complex(real(z), 0)
		}), 2),
		sq("z-absz", "z-absz.png", pointwise(func(z complex128) complex128 {
			return z / complex(cmplx.Abs(z), 0)
		}), 2),
		sq("conj", "conj.png", pointwise(cmplx.Conj), 2),

		// essential singularities
		sq("exp1z", "exp1z.png", pointwise(func(z complex128) complex128 {
			return cmplx.Exp(1 / z)
		}), 1),
		sq("zsin1z", "zsin1z.png", pointwise(func(z complex128) complex128 {
			return z * cmplx.Sin(1/z)
		}), 0.6),
		sq("cos1z", "cos1z.png", pointwise(func(z complex128) complex128 {
			return cmplx.Cos(1 / z)
		}), 0.6),

		sq("exp-z2", "exp-z2.png", pointwise(func(z complex128) complex128 {
			return cmplx.Exp(-(z * z))
		}), 3),
		sq("11z2", "11z2.png", pointwise(func(z complex128) complex128 {
			return 1 / (1 + z*z)
		}), 3),
		sq("erf", "erf.png", pointwise(special.Erf), 3),

		sq("exp1z1", "exp1z1.png", pointwise(func(z complex128) complex128 {
			e := cmplx.Exp(1 / z)
			return e / (1 + e)
		}), 1),

		// generating function of the fibonacci sequence
		sq("fibonacci", "fibonacci.png", pointwise(func(z complex128) complex128 {
			return 1 / (1 - z*(1+z))
		}), 5),

		sq("sin", "sin.png", pointwise(cmplx.Sin), 5),
		sq("cos", "cos.png", pointwise(cmplx.Cos), 5),
		sq("tan", "tan.png", pointwise(cmplx.Tan), 5),

		sq("sec", "sec.png", pointwise(func(z complex128) complex128 { return 1 / cmplx.Cos(z) }), 5),
		sq("csc", "csc.png", pointwise(func(z complex128) complex128 { return 1 / cmplx.Sin(z) }), 5),
		sq("cot", "cot.png", pointwise(func(z complex128) complex128 { return 1 / cmplx.Tan(z) }), 5),

		sq("sinh", "sinh.png", pointwise(cmplx.Sinh), 5),
		sq("cosh", "cosh.png", pointwise(cmplx.Cosh), 5),
		sq("tanh", "tanh.png", pointwise(cmplx.Tanh), 5),

		sq("sech", "sech.png", pointwise(func(z complex128) complex128 { return 1 / cmplx.Cosh(z) }), 5),
		sq("csch", "csch.png", pointwise(func(z complex128) complex128 { return 1 / cmplx.Sinh(z) }), 5),
		sq("coth", "coth.png", pointwise(func(z complex128) complex128 { return 1 / cmplx.Tanh(z) }), 5),

		sq("arcsin", "arcsin.png", pointwise(cmplx.Asin), 2),
		sq("arccos", "arccos.png", pointwise(cmplx.Acos), 2),
		sq("arctan", "arctan.png", pointwise(cmplx.Atan), 2),

		sq("arcsinh", "arcsinh.png", pointwise(cmplx.Asinh), 2),
		sq("arccosh", "arccosh.png", pointwise(cmplx.Acosh), 2),
		sq("arctanh", "arctanh.png", pointwise(cmplx.Atanh), 2),

		sq("sinz-z", "sinz-z.png", pointwise(func(z complex128) complex128 { return cmplx.Sin(z) / z }), 7),
		sq("cosz-z", "cosz-z.png", pointwise(func(z complex128) complex128 { return cmplx.Cos(z) / z }), 7),
		sq("tanz-z", "tanz-z.png", pointwise(func(z complex128) complex128 { return cmplx.Tan(z) / z }), 7),

		sq("si", "si.png", pointwise(special.SinInt), 15),
		sq("ci", "ci.png", pointwise(special.CosInt), 15),
		sq("expi", "expi.png", pointwise(special.ExpIntEi), 15),

		sq("exp1", "exp1.png", pointwise(special.ExpIntE1), 5),
		sq("lambertw", "lambertw.png", fallible(special.LambertW), 5),

		sq("zeta", "zeta.png", funcs.Zeta, 30),
		sq("bernoulli", "bernoulli.png", funcs.Bernoulli, 30),
		sq("dirichlet-eta", "dirichlet-eta.png", funcs.DirichletEta, 30),

		sq("hurwitz-zeta-1-3", "hurwitz-zeta-1-3.png", func(a *grid.Array) *grid.Array {
			return funcs.HurwitzZeta(a, complex(1.0/3.0, 0))
		}, 10),
		sq("hurwitz-zeta-24-25", "hurwitz-zeta-24-25.png", func(a *grid.Array) *grid.Array {
			return funcs.HurwitzZeta(a, complex(24.0/25.0, 0))
		}, 10),
		sq("hurwitz-zeta-a-3-4i", "hurwitz-zeta-a-3-4i.png", func(a *grid.Array) *grid.Array {
			return funcs.HurwitzZetaA(3+4i, a)
		}, 10),

		sq("gamma", "gamma.png", pointwise(special.Gamma), 5),
		sq("reciprocal-gamma", "reciprocal-gamma.png", pointwise(func(z complex128) complex128 {
			return 1 / special.Gamma(z)
		}), 5),
		sq("loggamma", "loggamma.png", pointwise(special.LogGamma), 5),

		sq("digamma", "digamma.png", pointwise(special.Digamma), 5),
		sq("polygamma1", "polygamma1.png", func(a *grid.Array) *grid.Array {
			return funcs.Polygamma(a, 1)
		}, 5),
		sq("polygamma2", "polygamma2.png", func(a *grid.Array) *grid.Array {
			return funcs.Polygamma(a, 2)
		}, 5),

		sq("riemann-xi", "riemann-xi.png", funcs.RiemannXi, 20),

		// double-exponential quadrature maps
		sq("tanh-sinh", "tanh-sinh.png", pointwise(func(z complex128) complex128 {
			return cmplx.Tanh(pi / 2 * cmplx.Sinh(z))
		}), 2.5),
		sq("sinh-sinh", "sinh-sinh.png", pointwise(func(z complex128) complex128 {
			return cmplx.Sinh(pi / 2 * cmplx.Sinh(z))
		}), 2.5),
		sq("exp-sinh", "exp-sinh.png", pointwise(func(z complex128) complex128 {
			return cmplx.Exp(pi / 2 * cmplx.Sinh(z))
		}), 2.5),

		sq("lambert-1", "lambert-1.png", func(a *grid.Array) *grid.Array {
			return funcs.Lambert1(a, p.Lambert1Terms)
		}, 1.1),
		sq("lambert-phi", "lambert-phi.png", func(a *grid.Array) *grid.Array {
			return funcs.LambertPhi(a, p.LambertPhiTerms)
		}, 1.1),
		sq("lambert-von-mangoldt", "lambert-von-mangoldt.png", func(a *grid.Array) *grid.Array {
			return funcs.LambertVonMangoldt(a, p.VonMangoldtTerms)
		}, 1.1),
		sq("lambert-liouville", "lambert-liouville.png", func(a *grid.Array) *grid.Array {
			return funcs.LambertLiouville(a, p.LiouvilleTerms)
		}, 1.1),
		sq("euler-function", "euler-function.png", func(a *grid.Array) *grid.Array {
			return funcs.EulerFunction(a, p.EulerTerms)
		}, 1.1),

		sq("sigmoid", "sigmoid.png", pointwise(func(z complex128) complex128 {
			return 1 / (1 + cmplx.Exp(-z))
		}), 10),
	}

	// first function from the SIAM 100-digit challenge
	siam := sq("siam", "siam.png", pointwise(func(z complex128) complex128 {
		return cmplx.Cos(cmplx.Log(z)/z) / z
	}), 1)
	siam.AbsScaling = 10
	fs = append(fs, siam)

	sinz3z := sq("sinz3z", "sinz3z.png", pointwise(func(z complex128) complex128 {
		return cmplx.Sin(z*z*z) / z
	}), 2)
	sinz3z.Contours = true
	fs = append(fs, sinz3z)

	return fs
}

// All returns the figure table in catalog order, with default
// parameters.
func All() []Figure {
	return figures
}

// Build returns the figure table with the given series parameters.
func Build(p Params) []Figure {
	return buildFigures(p)
}

// Get looks up one figure by name.
func Get(name string) (Figure, error) {
	for _, f := range figures {
		if f.Name == name {
			return f, nil
		}
	}
	return Figure{}, fmt.Errorf("unknown figure: %s", name)
}

// Names returns all figure names in catalog order.
func Names() []string {
	names := make([]string, len(figures))
	for i, f := range figures {
		names[i] = f.Name
	}
	return names
}
