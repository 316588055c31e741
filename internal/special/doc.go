// Package special implements scalar special functions of a complex
// argument that no Go library provides.
//
// The workhorse is [HurwitzZeta], an Euler-Maclaurin evaluation of the
// generalized zeta function valid on the whole plane away from the
// pole at s = 1. [Gamma] and [LogGamma] use the Lanczos approximation,
// [Digamma] an asymptotic series with recurrence, [LambertW] Halley
// iteration. The exponential and trigonometric integrals and [Erf] are
// direct power series, accurate over the argument ranges the figure
// catalog uses.
//
// All functions are pure. Functions that can fail return an error; the
// array layer in internal/funcs turns those errors into per-point NaN
// sentinels.
package special
