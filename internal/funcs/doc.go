// Package funcs is the array-level numeric layer the figure catalog is
// built from. It lifts the scalar backends in internal/special onto
// [grid.Array] values, with per-point failure isolation: an element
// whose backend evaluation fails becomes the NaN sentinel and never
// disturbs its neighbors.
//
// Three groups of functions live here:
//
//   - the Hurwitz zeta adapters [HurwitzZeta] and [HurwitzZetaA], one
//     per sweepable argument
//   - closed forms derived from them: [Zeta], [Bernoulli],
//     [DirichletEta], [RiemannXi], [Polygamma]
//   - truncated Lambert-series summators and the Euler product, which
//     only converge on the unit disk and mask everything outside it
package funcs
