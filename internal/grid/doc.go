// Package grid provides dense complex arrays and the sampling grids the
// renderer evaluates functions on.
//
// The central type is [Array], a row-major N-dimensional array of
// complex128 values:
//
//   - [Mesh]: rectangular 2-D sampling grid over the complex plane
//   - [Map]: element-wise application of a scalar function
//   - [MapErr]: like Map, but a failing element becomes NaN instead of
//     aborting the whole evaluation
//
// # Undefined values
//
// Points where a function has no usable value carry the complex NaN
// sentinel (NaN in both the real and imaginary part). Downstream
// consumers render such points as gaps. Use [NaN] and [IsNaN] rather
// than constructing or testing the sentinel by hand.
package grid
