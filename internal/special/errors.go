package special

import "errors"

// Domain errors for special-function evaluation.
var (
	// ErrPole indicates the argument hit a pole of the function.
	ErrPole = errors.New("special: argument at a pole")

	// ErrDomain indicates an argument outside the function's domain,
	// such as a non-positive integer shift parameter for Hurwitz zeta.
	ErrDomain = errors.New("special: argument outside domain")

	// ErrNoConverge indicates the iteration or series failed to settle.
	ErrNoConverge = errors.New("special: evaluation did not converge")
)
