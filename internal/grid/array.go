package grid

import "math"

// Array is a dense, row-major N-dimensional array of complex values.
// A rank-0 Array holds exactly one element.
type Array struct {
	Shape []int
	Data  []complex128
}

// New allocates a zero-filled array with the given shape.
func New(shape ...int) *Array {
	return &Array{Shape: append([]int(nil), shape...), Data: make([]complex128, size(shape))}
}

// Scalar wraps a single value in a rank-0 array.
func Scalar(z complex128) *Array {
	return &Array{Shape: []int{}, Data: []complex128{z}}
}

// FromSlice builds a rank-1 array from a copy of vals.
func FromSlice(vals []complex128) *Array {
	a := New(len(vals))
	copy(a.Data, vals)
	return a
}

// FromRows builds a rank-2 array from a row-major [ny][nx] slice.
// All rows must have the same length.
func FromRows(rows [][]complex128) *Array {
	ny := len(rows)
	nx := 0
	if ny > 0 {
		nx = len(rows[0])
	}
	a := New(ny, nx)
	for i, row := range rows {
		copy(a.Data[i*nx:(i+1)*nx], row)
	}
	return a
}

func size(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int { return len(a.Shape) }

// Len returns the total number of elements.
func (a *Array) Len() int { return len(a.Data) }

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	c := &Array{
		Shape: append([]int(nil), a.Shape...),
		Data:  make([]complex128, len(a.Data)),
	}
	copy(c.Data, a.Data)
	return c
}

// SameShape reports whether a and b have identical shapes.
func (a *Array) SameShape(b *Array) bool {
	if len(a.Shape) != len(b.Shape) {
		return false
	}
	for i := range a.Shape {
		if a.Shape[i] != b.Shape[i] {
			return false
		}
	}
	return true
}

// At returns the element of a rank-2 array at row i, column j.
func (a *Array) At(i, j int) complex128 {
	return a.Data[i*a.Shape[1]+j]
}

// Set assigns the element of a rank-2 array at row i, column j.
func (a *Array) Set(i, j int, z complex128) {
	a.Data[i*a.Shape[1]+j] = z
}

// NaN returns the undefined-value sentinel.
func NaN() complex128 {
	return complex(math.NaN(), math.NaN())
}

// IsNaN reports whether either component of z is NaN.
func IsNaN(z complex128) bool {
	return math.IsNaN(real(z)) || math.IsNaN(imag(z))
}

// Map applies f to every element, preserving shape.
func Map(f func(complex128) complex128, a *Array) *Array {
	out := &Array{Shape: append([]int(nil), a.Shape...), Data: make([]complex128, len(a.Data))}
	for i, z := range a.Data {
		out.Data[i] = f(z)
	}
	return out
}

// MapErr applies f to every element, preserving shape. An element for
// which f returns an error is replaced by the NaN sentinel; the failure
// does not affect any other element.
func MapErr(f func(complex128) (complex128, error), a *Array) *Array {
	out := &Array{Shape: append([]int(nil), a.Shape...), Data: make([]complex128, len(a.Data))}
	for i, z := range a.Data {
		v, err := f(z)
		if err != nil {
			v = NaN()
		}
		out.Data[i] = v
	}
	return out
}
