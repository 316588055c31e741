package grid

import (
	"errors"
	"math"
	"testing"
)

func TestMapPreservesShape(t *testing.T) {
	square := func(z complex128) complex128 { return z * z }

	tests := []struct {
		name string
		in   *Array
	}{
		{"rank0", Scalar(2 + 1i)},
		{"rank1", FromSlice([]complex128{1, 2i, 3})},
		{"rank2", Mesh(-1, 1, 4, -1, 1, 3)},
	}

	for _, tt := range tests {
		out := Map(square, tt.in)
		if !out.SameShape(tt.in) {
			t.Errorf("%s: shape changed: in %v, out %v", tt.name, tt.in.Shape, out.Shape)
		}
		for i, z := range tt.in.Data {
			if out.Data[i] != z*z {
				t.Errorf("%s: element %d: got %v, want %v", tt.name, i, out.Data[i], z*z)
			}
		}
	}
}

func TestMapErrIsolatesFailures(t *testing.T) {
	errNope := errors.New("nope")
	f := func(z complex128) (complex128, error) {
		if real(z) < 0 {
			return 0, errNope
		}
		return z + 1, nil
	}

	in := FromSlice([]complex128{-1, 2, -3, 4})
	out := MapErr(f, in)

	if !IsNaN(out.Data[0]) || !IsNaN(out.Data[2]) {
		t.Errorf("failing elements should be NaN, got %v", out.Data)
	}
	if out.Data[1] != 3 || out.Data[3] != 5 {
		t.Errorf("succeeding elements affected by failures: %v", out.Data)
	}
}

func TestMeshLayout(t *testing.T) {
	m := Mesh(-2, 2, 5, -1, 1, 3)

	if m.Shape[0] != 3 || m.Shape[1] != 5 {
		t.Fatalf("unexpected shape %v", m.Shape)
	}
	if m.At(0, 0) != complex(-2, -1) {
		t.Errorf("bottom-left: got %v", m.At(0, 0))
	}
	if m.At(2, 4) != complex(2, 1) {
		t.Errorf("top-right: got %v", m.At(2, 4))
	}
	if m.At(1, 2) != 0 {
		t.Errorf("center: got %v", m.At(1, 2))
	}
}

func TestDerivedN(t *testing.T) {
	tests := []struct {
		xr, yr Range
		want   int
	}{
		{Range{-2, 2, 400}, Range{-2, 2, 0}, 400},
		{Range{-2, 2, 400}, Range{-1, 1, 0}, 200},
		{Range{-0.3, 0.3, 401}, Range{1e-5, 0.3, 0}, 200},
	}

	for _, tt := range tests {
		got := DerivedN(tt.xr, tt.yr)
		if got != tt.want {
			t.Errorf("DerivedN(%v, %v) = %d, want %d", tt.xr, tt.yr, got, tt.want)
		}
	}
}

func TestNaNSentinel(t *testing.T) {
	s := NaN()
	if !math.IsNaN(real(s)) || !math.IsNaN(imag(s)) {
		t.Error("sentinel must be NaN in both components")
	}
	if !IsNaN(s) {
		t.Error("IsNaN(NaN()) = false")
	}
	if IsNaN(1 + 2i) {
		t.Error("IsNaN(1+2i) = true")
	}
	if !IsNaN(complex(math.NaN(), 0)) {
		t.Error("half-NaN should count as undefined")
	}
}

func TestCloneIndependent(t *testing.T) {
	a := FromSlice([]complex128{1, 2, 3})
	b := a.Clone()
	b.Data[0] = 99
	if a.Data[0] != 1 {
		t.Error("clone shares backing data")
	}
}
