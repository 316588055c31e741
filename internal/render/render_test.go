package render

import (
	"image"
	"testing"

	"github.com/san-kum/zplot/internal/grid"
)

func identity(a *grid.Array) *grid.Array {
	return a.Clone()
}

func TestRenderSize(t *testing.T) {
	img := Render(identity, grid.Range{Min: -2, Max: 2, N: 40}, grid.Range{Min: -1, Max: 1, N: 0}, Options{})

	want := image.Rect(0, 0, 40, 20)
	if img.Bounds() != want {
		t.Errorf("bounds %v, want %v (derived height)", img.Bounds(), want)
	}
}

func TestRenderSupersampleKeepsTargetSize(t *testing.T) {
	img := Render(identity, grid.Range{Min: -1, Max: 1, N: 16}, grid.Range{Min: -1, Max: 1, N: 16}, Options{Supersample: 2})

	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Errorf("supersampled render has bounds %v, want 16x16", img.Bounds())
	}
}

func TestRenderNaNTransparent(t *testing.T) {
	undef := func(a *grid.Array) *grid.Array {
		out := a.Clone()
		for i := range out.Data {
			out.Data[i] = grid.NaN()
		}
		return out
	}

	img := Render(undef, grid.Range{Min: -1, Max: 1, N: 8}, grid.Range{Min: -1, Max: 1, N: 8}, Options{})
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if img.NRGBAAt(x, y).A != 0 {
				t.Fatalf("pixel (%d,%d) not transparent", x, y)
			}
		}
	}
}

func TestRenderWorkerCountInvariant(t *testing.T) {
	f := func(a *grid.Array) *grid.Array {
		return grid.Map(func(z complex128) complex128 { return z * z }, a)
	}
	xr := grid.Range{Min: -2, Max: 2, N: 33}
	yr := grid.Range{Min: -2, Max: 2, N: 17}

	one := Render(f, xr, yr, Options{Workers: 1})
	many := Render(f, xr, yr, Options{Workers: 8})

	if len(one.Pix) != len(many.Pix) {
		t.Fatal("pixel buffers differ in size")
	}
	for i := range one.Pix {
		if one.Pix[i] != many.Pix[i] {
			t.Fatalf("pixel byte %d differs between worker counts", i)
		}
	}
}

func TestPixelOrientation(t *testing.T) {
	// Top-left of the image is the top-left of the region: negative
	// real part, positive imaginary part.
	img := Render(identity, grid.Range{Min: -1, Max: 1, N: 9}, grid.Range{Min: -1, Max: 1, N: 9}, Options{})

	topLeft := img.NRGBAAt(0, 0)
	bottomLeft := img.NRGBAAt(0, 8)
	if topLeft == bottomLeft {
		t.Error("top and bottom rows identical; vertical flip missing")
	}
}

func TestPixelMagnitudeLightness(t *testing.T) {
	dark := Pixel(0.01+0i, 1)
	bright := Pixel(100+0i, 1)

	if luma(dark) >= luma(bright) {
		t.Errorf("lightness should grow with magnitude: %v vs %v", dark, bright)
	}

	if Pixel(grid.NaN(), 1).A != 0 {
		t.Error("sentinel pixel must be transparent")
	}
}

func luma(c interface{ RGBA() (r, g, b, a uint32) }) uint32 {
	r, g, b, _ := c.RGBA()
	return r + g + b
}
