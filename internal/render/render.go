package render

import (
	"image"
	"math"
	"runtime"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/zplot/internal/grid"
)

// FieldFunc evaluates a complex function over a sampling grid,
// returning an array of the same shape. Undefined points carry the NaN
// sentinel.
type FieldFunc func(*grid.Array) *grid.Array

// Options control the cosmetic side of rendering.
type Options struct {
	// AbsScaling compresses the magnitude axis; 1 (or 0) is linear.
	AbsScaling float64
	// Contours darkens pixels near integer powers of 2 in magnitude.
	Contours bool
	// Supersample renders at an integer multiple of the target size
	// and downscales. Values below 2 disable it.
	Supersample int
	// Workers bounds evaluation parallelism; 0 means GOMAXPROCS.
	Workers int
}

// Render samples f on the rectangle xr × yr and produces a
// domain-coloring image. yr.N may be zero, in which case it is derived
// from the aspect ratio of the rectangle.
func Render(f FieldFunc, xr, yr grid.Range, opts Options) *image.NRGBA {
	if yr.N <= 0 {
		yr.N = grid.DerivedN(xr, yr)
	}

	nx, ny := xr.N, yr.N
	ss := opts.Supersample
	if ss < 2 {
		ss = 1
	}

	vals := evaluate(f, xr, yr, nx*ss, ny*ss, opts.Workers)
	img := colorize(vals, opts)

	if ss > 1 {
		small := image.NewNRGBA(image.Rect(0, 0, nx, ny))
		xdraw.CatmullRom.Scale(small, small.Bounds(), img, img.Bounds(), xdraw.Over, nil)
		return small
	}
	return img
}

// evaluate samples f over the grid in horizontal bands. The function is
// element-wise pure, so banding cannot change any result.
func evaluate(f FieldFunc, xr, yr grid.Range, nx, ny, workers int) *grid.Array {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	vals := grid.New(ny, nx)

	band := (ny + workers - 1) / workers
	if band < 1 {
		band = 1
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < ny; lo += band {
		lo := lo
		hi := lo + band
		if hi > ny {
			hi = ny
		}
		g.Go(func() error {
			ylo := rowCoord(yr, ny, lo)
			yhi := rowCoord(yr, ny, hi-1)
			mesh := grid.Mesh(xr.Min, xr.Max, nx, ylo, yhi, hi-lo)
			out := f(mesh)
			copy(vals.Data[lo*nx:hi*nx], out.Data)
			return nil
		})
	}
	g.Wait()

	return vals
}

func rowCoord(yr grid.Range, ny, i int) float64 {
	if ny <= 1 {
		return yr.Min
	}
	return yr.Min + (yr.Max-yr.Min)*float64(i)/float64(ny-1)
}

// colorize maps the sampled values to pixels. Row 0 of the value grid
// is the bottom of the imaged region, so rows flip here.
func colorize(vals *grid.Array, opts Options) *image.NRGBA {
	ny, nx := vals.Shape[0], vals.Shape[1]
	img := image.NewNRGBA(image.Rect(0, 0, nx, ny))

	for i := 0; i < ny; i++ {
		py := ny - 1 - i
		for j := 0; j < nx; j++ {
			img.SetNRGBA(j, py, Pixel(vals.At(i, j), opts.AbsScaling))
		}
	}

	if opts.Contours {
		overlayContours(img, vals)
	}
	return img
}

// overlayContours darkens pixels where log2|f| crosses an integer
// between horizontal or vertical neighbors. Crossings steeper than one
// octave per pixel are skipped: near poles and essential singularities
// every pixel "crosses", and marking them all would smear the image.
func overlayContours(img *image.NRGBA, vals *grid.Array) {
	ny, nx := vals.Shape[0], vals.Shape[1]

	level := func(i, j int) (float64, bool) {
		v := vals.At(i, j)
		if grid.IsNaN(v) {
			return 0, false
		}
		r := real(v)*real(v) + imag(v)*imag(v)
		if r == 0 || math.IsInf(r, 0) {
			return 0, false
		}
		return math.Log2(r) / 2, true
	}

	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			a, ok := level(i, j)
			if !ok {
				continue
			}
			crossing := false
			for _, n := range [][2]int{{i, j + 1}, {i + 1, j}} {
				if n[0] >= ny || n[1] >= nx {
					continue
				}
				b, ok := level(n[0], n[1])
				if !ok {
					continue
				}
				if math.Floor(a) != math.Floor(b) && math.Abs(a-b) < 1 {
					crossing = true
				}
			}
			if crossing {
				darken(img, j, ny-1-i)
			}
		}
	}
}

func darken(img *image.NRGBA, x, y int) {
	c := img.NRGBAAt(x, y)
	c.R = uint8(float64(c.R) * 0.7)
	c.G = uint8(float64(c.G) * 0.7)
	c.B = uint8(float64(c.B) * 0.7)
	img.SetNRGBA(x, y, c)
}
