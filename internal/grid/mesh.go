package grid

// Range is a half-axis sampling specification: [Min, Max] sampled at N
// evenly spaced points.
type Range struct {
	Min, Max float64
	N        int
}

// DerivedN returns the sample count that preserves the aspect ratio of
// yr relative to xr when xr is sampled at xr.N points.
func DerivedN(xr, yr Range) int {
	ratio := (yr.Max - yr.Min) / (xr.Max - xr.Min)
	n := int(float64(xr.N)*ratio + 0.5)
	if n < 1 {
		n = 1
	}
	return n
}

// Mesh builds a rank-2 sampling grid of shape [ny][nx]. The real part
// runs over [xmin, xmax] left to right, the imaginary part over
// [ymin, ymax] bottom to top: row 0 is the bottom of the image region.
func Mesh(xmin, xmax float64, nx int, ymin, ymax float64, ny int) *Array {
	a := New(ny, nx)
	for i := 0; i < ny; i++ {
		y := ymin
		if ny > 1 {
			y = ymin + (ymax-ymin)*float64(i)/float64(ny-1)
		}
		for j := 0; j < nx; j++ {
			x := xmin
			if nx > 1 {
				x = xmin + (xmax-xmin)*float64(j)/float64(nx-1)
			}
			a.Data[i*nx+j] = complex(x, y)
		}
	}
	return a
}

// MeshRanges is Mesh with Range arguments.
func MeshRanges(xr, yr Range) *Array {
	return Mesh(xr.Min, xr.Max, xr.N, yr.Min, yr.Max, yr.N)
}
