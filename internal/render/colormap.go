package render

import (
	"image/color"
	"math"
	"math/cmplx"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/zplot/internal/grid"
)

// Pixel maps one field value to a color. The hue tracks the phase, the
// lightness contracts the magnitude through m/(m+1) after raising it to
// 1/absScaling; scaling > 1 compresses large magnitudes so functions
// with violent growth stay readable.
func Pixel(v complex128, absScaling float64) color.NRGBA {
	if grid.IsNaN(v) {
		return color.NRGBA{}
	}

	r := cmplx.Abs(v)
	var l float64
	switch {
	case math.IsInf(r, 0):
		l = 1
	case r == 0:
		l = 0
	default:
		m := r
		if absScaling > 0 && absScaling != 1 {
			m = math.Pow(r, 1/absScaling)
		}
		l = m / (m + 1)
	}

	hue := cmplx.Phase(v) * 180 / math.Pi
	if hue < 0 {
		hue += 360
	}

	// HSLuv keeps perceived brightness even across hues, so magnitude
	// contours read as contours and not as hue artifacts.
	c := colorful.HSLuv(hue, 1.0, l)
	r8, g8, b8 := c.Clamped().RGB255()
	return color.NRGBA{R: r8, G: g8, B: b8, A: 255}
}
