// Package viz renders terminal previews of the figure catalog.
package viz

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/zplot/internal/catalog"
	"github.com/san-kum/zplot/internal/grid"
)

// SlicePreview plots |f| along the horizontal midline of the figure's
// viewing rectangle. Sample points where f is undefined plot as zero.
func SlicePreview(fig catalog.Figure, width, height int) string {
	if width < 8 {
		width = 8
	}
	if height < 2 {
		height = 2
	}

	ymid := (fig.YMin + fig.YMax) / 2
	mesh := grid.Mesh(fig.XMin, fig.XMax, width, ymid, ymid, 1)
	vals := fig.F(mesh)

	data := make([]float64, vals.Len())
	for i, v := range vals.Data {
		m := cmplx.Abs(v)
		if math.IsNaN(m) || math.IsInf(m, 0) {
			m = 0
		}
		data[i] = m
	}

	caption := fmt.Sprintf("|%s(x%+.2fi)| for x in [%g, %g]", fig.Name, ymid, fig.XMin, fig.XMax)
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// ListFigures formats the catalog as a styled table of names and
// viewing rectangles.
func ListFigures(figs []catalog.Figure) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("available figures"))
	sb.WriteString("\n\n")
	for _, f := range figs {
		rect := fmt.Sprintf("[%g, %g] x [%g, %g]", f.XMin, f.XMax, f.YMin, f.YMax)
		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			cyan.Render(fmt.Sprintf("%-22s", f.Name)),
			dim.Render(rect),
			dim.Render("-> "+f.File),
		))
	}
	sb.WriteString("\n")
	sb.WriteString(dim.Render(fmt.Sprintf("%d figures", len(figs))))
	return sb.String()
}

// colorCell renders two vertically stacked pixels as one half-block
// character.
func colorCell(top, bottom lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(top).Background(bottom).Render("▀")
}
