package viz

import (
	"fmt"
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/zplot/internal/catalog"
	"github.com/san-kum/zplot/internal/render"
)

const previewWidth = 44

type browseModel struct {
	figures []catalog.Figure
	cursor  int
	offset  int

	preview     string
	previewName string

	width  int
	height int
}

// NewBrowser returns a bubbletea program model for walking the figure
// catalog with inline domain-coloring previews.
func NewBrowser(figs []catalog.Figure) tea.Model {
	m := browseModel{figures: figs, width: 80, height: 24}
	m.refreshPreview()
	return m
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "escape":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.refreshPreview()
			}
		case "down", "j":
			if m.cursor < len(m.figures)-1 {
				m.cursor++
				m.refreshPreview()
			}
		case "g":
			m.cursor = 0
			m.refreshPreview()
		case "G":
			m.cursor = len(m.figures) - 1
			m.refreshPreview()
		}
	}
	return m, nil
}

func (m *browseModel) refreshPreview() {
	if len(m.figures) == 0 {
		m.preview = ""
		return
	}
	fig := m.figures[m.cursor]
	if fig.Name == m.previewName {
		return
	}

	img := render.Render(fig.F, fig.XRange(previewWidth), fig.YRange(), render.Options{
		AbsScaling: fig.AbsScaling,
	})
	m.preview = imageBlocks(img)
	m.previewName = fig.Name
}

// imageBlocks converts an image to a half-block string, two image rows
// per text line. Transparent pixels come out as plain spaces.
func imageBlocks(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top, topOK := blockColor(img, x, y)
			bottom, bottomOK := blockColor(img, x, y+1)
			switch {
			case !topOK && !bottomOK:
				sb.WriteByte(' ')
			case !bottomOK:
				sb.WriteString(lipgloss.NewStyle().Foreground(top).Render("▀"))
			case !topOK:
				sb.WriteString(lipgloss.NewStyle().Foreground(bottom).Render("▄"))
			default:
				sb.WriteString(colorCell(top, bottom))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func blockColor(img image.Image, x, y int) (lipgloss.Color, bool) {
	if y >= img.Bounds().Max.Y {
		return "", false
	}
	r, g, b, a := img.At(x, y).RGBA()
	if a == 0 {
		return "", false
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)), true
}

func (m browseModel) View() string {
	if len(m.figures) == 0 {
		return dim.Render("empty catalog") + "\n"
	}

	listHeight := m.height - 4
	if listHeight < 5 {
		listHeight = 5
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+listHeight {
		m.offset = m.cursor - listHeight + 1
	}

	var list strings.Builder
	end := m.offset + listHeight
	if end > len(m.figures) {
		end = len(m.figures)
	}
	for i := m.offset; i < end; i++ {
		name := m.figures[i].Name
		if i == m.cursor {
			list.WriteString(magenta.Render("> " + name))
		} else {
			list.WriteString(white.Render("  " + name))
		}
		list.WriteByte('\n')
	}

	fig := m.figures[m.cursor]
	info := dim.Render(fmt.Sprintf("[%g, %g] x [%g, %g]  %s",
		fig.XMin, fig.XMax, fig.YMin, fig.YMax, fig.File))
	right := panelStyle.Render(m.preview + info)

	body := lipgloss.JoinHorizontal(lipgloss.Top, list.String(), "  ", right)
	help := dim.Render("j/k move · g/G ends · q quit")
	return titleStyle.Render("zplot catalog") + "\n\n" + body + "\n" + help + "\n"
}
