package microicon

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// transparentColor is the fixed color of transparent cells
const transparentColor = lipgloss.Color("#000000")

// Renderer draws icon grids as styled text
type Renderer struct {
	lg *lipgloss.Renderer

	mu     sync.Mutex
	styles map[lipgloss.Color]lipgloss.Style
}

// NewRenderer creates a renderer writing colors for profile. Colors are
// downsampled by lipgloss when the profile cannot show true color.
func NewRenderer(w io.Writer, profile termenv.Profile) *Renderer {
	lg := lipgloss.NewRenderer(w)
	lg.SetColorProfile(profile)
	return &Renderer{
		lg:     lg,
		styles: make(map[lipgloss.Color]lipgloss.Style),
	}
}

// RenderIcon renders a present icon, or returns "" for None
func (r *Renderer) RenderIcon(icon Icon) string {
	grid, ok := icon.Grid()
	if !ok {
		return ""
	}
	return r.RenderGrid(grid)
}

// RenderGrid renders one line per grid row
func (r *Renderer) RenderGrid(grid Grid) string {
	lines := make([]string, len(grid))
	for y, row := range grid {
		lines[y] = r.renderRow(row)
	}
	return strings.Join(lines, "\n")
}

// renderRow styles runs of equally colored cells together
func (r *Renderer) renderRow(row []Cell) string {
	var (
		sb   strings.Builder
		run  strings.Builder
		last lipgloss.Color
	)
	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(r.style(last).Render(run.String()))
			run.Reset()
		}
	}
	for _, cell := range row {
		color := cell.Color
		if !cell.Tinted() {
			color = transparentColor
		}
		if color != last {
			flush()
			last = color
		}
		run.WriteRune(cell.Glyph.Rune())
	}
	flush()
	return sb.String()
}

func (r *Renderer) style(color lipgloss.Color) lipgloss.Style {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.styles[color]; ok {
		return s
	}
	s := r.lg.NewStyle().Foreground(color)
	r.styles[color] = s
	return s
}
