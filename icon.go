package microicon

import "strings"

// Grid is a rasterized icon, row-major from the top-left corner
type Grid [][]Cell

// Rows returns the number of rows
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of cells per row
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// String renders the grid glyphs without color
func (g Grid) String() string {
	var sb strings.Builder
	for i, row := range g {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteRune(cell.Glyph.Rune())
		}
	}
	return sb.String()
}

// Icon is either a rasterized grid or the absence of one.
// The zero value is None.
type Icon struct {
	grid Grid
	ok   bool
}

// None is the icon returned whenever there is nothing to render
var None = Icon{}

// Some wraps a grid as a present icon
func Some(grid Grid) Icon {
	return Icon{grid: grid, ok: true}
}

// Grid returns the icon grid and whether one is present
func (i Icon) Grid() (Grid, bool) {
	return i.grid, i.ok
}

// Present reports whether the icon holds a grid
func (i Icon) Present() bool {
	return i.ok
}
