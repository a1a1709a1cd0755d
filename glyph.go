package microicon

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Glyph is the symbol drawn in a single text cell
type Glyph int

const (
	// GlyphTransparent marks a fully transparent pixel, always drawn in black
	GlyphTransparent Glyph = iota
	// GlyphLight is the patterned block used for translucent pixels
	GlyphLight
	// GlyphSolid is the full block used for mostly opaque pixels
	GlyphSolid
)

const (
	pixelRune        = '█'
	transparencyRune = '▒'
)

// Rune returns the character drawn for the glyph
func (g Glyph) Rune() rune {
	if g == GlyphSolid {
		return pixelRune
	}
	return transparencyRune
}

func (g Glyph) String() string {
	switch g {
	case GlyphTransparent:
		return "transparent"
	case GlyphLight:
		return "light"
	case GlyphSolid:
		return "solid"
	default:
		return "unknown"
	}
}

// Cell is one colored glyph of an icon grid.
// An empty Color means the cell is drawn with the fixed transparent style.
type Cell struct {
	Glyph Glyph
	Color lipgloss.Color
}

// TransparentCell is the cell produced for every pixel with zero alpha
var TransparentCell = Cell{Glyph: GlyphTransparent}

// Tinted reports whether the cell carries its own color
func (c Cell) Tinted() bool {
	return c.Color != ""
}

// MapPixel converts a raw ARGB pixel into a display cell.
//
// Alpha is read with a sign-preserving shift, so any alpha with the top bit
// set (128-255) is negative and selects the solid glyph, while 1-127 selects
// the light glyph. Both variants keep the pixel's RGB tint.
func MapPixel(argb uint32) Cell {
	alpha := int32(argb) >> 24
	if alpha == 0 {
		return TransparentCell
	}

	color := hexColor(argb & 0xFFFFFF)
	if alpha >= 0 {
		return Cell{Glyph: GlyphLight, Color: color}
	}
	return Cell{Glyph: GlyphSolid, Color: color}
}

func hexColor(rgb uint32) lipgloss.Color {
	c := colorful.Color{
		R: float64(uint8(rgb>>16)) / 255.0,
		G: float64(uint8(rgb>>8)) / 255.0,
		B: float64(uint8(rgb)) / 255.0,
	}
	return lipgloss.Color(c.Hex())
}

// GlyphMapper memoizes MapPixel for a single rasterization
type GlyphMapper struct {
	cells map[uint32]Cell
}

// NewGlyphMapper returns an empty memo table
func NewGlyphMapper() *GlyphMapper {
	return &GlyphMapper{cells: make(map[uint32]Cell)}
}

// Map returns the cell for argb, computing it at most once per mapper
func (m *GlyphMapper) Map(argb uint32) Cell {
	if cell, ok := m.cells[argb]; ok {
		return cell
	}
	cell := MapPixel(argb)
	m.cells[argb] = cell
	return cell
}

// Distinct returns the number of distinct pixel values mapped so far
func (m *GlyphMapper) Distinct() int {
	return len(m.cells)
}
