package microicon

import (
	"image"
	"image/color"
	"image/color/palette"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/soniakeys/quant/median"
)

// Palette produces the set of colors a grid's tints are reduced to
type Palette interface {
	// Colors returns the palette for a grid whose distinct tints are given
	Colors(tints []colorful.Color) color.Palette
}

type webSafePalette struct{}

// WebSafePalette reduces tints to the 216 color web-safe palette
func WebSafePalette() Palette {
	return webSafePalette{}
}

func (webSafePalette) Colors([]colorful.Color) color.Palette {
	return palette.WebSafe
}

type medianPalette int

// MedianPalette reduces tints to at most n colors chosen by median cut
func MedianPalette(n int) Palette {
	if n <= 0 {
		return nil
	}
	return medianPalette(n)
}

func (m medianPalette) Colors(tints []colorful.Color) color.Palette {
	if len(tints) <= int(m) {
		pal := make(color.Palette, len(tints))
		for i, t := range tints {
			pal[i] = t
		}
		return pal
	}

	// lay the tints out as a single row so the quantizer sees each one once
	img := image.NewNRGBA(image.Rect(0, 0, len(tints), 1))
	for i, t := range tints {
		r, g, b := t.RGB255()
		img.SetNRGBA(i, 0, color.NRGBA{R: r, G: g, B: b, A: 255})
	}
	return median.Quantizer(int(m)).Palette(img).ColorPalette()
}

// Reduce returns a copy of grid with every tint replaced by its nearest
// palette color. Glyphs, transparent cells and dimensions are unchanged.
func Reduce(grid Grid, p Palette) Grid {
	if p == nil || len(grid) == 0 {
		return grid
	}

	var tints []colorful.Color
	seen := make(map[lipgloss.Color]colorful.Color)
	for _, row := range grid {
		for _, cell := range row {
			if !cell.Tinted() {
				continue
			}
			if _, ok := seen[cell.Color]; ok {
				continue
			}
			c, err := colorful.Hex(string(cell.Color))
			if err != nil {
				continue
			}
			seen[cell.Color] = c
			tints = append(tints, c)
		}
	}

	pal := paletteColors(p.Colors(tints))
	if len(pal) == 0 {
		return grid
	}

	mapped := make(map[lipgloss.Color]lipgloss.Color, len(seen))
	for hex, c := range seen {
		mapped[hex] = lipgloss.Color(nearest(c, pal).Hex())
	}

	out := make(Grid, len(grid))
	for y, row := range grid {
		out[y] = make([]Cell, len(row))
		for x, cell := range row {
			if to, ok := mapped[cell.Color]; ok {
				cell.Color = to
			}
			out[y][x] = cell
		}
	}
	return out
}

func paletteColors(pal color.Palette) []colorful.Color {
	colors := make([]colorful.Color, 0, len(pal))
	for _, c := range pal {
		if cf, ok := colorful.MakeColor(c); ok {
			colors = append(colors, cf)
		}
	}
	return colors
}

func nearest(c colorful.Color, pal []colorful.Color) colorful.Color {
	best := pal[0]
	bestDist := c.DistanceLab(best)
	for _, p := range pal[1:] {
		if d := c.DistanceLab(p); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}
