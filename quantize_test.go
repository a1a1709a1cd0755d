package microicon

import (
	"strconv"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isWebSafe(c lipgloss.Color) bool {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < 7; i += 2 {
		v, err := strconv.ParseUint(s[i:i+2], 16, 8)
		if err != nil || v%0x33 != 0 {
			return false
		}
	}
	return true
}

func distinctColors(grid Grid) map[lipgloss.Color]struct{} {
	colors := make(map[lipgloss.Color]struct{})
	for _, row := range grid {
		for _, cell := range row {
			if cell.Tinted() {
				colors[cell.Color] = struct{}{}
			}
		}
	}
	return colors
}

func TestReduceWebSafe(t *testing.T) {
	grid := Grid{
		{MapPixel(0xFF123456), TransparentCell},
		{MapPixel(0x40FEDCBA), MapPixel(0xFF000000)},
	}

	reduced := Reduce(grid, WebSafePalette())
	require.Equal(t, grid.Rows(), reduced.Rows())
	require.Equal(t, grid.Cols(), reduced.Cols())

	for y, row := range reduced {
		for x, cell := range row {
			assert.Equal(t, grid[y][x].Glyph, cell.Glyph)
			assert.Equal(t, grid[y][x].Tinted(), cell.Tinted())
			if cell.Tinted() {
				assert.True(t, isWebSafe(cell.Color), "color %s", cell.Color)
			}
		}
	}
	assert.Equal(t, TransparentCell, reduced[0][1])
	assert.Equal(t, lipgloss.Color("#000000"), reduced[1][1].Color)

	// input is left untouched
	assert.Equal(t, lipgloss.Color("#123456"), grid[0][0].Color)
}

func TestReduceMedian(t *testing.T) {
	grid, ok := Rasterize(FromImage(createTestImage(32, 32)), 32).Grid()
	require.True(t, ok)
	require.Greater(t, len(distinctColors(grid)), 4)

	reduced := Reduce(grid, MedianPalette(4))
	assert.LessOrEqual(t, len(distinctColors(reduced)), 4)
	assert.Equal(t, grid.String(), reduced.String())
}

func TestReduceMedianFewColors(t *testing.T) {
	grid := Grid{{MapPixel(0xFF112233), MapPixel(0xFF445566)}}
	assert.Equal(t, grid, Reduce(grid, MedianPalette(8)))
}

func TestReduceNoPalette(t *testing.T) {
	grid := Grid{{MapPixel(0xFF112233)}}
	assert.Equal(t, grid, Reduce(grid, nil))
	assert.Nil(t, MedianPalette(0))
}
