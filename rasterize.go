package microicon

import (
	"image"
	"math"
)

// DefaultMaxDimension bounds the sampling step of a rasterized icon
const DefaultMaxDimension = 32

// Rasterize samples img into a grid of glyph cells.
//
// The step is derived from the width alone and reused for both axes, so a
// tall image can produce more than maxDimension rows. Images with a zero
// dimension yield None.
func Rasterize(img Raster, maxDimension int) Icon {
	if img == nil {
		return None
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return None
	}
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}

	step := stepSize(width, maxDimension)
	mapper := NewGlyphMapper()

	grid := make(Grid, 0, (height+step-1)/step)
	for y := 0; y < height; y += step {
		row := make([]Cell, 0, (width+step-1)/step)
		for x := 0; x < width; x += step {
			row = append(row, mapper.Map(img.ARGB(x, y)))
		}
		grid = append(grid, row)
	}

	return Some(grid)
}

func stepSize(width, maxDimension int) int {
	return max(int(math.Ceil(float64(width)/float64(maxDimension))), 1)
}

// Rasterizer holds rasterization settings with a fluent API for configuration
type Rasterizer struct {
	maxDimension int
	palette      Palette
}

// NewRasterizer creates a Rasterizer using DefaultMaxDimension and no palette
func NewRasterizer() *Rasterizer {
	return &Rasterizer{maxDimension: DefaultMaxDimension}
}

// MaxDimension sets the dimension used to derive the sampling step
func (r *Rasterizer) MaxDimension(n int) *Rasterizer {
	if n <= 0 {
		n = DefaultMaxDimension
	}
	r.maxDimension = n
	return r
}

// Palette sets the palette tinted cells are reduced to, nil disables it
func (r *Rasterizer) Palette(p Palette) *Rasterizer {
	r.palette = p
	return r
}

// Rasterize samples img with the configured settings
func (r *Rasterizer) Rasterize(img Raster) Icon {
	icon := Rasterize(img, r.maxDimension)
	if r.palette == nil {
		return icon
	}
	grid, ok := icon.Grid()
	if !ok {
		return icon
	}
	return Some(Reduce(grid, r.palette))
}

// RasterizeImage samples a decoded image with the configured settings
func (r *Rasterizer) RasterizeImage(img image.Image) Icon {
	if img == nil {
		return None
	}
	return r.Rasterize(FromImage(img))
}
