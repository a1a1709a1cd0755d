package microicon

import (
	"image"
	"image/color"
)

// Raster is a random-access source of ARGB pixels.
// ARGB coordinates are relative to the top-left corner of Bounds.
type Raster interface {
	Bounds() image.Rectangle
	ARGB(x, y int) uint32
}

// FromImage adapts a decoded image to a Raster
func FromImage(img image.Image) Raster {
	if img == nil {
		return nil
	}
	if r, ok := img.(Raster); ok {
		return r
	}
	return imageRaster{img: img}
}

type imageRaster struct {
	img image.Image
}

func (r imageRaster) Bounds() image.Rectangle {
	return r.img.Bounds()
}

func (r imageRaster) ARGB(x, y int) uint32 {
	origin := r.img.Bounds().Min
	c := color.NRGBAModel.Convert(r.img.At(origin.X+x, origin.Y+y)).(color.NRGBA)
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ARGBImage is a packed row-major ARGB buffer
type ARGBImage struct {
	Pix    []uint32
	Width  int
	Height int
}

// NewARGB wraps pix as a width x height raster.
// Missing trailing pixels read as transparent.
func NewARGB(width, height int, pix []uint32) *ARGBImage {
	return &ARGBImage{Pix: pix, Width: width, Height: height}
}

func (a *ARGBImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, max(a.Width, 0), max(a.Height, 0))
}

func (a *ARGBImage) ARGB(x, y int) uint32 {
	i := y*a.Width + x
	if x < 0 || y < 0 || x >= a.Width || i >= len(a.Pix) {
		return 0
	}
	return a.Pix[i]
}
