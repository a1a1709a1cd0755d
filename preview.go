package microicon

import (
	"image"
	"os"

	"github.com/charmbracelet/x/mosaic"
	"golang.org/x/term"
)

// Preview renders the source image with unicode halfblocks for side-by-side
// comparison with its rasterized icon. It is not part of the icon pipeline.
func Preview(img image.Image, width int) string {
	if img == nil {
		return ""
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return ""
	}

	if width <= 0 {
		// Fit the terminal when no width is given
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		} else {
			width = 80
		}
	}
	width = min(width, bounds.Dx())

	return mosaic.New().Width(width).Render(img)
}
