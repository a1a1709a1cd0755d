/*
Copyright © 2024 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"

	"github.com/apex/log"
	"github.com/blacktop/go-microicon"
	"github.com/spf13/cobra"
)

var preview bool

func init() {
	renderCmd.Flags().BoolVarP(&preview, "preview", "P", false, "Also print a halfblock preview of the source image")
	rootCmd.AddCommand(renderCmd)
}

// renderCmd rasterizes image files directly
var renderCmd = &cobra.Command{
	Use:   "render FILE...",
	Short: "Rasterize image files into glyph grids",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		renderer, err := newRenderer(out)
		if err != nil {
			return err
		}
		rasterizer := newRasterizer()

		var failed int
		for _, path := range args {
			img, err := microicon.DecodeFile(path)
			if err != nil {
				log.WithField("path", path).WithError(err).Warn("failed to render icon")
				failed++
				continue
			}

			icon := rasterizer.RasterizeImage(img)
			if grid, ok := icon.Grid(); ok {
				log.Debugf("%s: %dx%d source, %dx%d icon", path, img.Bounds().Dx(), img.Bounds().Dy(), grid.Cols(), grid.Rows())
			}

			if len(args) > 1 {
				fmt.Fprintf(out, "%s:\n", path)
			}
			printIcon(out, renderer, icon)

			if preview {
				fmt.Fprintln(out, microicon.Preview(img, 0))
			}
		}

		if failed > 0 {
			return fmt.Errorf("failed to render %d of %d images", failed, len(args))
		}
		return nil
	},
}
