/*
Package microicon converts raster images into small grids of colored glyph
cells for terminals and other text-cell surfaces where bitmap graphics are
unavailable.

Images are sampled, never resized: the sampling step is derived from the
image width and the configured maximum dimension, and the top-left pixel of
each block becomes one cell. Fully transparent pixels become a black shade
cell, translucent pixels a light shade tinted with the pixel color, and
mostly opaque pixels a solid block.

Basic Usage:

	img, _ := imaging.Open("icon.png")
	icon := microicon.Rasterize(microicon.FromImage(img), microicon.DefaultMaxDimension)
	if grid, ok := icon.Grid(); ok {
	    fmt.Println(microicon.NewRenderer(os.Stdout, termenv.TrueColor).RenderGrid(grid))
	}

Fluent API:

	icon := microicon.NewRasterizer().
	    MaxDimension(16).
	    Palette(microicon.MedianPalette(8)).
	    RasterizeImage(img)

Caching per entity:

	manifest, err := microicon.LoadManifest("icons.toml")
	if err != nil {
	    log.Fatal(err)
	}

	cache := microicon.NewCache()
	icon := cache.GetIcon("core", microicon.FileLoader(manifest, "core", nil, nil))

The cache computes each entity's icon at most once, including the absence of
one, and keeps it for the lifetime of the process.
*/
package microicon
