package microicon

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/apex/log"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// MaxIconSize is the icon size requested from a Resolver
const MaxIconSize = 32

// LoadFile decodes the image at path and rasterizes it with r.
// An image with a zero dimension yields None and no error.
func LoadFile(path string, r *Rasterizer) (Icon, error) {
	if path == "" {
		return None, ErrEmptyPath
	}
	if r == nil {
		r = NewRasterizer()
	}

	img, err := DecodeFile(path)
	if err != nil {
		return None, err
	}

	return r.RasterizeImage(img), nil
}

// DecodeFile decodes the image at path, applying any EXIF orientation
func DecodeFile(path string) (image.Image, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// FileLoader returns the cache loader for entityID. Both a missing icon and
// a decode failure yield None; only the failure is logged as a warning.
func FileLoader(res Resolver, entityID string, r *Rasterizer, logger log.Interface) Loader {
	if logger == nil {
		logger = log.Log
	}
	return func() Icon {
		ctx := logger.WithField("entity", entityID)

		if res == nil {
			ctx.Debug("no icon resolver configured")
			return None
		}
		path, ok := res.IconPath(entityID, MaxIconSize)
		if !ok {
			ctx.Debug("no icon configured")
			return None
		}

		icon, err := LoadFile(path, r)
		if err != nil {
			ctx.WithField("path", path).WithError(err).Warn("failed to render icon")
			return None
		}
		if !icon.Present() {
			ctx.WithField("path", path).Debug("icon has an empty dimension")
		}
		return icon
	}
}
