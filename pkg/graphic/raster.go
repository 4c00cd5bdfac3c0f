package graphic

import (
	"bytes"
	"context"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/matzehuels/domrep/pkg/errors"
)

// Raster is a figure backed by an in-memory image.
type Raster struct {
	Image image.Image
}

// Render encodes the image as PNG, JPEG or GIF. SVG is not supported.
func (r Raster) Render(_ context.Context, w io.Writer, format Format, opts EncodeOptions) error {
	if r.Image == nil {
		return errors.New(errors.ErrCodeInvalidInput, "raster figure has no image")
	}
	return encodeRaster(w, r.Image, format, opts)
}

func encodeRaster(w io.Writer, img image.Image, format Format, opts EncodeOptions) error {
	img = resize(img, opts.Width, opts.Height)
	switch format {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: opts.quality()})
	case GIF:
		return gif.Encode(w, img, &gif.Options{NumColors: 256, Drawer: draw.FloydSteinberg})
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "cannot encode raster image as %s", format)
	}
}

// reencode decodes PNG bytes and encodes them in format. Used by figure
// sources that only produce PNG natively.
func reencode(w io.Writer, pngData []byte, format Format, opts EncodeOptions) error {
	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return err
	}
	return encodeRaster(w, img, format, opts)
}

// resize scales img to width x height. A zero dimension is derived from the
// other one to keep the aspect ratio; both zero returns img unchanged.
func resize(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if (width <= 0 && height <= 0) || b.Dx() == 0 || b.Dy() == 0 {
		return img
	}
	if width <= 0 {
		width = b.Dx() * height / b.Dy()
	}
	if height <= 0 {
		height = b.Dy() * width / b.Dx()
	}
	if width == b.Dx() && height == b.Dy() {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
