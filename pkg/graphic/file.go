package graphic

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"os"

	"github.com/matzehuels/domrep/pkg/errors"
)

// File is a figure backed by an image file on disk. Requests for the file's
// own format copy the bytes unchanged; other raster formats are converted.
type File struct {
	Path string
}

// NativeFormat reports the format implied by the file extension, or PNG
// when the extension is unknown.
func (f File) NativeFormat() Format {
	format, err := FormatOf(f.Path)
	if err != nil {
		return PNG
	}
	return format
}

// Render writes the file in the requested format.
func (f File) Render(_ context.Context, w io.Writer, format Format, opts EncodeOptions) error {
	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return errors.New(errors.ErrCodeFileNotFound, "image not found: %s", f.Path)
	}
	if err != nil {
		return err
	}

	native, nerr := FormatOf(f.Path)
	if nerr == nil && native == format && opts.Width <= 0 && opts.Height <= 0 {
		_, err := w.Write(data)
		return err
	}
	if format == SVG {
		return errors.New(errors.ErrCodeInvalidFormat, "cannot convert %s to svg", f.Path)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", f.Path)
	}
	return encodeRaster(w, img, format, opts)
}
