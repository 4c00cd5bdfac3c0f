package graphic

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/matzehuels/domrep/pkg/errors"
)

// Format is an output image format.
type Format string

// Supported formats.
const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	SVG  Format = "svg"
)

// Default formats applied when none is requested.
const (
	DefaultFigureFormat    = PNG
	DefaultAnimationFormat = GIF
)

// MIME returns the media type used in data URIs.
func (f Format) MIME() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/" + string(f)
}

// ParseFormat parses a format name or file extension ("png", ".jpg", "JPEG").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "svg":
		return SVG, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported image format %q", s)
	}
}

// FormatOf infers the format from a file name's extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// EncodeOptions carries extra encoder settings. Zero values mean "encoder
// default".
type EncodeOptions struct {
	// Width and Height resize raster output. When only one is set the other
	// keeps the aspect ratio.
	Width  int
	Height int

	// Quality is the JPEG quality (1-100, default 90).
	Quality int

	// FrameDelay is the delay between animation frames (default 100ms).
	FrameDelay time.Duration

	// LoopCount controls GIF looping: 0 loops forever, -1 plays once.
	LoopCount int
}

const (
	defaultQuality    = 90
	defaultFrameDelay = 100 * time.Millisecond
)

func (o EncodeOptions) quality() int {
	if o.Quality <= 0 || o.Quality > 100 {
		return defaultQuality
	}
	return o.Quality
}

func (o EncodeOptions) frameDelay() time.Duration {
	if o.FrameDelay <= 0 {
		return defaultFrameDelay
	}
	return o.FrameDelay
}
