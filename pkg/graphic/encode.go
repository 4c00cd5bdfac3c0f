package graphic

import (
	"context"
	"encoding/base64"
	"io"
	"os"
	"strings"
	"time"

	"github.com/matzehuels/domrep/pkg/errors"
	"github.com/matzehuels/domrep/pkg/observability"
)

// Figure is a static graphic that can render itself in a given format.
type Figure interface {
	Render(ctx context.Context, w io.Writer, format Format, opts EncodeOptions) error
}

// Animation is a multi-frame graphic that can only be saved to a file path,
// like the writers of most animation encoders.
type Animation interface {
	Save(ctx context.Context, path string, format Format, opts EncodeOptions) error
}

// Figurer is implemented by artists bound to a parent figure. Embedders
// substitute the associated figure for the artist.
type Figurer interface {
	Figure() Figure
}

// NativeFormatter is implemented by figures with an intrinsic format, such
// as image files. It is used when no format is requested.
type NativeFormatter interface {
	NativeFormat() Format
}

// DataURI returns "data:<mime>;base64,<payload>" for data.
func DataURI(format Format, data []byte) string {
	var sb strings.Builder
	writeDataURIPrefix(&sb, format)
	sb.WriteString(base64.StdEncoding.EncodeToString(data))
	return sb.String()
}

func writeDataURIPrefix(sb *strings.Builder, format Format) {
	sb.WriteString("data:")
	sb.WriteString(format.MIME())
	sb.WriteString(";base64,")
}

// EncodeFigure renders fig and returns it as a data URI. An empty format
// selects the figure's native format, or PNG.
func EncodeFigure(ctx context.Context, fig Figure, format Format, opts EncodeOptions) (uri string, err error) {
	if format == "" {
		format = DefaultFigureFormat
		if n, ok := fig.(NativeFormatter); ok {
			format = n.NativeFormat()
		}
	}
	if format, err = ParseFormat(string(format)); err != nil {
		return "", err
	}

	hooks := observability.Encode()
	hooks.OnEncodeStart(ctx, "figure", string(format))
	start := time.Now()
	defer func() {
		hooks.OnEncodeComplete(ctx, "figure", string(format), len(uri), time.Since(start), err)
	}()

	var sb strings.Builder
	writeDataURIPrefix(&sb, format)
	enc := base64.NewEncoder(base64.StdEncoding, &sb)
	if err := fig.Render(ctx, enc, format, opts); err != nil {
		return "", wrapEncode(err, "render %s figure", format)
	}
	if err := enc.Close(); err != nil {
		return "", wrapEncode(err, "flush %s figure", format)
	}
	return sb.String(), nil
}

// EncodeAnimation saves anim to a temporary file, reads it back and returns
// it as a data URI. An empty format selects GIF. The temporary file is
// removed before returning, whether or not saving succeeded.
func EncodeAnimation(ctx context.Context, anim Animation, format Format, opts EncodeOptions) (uri string, err error) {
	if format == "" {
		format = DefaultAnimationFormat
	}
	if format, err = ParseFormat(string(format)); err != nil {
		return "", err
	}

	hooks := observability.Encode()
	hooks.OnEncodeStart(ctx, "animation", string(format))
	start := time.Now()
	defer func() {
		hooks.OnEncodeComplete(ctx, "animation", string(format), len(uri), time.Since(start), err)
	}()

	f, err := os.CreateTemp("", "domrep-*."+string(format))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "create temporary file")
	}
	path := f.Name()
	defer os.Remove(path)
	if err := f.Close(); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "close temporary file")
	}

	if err := anim.Save(ctx, path, format, opts); err != nil {
		return "", wrapEncode(err, "save %s animation", format)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeEncode, err, "read %s animation", format)
	}
	return DataURI(format, data), nil
}

// wrapEncode wraps err as ENCODE_FAILED unless it already carries a code,
// such as INVALID_FORMAT from an adapter.
func wrapEncode(err error, format string, args ...any) error {
	if errors.GetCode(err) != "" {
		return err
	}
	return errors.Wrap(errors.ErrCodeEncode, err, format, args...)
}
