package report

import (
	"context"

	"github.com/matzehuels/domrep/pkg/dom"
	"github.com/matzehuels/domrep/pkg/errors"
	"github.com/matzehuels/domrep/pkg/graphic"
)

type imageConfig struct {
	title  string
	format graphic.Format
	encode graphic.EncodeOptions
	attrs  []dom.Attr
	style  dom.Style
}

// ImageOption configures [Image].
type ImageOption func(*imageConfig)

// WithTitle wraps the image in a [Caption] with the given title.
func WithTitle(title string) ImageOption { return func(c *imageConfig) { c.title = title } }

// WithFormat selects the encoding format. Figures default to PNG (or their
// native format) and animations to GIF.
func WithFormat(f graphic.Format) ImageOption { return func(c *imageConfig) { c.format = f } }

// WithEncodeOptions passes extra settings to the figure or animation encoder.
func WithEncodeOptions(o graphic.EncodeOptions) ImageOption {
	return func(c *imageConfig) { c.encode = o }
}

// WithImageAttr sets an attribute on the img element. A "src" attribute is
// ignored; the source always comes from the content. A "style" value that
// does not parse is dropped; see [WithAttr].
func WithImageAttr(key, value string) ImageOption {
	return func(c *imageConfig) { c.attrs = append(c.attrs, dom.Attr{Key: key, Val: value}) }
}

// WithImageStyle appends inline style declarations to the img element.
func WithImageStyle(s dom.Style) ImageOption {
	return func(c *imageConfig) { c.style = dom.MergeStyle(c.style, s) }
}

// Image embeds content as an img element.
//
// Supported content:
//   - nil: an empty source
//   - string: used as the source verbatim (a path or URL)
//   - [graphic.Figure]: rendered and inlined as a data URI
//   - [graphic.Animation]: saved through a temporary file and inlined
//   - [graphic.Figurer]: its associated figure is embedded
//
// Any other type yields an [*errors.UnsupportedContentError] and no node.
// With [WithTitle] the result is the image wrapped in a caption figure.
func Image(ctx context.Context, content any, opts ...ImageOption) (*dom.Element, error) {
	var cfg imageConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	src, err := Source(ctx, content, cfg.format, cfg.encode)
	if err != nil {
		return nil, err
	}

	img := dom.New("img").SetAttrs(cfg.attrs...).SetAttr("src", src)
	if len(cfg.style) > 0 {
		img.SetStyle(dom.MergeStyle(img.Style(), cfg.style))
	}

	if cfg.title != "" {
		return Caption(cfg.title, []dom.Node{img}), nil
	}
	return img, nil
}

// Source returns the image source for content without building an element.
// See [Image] for the supported content types.
func Source(ctx context.Context, content any, format graphic.Format, opts graphic.EncodeOptions) (string, error) {
	if f, ok := content.(graphic.Figurer); ok {
		content = f.Figure()
	}

	switch v := content.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case graphic.Figure:
		return graphic.EncodeFigure(ctx, v, format, opts)
	case graphic.Animation:
		return graphic.EncodeAnimation(ctx, v, format, opts)
	default:
		return "", errors.Unsupported(content)
	}
}
