// Package graphic turns graphics into image sources for HTML documents.
//
// # Overview
//
// Embeddable content comes in two shapes:
//
//   - [Figure]: a static graphic that renders itself into a writer
//   - [Animation]: a multi-frame graphic that saves itself to a file path
//
// Artists bound to a figure implement [Figurer]; embedders substitute the
// associated figure before encoding.
//
// # Figures
//
// This package provides figure adapters for:
//
//   - [Chart]: go-chart charts (line, bar, pie, ...)
//   - [Graph]: Graphviz DOT sources, laid out by the embedded Graphviz engine
//   - [Raster]: any image.Image
//   - [File]: image files on disk
//
// and one artist, [Heatmap], which plots a 2D grid of values with a
// colormap blended in Lab space.
//
// # Encoding
//
// [EncodeFigure] renders into a streaming base64 encoder and returns a
// "data:<mime>;base64,..." URI. PNG is the default format:
//
//	uri, err := graphic.EncodeFigure(ctx, graphic.NewChart(c), "", graphic.EncodeOptions{})
//
// [EncodeAnimation] saves the animation to a temporary file (GIF by
// default), reads it back and encodes it the same way. The temporary file is
// removed on every exit path:
//
//	seq, err := graphic.Frames(h1, h2, h3)
//	uri, err := graphic.EncodeAnimation(ctx, seq, graphic.GIF, graphic.EncodeOptions{
//	    FrameDelay: 50 * time.Millisecond,
//	})
//
// Render failures are returned as ENCODE_FAILED errors wrapping the cause;
// unsupported formats are INVALID_FORMAT. Both calls report to the
// [observability.EncodeHooks] registered at startup.
//
// [observability.EncodeHooks]: github.com/matzehuels/domrep/pkg/observability.EncodeHooks
package graphic
