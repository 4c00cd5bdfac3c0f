package graphic

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-graphviz"
)

// Graph is a figure described in Graphviz DOT and laid out with the
// embedded Graphviz engine.
type Graph struct {
	DOT string
}

// Render lays out the graph. SVG, PNG and JPEG are produced by Graphviz
// directly; GIF and resized output go through a PNG rendering.
func (g Graph) Render(ctx context.Context, w io.Writer, format Format, opts EncodeOptions) error {
	resized := opts.Width > 0 || opts.Height > 0
	switch {
	case format == SVG:
		return g.render(ctx, w, graphviz.SVG)
	case format == PNG && !resized:
		return g.render(ctx, w, graphviz.PNG)
	case format == JPEG && !resized:
		return g.render(ctx, w, graphviz.JPG)
	}

	var buf bytes.Buffer
	if err := g.render(ctx, &buf, graphviz.PNG); err != nil {
		return err
	}
	return reencode(w, buf.Bytes(), format, opts)
}

func (g Graph) render(ctx context.Context, w io.Writer, format graphviz.Format) error {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	graph, err := graphviz.ParseBytes([]byte(g.DOT))
	if err != nil {
		return fmt.Errorf("parse DOT: %w", err)
	}
	defer graph.Close()

	if err := gv.Render(ctx, graph, format, w); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
