package manifest

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/matzehuels/domrep/pkg/dom"
	"github.com/matzehuels/domrep/pkg/errors"
	"github.com/matzehuels/domrep/pkg/graphic"
	"github.com/matzehuels/domrep/pkg/report"
)

// Build turns a validated manifest into a document. Embedded file sources
// are resolved relative to baseDir.
func Build(ctx context.Context, m *Manifest, baseDir string) (*dom.Document, error) {
	b := builder{baseDir: baseDir}
	doc := dom.NewDocument(m.Title)
	for i, it := range m.Items {
		n, err := b.node(ctx, it)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		doc.Append(n)
	}
	return doc, nil
}

type builder struct {
	baseDir string
}

func (b builder) node(ctx context.Context, it Item) (*dom.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	style, err := dom.ParseStyle(it.Style)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidStyle, err, "invalid style")
	}

	switch it.Kind {
	case KindImage:
		content, err := b.content(it)
		if err != nil {
			return nil, err
		}
		return report.Image(ctx, content, b.imageOptions(it, style)...)

	case KindAnimation:
		return b.animation(ctx, it, style)

	case KindCaption:
		children, err := b.children(ctx, it.Items)
		if err != nil {
			return nil, err
		}
		return report.Caption(it.Title, children, containerOptions(it, style)...), nil

	case KindGrid:
		children, err := b.children(ctx, it.Items)
		if err != nil {
			return nil, err
		}
		grid, err := report.Grid(it.Length, children, containerOptions(it, style)...)
		if err != nil {
			return nil, err
		}
		return titled(it, grid), nil

	case KindSlider:
		frames, err := b.children(ctx, it.Items)
		if err != nil {
			return nil, err
		}
		var opts []report.SliderOption
		if it.Labels != nil {
			opts = append(opts, report.WithLabels(it.Labels...))
		}
		if it.LabelPrefix != "" {
			opts = append(opts, report.WithLabelPrefix(it.LabelPrefix))
		}
		if it.Interval != 0 {
			opts = append(opts, report.WithInterval(it.Interval))
		}
		if it.ID != "" {
			opts = append(opts, report.WithID(it.ID))
		}
		if len(style) > 0 {
			opts = append(opts, report.WithSliderStyle(style))
		}
		slider, err := report.Slider(frames, opts...)
		if err != nil {
			return nil, err
		}
		return titled(it, slider), nil

	case KindNote:
		return report.Note(it.Markdown, report.WithStyle(style))

	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown kind %q", it.Kind)
	}
}

// titled wraps a grid or slider in a caption when the item has a title.
func titled(it Item, el *dom.Element) *dom.Element {
	if it.Title == "" {
		return el
	}
	return report.Caption(it.Title, []dom.Node{el})
}

func (b builder) children(ctx context.Context, items []Item) ([]dom.Node, error) {
	nodes := make([]dom.Node, 0, len(items))
	for i, it := range items {
		n, err := b.node(ctx, it)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (b builder) animation(ctx context.Context, it Item, style dom.Style) (*dom.Element, error) {
	contents := make([]any, 0, len(it.Items))
	for _, frame := range it.Items {
		c, err := b.content(frame)
		if err != nil {
			return nil, err
		}
		contents = append(contents, c)
	}
	seq, err := graphic.Frames(contents...)
	if err != nil {
		return nil, err
	}
	return report.Image(ctx, seq, b.imageOptions(it, style)...)
}

func (b builder) imageOptions(it Item, style dom.Style) []report.ImageOption {
	opts := []report.ImageOption{
		report.WithFormat(graphic.Format(it.Format)),
		report.WithEncodeOptions(graphic.EncodeOptions{
			Width:      it.Width,
			Height:     it.Height,
			FrameDelay: time.Duration(it.Interval) * time.Millisecond,
		}),
	}
	if it.Title != "" {
		opts = append(opts, report.WithTitle(it.Title))
	}
	if len(style) > 0 {
		opts = append(opts, report.WithImageStyle(style))
	}
	return opts
}

func containerOptions(it Item, style dom.Style) []report.ContainerOption {
	opts := []report.ContainerOption{report.WithStyle(style)}
	if it.Flow != "" {
		opts = append(opts, report.WithFlow(report.Flow(it.Flow)))
	}
	return opts
}

// content returns what an image item embeds: a figure, an artist, a
// literal source string or nil.
func (b builder) content(it Item) (any, error) {
	switch {
	case it.DOT != "":
		return graphic.Graph{DOT: it.DOT}, nil
	case it.Chart != nil:
		return chartFigure(*it.Chart), nil
	case it.Heatmap != nil:
		h := graphic.RandomHeatmap(it.Heatmap.Rows, it.Heatmap.Cols, it.Heatmap.Seed)
		h.Scale = it.Heatmap.Scale
		return h, nil
	case it.Src != "" && it.Embed:
		if err := errors.ValidatePath(it.Src); err != nil {
			return nil, err
		}
		return graphic.File{Path: filepath.Join(b.baseDir, filepath.FromSlash(it.Src))}, nil
	case it.Src != "":
		return it.Src, nil
	default:
		return nil, nil
	}
}

func chartFigure(c ChartSpec) graphic.Chart {
	if c.Type == "bar" {
		bars := make([]chart.Value, len(c.Y))
		for i, v := range c.Y {
			bars[i] = chart.Value{Value: v}
			if i < len(c.Labels) {
				bars[i].Label = c.Labels[i]
			}
		}
		return graphic.NewChart(chart.BarChart{
			Title:  c.Title,
			Height: 400,
			Bars:   bars,
		})
	}

	xs := c.X
	if len(xs) == 0 {
		xs = make([]float64, len(c.Y))
		for i := range xs {
			xs[i] = float64(i)
		}
	}
	return graphic.NewChart(chart.Chart{
		Title: c.Title,
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: xs, YValues: c.Y},
		},
	})
}
