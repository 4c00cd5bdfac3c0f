package graphic

import (
	"bytes"
	"context"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Renderable is satisfied by go-chart charts (chart.Chart, chart.BarChart,
// chart.PieChart, chart.DonutChart, chart.StackedBarChart).
type Renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// Chart adapts a go-chart chart to a Figure.
type Chart struct {
	Chart Renderable
}

// NewChart wraps a go-chart chart.
func NewChart(c Renderable) Chart {
	return Chart{Chart: c}
}

// Render draws the chart. PNG and SVG come straight from go-chart; JPEG and
// GIF are converted from the PNG rendering.
func (c Chart) Render(_ context.Context, w io.Writer, format Format, opts EncodeOptions) error {
	switch {
	case format == SVG:
		return c.Chart.Render(chart.SVG, w)
	case format == PNG && opts.Width <= 0 && opts.Height <= 0:
		return c.Chart.Render(chart.PNG, w)
	}

	var buf bytes.Buffer
	if err := c.Chart.Render(chart.PNG, &buf); err != nil {
		return err
	}
	return reencode(w, buf.Bytes(), format, opts)
}
