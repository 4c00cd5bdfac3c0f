package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/domrep/pkg/dom"
	"github.com/matzehuels/domrep/pkg/graphic"
	"github.com/matzehuels/domrep/pkg/report"
)

// demoReport is one document written by the demo command.
type demoReport struct {
	file  string
	title string
	build func(ctx context.Context, seed uint64) (dom.Node, error)
}

var demoReports = []demoReport{
	{file: "grid.html", title: "hello new", build: demoGrid},
	{file: "caption-slider.html", title: "hello", build: demoCaptionSlider},
	{file: "fast-slider.html", title: "fast slider", build: demoFastSlider},
	{file: "builder-slider.html", title: "slider builder", build: demoBuilderSlider},
}

// demoCommand creates the demo command that writes example reports.
func (c *CLI) demoCommand() *cobra.Command {
	var (
		dir  string
		seed uint64
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write a set of example reports",
		Long: `Write a set of example reports built from random heatmaps.

The demo writes a column grid of captioned heatmaps, a captioned slider,
a fast small-frame slider and a slider assembled frame by frame. The same
--seed always produces the same images.`,
		Example: `  domrep demo
  domrep demo -o out --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDemo(cmd.Context(), dir, seed)
		},
	}

	cmd.Flags().StringVarP(&dir, "output", "o", ".", "output directory")
	cmd.Flags().Uint64Var(&seed, "seed", defaultSeed, "random seed for the generated heatmaps")

	return cmd
}

// runDemo writes every demo report into dir.
func (c *CLI) runDemo(ctx context.Context, dir string, seed uint64) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	fmt.Println(StyleTitle.Render(appName + " demo"))
	for _, r := range demoReports {
		spinner := newSpinnerWithContext(ctx, "Building "+r.file+"...")
		spinner.Start()
		body, err := r.build(ctx, seed)
		if err != nil {
			spinner.StopWithError("Failed to build " + r.file)
			return fmt.Errorf("%s: %w", r.file, err)
		}
		spinner.Stop()

		path := filepath.Join(dir, r.file)
		n, err := writeDocument(dom.NewDocument(r.title).Append(body), path)
		if err != nil {
			return err
		}
		logger.Debug("wrote demo report", "path", path)
		printFile(path, n)
	}

	prog.done("Wrote demo reports")
	printInfo("Open the files in a browser; sliders need JavaScript")
	printNextStep("Build your own report", appName+" build report.toml")
	return nil
}

// heatmaps renders n random heatmaps of the given size as img elements.
func heatmaps(ctx context.Context, n, rows, cols, scale int, seed uint64) ([]dom.Node, error) {
	nodes := make([]dom.Node, 0, n)
	for i := range n {
		h := graphic.RandomHeatmap(rows, cols, seed+uint64(i))
		h.Scale = scale
		img, err := report.Image(ctx, h)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, img)
	}
	return nodes, nil
}

// demoGrid lays out nine captioned heatmaps in a three-row column grid.
func demoGrid(ctx context.Context, seed uint64) (dom.Node, error) {
	imgs, err := heatmaps(ctx, 9, 50, 50, 2, seed)
	if err != nil {
		return nil, err
	}
	grid, err := report.NewGrid(3, report.WithFlow(report.FlowColumn))
	if err != nil {
		return nil, err
	}
	for _, img := range imgs {
		grid.Append(report.Caption("hello", []dom.Node{img}))
	}
	return grid, nil
}

// demoCaptionSlider frames a twenty-frame slider in a caption.
func demoCaptionSlider(ctx context.Context, seed uint64) (dom.Node, error) {
	imgs, err := heatmaps(ctx, 20, 50, 50, 2, seed)
	if err != nil {
		return nil, err
	}
	slider, err := report.Slider(imgs)
	if err != nil {
		return nil, err
	}
	return report.Caption("testing", []dom.Node{slider}), nil
}

// demoFastSlider plays ten small heatmaps at a 50ms interval.
func demoFastSlider(ctx context.Context, seed uint64) (dom.Node, error) {
	imgs, err := heatmaps(ctx, 10, 10, 10, 20, seed)
	if err != nil {
		return nil, err
	}
	return report.Slider(imgs, report.WithInterval(50))
}

// demoBuilderSlider assembles a slider one frame at a time.
func demoBuilderSlider(ctx context.Context, seed uint64) (dom.Node, error) {
	b := report.NewSlider(report.WithInterval(50), report.WithLabelPrefix("frame"))
	for i := range 10 {
		h := graphic.RandomHeatmap(10, 10, seed+uint64(i))
		h.Scale = 20
		img, err := report.Image(ctx, h)
		if err != nil {
			return nil, err
		}
		b.Append(img)
	}
	return b.Build()
}
