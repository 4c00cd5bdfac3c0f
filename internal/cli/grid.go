package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/domrep/pkg/report"
)

// gridCommand creates the grid command for arranging image files.
func (c *CLI) gridCommand() *cobra.Command {
	var (
		opts     imageOpts
		length   int
		flow     string
		captions bool
	)

	cmd := &cobra.Command{
		Use:   "grid <images...>",
		Short: "Arrange image files in a CSS grid",
		Long: `Arrange image files in a CSS grid inside a single HTML file.

Images are embedded as data URIs unless --link is set. The grid places
--length images per row (or per column with --flow column). With --captions
every image is framed with its file name.`,
		Example: `  domrep grid plots/*.png
  domrep grid a.png b.png c.png d.png --length 2 --captions -o grid.html
  domrep grid frames/*.jpg --flow column --width 200 --format jpeg`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := report.ParseFlow(flow); err != nil {
				return err
			}
			return opts.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, _ := report.ParseFlow(flow)
			return c.runGrid(cmd.Context(), args, opts, length, f, captions)
		},
	}

	opts.register(cmd, "domrep grid")
	cmd.Flags().IntVarP(&length, "length", "n", 3, "number of tracks along the flow direction")
	cmd.Flags().StringVar(&flow, "flow", string(report.FlowRow), "grid flow: row or column")
	cmd.Flags().BoolVar(&captions, "captions", false, "caption each image with its file name")

	return cmd
}

// runGrid embeds paths and writes them as a grid document.
func (c *CLI) runGrid(ctx context.Context, paths []string, opts imageOpts, length int, flow report.Flow, captions bool) error {
	prog := newProgress(loggerFromContext(ctx))

	spinner := newSpinnerWithContext(ctx, "Embedding images...")
	spinner.Start()
	nodes, err := embedFiles(ctx, paths, opts, captions, spinner)
	if err != nil {
		spinner.StopWithError("Embedding failed")
		return err
	}
	spinner.Stop()

	grid, err := report.Grid(length, nodes, report.WithFlow(flow))
	if err != nil {
		return err
	}

	path, n, err := writeReport(opts.title, grid, opts.output, "grid.html")
	if err != nil {
		return fmt.Errorf("write grid: %w", err)
	}
	if path == stdoutPath {
		return nil
	}

	prog.done("Built grid")
	printSuccess("Arranged %s images", StyleValue.Render(strconv.Itoa(len(nodes))))
	printKeyValue("layout", fmt.Sprintf("%d per %s", length, flow))
	printFile(path, n)
	return nil
}
