package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/domrep/pkg/dom"
	"github.com/matzehuels/domrep/pkg/errors"
	"github.com/matzehuels/domrep/pkg/report"
)

// sliderCommand creates the slider command for paging through image files.
func (c *CLI) sliderCommand() *cobra.Command {
	var (
		opts        imageOpts
		interval    int
		labelPrefix string
		fileLabels  bool
		caption     string
	)

	cmd := &cobra.Command{
		Use:   "slider <images...>",
		Short: "Page through image files with a slider",
		Long: `Page through image files with a range slider and a play/pause button.

Each image becomes one frame, in argument order. Frames are labeled with
their index by default, with --label-prefix prepended, or with their file
names when --file-labels is set. Playback advances one frame every
--interval milliseconds and wraps around at the end.`,
		Example: `  domrep slider epoch-*.png
  domrep slider frames/*.png --interval 100 --label-prefix step
  domrep slider a.png b.png --file-labels --caption "Comparison"`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateInterval(interval); err != nil {
				return err
			}
			if fileLabels && cmd.Flags().Changed("label-prefix") {
				return errors.New(errors.ErrCodeInvalidInput, "--file-labels and --label-prefix are mutually exclusive")
			}
			return opts.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sopts := []report.SliderOption{report.WithInterval(interval)}
			switch {
			case fileLabels:
				labels := make([]string, len(args))
				for i, path := range args {
					labels[i] = fileLabel(path)
				}
				sopts = append(sopts, report.WithLabels(labels...))
			case cmd.Flags().Changed("label-prefix"):
				sopts = append(sopts, report.WithLabelPrefix(labelPrefix))
			}
			return c.runSlider(cmd.Context(), args, opts, caption, sopts)
		},
	}

	opts.register(cmd, "domrep slider")
	cmd.Flags().IntVar(&interval, "interval", report.DefaultInterval, "playback interval in milliseconds")
	cmd.Flags().StringVar(&labelPrefix, "label-prefix", "", "prefix for numeric frame labels")
	cmd.Flags().BoolVar(&fileLabels, "file-labels", false, "label frames with their file names")
	cmd.Flags().StringVar(&caption, "caption", "", "frame the slider in a caption with this title")

	return cmd
}

// runSlider embeds paths and writes them as a slider document.
func (c *CLI) runSlider(ctx context.Context, paths []string, opts imageOpts, caption string, sopts []report.SliderOption) error {
	prog := newProgress(loggerFromContext(ctx))

	spinner := newSpinnerWithContext(ctx, "Embedding frames...")
	spinner.Start()
	frames, err := embedFiles(ctx, paths, opts, false, spinner)
	if err != nil {
		spinner.StopWithError("Embedding failed")
		return err
	}
	spinner.Stop()

	slider, err := report.Slider(frames, sopts...)
	if err != nil {
		return err
	}
	body := slider
	if caption != "" {
		body = report.Caption(caption, []dom.Node{slider})
	}

	path, n, err := writeReport(opts.title, body, opts.output, "slider.html")
	if err != nil {
		return fmt.Errorf("write slider: %w", err)
	}
	if path == stdoutPath {
		return nil
	}

	prog.done("Built slider")
	printSuccess("Built slider with %s frames", StyleValue.Render(strconv.Itoa(len(frames))))
	printFile(path, n)
	return nil
}
