package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/domrep/pkg/manifest"
)

// buildCommand creates the build command for rendering a manifest.
func (c *CLI) buildCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build [manifest]",
		Short: "Build an HTML report from a TOML or YAML manifest",
		Long: `Build an HTML report from a TOML or YAML manifest.

The manifest describes a tree of items: images (files, Graphviz DOT sources,
line or bar charts, generated heatmaps), GIF animations, captions, grids,
sliders and markdown notes. Embedded files are resolved relative to the
manifest's directory and inlined as data URIs, so the report is a single
self-contained HTML file.

Use -o - to write the document to standard output.`,
		Example: `  domrep build report.toml
  domrep build report.yaml -o public/index.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: manifest path with .html extension)")

	return cmd
}

// runBuild loads, validates and renders a manifest.
func (c *CLI) runBuild(ctx context.Context, input, output string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	m, err := manifest.Load(input)
	if err != nil {
		return fmt.Errorf("load manifest %s: %w", input, err)
	}
	logger.Debug("loaded manifest", "path", input, "items", len(m.Items))

	spinner := newSpinnerWithContext(ctx, "Encoding images...")
	spinner.Start()
	doc, err := manifest.Build(ctx, m, filepath.Dir(input))
	if err != nil {
		spinner.StopWithError("Build failed")
		return fmt.Errorf("build %s: %w", input, err)
	}
	spinner.Stop()

	path := outputPath(output, input, "report.html")
	n, err := writeDocument(doc, path)
	if err != nil {
		return err
	}
	if path == stdoutPath {
		return nil
	}

	prog.done("Built report")
	printSuccess("Built %s", StyleValue.Render(displayTitle(m.Title)))
	printKeyValue("items", strconv.Itoa(len(m.Items)))
	printFile(path, n)
	return nil
}

func displayTitle(title string) string {
	if title == "" {
		return "untitled report"
	}
	return title
}
