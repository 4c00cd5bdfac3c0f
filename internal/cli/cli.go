// Package cli implements the domrep command-line interface.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/domrep/pkg/buildinfo"
	"github.com/matzehuels/domrep/pkg/dom"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "domrep"

	// stdoutPath as an output path writes the document to standard output.
	stdoutPath = "-"

	// defaultSeed seeds generated demo data.
	defaultSeed = 42
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "domrep builds self-contained HTML reports from images and charts",
		Long:         `domrep embeds images, charts, Graphviz graphs and animations into a single HTML file, arranged in captioned figures, CSS grids and interactive frame sliders.`,
		Version:      buildinfo.Resolved(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.gridCommand())
	root.AddCommand(c.sliderCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Output Helpers
// =============================================================================

// outputPath returns the explicit output if set, otherwise input with its
// extension replaced by .html, otherwise fallback.
func outputPath(output, input, fallback string) string {
	switch {
	case output != "":
		return output
	case input != "":
		return strings.TrimSuffix(input, filepath.Ext(input)) + ".html"
	default:
		return fallback
	}
}

// writeDocument renders doc to path, or to stdout when path is "-".
// It returns the number of bytes written.
func writeDocument(doc *dom.Document, path string) (int, error) {
	doc.Head = append(doc.Head, dom.New("meta").SetAttrs(
		dom.Attr{Key: "name", Val: "generator"},
		dom.Attr{Key: "content", Val: buildinfo.Generator()},
	))

	if path == stdoutPath {
		cw := &countingWriter{w: os.Stdout}
		err := doc.Render(cw)
		return cw.n, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}

	bw := bufio.NewWriter(f)
	cw := &countingWriter{w: bw}
	if err := doc.Render(cw); err != nil {
		f.Close()
		return cw.n, fmt.Errorf("render %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return cw.n, err
	}
	return cw.n, f.Close()
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

// formatSize renders a byte count for status output.
func formatSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
