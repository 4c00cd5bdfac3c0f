package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/domrep/pkg/dom"
	"github.com/matzehuels/domrep/pkg/errors"
	"github.com/matzehuels/domrep/pkg/graphic"
	"github.com/matzehuels/domrep/pkg/report"
)

// imageOpts holds the flags shared by the grid and slider commands.
type imageOpts struct {
	output string // output file path
	title  string // document title
	link   bool   // reference files by path instead of embedding them
	format string // re-encode embedded images in this format
	width  int    // resize embedded images to this width

	encoding graphic.Format // parsed format, set by validate
}

func (o *imageOpts) register(cmd *cobra.Command, title string) {
	o.title = title
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output file (default: "+cmd.Name()+".html)")
	cmd.Flags().StringVar(&o.title, "title", o.title, "document title")
	cmd.Flags().BoolVar(&o.link, "link", false, "reference images by path instead of embedding them")
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "re-encode embedded images: png, jpeg, gif (default: keep file format)")
	cmd.Flags().IntVar(&o.width, "width", 0, "resize embedded images to this width in pixels")
}

func (o *imageOpts) validate() error {
	if o.format == "" {
		return nil
	}
	f, err := graphic.ParseFormat(o.format)
	if err != nil {
		return err
	}
	if f == graphic.SVG {
		return errors.New(errors.ErrCodeInvalidFormat, "image files cannot be converted to svg")
	}
	o.encoding = f
	return nil
}

// embedFiles turns image files into img elements, one per path, reporting
// progress on the spinner. With captions set every image is wrapped in a
// caption naming its file.
func embedFiles(ctx context.Context, paths []string, o imageOpts, captions bool, spinner *Spinner) ([]dom.Node, error) {
	logger := loggerFromContext(ctx)
	nodes := make([]dom.Node, 0, len(paths))

	for i, path := range paths {
		spinner.Update("Embedding %s (%d/%d)...", filepath.Base(path), i+1, len(paths))

		var content any = graphic.File{Path: path}
		if o.link {
			content = filepath.ToSlash(path)
		}

		opts := []report.ImageOption{
			report.WithFormat(o.encoding),
			report.WithEncodeOptions(graphic.EncodeOptions{Width: o.width}),
		}
		if captions {
			opts = append(opts, report.WithTitle(fileLabel(path)))
		}

		img, err := report.Image(ctx, content, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		logger.Debug("embedded image", "path", path)
		nodes = append(nodes, img)
	}
	return nodes, nil
}

// fileLabel is the file name without directory and extension.
func fileLabel(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// writeReport wraps body in a document and writes it.
func writeReport(title string, body *dom.Element, output, fallback string) (string, int, error) {
	doc := dom.NewDocument(title).Append(body)
	path := outputPath(output, "", fallback)
	n, err := writeDocument(doc, path)
	return path, n, err
}
