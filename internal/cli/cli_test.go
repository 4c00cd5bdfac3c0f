package cli

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/domrep/pkg/errors"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		output, input, fallback string
		want                    string
	}{
		{"out.html", "report.toml", "x.html", "out.html"},
		{"", "docs/report.toml", "x.html", "docs/report.html"},
		{"", "report", "x.html", "report.html"},
		{"", "", "grid.html", "grid.html"},
		{"-", "report.toml", "", "-"},
	}

	for _, tt := range tests {
		if got := outputPath(tt.output, tt.input, tt.fallback); got != tt.want {
			t.Errorf("outputPath(%q, %q, %q) = %q, want %q", tt.output, tt.input, tt.fallback, got, tt.want)
		}
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{3 << 20, "3.0 MB"},
	}

	for _, tt := range tests {
		if got := formatSize(tt.n); got != tt.want {
			t.Errorf("formatSize(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFileLabel(t *testing.T) {
	tests := map[string]string{
		"plots/epoch-01.png": "epoch-01",
		"a.b.jpeg":           "a.b",
		"noext":              "noext",
	}
	for in, want := range tests {
		if got := fileLabel(in); got != want {
			t.Errorf("fileLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

// writeImages writes n small PNG files into dir and returns their paths.
func writeImages(t *testing.T, dir string, n int) []string {
	t.Helper()
	paths := make([]string, n)
	for i := range paths {
		img := image.NewRGBA(image.Rect(0, 0, 4, 4))
		for p := 0; p < len(img.Pix); p += 4 {
			img.Pix[p], img.Pix[p+3] = uint8(40*i), 0xff
		}
		img.Set(0, 0, color.White)

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			t.Fatal(err)
		}
		paths[i] = filepath.Join(dir, "frame-"+string(rune('a'+i))+".png")
		if err := os.WriteFile(paths[i], buf.Bytes(), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return paths
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestRunGrid(t *testing.T) {
	dir := t.TempDir()
	paths := writeImages(t, dir, 4)
	out := filepath.Join(dir, "out", "grid.html")

	args := append([]string{"grid", "--length", "2", "--captions", "--title", "plots", "-o", out}, paths...)
	if err := Run(context.Background(), args); err != nil {
		t.Fatalf("Run(grid) error: %v", err)
	}

	html := readFile(t, out)
	for _, want := range []string{
		"<title>plots</title>",
		"grid-template-columns: min-content min-content;",
		"<figcaption>frame-a</figcaption>",
		`name="generator"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("grid document missing %q", want)
		}
	}
	if got := strings.Count(html, `src="data:image/png;base64,`); got != 4 {
		t.Errorf("embedded images = %d, want 4", got)
	}
}

func TestRunGridLink(t *testing.T) {
	dir := t.TempDir()
	paths := writeImages(t, dir, 2)
	out := filepath.Join(dir, "grid.html")

	args := append([]string{"grid", "--link", "--flow", "column", "-o", out}, paths...)
	if err := Run(context.Background(), args); err != nil {
		t.Fatalf("Run(grid --link) error: %v", err)
	}

	html := readFile(t, out)
	if strings.Contains(html, "data:image") {
		t.Error("linked grid should not embed data URIs")
	}
	if !strings.Contains(html, "grid-template-rows:") {
		t.Error("column grid should set grid-template-rows")
	}
}

func TestRunSlider(t *testing.T) {
	dir := t.TempDir()
	paths := writeImages(t, dir, 3)
	out := filepath.Join(dir, "slider.html")

	args := append([]string{"slider", "--interval", "120", "--file-labels", "--caption", "frames", "-o", out}, paths...)
	if err := Run(context.Background(), args); err != nil {
		t.Fatalf("Run(slider) error: %v", err)
	}

	html := readFile(t, out)
	for _, want := range []string{
		`max="2"`,
		`"frame-a","frame-b","frame-c"`,
		"<figcaption>frames</figcaption>",
		"120",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("slider document missing %q", want)
		}
	}
}

func TestRunBuild(t *testing.T) {
	dir := t.TempDir()
	paths := writeImages(t, dir, 1)
	manifest := filepath.Join(dir, "report.toml")
	src := `
title = "Nightly"

[[items]]
kind = "image"
title = "first frame"
src = "` + filepath.Base(paths[0]) + `"
embed = true

[[items]]
kind = "note"
markdown = "**done**"
`
	if err := os.WriteFile(manifest, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Run(context.Background(), []string{"build", manifest}); err != nil {
		t.Fatalf("Run(build) error: %v", err)
	}

	html := readFile(t, filepath.Join(dir, "report.html"))
	for _, want := range []string{"<title>Nightly</title>", "data:image/png;base64,", "<strong>done</strong>"} {
		if !strings.Contains(html, want) {
			t.Errorf("built document missing %q", want)
		}
	}
}

func TestRunDemo(t *testing.T) {
	if testing.Short() {
		t.Skip("demo encodes dozens of images")
	}
	dir := t.TempDir()

	if err := Run(context.Background(), []string{"demo", "-o", dir, "--seed", "3"}); err != nil {
		t.Fatalf("Run(demo) error: %v", err)
	}

	for _, r := range demoReports {
		html := readFile(t, filepath.Join(dir, r.file))
		if !strings.Contains(html, "<title>"+r.title+"</title>") {
			t.Errorf("%s: missing title %q", r.file, r.title)
		}
	}
	if got := strings.Count(readFile(t, filepath.Join(dir, "grid.html")), "<figcaption>hello</figcaption>"); got != 9 {
		t.Errorf("grid.html captions = %d, want 9", got)
	}
	if !strings.Contains(readFile(t, filepath.Join(dir, "fast-slider.html")), "50") {
		t.Error("fast-slider.html should use a 50ms interval")
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	paths := writeImages(t, dir, 1)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"grid zero length", []string{"grid", "--length", "0", paths[0]}, errors.ErrCodeInvalidInput},
		{"grid bad flow", []string{"grid", "--flow", "diagonal", paths[0]}, errors.ErrCodeInvalidFlow},
		{"grid svg format", []string{"grid", "--format", "svg", paths[0]}, errors.ErrCodeInvalidFormat},
		{"grid missing file", []string{"grid", "-o", filepath.Join(dir, "g.html"), filepath.Join(dir, "nope.png")}, errors.ErrCodeFileNotFound},
		{"slider bad interval", []string{"slider", "--interval", "0", paths[0]}, errors.ErrCodeInvalidInput},
		{"slider conflicting labels", []string{"slider", "--file-labels", "--label-prefix", "x", paths[0]}, errors.ErrCodeInvalidInput},
		{"build missing manifest", []string{"build", filepath.Join(dir, "missing.toml")}, errors.ErrCodeFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Run(context.Background(), tt.args)
			if err == nil {
				t.Fatal("Run() error = nil, want error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Run() error code = %q, want %q (err: %v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	ReportError(&buf, errors.New(errors.ErrCodeInvalidFlow, "flow must be row or column"))

	out := buf.String()
	if !strings.Contains(out, "flow must be row or column") || !strings.Contains(out, "(INVALID_FLOW)") {
		t.Errorf("ReportError() = %q, want message and code", out)
	}
}
