package manifest

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

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/domrep/pkg/dom"
	"github.com/matzehuels/domrep/pkg/errors"
)

const reportTOML = `
title = "Run 7"

[[items]]
kind = "note"
markdown = "# Summary\n\nAll *good*."

[[items]]
kind = "grid"
length = 2
flow = "column"
style = "gap: 4px"

  [[items.items]]
  kind = "image"
  title = "a"
  heatmap = { rows = 3, cols = 3, seed = 1 }

  [[items.items]]
  kind = "image"
  src = "https://example.com/b.png"

[[items]]
kind = "caption"
title = "frames"

  [[items.items]]
  kind = "slider"
  id = "epochs"
  label_prefix = "epoch"
  interval = 50

    [[items.items.items]]
    kind = "image"
    heatmap = { rows = 2, cols = 2, seed = 1 }

    [[items.items.items]]
    kind = "image"
    heatmap = { rows = 2, cols = 2, seed = 2 }
`

const reportYAML = `
title: Run 7
items:
  - kind: note
    markdown: "# Summary\n\nAll *good*."
  - kind: grid
    length: 2
    flow: column
    style: "gap: 4px"
    items:
      - kind: image
        title: a
        heatmap: {rows: 3, cols: 3, seed: 1}
      - kind: image
        src: https://example.com/b.png
  - kind: caption
    title: frames
    items:
      - kind: slider
        id: epochs
        label_prefix: epoch
        interval: 50
        items:
          - kind: image
            heatmap: {rows: 2, cols: 2, seed: 1}
          - kind: image
            heatmap: {rows: 2, cols: 2, seed: 2}
`

func mustDecode(t *testing.T, data string, syntax Syntax) *Manifest {
	t.Helper()
	m, err := Decode([]byte(data), syntax)
	if err != nil {
		t.Fatalf("Decode(%s) error = %v", syntax, err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate(%s) error = %v", syntax, err)
	}
	return m
}

func render(t *testing.T, m *Manifest, baseDir string) string {
	t.Helper()
	doc, err := Build(context.Background(), m, baseDir)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	html, err := doc.HTML()
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	return html
}

func TestTOMLAndYAMLEquivalent(t *testing.T) {
	fromTOML := mustDecode(t, reportTOML, TOML)
	fromYAML := mustDecode(t, reportYAML, YAML)

	if diff := cmp.Diff(fromTOML, fromYAML); diff != "" {
		t.Fatalf("manifests differ (-toml +yaml):\n%s", diff)
	}
	if diff := cmp.Diff(render(t, fromTOML, ""), render(t, fromYAML, "")); diff != "" {
		t.Errorf("documents differ (-toml +yaml):\n%s", diff)
	}
}

func TestBuildStructure(t *testing.T) {
	m := mustDecode(t, reportTOML, TOML)
	doc, err := Build(context.Background(), m, "")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if doc.Title != "Run 7" {
		t.Errorf("Title = %q, want Run 7", doc.Title)
	}

	body := doc.Body
	if n := len(body.Children()); n != 3 {
		t.Fatalf("body children = %d, want 3", n)
	}
	if dom.Find(body, dom.ByClass("note")) == nil {
		t.Error("missing note")
	}
	if got := len(dom.FindAll(body, dom.ByTag("figure"))); got != 2 {
		t.Errorf("figures = %d, want 2 (image title + caption)", got)
	}

	input := dom.Find(body, dom.ByTag("input"))
	if input == nil {
		t.Fatal("missing slider input")
	}
	if id, _ := input.Attr("id"); id != "epochs" {
		t.Errorf("slider id = %q, want epochs", id)
	}

	html, _ := doc.HTML()
	for _, want := range []string{
		`grid-template-rows: min-content min-content;`,
		`grid-auto-flow: column; gap: 4px;`,
		`src="https://example.com/b.png"`,
		`["epoch 0","epoch 1"]`,
		`data:image/png;base64,`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("document does not contain %q", want)
		}
	}
}

func TestBuildEmbeddedFile(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "plots"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "plots", "a.png"), buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	m := &Manifest{Items: []Item{
		{Kind: KindImage, Src: "plots/a.png", Embed: true},
		{Kind: KindImage, Src: "plots/a.png"},
		{Kind: KindAnimation, Interval: 40, Items: []Item{
			{Kind: KindImage, Src: "plots/a.png", Embed: true},
			{Kind: KindImage, Heatmap: &HeatmapSpec{Rows: 1, Cols: 1, Seed: 3}},
		}},
	}}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	doc, err := Build(context.Background(), m, dir)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	imgs := dom.FindAll(doc.Body, dom.ByTag("img"))
	if len(imgs) != 3 {
		t.Fatalf("imgs = %d, want 3", len(imgs))
	}
	wants := []string{"data:image/png;base64,", "plots/a.png", "data:image/gif;base64,"}
	for i, want := range wants {
		src, _ := imgs[i].Attr("src")
		if !strings.HasPrefix(src, want) {
			t.Errorf("img %d src = %.40q, want prefix %q", i, src, want)
		}
	}
}

func TestBuildMissingEmbeddedFile(t *testing.T) {
	m := &Manifest{Items: []Item{{Kind: KindImage, Src: "missing.png", Embed: true}}}
	_, err := Build(context.Background(), m, t.TempDir())
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Build() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		item Item
		code errors.Code
	}{
		{"missing kind", Item{}, errors.ErrCodeInvalidInput},
		{"unknown kind", Item{Kind: "table"}, errors.ErrCodeInvalidInput},
		{"grid length", Item{Kind: KindGrid}, errors.ErrCodeInvalidInput},
		{"grid flow", Item{Kind: KindGrid, Length: 2, Flow: "diagonal"}, errors.ErrCodeInvalidFlow},
		{"caption flow", Item{Kind: KindCaption, Flow: "row; color: red"}, errors.ErrCodeInvalidFlow},
		{"empty slider", Item{Kind: KindSlider}, errors.ErrCodeInvalidInput},
		{"slider labels", Item{Kind: KindSlider, Labels: []string{"a"}, Items: []Item{{Kind: KindImage}, {Kind: KindImage}}}, errors.ErrCodeInvalidInput},
		{"slider interval", Item{Kind: KindSlider, Interval: -1, Items: []Item{{Kind: KindImage}}}, errors.ErrCodeInvalidInput},
		{"two sources", Item{Kind: KindImage, Src: "a.png", DOT: "digraph {}"}, errors.ErrCodeInvalidInput},
		{"traversal", Item{Kind: KindImage, Src: "../secret.png", Embed: true}, errors.ErrCodeInvalidPath},
		{"absolute", Item{Kind: KindImage, Src: "/etc/passwd", Embed: true}, errors.ErrCodeInvalidPath},
		{"chart type", Item{Kind: KindImage, Chart: &ChartSpec{Type: "pie", Y: []float64{1}}}, errors.ErrCodeInvalidInput},
		{"chart empty", Item{Kind: KindImage, Chart: &ChartSpec{}}, errors.ErrCodeInvalidInput},
		{"chart xy", Item{Kind: KindImage, Chart: &ChartSpec{X: []float64{1}, Y: []float64{1, 2}}}, errors.ErrCodeInvalidInput},
		{"heatmap size", Item{Kind: KindImage, Heatmap: &HeatmapSpec{Rows: 0, Cols: 2}}, errors.ErrCodeInvalidInput},
		{"format", Item{Kind: KindImage, Format: "bmp"}, errors.ErrCodeInvalidFormat},
		{"animation frames", Item{Kind: KindAnimation}, errors.ErrCodeInvalidInput},
		{"animation url frame", Item{Kind: KindAnimation, Items: []Item{{Kind: KindImage, Src: "http://x/a.png"}}}, errors.ErrCodeInvalidInput},
		{"nested", Item{Kind: KindCaption, Items: []Item{{Kind: KindGrid, Length: -1}}}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Manifest{Items: []Item{tt.item}}
			err := m.Validate()
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("Validate() code = %v, want %v (err: %v)", got, tt.code, err)
			}
			if err != nil && !strings.Contains(err.Error(), "items[0]") {
				t.Errorf("Validate() error %q does not name the item", err)
			}
		})
	}
}

func TestValidateNestedPath(t *testing.T) {
	m := &Manifest{Items: []Item{
		{Kind: KindNote},
		{Kind: KindCaption, Items: []Item{{Kind: KindImage}, {Kind: "bogus"}}},
	}}
	err := m.Validate()
	if err == nil || !strings.Contains(err.Error(), "items[1].items[1]") {
		t.Errorf("Validate() = %v, want path items[1].items[1]", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name    string
		path    string
		code    errors.Code
		wantErr bool
	}{
		{"toml", write("r.toml", reportTOML), "", false},
		{"yaml", write("r.yaml", reportYAML), "", false},
		{"yml", write("r.yml", reportYAML), "", false},
		{"missing", filepath.Join(dir, "nope.toml"), errors.ErrCodeFileNotFound, true},
		{"extension", write("r.json", "{}"), errors.ErrCodeInvalidFormat, true},
		{"bad toml", write("bad.toml", "title = "), errors.ErrCodeInvalidManifest, true},
		{"unknown toml field", write("extra.toml", "titel = \"x\""), errors.ErrCodeInvalidManifest, true},
		{"unknown yaml field", write("extra.yaml", "titel: x\n"), errors.ErrCodeInvalidManifest, true},
		{"invalid item", write("grid.toml", "[[items]]\nkind = \"grid\"\n"), errors.ErrCodeInvalidInput, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Load(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load(%s) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if tt.wantErr {
				if got := errors.GetCode(err); got != tt.code {
					t.Errorf("GetCode() = %v, want %v", got, tt.code)
				}
				return
			}
			if m.Title != "Run 7" || len(m.Items) != 3 {
				t.Errorf("Load() = %+v, want the Run 7 report", m)
			}
		})
	}
}

func TestChartItems(t *testing.T) {
	m := &Manifest{Items: []Item{
		{Kind: KindImage, Format: "svg", Chart: &ChartSpec{Title: "loss", Y: []float64{3, 2, 1.5, 1}}},
		{Kind: KindImage, Format: "svg", Chart: &ChartSpec{Type: "bar", Y: []float64{1, 4, 2}, Labels: []string{"a", "b", "c"}}},
	}}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	doc, err := Build(context.Background(), m, "")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for i, img := range dom.FindAll(doc.Body, dom.ByTag("img")) {
		if src, _ := img.Attr("src"); !strings.HasPrefix(src, "data:image/svg+xml;base64,") {
			t.Errorf("chart %d src = %.40q, want svg data URI", i, src)
		}
	}
}

func TestExampleManifests(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no example manifests found")
	}

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			m, err := Load(path)
			if err != nil {
				t.Fatalf("Load(%q) error: %v", path, err)
			}
			if testing.Short() {
				return
			}
			doc, err := Build(context.Background(), m, filepath.Dir(path))
			if err != nil {
				t.Fatalf("Build(%q) error: %v", path, err)
			}
			if len(doc.Body.Children()) != len(m.Items) {
				t.Errorf("Build(%q) body has %d children, want %d", path, len(doc.Body.Children()), len(m.Items))
			}
		})
	}
}
