// Package manifest builds HTML reports from declarative TOML or YAML files.
//
// A manifest is a tree of items. Containers (caption, grid, slider) hold
// nested items; leaves are images (from files, Graphviz sources, charts or
// generated heatmaps), GIF animations of such images, and markdown notes.
//
//	title = "Training run"
//
//	[[items]]
//	kind = "grid"
//	length = 2
//	style = "gap: 4px"
//
//	  [[items.items]]
//	  kind = "image"
//	  title = "loss"
//	  src = "plots/loss.png"
//	  embed = true
//
//	  [[items.items]]
//	  kind = "image"
//	  title = "pipeline"
//	  dot = "digraph { load -> train -> eval }"
//
// The same document in YAML decodes to an identical [Manifest].
package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/domrep/pkg/dom"
	"github.com/matzehuels/domrep/pkg/errors"
	"github.com/matzehuels/domrep/pkg/graphic"
)

// Item kinds.
const (
	KindImage     = "image"
	KindAnimation = "animation"
	KindCaption   = "caption"
	KindGrid      = "grid"
	KindSlider    = "slider"
	KindNote      = "note"
)

// Manifest is a report description.
type Manifest struct {
	Title string `toml:"title" yaml:"title"`
	Items []Item `toml:"items" yaml:"items"`
}

// Item is one node of the report tree. Which fields apply depends on Kind.
type Item struct {
	Kind  string `toml:"kind" yaml:"kind"`
	Title string `toml:"title" yaml:"title"`
	Style string `toml:"style" yaml:"style"`

	// Image sources; at most one may be set.
	Src     string       `toml:"src" yaml:"src"`
	Embed   bool         `toml:"embed" yaml:"embed"`
	DOT     string       `toml:"dot" yaml:"dot"`
	Chart   *ChartSpec   `toml:"chart" yaml:"chart"`
	Heatmap *HeatmapSpec `toml:"heatmap" yaml:"heatmap"`

	// Encoding of images and animations.
	Format string `toml:"format" yaml:"format"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`

	// Containers.
	Flow   string `toml:"flow" yaml:"flow"`
	Length int    `toml:"length" yaml:"length"`
	Items  []Item `toml:"items" yaml:"items"`

	// Sliders; Interval is also the frame delay of animations.
	ID          string   `toml:"id" yaml:"id"`
	Labels      []string `toml:"labels" yaml:"labels"`
	LabelPrefix string   `toml:"label_prefix" yaml:"label_prefix"`
	Interval    int      `toml:"interval" yaml:"interval"`

	Markdown string `toml:"markdown" yaml:"markdown"`
}

// ChartSpec describes a go-chart line or bar chart.
type ChartSpec struct {
	Type   string    `toml:"type" yaml:"type"` // "line" (default) or "bar"
	Title  string    `toml:"title" yaml:"title"`
	X      []float64 `toml:"x" yaml:"x"`
	Y      []float64 `toml:"y" yaml:"y"`
	Labels []string  `toml:"labels" yaml:"labels"`
}

// HeatmapSpec describes a seeded random heatmap.
type HeatmapSpec struct {
	Rows  int    `toml:"rows" yaml:"rows"`
	Cols  int    `toml:"cols" yaml:"cols"`
	Seed  uint64 `toml:"seed" yaml:"seed"`
	Scale int    `toml:"scale" yaml:"scale"`
}

// Syntax is a manifest file syntax.
type Syntax string

const (
	TOML Syntax = "toml"
	YAML Syntax = "yaml"
)

// SyntaxOf infers the syntax from a file extension.
func SyntaxOf(path string) (Syntax, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unknown manifest extension %q (want .toml, .yaml or .yml)", filepath.Ext(path))
	}
}

// Load reads, decodes and validates a manifest file.
func Load(path string) (*Manifest, error) {
	syntax, err := SyntaxOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "manifest not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := Decode(data, syntax)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Decode parses manifest data. It does not validate the result.
func Decode(data []byte, syntax Syntax) (*Manifest, error) {
	var m Manifest
	switch syntax {
	case TOML:
		md, err := toml.Decode(string(data), &m)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "decode toml: unknown field %q", undecoded[0].String())
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown manifest syntax %q", syntax)
	}
	return &m, nil
}

// Validate checks every item. Errors name the offending item by its path,
// for example "items[1].items[0]".
func (m *Manifest) Validate() error {
	for i, it := range m.Items {
		if err := it.validate(fmt.Sprintf("items[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func (it Item) validate(path string) error {
	fail := func(err error) error {
		code := errors.GetCode(err)
		if code == "" {
			code = errors.ErrCodeInvalidManifest
		}
		return errors.New(code, "%s: %s", path, errors.UserMessage(err))
	}

	if _, err := dom.ParseStyle(it.Style); err != nil {
		return fail(errors.Wrap(errors.ErrCodeInvalidStyle, err, "invalid style"))
	}
	if it.Format != "" {
		if _, err := graphic.ParseFormat(it.Format); err != nil {
			return fail(err)
		}
	}

	switch it.Kind {
	case KindImage:
		if err := it.validateSource(); err != nil {
			return fail(err)
		}
	case KindAnimation:
		if len(it.Items) == 0 {
			return fail(errors.New(errors.ErrCodeInvalidInput, "animation needs at least one frame"))
		}
		if it.Interval < 0 {
			return fail(errors.ValidateInterval(it.Interval))
		}
		for i, frame := range it.Items {
			if frame.Kind != KindImage || (frame.Src != "" && !frame.Embed) {
				return fail(errors.New(errors.ErrCodeInvalidInput, "animation frame %d must be an image with an embedded or generated source", i))
			}
		}
	case KindCaption:
		if err := it.validateFlow(); err != nil {
			return fail(err)
		}
	case KindGrid:
		if err := errors.ValidateLength(it.Length); err != nil {
			return fail(err)
		}
		if err := it.validateFlow(); err != nil {
			return fail(err)
		}
	case KindSlider:
		if len(it.Items) == 0 {
			return fail(errors.New(errors.ErrCodeInvalidInput, "slider needs at least one frame"))
		}
		if it.Labels != nil {
			if err := errors.ValidateLabels(it.Labels, len(it.Items)); err != nil {
				return fail(err)
			}
		}
		if it.Interval != 0 {
			if err := errors.ValidateInterval(it.Interval); err != nil {
				return fail(err)
			}
		}
	case KindNote:
	case "":
		return fail(errors.New(errors.ErrCodeInvalidInput, "missing kind"))
	default:
		return fail(errors.New(errors.ErrCodeInvalidInput, "unknown kind %q", it.Kind))
	}

	for i, child := range it.Items {
		if err := child.validate(fmt.Sprintf("%s.items[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func (it Item) validateFlow() error {
	if it.Flow == "" {
		return nil
	}
	return errors.ValidateFlow(it.Flow)
}

func (it Item) validateSource() error {
	n := 0
	for _, set := range []bool{it.Src != "", it.DOT != "", it.Chart != nil, it.Heatmap != nil} {
		if set {
			n++
		}
	}
	if n > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "image has more than one source")
	}
	if it.Src != "" && it.Embed {
		if err := errors.ValidatePath(it.Src); err != nil {
			return err
		}
	}
	if c := it.Chart; c != nil {
		if c.Type != "" && c.Type != "line" && c.Type != "bar" {
			return errors.New(errors.ErrCodeInvalidInput, "unknown chart type %q (want line or bar)", c.Type)
		}
		if len(c.Y) == 0 {
			return errors.New(errors.ErrCodeInvalidInput, "chart has no values")
		}
		if len(c.X) > 0 && len(c.X) != len(c.Y) {
			return errors.New(errors.ErrCodeInvalidInput, "chart has %d x values but %d y values", len(c.X), len(c.Y))
		}
		if len(c.Labels) > 0 && len(c.Labels) != len(c.Y) {
			return errors.New(errors.ErrCodeInvalidInput, "chart has %d labels but %d values", len(c.Labels), len(c.Y))
		}
	}
	if h := it.Heatmap; h != nil && (h.Rows <= 0 || h.Cols <= 0) {
		return errors.New(errors.ErrCodeInvalidInput, "heatmap needs positive rows and cols, got %dx%d", h.Rows, h.Cols)
	}
	return nil
}
