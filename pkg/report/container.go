package report

import (
	"strings"

	"github.com/matzehuels/domrep/pkg/dom"
	"github.com/matzehuels/domrep/pkg/errors"
)

// Flow is the axis along which a container lays out its children.
type Flow string

const (
	FlowRow    Flow = "row"
	FlowColumn Flow = "column"
)

// ParseFlow validates a flow name.
func ParseFlow(s string) (Flow, error) {
	if err := errors.ValidateFlow(s); err != nil {
		return "", err
	}
	return Flow(s), nil
}

type containerConfig struct {
	flow  Flow
	attrs []dom.Attr
	style dom.Style
}

// ContainerOption configures [Caption], [Grid] and [Note].
type ContainerOption func(*containerConfig)

// WithFlow sets the layout axis. The default is [FlowRow].
func WithFlow(f Flow) ContainerOption { return func(c *containerConfig) { c.flow = f } }

// WithAttr sets an attribute on the container element. A "style" value is
// parsed and placed after the computed style; if it does not parse it is
// dropped, so prefer [WithStyle] with [dom.ParseStyle] for untrusted input.
func WithAttr(key, value string) ContainerOption {
	return func(c *containerConfig) { c.attrs = append(c.attrs, dom.Attr{Key: key, Val: value}) }
}

// WithStyle appends caller style. It is placed after the computed
// declarations, so it wins on conflicting properties.
func WithStyle(s dom.Style) ContainerOption {
	return func(c *containerConfig) { c.style = dom.MergeStyle(c.style, s) }
}

func newContainerConfig(opts []ContainerOption) containerConfig {
	cfg := containerConfig{flow: FlowRow}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// apply sets attributes and the merged style on e: computed declarations
// first, then any style attribute, then caller style.
func (c containerConfig) apply(e *dom.Element, computed dom.Style) *dom.Element {
	e.SetAttrs(c.attrs...)
	return e.SetStyle(dom.MergeStyle(dom.MergeStyle(computed, e.Style()), c.style))
}

// Caption wraps children in a figure with a figcaption. Children are placed
// in an inner inline-flex div laid out along the configured flow; options
// apply to that div. The outer figure always has a 5pt margin.
//
//	<figure style="margin: 5pt;">
//	  <figcaption>title</figcaption>
//	  <div style="display: inline-flex; flex-direction: row; border: 1px solid black;">...</div>
//	</figure>
func Caption(title string, children []dom.Node, opts ...ContainerOption) *dom.Element {
	cfg := newContainerConfig(opts)

	body := cfg.apply(dom.New("div", children...), dom.Style{
		dom.Decl("display", "inline-flex"),
		dom.Decl("flex-direction", string(cfg.flow)),
		dom.Decl("border", "1px solid black"),
	})

	return dom.New("figure",
		dom.New("figcaption", dom.Text(title)),
		body,
	).SetStyle(dom.Style{dom.Decl("margin", "5pt")})
}

// CaptionBody returns the div holding a caption's children, for appending
// after construction. It returns nil if fig was not built by [Caption].
func CaptionBody(fig *dom.Element) *dom.Element {
	if fig == nil || fig.Tag() != "figure" {
		return nil
	}
	for _, c := range fig.Children() {
		if el, ok := c.(*dom.Element); ok && el.Tag() == "div" {
			return el
		}
	}
	return nil
}

// Grid lays children out in a CSS grid with length tracks. With [FlowRow]
// the tracks are columns and items fill rows first; otherwise the tracks
// are rows. Each track is sized min-content.
//
// More children can be added with Append on the returned element.
func Grid(length int, children []dom.Node, opts ...ContainerOption) (*dom.Element, error) {
	if err := errors.ValidateLength(length); err != nil {
		return nil, err
	}
	cfg := newContainerConfig(opts)

	template := "grid-template-rows"
	if cfg.flow == FlowRow {
		template = "grid-template-columns"
	}
	tracks := strings.TrimSpace(strings.Repeat("min-content ", length))

	return cfg.apply(dom.New("div", children...), dom.Style{
		dom.Decl("display", "grid"),
		dom.Decl(template, tracks),
		dom.Decl("grid-auto-flow", string(cfg.flow)),
	}), nil
}

// NewGrid returns an empty grid to be filled with Append.
func NewGrid(length int, opts ...ContainerOption) (*dom.Element, error) {
	return Grid(length, nil, opts...)
}
