package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/domrep/pkg/dom"
	"github.com/matzehuels/domrep/pkg/errors"
)

// DefaultInterval is the auto-advance interval in milliseconds.
const DefaultInterval = 300

//go:embed slider.html.tmpl
var sliderSource string

// The template is parsed as HTML so that labels and interval are escaped
// for the script context: labels become a JSON array with "<" written as
// \u003c, so a label cannot close the script element.
var sliderScript = template.Must(template.New("slider").Parse(sliderSource))

// SliderOption configures a slider.
type SliderOption func(*SliderBuilder)

// WithLabels sets one counter label per frame.
func WithLabels(labels ...string) SliderOption {
	return func(s *SliderBuilder) { s.labels = labels }
}

// WithLabelPrefix labels frame i as "<prefix> <i>". Ignored when explicit
// labels are set.
func WithLabelPrefix(prefix string) SliderOption {
	return func(s *SliderBuilder) { s.prefix = &prefix }
}

// WithInterval sets the auto-advance interval in milliseconds.
func WithInterval(ms int) SliderOption { return func(s *SliderBuilder) { s.interval = ms } }

// WithID sets the id of the range input. By default every slider gets a
// fresh random id.
func WithID(id string) SliderOption { return func(s *SliderBuilder) { s.id = id } }

// WithSliderAttr sets an attribute on the outer slider div. A "style" value
// that does not parse is dropped; see [WithAttr].
func WithSliderAttr(key, value string) SliderOption {
	return func(s *SliderBuilder) { s.attrs = append(s.attrs, dom.Attr{Key: key, Val: value}) }
}

// WithSliderStyle appends inline style to the outer slider div.
func WithSliderStyle(st dom.Style) SliderOption {
	return func(s *SliderBuilder) { s.style = dom.MergeStyle(s.style, st) }
}

// SliderBuilder collects frames for a slider. Frames are added with Append
// and the widget is produced by Build.
type SliderBuilder struct {
	frames   []dom.Node
	labels   []string
	prefix   *string
	interval int
	id       string
	attrs    []dom.Attr
	style    dom.Style
}

// NewSlider returns an empty slider builder.
func NewSlider(opts ...SliderOption) *SliderBuilder {
	s := &SliderBuilder{interval: DefaultInterval}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append adds frames in order. Nil frames are skipped.
func (s *SliderBuilder) Append(frames ...dom.Node) *SliderBuilder {
	for _, f := range frames {
		if f == nil {
			continue
		}
		if el, ok := f.(*dom.Element); ok && el == nil {
			continue
		}
		s.frames = append(s.frames, f)
	}
	return s
}

// Len returns the number of frames added so far.
func (s *SliderBuilder) Len() int { return len(s.frames) }

// Labels returns the counter labels the slider will show.
func (s *SliderBuilder) Labels() []string {
	if s.labels != nil {
		return s.labels
	}
	labels := make([]string, len(s.frames))
	for i := range labels {
		if s.prefix != nil {
			labels[i] = fmt.Sprintf("%s %d", *s.prefix, i)
		} else {
			labels[i] = strconv.Itoa(i)
		}
	}
	return labels
}

// Build renders the slider widget:
//
//	<div class="domrep-slider">
//	  frame0 frame1 ...
//	  <div class="slider" style="display: flex; ...">
//	    <label class="counter" for="ID"></label>
//	    <input type="range" class="slider-input" id="ID" min="0" max="n-1" value="0"/>
//	    <button class="playpause" type="button">⏯</button>
//	    <script>...</script>
//	  </div>
//	</div>
//
// Exactly one frame is visible at a time once the script has run. The play
// button toggles auto-advance, which wraps from the last frame to the first.
func (s *SliderBuilder) Build() (*dom.Element, error) {
	labels := s.Labels()
	if err := errors.ValidateLabels(labels, len(s.frames)); err != nil {
		return nil, err
	}
	if err := errors.ValidateInterval(s.interval); err != nil {
		return nil, err
	}

	id := s.id
	if id == "" {
		id = "slider-" + uuid.NewString()
	}

	var script strings.Builder
	if err := sliderScript.Execute(&script, struct {
		Labels   []string
		Interval int
	}{labels, s.interval}); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render slider script")
	}

	controls := dom.New("div",
		dom.New("label").SetAttr("class", "counter").SetAttr("for", id),
		dom.New("input").SetAttrs(
			dom.Attr{Key: "type", Val: "range"},
			dom.Attr{Key: "class", Val: "slider-input"},
			dom.Attr{Key: "id", Val: id},
			dom.Attr{Key: "name", Val: id},
			dom.Attr{Key: "min", Val: "0"},
			dom.Attr{Key: "max", Val: strconv.Itoa(len(s.frames) - 1)},
			dom.Attr{Key: "value", Val: "0"},
		),
		dom.New("button", dom.Text("⏯")).SetAttr("class", "playpause").SetAttr("type", "button"),
		dom.Raw(script.String()),
	).SetAttr("class", "slider").SetStyle(dom.Style{
		dom.Decl("display", "flex"),
		dom.Decl("align-items", "center"),
		dom.Decl("justify-content", "center"),
	})

	outer := dom.New("div", s.frames...).SetAttr("class", "domrep-slider").SetAttrs(s.attrs...)
	if len(s.style) > 0 {
		outer.SetStyle(dom.MergeStyle(outer.Style(), s.style))
	}
	return outer.Append(controls), nil
}

// Slider builds a slider over frames in one call.
func Slider(frames []dom.Node, opts ...SliderOption) (*dom.Element, error) {
	return NewSlider(opts...).Append(frames...).Build()
}
