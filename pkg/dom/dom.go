// Package dom is a small markup tree builder for generated HTML documents.
//
// Trees are built explicitly: constructors return an [*Element] and children
// are attached with [Element.Append]. There is no ambient construction
// context. Serialization is delegated to golang.org/x/net/html, which
// escapes text and attribute values; [Raw] is the only way to insert
// unescaped markup.
//
//	fig := dom.New("figure",
//	    dom.New("figcaption", dom.Text("Loss")),
//	    dom.New("img").SetAttr("src", src),
//	)
//	html, err := fig.HTML()
package dom

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is anything that can be placed in a markup tree.
type Node interface {
	htmlNode() *html.Node
}

// Text is a text node. Its content is escaped when rendered.
type Text string

func (t Text) htmlNode() *html.Node {
	return &html.Node{Type: html.TextNode, Data: string(t)}
}

// Raw is markup inserted verbatim. Only use it for trusted or sanitized HTML.
type Raw string

func (r Raw) htmlNode() *html.Node {
	return &html.Node{Type: html.RawNode, Data: string(r)}
}

// Attr is a single element attribute.
type Attr = html.Attribute

// Element is an HTML element with ordered attributes, a typed inline style
// and children.
type Element struct {
	tag      string
	attrs    []Attr
	style    Style
	children []Node
}

// New creates an element with the given tag and children.
func New(tag string, children ...Node) *Element {
	e := &Element{tag: strings.ToLower(tag)}
	return e.Append(children...)
}

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// Append adds children in order and returns e. Nil children are skipped.
func (e *Element) Append(children ...Node) *Element {
	for _, c := range children {
		if c == nil {
			continue
		}
		if el, ok := c.(*Element); ok && el == nil {
			continue
		}
		e.children = append(e.children, c)
	}
	return e
}

// Children returns the element's children. The slice must not be modified.
func (e *Element) Children() []Node { return e.children }

// SetAttr sets an attribute, replacing an existing value with the same key.
// The "style" key is routed through [ParseStyle] and appended to the
// element's style. A style that does not parse is dropped; callers that need
// the error should call ParseStyle and [Element.SetStyle] themselves.
func (e *Element) SetAttr(key, value string) *Element {
	key = strings.ToLower(key)
	if key == "style" {
		if s, err := ParseStyle(value); err == nil {
			e.style = MergeStyle(e.style, s)
		}
		return e
	}
	for i := range e.attrs {
		if e.attrs[i].Key == key {
			e.attrs[i].Val = value
			return e
		}
	}
	e.attrs = append(e.attrs, Attr{Key: key, Val: value})
	return e
}

// SetAttrs applies attrs in order.
func (e *Element) SetAttrs(attrs ...Attr) *Element {
	for _, a := range attrs {
		e.SetAttr(a.Key, a.Val)
	}
	return e
}

// Attr returns an attribute value and whether it was set. For "style" it
// returns the rendered inline style.
func (e *Element) Attr(key string) (string, bool) {
	key = strings.ToLower(key)
	if key == "style" {
		return e.style.String(), len(e.style) > 0
	}
	for _, a := range e.attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Attrs returns the element's attributes, excluding style.
func (e *Element) Attrs() []Attr { return e.attrs }

// Style returns the element's inline style declarations.
func (e *Element) Style() Style { return e.style }

// SetStyle replaces the element's inline style.
func (e *Element) SetStyle(s Style) *Element {
	e.style = s
	return e
}

// TextContent returns the concatenated text of e and its descendants.
func (e *Element) TextContent() string {
	var sb strings.Builder
	var walk func(n Node)
	walk = func(n Node) {
		switch v := n.(type) {
		case Text:
			sb.WriteString(string(v))
		case *Element:
			for _, c := range v.children {
				walk(c)
			}
		}
	}
	walk(e)
	return sb.String()
}

func (e *Element) htmlNode() *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     e.tag,
		DataAtom: atom.Lookup([]byte(e.tag)),
	}
	n.Attr = make([]html.Attribute, 0, len(e.attrs)+1)
	n.Attr = append(n.Attr, e.attrs...)
	if len(e.style) > 0 {
		n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: e.style.String()})
	}
	for _, c := range e.children {
		n.AppendChild(c.htmlNode())
	}
	return n
}

// Render writes the element as HTML to w.
func (e *Element) Render(w io.Writer) error {
	return html.Render(w, e.htmlNode())
}

// HTML renders the element to a string.
func (e *Element) HTML() (string, error) {
	var buf bytes.Buffer
	if err := e.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
