package dom

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a complete HTML page. Nodes appended to Body end up inside
// <body>; Head holds extra <head> children such as <style> blocks.
type Document struct {
	Title string
	Head  []Node
	Body  *Element
}

// NewDocument creates an empty document with the given title.
func NewDocument(title string) *Document {
	return &Document{Title: title, Body: New("body")}
}

// Append adds nodes to the document body.
func (d *Document) Append(children ...Node) *Document {
	if d.Body == nil {
		d.Body = New("body")
	}
	d.Body.Append(children...)
	return d
}

// Render writes the document, including the doctype, to w.
func (d *Document) Render(w io.Writer) error {
	head := New("head",
		New("meta").SetAttr("charset", "utf-8"),
		New("title", Text(d.Title)),
	)
	head.Append(d.Head...)

	body := d.Body
	if body == nil {
		body = New("body")
	}

	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	htmlEl := &html.Node{Type: html.ElementNode, Data: "html", DataAtom: atom.Html}
	htmlEl.AppendChild(head.htmlNode())
	htmlEl.AppendChild(body.htmlNode())
	root.AppendChild(htmlEl)

	if err := html.Render(w, root); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// HTML renders the document to a string.
func (d *Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
