package report

import (
	"bytes"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/matzehuels/domrep/pkg/dom"
	"github.com/matzehuels/domrep/pkg/errors"
)

var (
	noteOnce     sync.Once
	noteMarkdown goldmark.Markdown
	notePolicy   *bluemonday.Policy
)

func noteRenderer() (goldmark.Markdown, *bluemonday.Policy) {
	noteOnce.Do(func() {
		noteMarkdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
		notePolicy = bluemonday.UGCPolicy()
	})
	return noteMarkdown, notePolicy
}

// Note renders markdown into a div with class "note". The generated HTML is
// sanitized, so scripts, event handlers and javascript: links are dropped.
// Options apply to the div; the flow option has no effect.
func Note(markdown string, opts ...ContainerOption) (*dom.Element, error) {
	md, policy := noteRenderer()

	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "render markdown")
	}
	body := strings.TrimSpace(policy.Sanitize(buf.String()))

	cfg := newContainerConfig(opts)
	note := dom.New("div").SetAttr("class", "note")
	if body != "" {
		note.Append(dom.Raw(body))
	}
	return cfg.apply(note, nil), nil
}
