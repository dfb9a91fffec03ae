// Package markdown renders user-written note bodies into sanitized HTML for
// the community feed.
package markdown

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough),
	)
	return &Renderer{md: md, policy: bluemonday.UGCPolicy()}
}

// RenderNote converts a note body to HTML and strips everything the UGC
// policy disallows. Render failures fall back to the sanitized raw text so
// a malformed note never breaks the feed.
func (r *Renderer) RenderNote(body string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(body), &buf); err != nil {
		return r.policy.Sanitize(body)
	}
	return r.policy.Sanitize(buf.String())
}
