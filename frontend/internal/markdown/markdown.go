// Package markdown renders user-written thread and reply content to safe HTML.
package markdown

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/traden-dev/traden/shared/logger"
)

type TextProcessor struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *TextProcessor {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	return &TextProcessor{
		md:     md,
		policy: bluemonday.UGCPolicy(),
	}
}

// Render converts content to HTML and sanitizes the result. On a render error
// the raw text is returned escaped so content is never silently dropped.
func (tp *TextProcessor) Render(content string) template.HTML {
	var buf bytes.Buffer
	if err := tp.md.Convert([]byte(content), &buf); err != nil {
		logger.Log.Error("failed to render content", "error", err)
		return template.HTML(template.HTMLEscapeString(content))
	}
	return template.HTML(tp.policy.Sanitize(buf.String()))
}
