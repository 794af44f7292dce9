package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// aboutPolicy sanitizes rendered markdown before it is trusted as HTML.
// The about page is the one place user-authored markup enters the site.
var aboutPolicy = bluemonday.UGCPolicy()

// RenderMarkdown converts GitHub-flavored markdown to sanitized HTML,
// suitable for the about page body.
func RenderMarkdown(src []byte) (template.HTML, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps(), gmhtml.WithXHTML()),
	)
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(aboutPolicy.SanitizeBytes(buf.Bytes())), nil
}
