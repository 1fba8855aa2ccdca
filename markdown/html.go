package markdown

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/farajfarook/pdf2md/textproc"
)

// HTMLConverter renders Markdown output as HTML for previews.
type HTMLConverter struct {
	md goldmark.Markdown
}

// NewHTMLConverter creates a converter with GitHub Flavored Markdown tables
// and auto-generated heading anchors, matching what the renderer emits.
func NewHTMLConverter() *HTMLConverter {
	return &HTMLConverter{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Convert renders Markdown to an HTML fragment.
func (c *HTMLConverter) Convert(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

// ConvertPage renders Markdown into a complete standalone HTML page. Pages
// whose text runs right to left are marked with a dir attribute.
func (c *HTMLConverter) ConvertPage(markdown, title string) (string, error) {
	body, err := c.Convert(markdown)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(title) == "" {
		title = "Document"
	}
	dir := ""
	if textproc.DetectDirection(markdown) == textproc.RTL {
		dir = ` dir="rtl"`
	}
	return fmt.Sprintf(pageTemplate, dir, html.EscapeString(title), body), nil
}

const pageTemplate = `<!DOCTYPE html>
<html%s>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; line-height: 1.6; }
img { max-width: 100%%; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; }
</style>
</head>
<body>
%s</body>
</html>
`
