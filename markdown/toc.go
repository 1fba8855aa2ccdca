package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/farajfarook/pdf2md/assemble"
	"github.com/farajfarook/pdf2md/model"
)

var (
	slugStrip  = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces = regexp.MustCompile(`\s+`)
)

// slug builds a GitHub-style anchor from heading text: lowercased, with
// punctuation dropped and spaces turned into hyphens.
func slug(text string) string {
	s := strings.ToLower(text)
	s = slugStrip.ReplaceAllString(s, "")
	return slugSpaces.ReplaceAllString(strings.TrimSpace(s), "-")
}

// tableOfContents lists every heading across the assembled pages as a
// nested set of anchor links. Returns "" when there are no headings.
func tableOfContents(results []*assemble.PageResult) string {
	var b strings.Builder
	count := 0
	for _, result := range results {
		if result == nil {
			continue
		}
		for _, node := range result.Nodes {
			h, ok := node.(model.Heading)
			if !ok {
				continue
			}
			text := strings.TrimSpace(h.Text)
			if text == "" {
				continue
			}
			indent := strings.Repeat("  ", clampLevel(h.Level)-1)
			fmt.Fprintf(&b, "%s- [%s](#%s)\n", indent, text, slug(text))
			count++
		}
	}
	if count == 0 {
		return ""
	}
	return "## Table of Contents\n\n" + strings.TrimRight(b.String(), "\n")
}
