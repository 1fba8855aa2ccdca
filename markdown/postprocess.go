package markdown

import (
	"regexp"
	"strings"
)

var (
	trailingSpace = regexp.MustCompile(`[ \t]+\n`)
	excessBlank   = regexp.MustCompile(`\n{3,}`)
)

// Postprocess tidies rendered output. Line endings are normalized, trailing
// whitespace is stripped from every line, runs of blank lines collapse to a
// single blank line, and the text ends with exactly one newline.
func Postprocess(text string) string {
	out := strings.ReplaceAll(text, "\r\n", "\n")
	out = trailingSpace.ReplaceAllString(out, "\n")
	out = excessBlank.ReplaceAllString(out, "\n\n")
	out = strings.TrimSpace(out)
	if out == "" {
		return ""
	}
	return out + "\n"
}
