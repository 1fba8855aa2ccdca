package textproc

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// camelBoundary finds words glued together across a case change,
	// a common artifact when extraction drops the space between styled runs.
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	// sentenceGlue finds a sentence end fused to the next sentence's start.
	sentenceGlue = regexp.MustCompile(`(\.)([A-Z])`)
	// digitGlue finds a word fused to a following number.
	digitGlue  = regexp.MustCompile(`([a-zA-Z])(\d)`)
	spaceRuns  = regexp.MustCompile(`[ \t]+`)
	blankLines = regexp.MustCompile(`\n{3,}`)
)

// Clean repairs extraction artifacts in text: line endings are normalized,
// control characters stripped, words glued across case, sentence, and digit
// boundaries split apart, and runs of blanks collapsed.
func Clean(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = stripControl(s)
	s = camelBoundary.ReplaceAllString(s, "$1 $2")
	s = sentenceGlue.ReplaceAllString(s, "$1 $2")
	s = digitGlue.ReplaceAllString(s, "$1 $2")
	s = spaceRuns.ReplaceAllString(s, " ")
	s = blankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// Normalize applies Unicode NFKC normalization, folding ligatures and
// fullwidth presentation forms into their plain equivalents.
func Normalize(s string) string {
	return norm.NFKC.String(s)
}

// stripControl removes control characters, keeping newlines and tabs.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
