package classify

import (
	"regexp"
	"strings"
	"unicode"
)

// listMarkers match the leading markers that open a list item: bullets,
// numbered items like "1." or "2)", and lettered items like "a)".
var listMarkers = []*regexp.Regexp{
	regexp.MustCompile(`^[-•*]\s+`),
	regexp.MustCompile(`^\d{1,3}[.)]\s+`),
	regexp.MustCompile(`^[a-zA-Z][.)]\s+`),
}

// captionPattern matches text that opens like a figure or table caption,
// e.g. "Figure 1: overview" or "Table 3. Results".
var captionPattern = regexp.MustCompile(`(?i)^(figure|fig\.?|table|chart|diagram|illustration|photo)\s*\d+`)

// HasListMarker reports whether text begins with a recognized list marker.
func HasListMarker(text string) bool {
	trimmed := strings.TrimSpace(text)
	for _, re := range listMarkers {
		if re.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// IsCaptionText reports whether text is shaped like a figure or table
// caption. Proximity to an image is checked separately.
func IsCaptionText(text string) bool {
	return captionPattern.MatchString(strings.TrimSpace(text))
}

// isTitleCase reports whether every alphabetic word in text starts with an
// upper-case letter. Text with no alphabetic words is not title case.
func isTitleCase(text string) bool {
	seen := false
	for _, word := range strings.Fields(text) {
		var first rune
		for _, r := range word {
			if unicode.IsLetter(r) {
				first = r
				break
			}
		}
		if first == 0 {
			continue
		}
		seen = true
		if !unicode.IsUpper(first) {
			return false
		}
	}
	return seen
}
