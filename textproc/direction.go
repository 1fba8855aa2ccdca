package textproc

import "golang.org/x/text/unicode/bidi"

// Direction represents the dominant writing direction of a text run.
type Direction int

const (
	// LTR (left-to-right) for Latin, Cyrillic, CJK, and most scripts.
	LTR Direction = iota
	// RTL (right-to-left) for Arabic, Hebrew, and related scripts.
	RTL
	// Neutral for text with no strong directional characters.
	Neutral
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case Neutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// DetectDirection analyzes a string and returns its dominant writing
// direction from the Unicode bidirectional classes of its runes. Strong
// left-to-right and right-to-left runes are counted and the larger count
// wins; text with no strong directional runes is Neutral.
func DetectDirection(text string) Direction {
	if text == "" {
		return Neutral
	}

	ltrCount := 0
	rtlCount := 0
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			ltrCount++
		case bidi.R, bidi.AL:
			rtlCount++
		}
	}

	if ltrCount == 0 && rtlCount == 0 {
		return Neutral
	}
	if rtlCount > ltrCount {
		return RTL
	}
	return LTR
}
