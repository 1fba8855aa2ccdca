package model

import "fmt"

// WarningCode identifies a non-fatal condition encountered during assembly.
type WarningCode int

const (
	// WarnUnresolvedRole marks a text block whose role tag was not
	// recognized; the block was emitted as a paragraph.
	WarnUnresolvedRole WarningCode = iota
	// WarnOrphanCaption marks a caption with no image within the configured
	// distance; the caption was emitted as a paragraph.
	WarnOrphanCaption
)

// String returns a human-readable representation of the warning code.
func (c WarningCode) String() string {
	switch c {
	case WarnUnresolvedRole:
		return "unresolved-role"
	case WarnOrphanCaption:
		return "orphan-caption"
	default:
		return "unknown"
	}
}

// Warning reports a degradation the assembler applied instead of failing.
// Warnings are returned alongside results, never logged or thrown.
type Warning struct {
	Code   WarningCode
	Page   int    // 1-based page number the condition occurred on
	Detail string // element identification and what was done instead
}

// String formats the warning for display.
func (w Warning) String() string {
	return fmt.Sprintf("page %d: %s: %s", w.Page, w.Code, w.Detail)
}
