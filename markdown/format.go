package markdown

import "fmt"

// Format selects the Markdown flavor to emit.
type Format int

const (
	// FormatStandard is plain CommonMark-style output.
	FormatStandard Format = iota
	// FormatGitHub is GitHub Flavored Markdown. Tables render the same as
	// standard output; the flavor is kept distinct for callers that branch
	// on it.
	FormatGitHub
	// FormatObsidian uses Obsidian wiki-style image embeds.
	FormatObsidian
)

// String returns the format's wire name.
func (f Format) String() string {
	switch f {
	case FormatStandard:
		return "standard"
	case FormatGitHub:
		return "github"
	case FormatObsidian:
		return "obsidian"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat converts a wire name back into a Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "standard":
		return FormatStandard, nil
	case "github":
		return FormatGitHub, nil
	case "obsidian":
		return FormatObsidian, nil
	default:
		return FormatStandard, fmt.Errorf("unknown markdown format %q", name)
	}
}
