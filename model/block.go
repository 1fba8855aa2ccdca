package model

import "fmt"

// Role classifies the structural function of a text block. Roles are
// assigned by an upstream classifier and treated as immutable input by the
// assembler.
type Role int

const (
	// RoleUnknown marks a block the upstream classifier could not resolve.
	RoleUnknown Role = iota
	// RoleHeading marks a section or document title.
	RoleHeading
	// RoleListItem marks a bulleted, numbered, or lettered list entry.
	RoleListItem
	// RoleTableCell marks a single cell of a tabular row.
	RoleTableCell
	// RoleParagraph marks ordinary body text.
	RoleParagraph
	// RoleCaption marks text describing a nearby figure or image.
	RoleCaption
)

// String returns a human-readable representation of the role.
func (r Role) String() string {
	switch r {
	case RoleUnknown:
		return "unknown"
	case RoleHeading:
		return "heading"
	case RoleListItem:
		return "list-item"
	case RoleTableCell:
		return "table-cell"
	case RoleParagraph:
		return "paragraph"
	case RoleCaption:
		return "caption"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// ParseRole converts a role name to its Role value. Unrecognized names map
// to RoleUnknown.
func ParseRole(s string) Role {
	switch s {
	case "heading":
		return RoleHeading
	case "list-item":
		return RoleListItem
	case "table-cell":
		return RoleTableCell
	case "paragraph":
		return RoleParagraph
	case "caption":
		return RoleCaption
	default:
		return RoleUnknown
	}
}

// TextBlock is one extracted run of text with its position and dominant
// style. Blocks are produced once per page by upstream extraction and never
// mutated afterwards.
type TextBlock struct {
	BBox     BBox
	Text     string
	FontSize float64
	Bold     bool
	Role     Role
}

// ImageAsset references an image extracted from a page. The image bytes are
// owned by the extraction collaborator and already persisted at Path; the
// assembler reads only the bounding box and the identifier.
type ImageAsset struct {
	BBox   BBox
	Page   int    // 1-based page number the image came from
	Seq    int    // sequence number of the image within its page
	Path   string // location of the persisted bytes
	Width  int    // pixel width of the stored image
	Height int    // pixel height of the stored image
	Format string // stored encoding, e.g. "png" or "jpg"
}

// ID returns the stable identifier of the asset, derived from its page and
// sequence numbers.
func (a ImageAsset) ID() string {
	return fmt.Sprintf("image_page%d_%d", a.Page, a.Seq)
}
