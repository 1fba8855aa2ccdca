package model

// NodeKind identifies the structural kind of a content node.
type NodeKind int

const (
	KindHeading NodeKind = iota
	KindParagraph
	KindListItem
	KindTableRow
	KindImageRef
	KindSectionBreak
)

// String returns a human-readable representation of the node kind.
func (k NodeKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindListItem:
		return "list-item"
	case KindTableRow:
		return "table-row"
	case KindImageRef:
		return "image-ref"
	case KindSectionBreak:
		return "section-break"
	default:
		return "unknown"
	}
}

// Node is one unit of the linearized page representation produced by the
// assembler. An ordered slice of nodes is the per-page output; pages
// concatenated in page-number order, separated by SectionBreak nodes, form
// the document-level output.
type Node interface {
	Kind() NodeKind
}

// Heading is a section title with its resolved level (1 is the largest).
type Heading struct {
	Level int
	Text  string
}

func (h Heading) Kind() NodeKind { return KindHeading }

// Paragraph is ordinary body text.
type Paragraph struct {
	Text string
}

func (p Paragraph) Kind() NodeKind { return KindParagraph }

// ListItem is one entry of a bulleted or numbered list. Text keeps the
// original marker when the source block carried one.
type ListItem struct {
	Text string
}

func (l ListItem) Kind() NodeKind { return KindListItem }

// TableRow is one row of tabular content, cells in left-to-right order.
type TableRow struct {
	Cells []string
}

func (t TableRow) Kind() NodeKind { return KindTableRow }

// ImageRef points at a persisted image asset. Alt carries attached caption
// text and is empty when no caption was found near the image.
type ImageRef struct {
	ID   string
	Path string
	Alt  string
}

func (i ImageRef) Kind() NodeKind { return KindImageRef }

// SectionBreak marks an explicit boundary between pages.
type SectionBreak struct{}

func (s SectionBreak) Kind() NodeKind { return KindSectionBreak }
