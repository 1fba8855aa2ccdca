package assemble

import (
	"fmt"
	"strconv"

	"github.com/farajfarook/pdf2md/model"
)

// Config controls the assembler's tolerances. All values are in page units.
type Config struct {
	// RowEpsilon is the vertical tolerance within which two blocks count as
	// the same row. 0 derives it per page as half the median block height.
	RowEpsilon float64

	// CaptionMaxGap is the largest vertical distance between a caption
	// block and an image for the caption to attach as alt text. A caption
	// with no image in range degrades to a paragraph.
	CaptionMaxGap float64
}

// DefaultConfig returns the default assembler configuration.
func DefaultConfig() Config {
	return Config{
		RowEpsilon:    0,  // derive from median block height
		CaptionMaxGap: 50, // roughly two text lines
	}
}

// Assembler merges one page's text blocks and images into an ordered
// content node sequence. An Assembler holds no per-page state; a single
// instance may assemble many pages concurrently.
type Assembler struct {
	config Config
}

// NewAssembler creates an assembler with default configuration.
func NewAssembler() *Assembler {
	return NewAssemblerWithConfig(DefaultConfig())
}

// NewAssemblerWithConfig creates an assembler with custom configuration.
func NewAssemblerWithConfig(config Config) *Assembler {
	return &Assembler{config: config}
}

// PageResult is the assembled output of one page.
type PageResult struct {
	Page     int             // 1-based page number
	Nodes    []model.Node    // content in reading order
	Warnings []model.Warning // non-fatal degradations applied
}

// NodeCount returns the number of assembled nodes. Safe on a nil result.
func (r *PageResult) NodeCount() int {
	if r == nil {
		return 0
	}
	return len(r.Nodes)
}

// ImageRefs returns the image nodes in reading order. Safe on a nil result.
func (r *PageResult) ImageRefs() []model.ImageRef {
	if r == nil {
		return nil
	}
	refs := make([]model.ImageRef, 0)
	for _, n := range r.Nodes {
		if ref, ok := n.(model.ImageRef); ok {
			refs = append(refs, ref)
		}
	}
	return refs
}

// AssemblePage produces the reading-ordered node sequence for one page.
//
// Every input block and image is represented by exactly one node, captions
// counting as the alt text of the image they attach to. Empty input yields
// an empty sequence, not an error. The first malformed bounding box fails
// the page with a GeometryError naming the element and no partial output is
// produced; sibling pages are unaffected. Output is deterministic: the same
// input always yields the same sequence.
func (a *Assembler) AssemblePage(page *model.Page) (*PageResult, error) {
	if page == nil {
		return &PageResult{Nodes: []model.Node{}}, nil
	}

	for i, b := range page.Blocks {
		if !b.BBox.IsValid() {
			return nil, &GeometryError{
				Page:    page.Number,
				Element: "text block",
				ID:      strconv.Itoa(i),
				BBox:    b.BBox,
			}
		}
	}
	for _, img := range page.Images {
		if !img.BBox.IsValid() {
			return nil, &GeometryError{
				Page:    page.Number,
				Element: "image",
				ID:      img.ID(),
				BBox:    img.BBox,
			}
		}
	}

	result := &PageResult{Page: page.Number, Nodes: []model.Node{}}
	if page.IsEmpty() {
		return result, nil
	}

	eps := a.config.RowEpsilon
	if eps <= 0 {
		eps = autoEpsilon(page.Blocks)
	}
	ordered := orderBlocks(page.Blocks, eps)

	alts, attached := resolveCaptions(ordered, page.Images, a.config.CaptionMaxGap)

	nodes, boxes, warnings := buildTextNodes(ordered, attached, page.Number)
	result.Nodes = placeImages(nodes, boxes, page.Images, alts)
	result.Warnings = warnings
	return result, nil
}

// buildTextNodes maps ordered blocks to content nodes. Captions already
// attached to an image are skipped; the rest follow their role tag, with
// unresolved roles degrading to paragraphs under a warning. The returned
// boxes parallel the nodes and drive image placement.
func buildTextNodes(ordered []orderedBlock, attached map[int]bool, pageNum int) ([]model.Node, []model.BBox, []model.Warning) {
	levels := headingLevels(ordered)
	nodes := make([]model.Node, 0, len(ordered))
	boxes := make([]model.BBox, 0, len(ordered))
	warnings := make([]model.Warning, 0)

	i := 0
	for i < len(ordered) {
		b := ordered[i]
		switch b.Role {
		case model.RoleHeading:
			nodes = append(nodes, model.Heading{Level: levels[b.FontSize], Text: b.Text})
			boxes = append(boxes, b.BBox)
			i++

		case model.RoleListItem:
			nodes = append(nodes, model.ListItem{Text: b.Text})
			boxes = append(boxes, b.BBox)
			i++

		case model.RoleTableCell:
			// Consume the contiguous run of cells sharing this row.
			cells := []string{b.Text}
			box := b.BBox
			j := i + 1
			for j < len(ordered) && ordered[j].Role == model.RoleTableCell && ordered[j].row == b.row {
				cells = append(cells, ordered[j].Text)
				box = box.Union(ordered[j].BBox)
				j++
			}
			nodes = append(nodes, model.TableRow{Cells: cells})
			boxes = append(boxes, box)
			i = j

		case model.RoleParagraph:
			nodes = append(nodes, model.Paragraph{Text: b.Text})
			boxes = append(boxes, b.BBox)
			i++

		case model.RoleCaption:
			if !attached[i] {
				nodes = append(nodes, model.Paragraph{Text: b.Text})
				boxes = append(boxes, b.BBox)
				warnings = append(warnings, model.Warning{
					Code:   model.WarnOrphanCaption,
					Page:   pageNum,
					Detail: fmt.Sprintf("caption %q has no image within range; emitted as paragraph", snippet(b.Text)),
				})
			}
			i++

		default:
			// RoleUnknown and out-of-range values are both unresolved.
			nodes = append(nodes, model.Paragraph{Text: b.Text})
			boxes = append(boxes, b.BBox)
			warnings = append(warnings, model.Warning{
				Code:   model.WarnUnresolvedRole,
				Page:   pageNum,
				Detail: fmt.Sprintf("block %q with role %s emitted as paragraph", snippet(b.Text), b.Role),
			})
			i++
		}
	}
	return nodes, boxes, warnings
}

// snippet shortens text for warning details.
func snippet(s string) string {
	const max = 40
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
