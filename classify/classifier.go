package classify

import (
	"sort"

	"github.com/farajfarook/pdf2md/model"
)

// Config controls the classification heuristics.
type Config struct {
	// MinHeadingRatio is the font-size ratio over the body text size at
	// which a block starts to look like a heading.
	MinHeadingRatio float64

	// AbsoluteHeadingSize marks heading-sized text regardless of the body
	// size, for pages where the size estimate is unreliable.
	AbsoluteHeadingSize float64

	// MaxHeadingWords is the longest run of words a heading may carry.
	MaxHeadingWords int

	// MinConfidence is the combined score a block must reach to be tagged
	// as a heading.
	MinConfidence float64

	// RowTolerance is the vertical tolerance when grouping blocks into rows
	// for table detection.
	RowTolerance float64

	// MinTableRowMates is how many blocks must share a row before the row
	// reads as a table row.
	MinTableRowMates int

	// CaptionMaxDistance is the furthest, in page units, a caption-shaped
	// block may sit from an image and still be tagged as a caption.
	CaptionMaxDistance float64
}

// DefaultConfig returns the classification settings used by NewClassifier.
func DefaultConfig() Config {
	return Config{
		MinHeadingRatio:     1.2, // fifth larger than body text
		AbsoluteHeadingSize: 14,  // heading-sized even without a body estimate
		MaxHeadingWords:     12,
		MinConfidence:       0.5,
		RowTolerance:        5,
		MinTableRowMates:    3,
		CaptionMaxDistance:  200,
	}
}

// Classifier assigns structural roles to text blocks.
type Classifier struct {
	config Config
}

// NewClassifier creates a classifier with default settings.
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultConfig())
}

// NewClassifierWithConfig creates a classifier with custom settings.
func NewClassifierWithConfig(config Config) *Classifier {
	return &Classifier{config: config}
}

// Classify tags every block with a role and returns the result as a new
// slice. The input slice is never modified. Images are consulted only for
// caption proximity and are otherwise left alone.
func (c *Classifier) Classify(blocks []model.TextBlock, images []model.ImageAsset) []model.TextBlock {
	if len(blocks) == 0 {
		return nil
	}

	out := make([]model.TextBlock, len(blocks))
	copy(out, blocks)

	bodySize := bodyFontSize(out)
	cells := c.tableCellIndexes(out)

	for i := range out {
		out[i].Role = c.roleFor(out[i], images, bodySize, cells[i])
	}
	return out
}

// ClassifyPage returns a shallow copy of page with every block tagged.
func (c *Classifier) ClassifyPage(page *model.Page) *model.Page {
	if page == nil {
		return nil
	}
	tagged := *page
	tagged.Blocks = c.Classify(page.Blocks, page.Images)
	return &tagged
}

// roleFor runs the per-block checks in fixed order. Caption-shaped text
// near an image wins over everything so a bold "Figure 3" line never turns
// into a heading; list markers win over table membership so a bulleted
// column never turns into cells.
func (c *Classifier) roleFor(b model.TextBlock, images []model.ImageAsset, bodySize float64, inTableRow bool) model.Role {
	if IsCaptionText(b.Text) && c.nearImage(b, images) {
		return model.RoleCaption
	}
	if HasListMarker(b.Text) {
		return model.RoleListItem
	}
	if inTableRow {
		return model.RoleTableCell
	}
	if c.headingConfidence(b, bodySize) >= c.config.MinConfidence {
		return model.RoleHeading
	}
	return model.RoleParagraph
}

func (c *Classifier) nearImage(b model.TextBlock, images []model.ImageAsset) bool {
	for _, img := range images {
		if b.BBox.VerticalGap(img.BBox) <= c.config.CaptionMaxDistance {
			return true
		}
	}
	return false
}

// tableCellIndexes finds rows holding MinTableRowMates or more blocks and
// returns the indexes of every block in such a row.
func (c *Classifier) tableCellIndexes(blocks []model.TextBlock) map[int]bool {
	order := make([]int, len(blocks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return blocks[order[a]].BBox.Top < blocks[order[b]].BBox.Top
	})

	cells := make(map[int]bool)
	var row []int
	anchor := 0.0

	flush := func() {
		if len(row) >= c.config.MinTableRowMates {
			for _, i := range row {
				cells[i] = true
			}
		}
		row = row[:0]
	}

	for _, i := range order {
		top := blocks[i].BBox.Top
		if len(row) > 0 && top-anchor > c.config.RowTolerance {
			flush()
		}
		if len(row) == 0 {
			anchor = top
		}
		row = append(row, i)
	}
	flush()

	return cells
}
