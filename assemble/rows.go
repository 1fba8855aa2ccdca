package assemble

import (
	"sort"

	"github.com/farajfarook/pdf2md/model"
)

// orderedBlock is a text block annotated with the row it was grouped into.
type orderedBlock struct {
	model.TextBlock
	row int // 0-based row index, top-to-bottom
}

// orderBlocks sorts blocks into reading order: rows top-to-bottom, blocks
// within a row left-to-right. A block joins the current row when its top is
// within eps of the row's first block; otherwise it starts a new row.
// Anchoring rows to their first block keeps grouping from chaining down the
// page, so any block starting more than eps below another always follows it.
func orderBlocks(blocks []model.TextBlock, eps float64) []orderedBlock {
	ordered := make([]orderedBlock, len(blocks))
	for i, b := range blocks {
		ordered[i] = orderedBlock{TextBlock: b}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].BBox.Top != ordered[j].BBox.Top {
			return ordered[i].BBox.Top < ordered[j].BBox.Top
		}
		return ordered[i].BBox.Left < ordered[j].BBox.Left
	})

	row := 0
	anchor := 0.0
	for i := range ordered {
		if i == 0 {
			anchor = ordered[i].BBox.Top
		} else if ordered[i].BBox.Top-anchor > eps {
			row++
			anchor = ordered[i].BBox.Top
		}
		ordered[i].row = row
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].row != ordered[j].row {
			return ordered[i].row < ordered[j].row
		}
		return ordered[i].BBox.Left < ordered[j].BBox.Left
	})

	return ordered
}

// autoEpsilon derives the same-row tolerance from the page's typography as
// half the median block height. Returns 0 for a page without blocks, where
// the tolerance is irrelevant.
func autoEpsilon(blocks []model.TextBlock) float64 {
	if len(blocks) == 0 {
		return 0
	}
	heights := make([]float64, len(blocks))
	for i, b := range blocks {
		heights[i] = b.BBox.Height()
	}
	sort.Float64s(heights)

	mid := len(heights) / 2
	median := heights[mid]
	if len(heights)%2 == 0 {
		median = (heights[mid-1] + heights[mid]) / 2
	}
	return median / 2
}
