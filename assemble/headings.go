package assemble

import (
	"sort"

	"github.com/farajfarook/pdf2md/model"
)

// maxHeadingLevel caps heading depth at Markdown's six levels.
const maxHeadingLevel = 6

// headingLevels builds the per-page mapping from heading font size to
// heading level. The distinct font sizes observed on heading blocks sort
// descending, the largest becoming level 1; sizes past the sixth clamp to
// level 6. A page whose headings all share one size therefore gets a single
// level, and a larger size always maps to a smaller (or equal) level than a
// smaller size.
func headingLevels(blocks []orderedBlock) map[float64]int {
	seen := make(map[float64]bool)
	sizes := make([]float64, 0)
	for _, b := range blocks {
		if b.Role == model.RoleHeading && !seen[b.FontSize] {
			seen[b.FontSize] = true
			sizes = append(sizes, b.FontSize)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	levels := make(map[float64]int, len(sizes))
	for i, size := range sizes {
		level := i + 1
		if level > maxHeadingLevel {
			level = maxHeadingLevel
		}
		levels[size] = level
	}
	return levels
}
