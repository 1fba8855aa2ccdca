package classify

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/farajfarook/pdf2md/model"
)

// bodyFontSize estimates the dominant body text size on a page. Sizes are
// bucketed to half-point steps and weighted by text length; the heaviest
// bucket wins, with ties going to the smaller size. Returns 0 when no block
// carries a positive size.
func bodyFontSize(blocks []model.TextBlock) float64 {
	weights := make(map[float64]int)
	for _, b := range blocks {
		if b.FontSize <= 0 {
			continue
		}
		bucket := math.Round(b.FontSize*2) / 2
		w := utf8.RuneCountInString(b.Text)
		if w == 0 {
			w = 1
		}
		weights[bucket] += w
	}
	if len(weights) == 0 {
		return 0
	}

	buckets := make([]float64, 0, len(weights))
	for b := range weights {
		buckets = append(buckets, b)
	}
	sort.Float64s(buckets)

	best := buckets[0]
	for _, b := range buckets[1:] {
		if weights[b] > weights[best] {
			best = b
		}
	}
	return best
}

// headingConfidence scores how heading-like a block looks relative to the
// page's body font size. Size and weight carry the most signal; brevity and
// title casing add the rest. Scores range over [0, 1].
func (c *Classifier) headingConfidence(b model.TextBlock, bodySize float64) float64 {
	text := strings.TrimSpace(b.Text)
	if text == "" {
		return 0
	}

	score := 0.0
	ratio := 1.0
	if bodySize > 0 {
		ratio = b.FontSize / bodySize
	}
	if ratio >= c.config.MinHeadingRatio || b.FontSize >= c.config.AbsoluteHeadingSize {
		score += 0.3
	}
	if b.Bold {
		score += 0.3
	}
	if words := len(strings.Fields(text)); words <= c.config.MaxHeadingWords {
		score += 0.2
	}
	if isTitleCase(text) {
		score += 0.2
	}
	return score
}
