package assemble

import (
	"sort"

	"github.com/farajfarook/pdf2md/model"
)

// sortedAssets returns the page's images in deterministic placement order:
// top, then left, then sequence number. Images sharing an insertion gap
// keep this order among themselves.
func sortedAssets(images []model.ImageAsset) []model.ImageAsset {
	sorted := make([]model.ImageAsset, len(images))
	copy(sorted, images)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].BBox.Top != sorted[j].BBox.Top {
			return sorted[i].BBox.Top < sorted[j].BBox.Top
		}
		if sorted[i].BBox.Left != sorted[j].BBox.Left {
			return sorted[i].BBox.Left < sorted[j].BBox.Left
		}
		return sorted[i].Seq < sorted[j].Seq
	})
	return sorted
}

// chooseGap returns the insertion index for an image among the ordered text
// nodes: immediately after the last node whose box lies fully above the
// image's top edge, or 0 when no node lies above it. With no text nodes at
// all the only gap is 0 and the image stands alone.
func chooseGap(img model.ImageAsset, boxes []model.BBox) int {
	gap := 0
	for i, box := range boxes {
		if box.Bottom <= img.BBox.Top {
			gap = i + 1
		}
	}
	return gap
}

// placeImages merges image references into the ordered text nodes. boxes
// parallels nodes and carries each text node's bounding box; alts carries
// caption text keyed by asset ID for images that claimed a caption.
func placeImages(nodes []model.Node, boxes []model.BBox, images []model.ImageAsset, alts map[string]string) []model.Node {
	if len(images) == 0 {
		return nodes
	}

	perGap := make(map[int][]model.ImageRef)
	for _, img := range sortedAssets(images) {
		gap := chooseGap(img, boxes)
		perGap[gap] = append(perGap[gap], model.ImageRef{
			ID:   img.ID(),
			Path: img.Path,
			Alt:  alts[img.ID()],
		})
	}

	merged := make([]model.Node, 0, len(nodes)+len(images))
	for i := 0; i <= len(nodes); i++ {
		for _, ref := range perGap[i] {
			merged = append(merged, ref)
		}
		if i < len(nodes) {
			merged = append(merged, nodes[i])
		}
	}
	return merged
}

// resolveCaptions pairs caption blocks with images. Captions are considered
// in reading order; each claims the image with the smallest vertical gap
// within maxGap among images not yet claimed, ties going to the higher then
// lower-sequence image. It returns alt text keyed by asset ID and the set of
// ordered-block indices whose captions attached; the rest degrade to
// paragraphs at their natural position.
func resolveCaptions(ordered []orderedBlock, images []model.ImageAsset, maxGap float64) (map[string]string, map[int]bool) {
	alts := make(map[string]string)
	attached := make(map[int]bool)

	for idx, b := range ordered {
		if b.Role != model.RoleCaption {
			continue
		}

		bestID := ""
		bestGap := 0.0
		bestTop := 0.0
		bestSeq := 0
		for _, img := range images {
			if _, taken := alts[img.ID()]; taken {
				continue
			}
			gap := b.BBox.VerticalGap(img.BBox)
			if gap > maxGap {
				continue
			}
			better := bestID == "" ||
				gap < bestGap ||
				(gap == bestGap && img.BBox.Top < bestTop) ||
				(gap == bestGap && img.BBox.Top == bestTop && img.Seq < bestSeq)
			if better {
				bestID = img.ID()
				bestGap = gap
				bestTop = img.BBox.Top
				bestSeq = img.Seq
			}
		}

		if bestID != "" {
			alts[bestID] = b.Text
			attached[idx] = true
		}
	}

	return alts, attached
}
