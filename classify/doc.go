// Package classify assigns structural roles to extracted text blocks.
//
// Role classification is a pure function computed once, upstream of
// assembly: given a page's blocks and images it returns a new block slice
// with each block tagged as heading, list-item, table-cell, paragraph, or
// caption. The assembler consumes the tags as immutable input and stays
// free of style heuristics.
//
// Checks run in a fixed order per block: caption (caption-shaped text near
// an image), list item (leading marker), table cell (three or more blocks
// sharing a row), heading (confidence score over font size, weight, length,
// and casing against the page's dominant body size), then paragraph.
//
// # Usage
//
//	classifier := classify.NewClassifier()
//	page.Blocks = classifier.Classify(page.Blocks, page.Images)
package classify
