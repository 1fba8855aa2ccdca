package model

import "strings"

// Page holds the extracted content of one page: positioned text blocks and
// image assets, both produced by upstream collaborators. Width and Height
// are the page dimensions in the same units as the block coordinates.
type Page struct {
	Number int // 1-based page number
	Width  float64
	Height float64
	Blocks []TextBlock
	Images []ImageAsset
}

// NewPage creates an empty page with the given number and dimensions. A
// zero number is assigned positionally when the page joins a Document.
func NewPage(number int, width, height float64) *Page {
	return &Page{
		Number: number,
		Width:  width,
		Height: height,
		Blocks: make([]TextBlock, 0),
		Images: make([]ImageAsset, 0),
	}
}

// AddBlock appends a text block to the page.
func (p *Page) AddBlock(block TextBlock) {
	p.Blocks = append(p.Blocks, block)
}

// AddImage appends an image asset to the page.
func (p *Page) AddImage(img ImageAsset) {
	p.Images = append(p.Images, img)
}

// IsEmpty reports whether the page carries no blocks and no images.
func (p *Page) IsEmpty() bool {
	return len(p.Blocks) == 0 && len(p.Images) == 0
}

// TextLength returns the number of non-whitespace characters across all
// blocks. Used to judge whether a page carries meaningful text.
func (p *Page) TextLength() int {
	n := 0
	for _, b := range p.Blocks {
		for _, r := range b.Text {
			if !isSpaceRune(r) {
				n++
			}
		}
	}
	return n
}

func isSpaceRune(r rune) bool {
	return strings.ContainsRune(" \t\n\r\v\f", r)
}
