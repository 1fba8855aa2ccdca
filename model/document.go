package model

import "time"

// Metadata holds document-level properties carried over from the source
// file.
type Metadata struct {
	Title        string
	Author       string
	Subject      string
	Keywords     []string
	Producer     string
	CreationDate time.Time
}

// Document is an ordered collection of pages plus source metadata.
type Document struct {
	Metadata Metadata
	Pages    []*Page
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage appends a page, assigning its number when unset.
func (d *Document) AddPage(page *Page) {
	if page.Number == 0 {
		page.Number = len(d.Pages) + 1
	}
	d.Pages = append(d.Pages, page)
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// GetPage returns the page with the given 1-based number, or nil when out
// of range.
func (d *Document) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}
