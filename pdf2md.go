// Package pdf2md assembles extracted PDF content into ordered Markdown.
//
// The pipeline takes pages of positioned text blocks and image assets,
// tags each block with a structural role, orders everything into reading
// order, and renders Markdown:
//
//	md, warnings, err := pdf2md.FromDocument(doc).Markdown()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", warnings)
//	}
//
// With options:
//
//	md, _, err := pdf2md.FromDocument(doc).
//	    Pages(1, 2, 3).
//	    WithFormat(markdown.FormatObsidian).
//	    WithFrontMatter().
//	    Markdown()
//
// Pages are assembled independently and in parallel. A page whose geometry
// fails validation is dropped whole and reported; the remaining pages still
// convert. Configuration methods return new Converter instances, so a
// configured converter can be shared and re-chained freely.
//
// The lower-level packages remain available for custom pipelines: classify
// tags blocks, assemble orders a single page, markdown renders node
// sequences, and hocr, ocr, and imaging handle scanned input and image
// export.
package pdf2md

import (
	"github.com/farajfarook/pdf2md/model"
)

// FromDocument creates a Converter over an extracted document.
//
// Example:
//
//	md, warnings, err := pdf2md.FromDocument(doc).Markdown()
func FromDocument(doc *model.Document) *Converter {
	return &Converter{
		doc:     doc,
		options: defaultOptions(),
	}
}

// FromPages creates a Converter over loose pages, for callers without a
// full document. Pages keep the numbers they carry; pages numbered zero
// are numbered by position.
func FromPages(pages ...*model.Page) *Converter {
	doc := model.NewDocument()
	for _, page := range pages {
		if page != nil {
			doc.AddPage(page)
		}
	}
	return FromDocument(doc)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	result := pdf2md.Must(pdf2md.FromDocument(doc).Assemble())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
