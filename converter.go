package pdf2md

import (
	"errors"
	"fmt"

	"github.com/farajfarook/pdf2md/analyze"
	"github.com/farajfarook/pdf2md/assemble"
	"github.com/farajfarook/pdf2md/classify"
	"github.com/farajfarook/pdf2md/markdown"
	"github.com/farajfarook/pdf2md/model"
)

// Converter provides a fluent interface for turning extracted pages into
// Markdown. Each configuration method returns a new Converter instance,
// making it safe for concurrent use and allowing method chaining.
type Converter struct {
	doc *model.Document

	// Configuration
	options convertOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Converter with a deep copy of
// options. This ensures immutability - each chain method returns a new
// instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		doc:     c.doc,
		options: c.options.clone(),
		err:     c.err,
	}
}

// Pages restricts conversion to the given 1-indexed page numbers, in the
// order given. Numbers outside the document fail at the terminal call.
//
// Example:
//
//	md, _, err := pdf2md.FromDocument(doc).Pages(1, 2, 3).Markdown()
func (c *Converter) Pages(pages ...int) *Converter {
	newConv := c.clone()
	newConv.options.pages = append([]int(nil), pages...)
	return newConv
}

// PageRange restricts conversion to pages start through end, inclusive.
func (c *Converter) PageRange(start, end int) *Converter {
	newConv := c.clone()
	if start < 1 || end < start {
		newConv.err = fmt.Errorf("invalid page range %d..%d", start, end)
		return newConv
	}
	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	newConv.options.pages = pages
	return newConv
}

// WithFormat selects the Markdown flavor to emit.
func (c *Converter) WithFormat(format markdown.Format) *Converter {
	newConv := c.clone()
	newConv.options.renderer.Format = format
	return newConv
}

// WithFrontMatter prepends YAML front matter built from the document
// metadata.
func (c *Converter) WithFrontMatter() *Converter {
	newConv := c.clone()
	newConv.options.renderer.IncludeFrontMatter = true
	return newConv
}

// WithTOC prepends a table of contents built from the headings.
func (c *Converter) WithTOC() *Converter {
	newConv := c.clone()
	newConv.options.renderer.IncludeTOC = true
	return newConv
}

// WithRowEpsilon sets the vertical tolerance, in page units, for grouping
// blocks into the same visual row. Zero derives it per page from the median
// block height.
func (c *Converter) WithRowEpsilon(eps float64) *Converter {
	newConv := c.clone()
	newConv.options.assembler.RowEpsilon = eps
	return newConv
}

// WithCaptionGap sets how far, in page units, a caption may sit from an
// image and still become its alt text.
func (c *Converter) WithCaptionGap(gap float64) *Converter {
	newConv := c.clone()
	newConv.options.assembler.CaptionMaxGap = gap
	return newConv
}

// WithWorkers caps how many pages assemble concurrently. Zero or less
// restores the automatic size.
func (c *Converter) WithWorkers(n int) *Converter {
	newConv := c.clone()
	if n < 0 {
		n = 0
	}
	newConv.options.workers = n
	return newConv
}

// PreClassified marks the document's blocks as already carrying roles,
// skipping the built-in classifier.
func (c *Converter) PreClassified() *Converter {
	newConv := c.clone()
	newConv.options.classify = false
	return newConv
}

// WithTextCleanup repairs extraction artifacts in block text before
// classification: glued words are split apart, control characters and
// runs of blanks removed. The source document is never modified.
func (c *Converter) WithTextCleanup() *Converter {
	newConv := c.clone()
	newConv.options.cleanup = true
	return newConv
}

// WithClassifierConfig replaces the role classifier settings.
func (c *Converter) WithClassifierConfig(config classify.Config) *Converter {
	newConv := c.clone()
	newConv.options.classifier = config
	return newConv
}

// WithAssemblerConfig replaces the page assembly settings.
func (c *Converter) WithAssemblerConfig(config assemble.Config) *Converter {
	newConv := c.clone()
	newConv.options.assembler = config
	return newConv
}

// WithRendererConfig replaces the Markdown rendering settings.
func (c *Converter) WithRendererConfig(config markdown.Config) *Converter {
	newConv := c.clone()
	newConv.options.renderer = config
	return newConv
}

// Profile classifies every page and recommends a conversion strategy
// without assembling anything. It always profiles the whole document,
// ignoring any page selection.
func (c *Converter) Profile() (*analyze.DocumentProfile, error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.doc == nil {
		return nil, errors.New("no document")
	}
	return analyze.NewAnalyzer().AnalyzeDocument(c.doc), nil
}

// Assemble classifies and orders the selected pages concurrently and
// returns the per-page results in selection order. A page that fails
// geometry validation contributes no output; its slot is nil and the
// failure is recorded in PageErrors. Sibling pages are never affected.
func (c *Converter) Assemble() (*DocumentResult, error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.doc == nil {
		return nil, errors.New("no document")
	}

	pages, err := c.selectPages()
	if err != nil {
		return nil, err
	}

	classifier := classify.NewClassifierWithConfig(c.options.classifier)
	assembler := assemble.NewAssemblerWithConfig(c.options.assembler)

	results, pageErrors := assemblePages(pages, c.options, classifier, assembler)
	return &DocumentResult{
		Pages:      results,
		PageErrors: pageErrors,
		Profile:    analyze.NewAnalyzer().AnalyzeDocument(c.doc),
	}, nil
}

// Markdown assembles the selected pages and renders them as one Markdown
// document. Failed pages are omitted from the text and their errors are
// returned joined; the rendered text for the surviving pages is still
// returned alongside, so callers decide whether partial output is usable.
func (c *Converter) Markdown() (string, []model.Warning, error) {
	result, err := c.Assemble()
	if err != nil {
		return "", nil, err
	}

	renderer := markdown.NewRendererWithConfig(c.options.renderer)
	var meta *model.Metadata
	if c.doc != nil {
		meta = &c.doc.Metadata
	}

	text, err := renderer.RenderDocument(result.Pages, meta)
	if err != nil {
		return "", result.Warnings(), err
	}
	return text, result.Warnings(), result.Err()
}

// HTML renders the Markdown output as a standalone HTML page, titled from
// the document metadata. The error contract matches Markdown.
func (c *Converter) HTML() (string, []model.Warning, error) {
	md, warnings, err := c.Markdown()
	if err != nil && md == "" {
		return "", warnings, err
	}

	title := ""
	if c.doc != nil {
		title = c.doc.Metadata.Title
	}
	page, herr := markdown.NewHTMLConverter().ConvertPage(md, title)
	if herr != nil {
		return "", warnings, herr
	}
	return page, warnings, err
}

// selectPages resolves the page selection against the document.
func (c *Converter) selectPages() ([]*model.Page, error) {
	if len(c.options.pages) == 0 {
		return c.doc.Pages, nil
	}
	selected := make([]*model.Page, 0, len(c.options.pages))
	for _, num := range c.options.pages {
		page := c.doc.GetPage(num)
		if page == nil {
			return nil, fmt.Errorf("page %d out of range (document has %d pages)", num, c.doc.PageCount())
		}
		selected = append(selected, page)
	}
	return selected, nil
}
