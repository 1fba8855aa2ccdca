package pdf2md

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/farajfarook/pdf2md/analyze"
	"github.com/farajfarook/pdf2md/assemble"
	"github.com/farajfarook/pdf2md/classify"
	"github.com/farajfarook/pdf2md/model"
	"github.com/farajfarook/pdf2md/textproc"
)

// PageError records a page that could not be assembled.
type PageError struct {
	Page int
	Err  error
}

// Error returns the page number and the underlying failure.
func (e *PageError) Error() string {
	return fmt.Sprintf("page %d: %v", e.Page, e.Err)
}

// Unwrap returns the underlying failure, so errors.Is sees through to
// sentinels like assemble.ErrInvalidGeometry.
func (e *PageError) Unwrap() error {
	return e.Err
}

// DocumentResult holds the assembled pages of one conversion.
type DocumentResult struct {
	// Pages has one slot per selected page, in selection order. A page
	// that failed assembly leaves its slot nil.
	Pages []*assemble.PageResult

	// PageErrors lists the failed pages in selection order.
	PageErrors []*PageError

	// Profile is the document analysis computed alongside assembly.
	Profile *analyze.DocumentProfile
}

// Nodes flattens the assembled pages into one sequence, inserting a
// section break between the content of different source pages. Pages that
// produced nothing contribute nothing, not even a break.
func (r *DocumentResult) Nodes() []model.Node {
	if r == nil {
		return nil
	}
	var nodes []model.Node
	for _, page := range r.Pages {
		if page == nil || len(page.Nodes) == 0 {
			continue
		}
		if len(nodes) > 0 {
			nodes = append(nodes, model.SectionBreak{})
		}
		nodes = append(nodes, page.Nodes...)
	}
	return nodes
}

// Warnings collects the warnings of every assembled page in order.
func (r *DocumentResult) Warnings() []model.Warning {
	if r == nil {
		return nil
	}
	var warnings []model.Warning
	for _, page := range r.Pages {
		if page != nil {
			warnings = append(warnings, page.Warnings...)
		}
	}
	return warnings
}

// Err joins the page errors, or returns nil when every page assembled.
func (r *DocumentResult) Err() error {
	if r == nil || len(r.PageErrors) == 0 {
		return nil
	}
	errs := make([]error, len(r.PageErrors))
	for i, pageErr := range r.PageErrors {
		errs[i] = pageErr
	}
	return errors.Join(errs...)
}

// assemblePages fans the pages out over a small worker pool. Every worker
// writes only its own result slots, so the slices need no locking; the
// output order is the input order regardless of scheduling.
func assemblePages(pages []*model.Page, options convertOptions, classifier *classify.Classifier, assembler *assemble.Assembler) ([]*assemble.PageResult, []*PageError) {
	results := make([]*assemble.PageResult, len(pages))
	errs := make([]error, len(pages))
	if len(pages) == 0 {
		return results, nil
	}

	workers := resolveWorkers(options.workers)
	if workers > len(pages) {
		workers = len(pages)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				page := pages[i]
				if options.cleanup {
					page = cleanPage(page)
				}
				if options.classify {
					page = classifier.ClassifyPage(page)
				}
				result, err := assembler.AssemblePage(page)
				if err != nil {
					errs[i] = err
					continue
				}
				results[i] = result
			}
		}()
	}
	for i := range pages {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var pageErrors []*PageError
	for i, err := range errs {
		if err == nil {
			continue
		}
		number := i + 1
		if pages[i] != nil && pages[i].Number != 0 {
			number = pages[i].Number
		}
		pageErrors = append(pageErrors, &PageError{Page: number, Err: err})
	}
	return results, pageErrors
}

// cleanPage returns a copy of the page with extraction artifacts repaired
// in every block's text. The input page is left untouched.
func cleanPage(page *model.Page) *model.Page {
	if page == nil {
		return nil
	}
	cleaned := *page
	cleaned.Blocks = make([]model.TextBlock, len(page.Blocks))
	for i, block := range page.Blocks {
		block.Text = textproc.Clean(block.Text)
		cleaned.Blocks[i] = block
	}
	return &cleaned
}

// resolveWorkers picks the assembly parallelism: an explicit positive count
// wins, otherwise half the available CPUs clamped to [1, 8].
func resolveWorkers(n int) int {
	if n > 0 {
		return n
	}
	workers := runtime.GOMAXPROCS(0) / 2
	if workers < 1 {
		workers = 1
	}
	if workers > 8 {
		workers = 8
	}
	return workers
}
