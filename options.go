package pdf2md

import (
	"github.com/farajfarook/pdf2md/assemble"
	"github.com/farajfarook/pdf2md/classify"
	"github.com/farajfarook/pdf2md/markdown"
)

// convertOptions holds configuration for document conversion.
type convertOptions struct {
	// Page selection (1-indexed page numbers; nil means all pages)
	pages []int

	// classify controls whether pages run through the role classifier
	// before assembly. Off when blocks arrive pre-tagged.
	classify bool

	// cleanup repairs extraction artifacts in block text before
	// classification. Off unless requested, since the repairs rewrite
	// the text.
	cleanup bool

	// Stage configuration
	classifier classify.Config
	assembler  assemble.Config
	renderer   markdown.Config

	// workers caps page assembly parallelism; 0 picks a size from the
	// machine.
	workers int
}

// defaultOptions returns the default conversion options.
func defaultOptions() convertOptions {
	return convertOptions{
		pages:      nil, // nil means all pages
		classify:   true,
		classifier: classify.DefaultConfig(),
		assembler:  assemble.DefaultConfig(),
		renderer:   markdown.DefaultConfig(),
		workers:    0,
	}
}

// clone creates a deep copy of convertOptions. The stage configs are plain
// value structs, so copying the struct copies them; only the page selection
// needs its own slice.
func (o convertOptions) clone() convertOptions {
	newOpts := o
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}
	return newOpts
}
