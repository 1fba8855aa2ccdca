package analyze

import (
	"fmt"

	"github.com/farajfarook/pdf2md/model"
)

// PageKind describes what a page carries.
type PageKind int

const (
	// PageEmpty has no meaningful text and no images.
	PageEmpty PageKind = iota
	// PageText has meaningful text and no images.
	PageText
	// PageImage has images and no meaningful text, typically a scan.
	PageImage
	// PageMixed has both meaningful text and images.
	PageMixed
)

// String returns the page kind as a lowercase word.
func (k PageKind) String() string {
	switch k {
	case PageEmpty:
		return "empty"
	case PageText:
		return "text"
	case PageImage:
		return "image"
	case PageMixed:
		return "mixed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Strategy is the recommended conversion path for a document or page.
type Strategy int

const (
	// StrategyDirectText extracts embedded text without OCR.
	StrategyDirectText Strategy = iota
	// StrategyOCRHeavy runs every page through OCR.
	StrategyOCRHeavy
	// StrategyHybrid extracts text where present and OCRs image pages.
	StrategyHybrid
	// StrategyFallback applies when a document has no usable content.
	StrategyFallback
)

// String returns the strategy's wire name.
func (s Strategy) String() string {
	switch s {
	case StrategyDirectText:
		return "direct_text"
	case StrategyOCRHeavy:
		return "ocr_heavy"
	case StrategyHybrid:
		return "hybrid"
	case StrategyFallback:
		return "fallback"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy converts a wire name back into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "direct_text":
		return StrategyDirectText, nil
	case "ocr_heavy":
		return StrategyOCRHeavy, nil
	case "hybrid":
		return StrategyHybrid, nil
	case "fallback":
		return StrategyFallback, nil
	default:
		return StrategyFallback, fmt.Errorf("unknown strategy %q", name)
	}
}

// Config controls page and document profiling.
type Config struct {
	// MinMeaningfulChars is how many non-whitespace characters a page needs
	// before its text counts as meaningful.
	MinMeaningfulChars int

	// DirectTextRatio is the share of content pages that must carry text
	// for the document to take the direct text path.
	DirectTextRatio float64

	// OCRHeavyRatio is the share of content pages carrying text at or below
	// which the document is treated as a scan.
	OCRHeavyRatio float64
}

// DefaultConfig returns the profiling settings used by NewAnalyzer.
func DefaultConfig() Config {
	return Config{
		MinMeaningfulChars: 50,
		DirectTextRatio:    0.8,
		OCRHeavyRatio:      0.2,
	}
}

// Analyzer profiles pages and documents.
type Analyzer struct {
	config Config
}

// NewAnalyzer creates an analyzer with default settings.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithConfig(DefaultConfig())
}

// NewAnalyzerWithConfig creates an analyzer with custom settings.
func NewAnalyzerWithConfig(config Config) *Analyzer {
	return &Analyzer{config: config}
}

// DocumentProfile summarizes a document's pages and the strategy they call
// for.
type DocumentProfile struct {
	PageCount  int
	TextPages  int
	ImagePages int
	MixedPages int
	EmptyPages int

	// Kinds holds the page kinds in document order.
	Kinds []PageKind

	// Strategy is the recommended conversion path.
	Strategy Strategy
}

// AnalyzePage classifies a single page. A nil page is empty.
func (a *Analyzer) AnalyzePage(page *model.Page) PageKind {
	if page == nil {
		return PageEmpty
	}
	hasText := page.TextLength() >= a.config.MinMeaningfulChars
	hasImages := len(page.Images) > 0
	switch {
	case hasText && hasImages:
		return PageMixed
	case hasText:
		return PageText
	case hasImages:
		return PageImage
	default:
		return PageEmpty
	}
}

// AnalyzeDocument classifies every page and recommends a strategy.
func (a *Analyzer) AnalyzeDocument(doc *model.Document) *DocumentProfile {
	profile := &DocumentProfile{Strategy: StrategyFallback}
	if doc == nil || len(doc.Pages) == 0 {
		return profile
	}

	profile.PageCount = len(doc.Pages)
	profile.Kinds = make([]PageKind, 0, len(doc.Pages))
	for _, page := range doc.Pages {
		kind := a.AnalyzePage(page)
		profile.Kinds = append(profile.Kinds, kind)
		switch kind {
		case PageText:
			profile.TextPages++
		case PageImage:
			profile.ImagePages++
		case PageMixed:
			profile.MixedPages++
		default:
			profile.EmptyPages++
		}
	}

	profile.Strategy = a.recommend(profile)
	return profile
}

// StrategyForPage maps a single page's kind to the path that suits it.
func (a *Analyzer) StrategyForPage(kind PageKind) Strategy {
	switch kind {
	case PageText:
		return StrategyDirectText
	case PageImage:
		return StrategyOCRHeavy
	case PageMixed:
		return StrategyHybrid
	default:
		return StrategyFallback
	}
}

// recommend picks the document strategy from the page counts. Mixed pages
// count as text pages: their embedded text is directly extractable and the
// images ride along as references.
func (a *Analyzer) recommend(p *DocumentProfile) Strategy {
	content := p.PageCount - p.EmptyPages
	if content == 0 {
		return StrategyFallback
	}
	textRatio := float64(p.TextPages+p.MixedPages) / float64(content)
	switch {
	case textRatio >= a.config.DirectTextRatio:
		return StrategyDirectText
	case textRatio <= a.config.OCRHeavyRatio:
		return StrategyOCRHeavy
	default:
		return StrategyHybrid
	}
}
