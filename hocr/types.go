package hocr

import (
	"strings"

	"github.com/farajfarook/pdf2md/model"
	"github.com/farajfarook/pdf2md/textproc"
)

// Document is a parsed hOCR file.
type Document struct {
	Title string
	Pages []Page
}

// Page is one recognized page, class ocr_page.
type Page struct {
	ID     string
	Number int    // from the ppageno property, usually zero-based
	Image  string // source image name from the title property
	BBox   model.BBox

	Areas []Area
	// Paragraphs holds paragraphs sitting directly under the page, outside
	// any content area.
	Paragraphs []Paragraph
}

// Area is a content area such as a column, class ocr_carea.
type Area struct {
	ID         string
	BBox       model.BBox
	Paragraphs []Paragraph
}

// Paragraph is a recognized paragraph, class ocr_par.
type Paragraph struct {
	ID    string
	Lang  string
	BBox  model.BBox
	Lines []Line
}

// Line is one recognized line. Class is the specific hOCR line class,
// ocr_line for body text or one of the ocr_header, ocr_caption, and
// ocr_textfloat variants.
type Line struct {
	ID       string
	Class    string
	BBox     model.BBox
	FontSize float64 // from the x_size property
	Baseline string  // raw baseline property
	Words    []Word
}

// Word is a single recognized word, class ocrx_word.
type Word struct {
	ID         string
	Text       string
	BBox       model.BBox
	Confidence float64 // from x_wconf, 0 to 100
	Bold       bool
}

// Text joins the line's words with single spaces.
func (l Line) Text() string {
	parts := make([]string, 0, len(l.Words))
	for _, w := range l.Words {
		if t := strings.TrimSpace(w.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// Bold reports whether most of the line's words are bold.
func (l Line) Bold() bool {
	if len(l.Words) == 0 {
		return false
	}
	bold := 0
	for _, w := range l.Words {
		if w.Bold {
			bold++
		}
	}
	return bold*2 > len(l.Words)
}

// Confidence returns the mean word confidence, or 0 for an empty line.
func (l Line) Confidence() float64 {
	if len(l.Words) == 0 {
		return 0
	}
	sum := 0.0
	for _, w := range l.Words {
		sum += w.Confidence
	}
	return sum / float64(len(l.Words))
}

// Text joins the paragraph's lines with newlines.
func (p Paragraph) Text() string {
	parts := make([]string, 0, len(p.Lines))
	for _, l := range p.Lines {
		if t := l.Text(); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n")
}

// lineRoles maps hOCR line classes to the roles they imply. Plain lines
// stay unknown so the classifier decides.
var lineRoles = map[string]model.Role{
	"ocr_header":  model.RoleHeading,
	"ocr_caption": model.RoleCaption,
}

// allParagraphs returns the page's paragraphs in reading order: area by
// area, then any paragraphs directly under the page.
func (p *Page) allParagraphs() []Paragraph {
	var pars []Paragraph
	for _, a := range p.Areas {
		pars = append(pars, a.Paragraphs...)
	}
	return append(pars, p.Paragraphs...)
}

// ModelPage converts the recognized page into a model page whose blocks
// are the non-empty lines, ready for classification and assembly. Line
// text is NFKC-normalized so ligatures and presentation forms from the
// recognized typeface fold into plain characters. The page number is
// assigned by the caller since ppageno counts from zero and single-image
// runs always report it as zero.
func (p *Page) ModelPage(number int) *model.Page {
	page := model.NewPage(number, p.BBox.Width(), p.BBox.Height())
	for _, par := range p.allParagraphs() {
		for _, line := range par.Lines {
			text := textproc.Normalize(line.Text())
			if text == "" {
				continue
			}
			page.AddBlock(model.TextBlock{
				BBox:     line.BBox,
				Text:     text,
				FontSize: line.FontSize,
				Bold:     line.Bold(),
				Role:     lineRoles[line.Class],
			})
		}
	}
	return page
}
