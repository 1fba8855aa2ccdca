package hocr

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/farajfarook/pdf2md/model"
)

// lineClasses are the hOCR classes that mark a line-level element.
var lineClasses = map[string]bool{
	"ocr_line":      true,
	"ocr_header":    true,
	"ocr_caption":   true,
	"ocr_textfloat": true,
}

// Parse reads an hOCR document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse hocr: %w", err)
	}

	doc := &Document{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if n.Data == "title" && doc.Title == "" {
				doc.Title = textContent(n)
				return
			}
			if hasClass(n, "ocr_page") {
				doc.Pages = append(doc.Pages, parsePage(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return doc, nil
}

// ParseString reads an hOCR document from a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

func parsePage(n *html.Node) Page {
	props := properties(attr(n, "title"))
	page := Page{
		ID:    attr(n, "id"),
		Image: strings.Trim(props["image"], `"`),
	}
	page.BBox, _ = parseBBox(props["bbox"])
	page.Number, _ = strconv.Atoi(props["ppageno"])

	forEachDescendant(n, func(c *html.Node) bool {
		switch {
		case hasClass(c, "ocr_carea"):
			page.Areas = append(page.Areas, parseArea(c))
			return false
		case hasClass(c, "ocr_par"):
			page.Paragraphs = append(page.Paragraphs, parseParagraph(c))
			return false
		}
		return true
	})
	return page
}

func parseArea(n *html.Node) Area {
	props := properties(attr(n, "title"))
	area := Area{ID: attr(n, "id")}
	area.BBox, _ = parseBBox(props["bbox"])

	forEachDescendant(n, func(c *html.Node) bool {
		if hasClass(c, "ocr_par") {
			area.Paragraphs = append(area.Paragraphs, parseParagraph(c))
			return false
		}
		return true
	})
	return area
}

func parseParagraph(n *html.Node) Paragraph {
	props := properties(attr(n, "title"))
	par := Paragraph{
		ID:   attr(n, "id"),
		Lang: attr(n, "lang"),
	}
	par.BBox, _ = parseBBox(props["bbox"])

	forEachDescendant(n, func(c *html.Node) bool {
		if class := lineClass(c); class != "" {
			par.Lines = append(par.Lines, parseLine(c, class))
			return false
		}
		return true
	})
	return par
}

func parseLine(n *html.Node, class string) Line {
	props := properties(attr(n, "title"))
	line := Line{
		ID:       attr(n, "id"),
		Class:    class,
		Baseline: props["baseline"],
	}
	line.BBox, _ = parseBBox(props["bbox"])
	line.FontSize, _ = strconv.ParseFloat(props["x_size"], 64)

	forEachDescendant(n, func(c *html.Node) bool {
		if hasClass(c, "ocrx_word") {
			line.Words = append(line.Words, parseWord(c))
			return false
		}
		return true
	})
	return line
}

func parseWord(n *html.Node) Word {
	props := properties(attr(n, "title"))
	word := Word{
		ID:   attr(n, "id"),
		Text: textContent(n),
		Bold: containsBold(n),
	}
	word.BBox, _ = parseBBox(props["bbox"])
	word.Confidence, _ = strconv.ParseFloat(props["x_wconf"], 64)
	return word
}

// properties splits an hOCR title attribute like
// "bbox 100 200 300 250; x_wconf 93" into a key to value map.
func properties(title string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) == 0 {
			continue
		}
		props[fields[0]] = strings.Join(fields[1:], " ")
	}
	return props
}

// parseBBox reads the four coordinates of a bbox property value.
func parseBBox(value string) (model.BBox, bool) {
	fields := strings.Fields(value)
	if len(fields) != 4 {
		return model.BBox{}, false
	}
	var coords [4]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return model.BBox{}, false
		}
		coords[i] = v
	}
	return model.NewBBox(coords[0], coords[1], coords[2], coords[3]), true
}

// forEachDescendant walks n's subtree in document order, calling visit on
// each element node. Returning false stops descent into that element.
func forEachDescendant(n *html.Node, visit func(*html.Node) bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && !visit(c) {
			continue
		}
		forEachDescendant(c, visit)
	}
}

func lineClass(n *html.Node) string {
	for _, c := range strings.Fields(attr(n, "class")) {
		if lineClasses[c] {
			return c
		}
	}
	return ""
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		for k := c.FirstChild; k != nil; k = k.NextSibling {
			walk(k)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func containsBold(n *html.Node) bool {
	found := false
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if found {
			return
		}
		if c.Type == html.ElementNode && (c.Data == "strong" || c.Data == "b") {
			found = true
			return
		}
		for k := c.FirstChild; k != nil; k = k.NextSibling {
			walk(k)
		}
	}
	walk(n)
	return found
}
