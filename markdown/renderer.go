package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/farajfarook/pdf2md/assemble"
	"github.com/farajfarook/pdf2md/model"
)

// Config controls rendering.
type Config struct {
	// Format selects the output flavor.
	Format Format

	// PageSeparator joins the rendered pages of a document.
	PageSeparator string

	// IncludeFrontMatter prepends YAML front matter built from the document
	// metadata.
	IncludeFrontMatter bool

	// IncludeTOC prepends a table of contents built from the headings.
	IncludeTOC bool

	// AltTextPattern fills in missing image alt text. It is a fmt pattern
	// receiving the page number.
	AltTextPattern string
}

// DefaultConfig returns the rendering settings used by NewRenderer.
func DefaultConfig() Config {
	return Config{
		Format:             FormatGitHub,
		PageSeparator:      "\n\n---\n\n",
		IncludeFrontMatter: false,
		IncludeTOC:         false,
		AltTextPattern:     "Image from page %d",
	}
}

// Renderer turns node sequences into Markdown text.
type Renderer struct {
	config Config
}

// NewRenderer creates a renderer with default settings.
func NewRenderer() *Renderer {
	return NewRendererWithConfig(DefaultConfig())
}

// NewRendererWithConfig creates a renderer with custom settings.
func NewRendererWithConfig(config Config) *Renderer {
	if config.PageSeparator == "" {
		config.PageSeparator = "\n\n---\n\n"
	}
	if config.AltTextPattern == "" {
		config.AltTextPattern = "Image from page %d"
	}
	return &Renderer{config: config}
}

// chunk is one rendered block plus the kind that produced it, kept so list
// items can be joined tighter than other blocks.
type chunk struct {
	text string
	kind model.NodeKind
}

// RenderNodes renders a node sequence. The page number feeds default alt
// text for images that carry none; pass 0 when unknown.
func (r *Renderer) RenderNodes(nodes []model.Node, pageNumber int) string {
	var chunks []chunk

	for i := 0; i < len(nodes); i++ {
		var text string
		kind := nodes[i].Kind()

		switch n := nodes[i].(type) {
		case model.Heading:
			text = renderHeading(n)
		case model.Paragraph:
			text = strings.TrimSpace(n.Text)
		case model.ListItem:
			text = renderListItem(n.Text)
		case model.TableRow:
			rows := []model.TableRow{n}
			for i+1 < len(nodes) {
				next, ok := nodes[i+1].(model.TableRow)
				if !ok {
					break
				}
				rows = append(rows, next)
				i++
			}
			text = renderTable(rows)
		case model.ImageRef:
			text = r.renderImage(n, pageNumber)
		case model.SectionBreak:
			text = "---"
		}

		if text == "" {
			continue
		}
		chunks = append(chunks, chunk{text: text, kind: kind})
	}

	var b strings.Builder
	for i, c := range chunks {
		if i > 0 {
			if c.kind == model.KindListItem && chunks[i-1].kind == model.KindListItem {
				b.WriteString("\n")
			} else {
				b.WriteString("\n\n")
			}
		}
		b.WriteString(c.text)
	}
	return b.String()
}

// RenderPage renders one assembled page.
func (r *Renderer) RenderPage(result *assemble.PageResult) string {
	if result == nil {
		return ""
	}
	return r.RenderNodes(result.Nodes, result.Page)
}

// RenderDocument renders assembled pages in order, joined by the page
// separator. Pages that render to nothing are skipped so empty pages never
// produce stray rules. Front matter and a table of contents are prepended
// when configured.
func (r *Renderer) RenderDocument(results []*assemble.PageResult, meta *model.Metadata) (string, error) {
	parts := make([]string, 0, len(results))
	for _, result := range results {
		if text := r.RenderPage(result); text != "" {
			parts = append(parts, text)
		}
	}
	body := strings.Join(parts, r.config.PageSeparator)

	var head strings.Builder
	if r.config.IncludeFrontMatter && meta != nil {
		fm, err := frontMatter(meta, len(results))
		if err != nil {
			return "", err
		}
		head.WriteString(fm)
	}
	if r.config.IncludeTOC {
		if toc := tableOfContents(results); toc != "" {
			head.WriteString(toc)
			head.WriteString("\n\n")
		}
	}

	return Postprocess(head.String() + body), nil
}

func renderHeading(h model.Heading) string {
	text := strings.TrimSpace(h.Text)
	if text == "" {
		return ""
	}
	return strings.Repeat("#", clampLevel(h.Level)) + " " + text
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}

var (
	bulletMarker  = regexp.MustCompile(`^[-•*]\s+`)
	orderedMarker = regexp.MustCompile(`^(\d{1,3})[.)]\s+`)
)

// renderListItem normalizes the leading marker: numbered items keep their
// number with a dot, any bullet becomes "-", and unmarked text gains one.
func renderListItem(text string) string {
	t := strings.TrimSpace(text)
	if t == "" {
		return ""
	}
	if m := orderedMarker.FindStringSubmatch(t); m != nil {
		return m[1] + ". " + t[len(m[0]):]
	}
	if loc := bulletMarker.FindStringIndex(t); loc != nil {
		return "- " + t[loc[1]:]
	}
	return "- " + t
}

var cellEscaper = strings.NewReplacer("|", "\\|", "\n", " ")

// renderTable folds a run of rows into a pipe table. The first row is the
// header; every row is padded to the widest row so ragged input still lines
// up.
func renderTable(rows []model.TableRow) string {
	width := 0
	for _, row := range rows {
		if len(row.Cells) > width {
			width = len(row.Cells)
		}
	}
	if width == 0 {
		return ""
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("|")
		for i := 0; i < width; i++ {
			cell := ""
			if i < len(cells) {
				cell = cellEscaper.Replace(strings.TrimSpace(cells[i]))
			}
			b.WriteString(" ")
			b.WriteString(cell)
			b.WriteString(" |")
		}
	}

	writeRow(rows[0].Cells)
	b.WriteString("\n|")
	for i := 0; i < width; i++ {
		b.WriteString(" --- |")
	}
	for _, row := range rows[1:] {
		b.WriteString("\n")
		writeRow(row.Cells)
	}
	return b.String()
}

func (r *Renderer) renderImage(ref model.ImageRef, pageNumber int) string {
	target := ref.Path
	if target == "" {
		target = ref.ID
	}
	if r.config.Format == FormatObsidian {
		return fmt.Sprintf("![[%s]]", target)
	}

	alt := strings.TrimSpace(ref.Alt)
	if alt == "" {
		if pageNumber > 0 {
			alt = fmt.Sprintf(r.config.AltTextPattern, pageNumber)
		} else {
			alt = "Image"
		}
	}
	return fmt.Sprintf("![%s](%s)", alt, target)
}
