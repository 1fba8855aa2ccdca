package markdown

import (
	"fmt"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/farajfarook/pdf2md/model"
)

// frontMatterDoc is the YAML shape of the front matter block. Empty fields
// are dropped so sparse metadata stays sparse.
type frontMatterDoc struct {
	Title    string   `yaml:"title,omitempty"`
	Author   string   `yaml:"author,omitempty"`
	Subject  string   `yaml:"subject,omitempty"`
	Keywords []string `yaml:"keywords,omitempty"`
	Producer string   `yaml:"producer,omitempty"`
	Created  string   `yaml:"created,omitempty"`
	Pages    int      `yaml:"pages,omitempty"`
}

// frontMatter marshals document metadata into a YAML front matter block,
// fenced by --- lines and followed by a blank line.
func frontMatter(meta *model.Metadata, pageCount int) (string, error) {
	doc := frontMatterDoc{
		Title:    meta.Title,
		Author:   meta.Author,
		Subject:  meta.Subject,
		Keywords: meta.Keywords,
		Producer: meta.Producer,
		Pages:    pageCount,
	}
	if !meta.CreationDate.IsZero() {
		doc.Created = meta.CreationDate.Format(time.RFC3339)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("front matter: %w", err)
	}
	return "---\n" + string(data) + "---\n\n", nil
}
