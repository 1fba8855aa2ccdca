// Package markdown renders assembled content nodes as Markdown.
//
// The renderer walks a node sequence in order: headings become #-prefixed
// lines, list items become "-" bullets with their original numbering kept,
// consecutive table rows fold into one pipe table whose first row is the
// header, image references become image links, and section breaks become
// horizontal rules. Consecutive list items stay in a single list; every
// other pair of nodes is separated by a blank line.
//
// Three output flavors are supported. Standard and GitHub differ only in
// intent today and share syntax; Obsidian switches image links to the
// ![[file]] embed form. Document rendering can prepend YAML front matter
// built from source metadata and a table of contents generated from the
// rendered headings.
//
// # Usage
//
//	renderer := markdown.NewRenderer()
//	text, err := renderer.RenderDocument(results, &doc.Metadata)
package markdown
