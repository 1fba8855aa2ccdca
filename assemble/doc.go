// Package assemble implements the page stream assembler: it merges the
// extracted text blocks and image assets of a single page into one ordered
// sequence of content nodes representing the page's reading order.
//
// The assembler is a pure, synchronous computation. It performs no I/O,
// holds no shared state, and produces identical output for identical input,
// so per-page invocations may run in parallel across pages without
// coordination.
//
// # Reading order
//
// Text blocks are ordered top-to-bottom, left-to-right. Blocks whose top
// coordinates fall within an epsilon tolerance are treated as one row and
// ordered left-to-right; the tolerance defaults to half the median block
// height on the page. No column detection is performed.
//
// # Role mapping
//
// Each block maps to a node via its role tag: headings receive a level from
// a per-page table of distinct heading font sizes (largest size is level 1),
// contiguous same-row table cells merge into a single table row, and blocks
// with an unresolved role degrade to paragraphs with a warning.
//
// # Image placement
//
// Every image is inserted immediately after the last text node lying fully
// above it, at the head when no text precedes it, or as the sole node on a
// text-free page. Caption blocks attach to their nearest image within a
// configurable vertical distance as alt text; captions with no image in
// range degrade to paragraphs rather than being dropped.
//
// # Usage
//
//	assembler := assemble.NewAssembler()
//	result, err := assembler.AssemblePage(page)
//	if err != nil {
//		// the page had malformed geometry; siblings are unaffected
//	}
//	for _, node := range result.Nodes {
//		// render node
//	}
package assemble
