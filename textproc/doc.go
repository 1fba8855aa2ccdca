// Package textproc repairs common artifacts in text extracted from PDF
// pages and classifies writing direction.
//
// Extraction frequently glues words together across style boundaries,
// carries control characters from the content stream, and preserves
// presentation forms such as ligatures. Clean and Normalize undo those
// artifacts; DetectDirection reports the dominant writing direction of a
// run using Unicode bidirectional classes.
package textproc
