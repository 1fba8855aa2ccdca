package assemble

import (
	"errors"
	"fmt"

	"github.com/farajfarook/pdf2md/model"
)

// ErrInvalidGeometry is the sentinel wrapped by every GeometryError, for
// use with errors.Is.
var ErrInvalidGeometry = errors.New("invalid geometry")

// GeometryError reports a malformed bounding box on a specific element. The
// error is fatal for the page it occurs on and carries enough identity for
// a batch caller to report and continue with sibling pages. The assembler
// never repairs geometry; that is the extractor's responsibility.
type GeometryError struct {
	Page    int        // 1-based page number
	Element string     // "text block" or "image"
	ID      string     // block index or image asset identifier
	BBox    model.BBox // the offending box
}

// Error formats the failure with the offending element's identity.
func (e *GeometryError) Error() string {
	return fmt.Sprintf("page %d: %s %s: invalid geometry %s",
		e.Page, e.Element, e.ID, e.BBox)
}

// Unwrap makes the error match ErrInvalidGeometry under errors.Is.
func (e *GeometryError) Unwrap() error {
	return ErrInvalidGeometry
}
