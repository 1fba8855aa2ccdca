package model

import (
	"math"
	"testing"
)

func TestBBoxDimensions(t *testing.T) {
	b := NewBBox(10, 20, 110, 70)

	if b.Width() != 100 {
		t.Errorf("Expected width 100, got %f", b.Width())
	}
	if b.Height() != 50 {
		t.Errorf("Expected height 50, got %f", b.Height())
	}
	if b.VCenter() != 45 {
		t.Errorf("Expected vertical center 45, got %f", b.VCenter())
	}
	if b.HCenter() != 60 {
		t.Errorf("Expected horizontal center 60, got %f", b.HCenter())
	}
	if b.Area() != 5000 {
		t.Errorf("Expected area 5000, got %f", b.Area())
	}
}

func TestBBoxIsValid(t *testing.T) {
	tests := []struct {
		name  string
		box   BBox
		valid bool
	}{
		{"normal", NewBBox(0, 0, 100, 50), true},
		{"zero area", NewBBox(10, 10, 10, 10), true},
		{"negative coordinates", NewBBox(-5, -5, 5, 5), true},
		{"inverted horizontal", NewBBox(50, 0, 10, 50), false},
		{"inverted vertical", NewBBox(0, 50, 100, 10), false},
		{"NaN coordinate", BBox{Left: math.NaN(), Top: 0, Right: 10, Bottom: 10}, false},
		{"infinite coordinate", BBox{Left: 0, Top: 0, Right: math.Inf(1), Bottom: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.IsValid(); got != tt.valid {
				t.Errorf("Expected IsValid=%v for %s, got %v", tt.valid, tt.box, got)
			}
		})
	}
}

func TestBBoxIntersection(t *testing.T) {
	a := NewBBox(0, 0, 100, 100)
	b := NewBBox(50, 50, 150, 150)

	if !a.Intersects(b) {
		t.Error("Expected boxes to intersect")
	}

	inter := a.Intersection(b)
	want := NewBBox(50, 50, 100, 100)
	if inter != want {
		t.Errorf("Expected intersection %s, got %s", want, inter)
	}

	c := NewBBox(200, 200, 300, 300)
	if a.Intersects(c) {
		t.Error("Expected disjoint boxes not to intersect")
	}
	if got := a.Intersection(c); got != (BBox{}) {
		t.Errorf("Expected zero intersection, got %s", got)
	}
}

func TestBBoxUnion(t *testing.T) {
	a := NewBBox(0, 0, 50, 50)
	b := NewBBox(100, 100, 200, 150)

	u := a.Union(b)
	want := NewBBox(0, 0, 200, 150)
	if u != want {
		t.Errorf("Expected union %s, got %s", want, u)
	}
}

func TestBBoxVerticalGap(t *testing.T) {
	upper := NewBBox(0, 100, 100, 120)
	lower := NewBBox(0, 150, 100, 170)

	if got := upper.VerticalGap(lower); got != 30 {
		t.Errorf("Expected gap 30, got %f", got)
	}
	if got := lower.VerticalGap(upper); got != 30 {
		t.Errorf("Expected symmetric gap 30, got %f", got)
	}

	overlapping := NewBBox(0, 110, 100, 160)
	if got := upper.VerticalGap(overlapping); got != 0 {
		t.Errorf("Expected zero gap for overlapping boxes, got %f", got)
	}
}

func TestRoleString(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleUnknown, "unknown"},
		{RoleHeading, "heading"},
		{RoleListItem, "list-item"},
		{RoleTableCell, "table-cell"},
		{RoleParagraph, "paragraph"},
		{RoleCaption, "caption"},
		{Role(99), "role(99)"},
	}

	for _, tt := range tests {
		if got := tt.role.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestParseRole(t *testing.T) {
	for _, role := range []Role{RoleHeading, RoleListItem, RoleTableCell, RoleParagraph, RoleCaption} {
		if got := ParseRole(role.String()); got != role {
			t.Errorf("Expected ParseRole(%q) = %v, got %v", role.String(), role, got)
		}
	}
	if got := ParseRole("garbage"); got != RoleUnknown {
		t.Errorf("Expected RoleUnknown for unrecognized name, got %v", got)
	}
}

func TestImageAssetID(t *testing.T) {
	asset := ImageAsset{Page: 3, Seq: 1}
	if got := asset.ID(); got != "image_page3_1" {
		t.Errorf("Expected image_page3_1, got %q", got)
	}
}

func TestNodeKinds(t *testing.T) {
	tests := []struct {
		node Node
		kind NodeKind
		name string
	}{
		{Heading{Level: 1, Text: "Title"}, KindHeading, "heading"},
		{Paragraph{Text: "body"}, KindParagraph, "paragraph"},
		{ListItem{Text: "- item"}, KindListItem, "list-item"},
		{TableRow{Cells: []string{"a", "b"}}, KindTableRow, "table-row"},
		{ImageRef{ID: "image_page1_0"}, KindImageRef, "image-ref"},
		{SectionBreak{}, KindSectionBreak, "section-break"},
	}

	for _, tt := range tests {
		if got := tt.node.Kind(); got != tt.kind {
			t.Errorf("Expected kind %v, got %v", tt.kind, got)
		}
		if got := tt.node.Kind().String(); got != tt.name {
			t.Errorf("Expected kind name %q, got %q", tt.name, got)
		}
	}
}

func TestPageTextLength(t *testing.T) {
	page := NewPage(1, 612, 792)
	page.AddBlock(TextBlock{Text: "Hello world"})
	page.AddBlock(TextBlock{Text: "  \t\n"})

	if got := page.TextLength(); got != 10 {
		t.Errorf("Expected 10 meaningful characters, got %d", got)
	}
	if page.IsEmpty() {
		t.Error("Expected page with blocks not to be empty")
	}

	empty := NewPage(1, 612, 792)
	if !empty.IsEmpty() {
		t.Error("Expected new page to be empty")
	}
}

func TestDocumentAddPage(t *testing.T) {
	doc := NewDocument()
	doc.AddPage(NewPage(0, 612, 792))
	doc.AddPage(NewPage(0, 612, 792))

	if doc.PageCount() != 2 {
		t.Errorf("Expected 2 pages, got %d", doc.PageCount())
	}
	if doc.Pages[0].Number != 1 || doc.Pages[1].Number != 2 {
		t.Errorf("Expected auto-assigned page numbers 1 and 2, got %d and %d",
			doc.Pages[0].Number, doc.Pages[1].Number)
	}
	if doc.GetPage(2) != doc.Pages[1] {
		t.Error("Expected GetPage(2) to return the second page")
	}
	if doc.GetPage(0) != nil || doc.GetPage(3) != nil {
		t.Error("Expected nil for out-of-range page numbers")
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Code: WarnOrphanCaption, Page: 2, Detail: "caption block 4 emitted as paragraph"}
	want := "page 2: orphan-caption: caption block 4 emitted as paragraph"
	if got := w.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
