package model

import (
	"fmt"
	"math"
)

// Point represents a 2D point in page space.
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox is an axis-aligned rectangle in page space. Coordinates follow the
// extraction convention used throughout this module: the origin is the
// top-left corner of the page and Y grows downward, so Top <= Bottom for a
// well-formed box.
type BBox struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// NewBBox creates a bounding box from edge coordinates.
func NewBBox(left, top, right, bottom float64) BBox {
	return BBox{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 {
	return b.Bottom - b.Top
}

// HCenter returns the horizontal center of the box.
func (b BBox) HCenter() float64 {
	return (b.Left + b.Right) / 2
}

// VCenter returns the vertical center of the box.
func (b BBox) VCenter() float64 {
	return (b.Top + b.Bottom) / 2
}

// Center returns the center point of the box.
func (b BBox) Center() Point {
	return Point{X: b.HCenter(), Y: b.VCenter()}
}

// Area returns the area of the box.
func (b BBox) Area() float64 {
	return b.Width() * b.Height()
}

// IsValid reports whether the box is well-formed: every coordinate is
// finite, Left <= Right, and Top <= Bottom. Zero-area boxes are valid.
func (b BBox) IsValid() bool {
	for _, v := range [4]float64{b.Left, b.Top, b.Right, b.Bottom} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.Left <= b.Right && b.Top <= b.Bottom
}

// Contains reports whether the point lies inside or on the edge of the box.
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Top && p.Y <= b.Bottom
}

// Intersects reports whether two boxes overlap.
func (b BBox) Intersects(other BBox) bool {
	return b.Left < other.Right && other.Left < b.Right &&
		b.Top < other.Bottom && other.Top < b.Bottom
}

// Intersection returns the overlapping region of two boxes, or a zero BBox
// when they do not intersect.
func (b BBox) Intersection(other BBox) BBox {
	if !b.Intersects(other) {
		return BBox{}
	}
	return BBox{
		Left:   math.Max(b.Left, other.Left),
		Top:    math.Max(b.Top, other.Top),
		Right:  math.Min(b.Right, other.Right),
		Bottom: math.Min(b.Bottom, other.Bottom),
	}
}

// Union returns the smallest box containing both boxes.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		Left:   math.Min(b.Left, other.Left),
		Top:    math.Min(b.Top, other.Top),
		Right:  math.Max(b.Right, other.Right),
		Bottom: math.Max(b.Bottom, other.Bottom),
	}
}

// VerticalGap returns the vertical distance separating two boxes, or 0 when
// their vertical extents overlap.
func (b BBox) VerticalGap(other BBox) float64 {
	if b.Bottom <= other.Top {
		return other.Top - b.Bottom
	}
	if other.Bottom <= b.Top {
		return b.Top - other.Bottom
	}
	return 0
}

// String returns a compact representation used in errors and test output.
func (b BBox) String() string {
	return fmt.Sprintf("[%.2f %.2f %.2f %.2f]", b.Left, b.Top, b.Right, b.Bottom)
}
