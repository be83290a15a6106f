// Package geometry defines the integer pixel types shared by the layout core
// and its hosts.
package geometry

import "image"

// Point represents a 2D position in pixel coordinates.
type Point struct {
	X int
	Y int
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  int
	Height int
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height int) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.Left, Y: r.Top}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   min(r.Left, other.Left),
		Top:    min(r.Top, other.Top),
		Right:  max(r.Right, other.Right),
		Bottom: max(r.Bottom, other.Bottom),
	}
}

// Image converts r to an image.Rectangle for drawing.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right, r.Bottom)
}

// EdgeInsets is a padding box in pixels.
type EdgeInsets struct {
	Left, Top, Right, Bottom int
}

// EdgeInsetsAll returns insets with the same value on every side.
func EdgeInsetsAll(v int) EdgeInsets {
	return EdgeInsets{Left: v, Top: v, Right: v, Bottom: v}
}

// EdgeInsetsSymmetric returns insets with horizontal and vertical values.
func EdgeInsetsSymmetric(horizontal, vertical int) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// Horizontal returns Left + Right.
func (e EdgeInsets) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e EdgeInsets) Vertical() int {
	return e.Top + e.Bottom
}

// Deflate shrinks r by the insets.
func (e EdgeInsets) Deflate(r Rect) Rect {
	return Rect{
		Left:   r.Left + e.Left,
		Top:    r.Top + e.Top,
		Right:  r.Right - e.Right,
		Bottom: r.Bottom - e.Bottom,
	}
}
