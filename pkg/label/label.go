// Package label provides text children for flow layouts, measured with an
// x/image font face.
package label

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/flow/pkg/flow"
	"github.com/go-drift/flow/pkg/geometry"
)

// Label is a single line of text with padding around it.
type Label struct {
	Text    string
	Padding geometry.EdgeInsets
	// Width and Height fix the size in pixels. Zero sizes to the text
	// unless the matching ExactWidth or ExactHeight is set.
	// flow.MatchParent fills the container's content box.
	Width  int
	Height int
	// ExactWidth and ExactHeight make a zero Width or Height a fixed size
	// of 0 pixels.
	ExactWidth  bool
	ExactHeight bool
	Hidden      bool

	bounds geometry.Rect
}

// Visible reports whether the label takes part in layout.
func (l *Label) Visible() bool { return !l.Hidden }

// SetBounds records the placement assigned by the layout.
func (l *Label) SetBounds(bounds geometry.Rect) { l.bounds = bounds }

// Bounds returns the last placement.
func (l *Label) Bounds() geometry.Rect { return l.bounds }

func (l *Label) String() string { return l.Text }

// LayoutParams maps the fixed sizes to a layout request.
func (l *Label) LayoutParams() flow.LayoutParams {
	return flow.LayoutParams{
		Width:  request(l.Width, l.ExactWidth),
		Height: request(l.Height, l.ExactHeight),
	}
}

func request(v int, exact bool) int {
	switch {
	case v > 0, v == flow.MatchParent, v == 0 && exact:
		return v
	default:
		return flow.WrapContent
	}
}

// DefaultFace is used when a Container has no face.
var DefaultFace font.Face = basicfont.Face7x13

// Container is a flow.Host over a list of labels.
type Container struct {
	Labels []*Label
	Pad    geometry.EdgeInsets
	Face   font.Face
}

func (c *Container) face() font.Face {
	if c.Face != nil {
		return c.Face
	}
	return DefaultFace
}

// Padding returns the container padding.
func (c *Container) Padding() geometry.EdgeInsets {
	return c.Pad
}

// Children returns the labels as flow children.
func (c *Container) Children() []flow.Child {
	children := make([]flow.Child, len(c.Labels))
	for i, l := range c.Labels {
		children[i] = l
	}
	return children
}

// MeasureChild sizes a label to its text and clamps the result to the
// constraints derived from the container's.
func (c *Container) MeasureChild(child flow.Child, width, height flow.Constraint) geometry.Size {
	l, ok := child.(*Label)
	if !ok {
		return geometry.Size{}
	}
	cw, ch := flow.ChildConstraints(width, height, c.Pad, l.LayoutParams())
	intrinsic := Measure(c.face(), l.Text, l.Padding)
	return geometry.Size{
		Width:  cw.Constrain(intrinsic.Width),
		Height: ch.Constrain(intrinsic.Height),
	}
}

// Measure returns the size of text set in face, plus padding.
func Measure(face font.Face, text string, padding geometry.EdgeInsets) geometry.Size {
	advance := font.MeasureString(face, text)
	m := face.Metrics()
	return geometry.Size{
		Width:  advance.Ceil() + padding.Horizontal(),
		Height: (m.Ascent + m.Descent).Ceil() + padding.Vertical(),
	}
}
