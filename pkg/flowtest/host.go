package flowtest

import (
	"fmt"

	"github.com/go-drift/flow/pkg/flow"
	"github.com/go-drift/flow/pkg/geometry"
)

// Box is a child with a requested size and optional intrinsic content size.
//
// Width and Height take a pixel value, flow.MatchParent, or flow.WrapContent.
// Intrinsic is what the box reports when it is allowed to choose.
type Box struct {
	Name      string
	Width     int
	Height    int
	Intrinsic geometry.Size
	Hidden    bool

	// Bounds is set by flow.Arranger.Place.
	Bounds geometry.Rect
	Placed bool
}

// NewBox returns a visible box of a fixed size.
func NewBox(name string, width, height int) *Box {
	return &Box{Name: name, Width: width, Height: height}
}

// Boxes returns n visible boxes of the same size, named b0..b(n-1).
func Boxes(width, height, n int) []*Box {
	boxes := make([]*Box, n)
	for i := range boxes {
		boxes[i] = NewBox(fmt.Sprintf("b%d", i), width, height)
	}
	return boxes
}

func (b *Box) Visible() bool { return !b.Hidden }

func (b *Box) String() string { return b.Name }

// SetBounds records the placement.
func (b *Box) SetBounds(bounds geometry.Rect) {
	b.Bounds = bounds
	b.Placed = true
}

// LayoutParams returns the requested size.
func (b *Box) LayoutParams() flow.LayoutParams {
	return flow.LayoutParams{Width: b.Width, Height: b.Height}
}

// Measurement records one MeasureChild call.
type Measurement struct {
	Child         flow.Child
	Width, Height flow.Constraint
	Result        geometry.Size
}

// Host is a flow.Host over a slice of boxes. It records every measurement.
type Host struct {
	Pad   geometry.EdgeInsets
	Boxes []*Box
	Calls []Measurement
}

// NewHost returns a host with no padding.
func NewHost(boxes ...*Box) *Host {
	return &Host{Boxes: boxes}
}

// Padding returns h.Pad.
func (h *Host) Padding() geometry.EdgeInsets {
	return h.Pad
}

// Children returns the boxes as flow children.
func (h *Host) Children() []flow.Child {
	children := make([]flow.Child, len(h.Boxes))
	for i, b := range h.Boxes {
		children[i] = b
	}
	return children
}

// MeasureChild sizes a box under the constraints derived for it.
func (h *Host) MeasureChild(child flow.Child, width, height flow.Constraint) geometry.Size {
	var size geometry.Size
	if b, ok := child.(*Box); ok {
		cw, ch := flow.ChildConstraints(width, height, h.Pad, b.LayoutParams())
		size = geometry.Size{
			Width:  cw.Constrain(b.Intrinsic.Width),
			Height: ch.Constrain(b.Intrinsic.Height),
		}
	}
	h.Calls = append(h.Calls, Measurement{Child: child, Width: width, Height: height, Result: size})
	return size
}

// Measured reports whether child was measured since the last Reset.
func (h *Host) Measured(child flow.Child) bool {
	for _, c := range h.Calls {
		if c.Child == child {
			return true
		}
	}
	return false
}

// Reset clears the recorded calls and the placement state of every box.
func (h *Host) Reset() {
	h.Calls = h.Calls[:0]
	for _, b := range h.Boxes {
		b.Bounds = geometry.Rect{}
		b.Placed = false
	}
}
