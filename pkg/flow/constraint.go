package flow

import (
	"fmt"

	"github.com/go-drift/flow/pkg/geometry"
)

// Mode tells how a Constraint limits its axis.
type Mode int

const (
	// ModeUnbounded imposes no limit. Size is a fallback hint.
	ModeUnbounded Mode = iota
	// ModeAtMost allows any size up to Size.
	ModeAtMost
	// ModeExact requires exactly Size.
	ModeExact
)

// String returns a human-readable representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeUnbounded:
		return "unbounded"
	case ModeAtMost:
		return "at_most"
	case ModeExact:
		return "exact"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Constraint limits the size along one axis.
type Constraint struct {
	Mode Mode
	Size int
}

// Exact returns a constraint requiring exactly size pixels.
func Exact(size int) Constraint {
	return Constraint{Mode: ModeExact, Size: max(0, size)}
}

// AtMost returns a constraint allowing up to size pixels.
func AtMost(size int) Constraint {
	return Constraint{Mode: ModeAtMost, Size: max(0, size)}
}

// Unbounded returns a constraint without a limit. The fallback is used by
// layouts that must still pick a finite size.
func Unbounded(fallback int) Constraint {
	return Constraint{Mode: ModeUnbounded, Size: max(0, fallback)}
}

// IsExact reports whether c fixes the size.
func (c Constraint) IsExact() bool {
	return c.Mode == ModeExact
}

// Constrain clamps a desired size to c.
func (c Constraint) Constrain(v int) int {
	switch c.Mode {
	case ModeExact:
		return c.Size
	case ModeAtMost:
		return min(max(0, v), c.Size)
	default:
		return max(0, v)
	}
}

func (c Constraint) String() string {
	if c.Mode == ModeUnbounded && c.Size == 0 {
		return "unbounded"
	}
	return fmt.Sprintf("%s(%d)", c.Mode, c.Size)
}

// Requested sizes a child may declare instead of a pixel value.
const (
	MatchParent = -1
	WrapContent = -2
)

// LayoutParams is the size a child asks for along each axis: a pixel value
// >= 0, MatchParent, or WrapContent.
type LayoutParams struct {
	Width  int
	Height int
}

// ChildConstraint derives the constraint for one child axis from the parent
// constraint, the parent's padding on that axis, and the child's request.
func ChildConstraint(parent Constraint, padding, requested int) Constraint {
	size := max(0, parent.Size-padding)

	if requested >= 0 {
		return Exact(requested)
	}

	switch parent.Mode {
	case ModeExact:
		if requested == MatchParent {
			return Exact(size)
		}
		return AtMost(size)
	case ModeAtMost:
		return AtMost(size)
	default:
		return Unbounded(size)
	}
}

// ChildConstraints applies ChildConstraint to both axes.
func ChildConstraints(width, height Constraint, padding geometry.EdgeInsets, lp LayoutParams) (Constraint, Constraint) {
	return ChildConstraint(width, padding.Horizontal(), lp.Width),
		ChildConstraint(height, padding.Vertical(), lp.Height)
}
