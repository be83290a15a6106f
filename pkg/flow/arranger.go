package flow

import (
	stderrors "errors"

	"github.com/go-drift/flow/pkg/display"
	"github.com/go-drift/flow/pkg/errors"
	"github.com/go-drift/flow/pkg/geometry"
)

// ErrNotMeasured is wrapped by the panic raised when Place runs without a
// current measurement.
var ErrNotMeasured = stderrors.New("place called before measure")

// Child is a participant in the layout.
type Child interface {
	// Visible reports whether the child takes part in layout. Invisible
	// children take no space and receive no placement.
	Visible() bool
}

// Positioned is implemented by children that want their bounds pushed to
// them by Place.
type Positioned interface {
	SetBounds(bounds geometry.Rect)
}

// Host is the container side of the layout.
type Host interface {
	// Padding returns the insets around the content.
	Padding() geometry.EdgeInsets
	// Children returns the children in layout order.
	Children() []Child
	// MeasureChild measures child under the container's own constraints.
	// Implementations usually narrow them with ChildConstraints first.
	MeasureChild(child Child, width, height Constraint) geometry.Size
}

// Config holds the spacing parameters of a layout.
type Config struct {
	// ColumnSpace is the gap between children in a row.
	ColumnSpace int
	// RowSpace is the gap between rows.
	RowSpace int
	// MaxLines caps the number of rows. 0 means unlimited.
	MaxLines int
}

func (c Config) normalized() Config {
	return Config{
		ColumnSpace: max(0, c.ColumnSpace),
		RowSpace:    max(0, c.RowSpace),
		MaxLines:    max(0, c.MaxLines),
	}
}

// Arranger runs measure and place passes for one container.
//
// An Arranger is not safe for concurrent use. The host's layout pass is
// expected to serialize calls.
type Arranger struct {
	config    Config
	screen    display.Provider
	partition *RowPartition
	size      geometry.Size
}

// New creates an Arranger. Negative spacing values are treated as 0.
// screen supplies the fallback width when the width constraint is not exact;
// when nil, the constraint's own fallback size is used.
func New(config Config, screen display.Provider) *Arranger {
	return &Arranger{config: config.normalized(), screen: screen}
}

// Config returns the current spacing parameters.
func (a *Arranger) Config() Config {
	return a.config
}

// SetConfig replaces the spacing parameters and drops the current measurement.
func (a *Arranger) SetConfig(config Config) {
	a.config = config.normalized()
	a.Invalidate()
}

// SetColumnSpace sets the gap between children in a row.
func (a *Arranger) SetColumnSpace(px int) {
	a.config.ColumnSpace = max(0, px)
	a.Invalidate()
}

// SetRowSpace sets the gap between rows.
func (a *Arranger) SetRowSpace(px int) {
	a.config.RowSpace = max(0, px)
	a.Invalidate()
}

// SetMaxLines sets the row cap. 0 means unlimited.
func (a *Arranger) SetMaxLines(n int) {
	a.config.MaxLines = max(0, n)
	a.Invalidate()
}

// Invalidate drops the current measurement. Hosts call it when their
// children change; Place then faults until Measure runs again.
func (a *Arranger) Invalidate() {
	a.partition = nil
	a.size = geometry.Size{}
}

// Partition returns the rows from the last Measure, or nil if there is no
// current measurement.
func (a *Arranger) Partition() *RowPartition {
	return a.partition
}

// Size returns the size computed by the last Measure.
func (a *Arranger) Size() geometry.Size {
	return a.size
}

// Measure measures the visible children, breaks them into rows, and returns
// the container size. The row partition is rebuilt on every call.
func (a *Arranger) Measure(width, height Constraint, host Host) geometry.Size {
	a.Invalidate()

	padding := host.Padding()
	maxWidth := a.resolveWidth(width)
	p := &RowPartition{
		MaxWidth: maxWidth,
		padding:  padding,
		config:   a.config,
	}

	var (
		row  Row
		used int
	)
	for _, child := range host.Children() {
		if child == nil || !child.Visible() {
			continue
		}
		size := host.MeasureChild(child, width, height)

		gap := 0
		if len(row.Items) > 0 {
			gap = a.config.ColumnSpace
		}
		if used+gap+size.Width <= maxWidth {
			used += gap + size.Width
			row.Items = append(row.Items, Item{Child: child, Size: size})
			row.Height = max(row.Height, size.Height)
			continue
		}

		row.Width = used
		p.Rows = append(p.Rows, row)
		if a.config.MaxLines > 0 && len(p.Rows) == a.config.MaxLines {
			p.Truncated = true
			break
		}
		row = Row{Items: []Item{{Child: child, Size: size}}, Height: size.Height}
		used = size.Width
	}
	if !p.Truncated && len(row.Items) > 0 {
		row.Width = used
		p.Rows = append(p.Rows, row)
	}
	p.ContentHeight = p.contentHeight(a.config.RowSpace)

	finalHeight := p.ContentHeight + padding.Vertical()
	if height.IsExact() {
		finalHeight = height.Size
	}

	a.partition = p
	a.size = geometry.Size{Width: maxWidth, Height: finalHeight}
	return a.size
}

// Place assigns the final bounds of every child kept by the last Measure,
// in row order. Children implementing Positioned also receive their bounds.
//
// Place panics with a *errors.FlowError wrapping ErrNotMeasured if there is
// no current measurement.
func (a *Arranger) Place() []Placement {
	if a.partition == nil {
		panic(&errors.FlowError{
			Op:   "flow.Place",
			Kind: errors.KindPrecondition,
			Err:  ErrNotMeasured,
		})
	}
	placements := a.partition.place()
	for _, p := range placements {
		if positioned, ok := p.Child.(Positioned); ok {
			positioned.SetBounds(p.Bounds)
		}
	}
	return placements
}

func (a *Arranger) resolveWidth(width Constraint) int {
	if width.IsExact() {
		return width.Size
	}
	if a.screen != nil {
		return a.screen.ScreenMetrics().Width
	}
	return width.Size
}
