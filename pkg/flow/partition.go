package flow

import "github.com/go-drift/flow/pkg/geometry"

// Item is a measured child within a row.
type Item struct {
	Child Child
	Size  geometry.Size
}

// Row is a run of consecutive visible children that fit the content width.
type Row struct {
	Items []Item
	// Width is the used width including the column gaps.
	Width int
	// Height is the tallest child in the row.
	Height int
}

// RowPartition is the result of a measurement pass.
type RowPartition struct {
	Rows []Row
	// MaxWidth is the content width the rows were broken against.
	MaxWidth int
	// ContentHeight is the stacked row heights plus the row gaps, without padding.
	ContentHeight int
	// Truncated reports whether the row cap dropped trailing children.
	Truncated bool

	padding geometry.EdgeInsets
	config  Config
}

// Len returns the number of children kept by the partition.
func (p *RowPartition) Len() int {
	n := 0
	for _, row := range p.Rows {
		n += len(row.Items)
	}
	return n
}

// Placement is the final position of one child.
type Placement struct {
	Child  Child
	Bounds geometry.Rect
	// Row and Column index the child within the partition.
	Row    int
	Column int
}

// place walks the rows with a cursor starting at the padding origin.
func (p *RowPartition) place() []Placement {
	placements := make([]Placement, 0, p.Len())
	y := p.padding.Top
	for r, row := range p.Rows {
		x := p.padding.Left
		for c, item := range row.Items {
			placements = append(placements, Placement{
				Child:  item.Child,
				Bounds: geometry.RectFromLTWH(x, y, item.Size.Width, item.Size.Height),
				Row:    r,
				Column: c,
			})
			x += item.Size.Width + p.config.ColumnSpace
		}
		y += row.Height + p.config.RowSpace
	}
	return placements
}

func (p *RowPartition) contentHeight(rowSpace int) int {
	total := 0
	for i, row := range p.Rows {
		if i > 0 {
			total += rowSpace
		}
		total += row.Height
	}
	return total
}
