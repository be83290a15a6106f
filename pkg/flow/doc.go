// Package flow arranges children left-to-right, wrapping to a new row when
// the horizontal space is used up.
//
// Layout runs in two passes. [Arranger.Measure] asks the host to measure each
// visible child and groups the children into rows, producing a [RowPartition]
// and the container size. [Arranger.Place] then walks that partition and
// assigns every child its final bounds.
//
//	arranger := flow.New(flow.Config{ColumnSpace: 10, RowSpace: 5}, display.Static{Width: 1080})
//	size := arranger.Measure(flow.Exact(100), flow.Unbounded(0), host)
//	for _, p := range arranger.Place() {
//	    fmt.Println(p.Bounds)
//	}
//
// # Wrapping
//
// A child joins the current row when the row's used width plus ColumnSpace
// plus the child's width still fits the content width. Otherwise the row is
// closed and the child starts the next one. A child is never split, so one
// wider than the container ends up alone in its row. When such a child comes
// first, it closes the still-empty first row, which keeps height 0 but adds a
// RowSpace gap and counts toward the row cap.
//
// # Row cap
//
// Config.MaxLines limits the number of rows; 0 means unlimited. The child
// whose overflow closes the last allowed row is measured but not placed.
// Children after it are neither measured nor placed.
//
// # Hosts
//
// The package does not depend on any UI toolkit. A [Host] supplies padding,
// the ordered children, and child measurement. Hosts typically derive the
// child constraints with [ChildConstraints].
package flow
