// Package flowtest provides fixtures for testing flow layouts without a UI
// toolkit.
//
// # Quick Start
//
// Build a host from fixed-size boxes, run both passes, and assert on the
// result:
//
//	func TestChips(t *testing.T) {
//	    host := flowtest.NewHost(flowtest.Boxes(40, 20, 3)...)
//	    a := flow.New(flow.Config{ColumnSpace: 10, RowSpace: 5}, nil)
//	    a.Measure(flow.Exact(100), flow.Unbounded(0), host)
//	    snap := flowtest.Capture(a, a.Place())
//	    snap.MatchesFile(t, "testdata/chips.snapshot.json")
//	}
//
// Update snapshots with:
//
//	FLOW_UPDATE_SNAPSHOTS=1 go test ./...
package flowtest
