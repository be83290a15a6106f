package flowtest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/flow/pkg/flow"
	"github.com/go-drift/flow/pkg/geometry"
)

func threeChildArranger() (*flow.Arranger, []flow.Placement) {
	a := flow.New(flow.Config{ColumnSpace: 10, RowSpace: 5}, nil)
	a.Measure(flow.Exact(100), flow.Unbounded(0), NewHost(Boxes(40, 20, 3)...))
	return a, a.Place()
}

func TestSnapshot_MatchesGolden(t *testing.T) {
	a, placements := threeChildArranger()
	Capture(a, placements).MatchesFile(t, filepath.Join("testdata", "three_children.snapshot.json"))
}

func TestSnapshot_DiffEqual(t *testing.T) {
	a, placements := threeChildArranger()
	if diff := Capture(a, placements).Diff(Capture(a, placements)); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}
}

func TestSnapshot_DiffDetectsMove(t *testing.T) {
	a, placements := threeChildArranger()
	base := Capture(a, placements)
	moved := Capture(a, placements)
	moved.Placements[2].Bounds[1] = 30

	diff := moved.Diff(base)
	if diff == "" {
		t.Fatal("expected a diff")
	}
	if !strings.Contains(diff, "-        25,") || !strings.Contains(diff, "+        30,") {
		t.Errorf("diff should show the moved coordinate, got:\n%s", diff)
	}
}

func TestSnapshot_UpdateFileRoundTrip(t *testing.T) {
	a, placements := threeChildArranger()
	snap := Capture(a, placements)
	path := filepath.Join(t.TempDir(), "nested", "snap.json")
	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}
	loaded, err := loadSnapshot(path)
	if err != nil {
		t.Fatalf("loadSnapshot: %v", err)
	}
	if diff := snap.Diff(loaded); diff != "" {
		t.Errorf("round trip changed the snapshot:\n%s", diff)
	}
}

func TestSnapshot_MissingFileFails(t *testing.T) {
	a, placements := threeChildArranger()
	ft := &fakeT{name: "TestMissing"}
	os.Unsetenv("FLOW_UPDATE_SNAPSHOTS")
	Capture(a, placements).MatchesFile(ft, filepath.Join(t.TempDir(), "absent.json"))
	if !ft.fatal || !strings.Contains(ft.msg, "snapshot file missing") {
		t.Errorf("expected missing-file failure, got fatal=%v msg=%q", ft.fatal, ft.msg)
	}
}

func TestCapture_UnnamedChildID(t *testing.T) {
	a := flow.New(flow.Config{}, nil)
	a.Measure(flow.Exact(50), flow.Unbounded(0), &plainHost{})
	snap := Capture(a, a.Place())
	if len(snap.Placements) != 1 {
		t.Fatalf("placements = %d, want 1", len(snap.Placements))
	}
	if got := snap.Placements[0].ID; got != "flowtest.plainChild#0" {
		t.Errorf("ID = %q", got)
	}
}

func TestHost_MeasureChildUsesConstraints(t *testing.T) {
	box := &Box{Name: "m", Width: flow.MatchParent, Height: flow.WrapContent, Intrinsic: geometry.Size{Width: 30, Height: 500}}
	h := &Host{Pad: geometry.EdgeInsetsAll(5), Boxes: []*Box{box}}

	got := h.MeasureChild(box, flow.Exact(100), flow.AtMost(60))
	if got != (geometry.Size{Width: 90, Height: 50}) {
		t.Errorf("MeasureChild = %+v, want 90x50", got)
	}
	if !h.Measured(box) {
		t.Error("call was not recorded")
	}
	h.Reset()
	if h.Measured(box) {
		t.Error("Reset should clear recorded calls")
	}
}

type plainChild struct{}

func (plainChild) Visible() bool { return true }

type plainHost struct{}

func (*plainHost) Padding() geometry.EdgeInsets { return geometry.EdgeInsets{} }
func (*plainHost) Children() []flow.Child { return []flow.Child{plainChild{}} }
func (*plainHost) MeasureChild(flow.Child, flow.Constraint, flow.Constraint) geometry.Size {
	return geometry.Size{Width: 10, Height: 10}
}

type fakeT struct {
	name  string
	fatal bool
	msg   string
}

func (f *fakeT) Helper() {}
func (f *fakeT) Name() string { return f.name }
func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatal = true
	f.msg = fmt.Sprintf(format, args...)
}
func (f *fakeT) Errorf(format string, args ...any) {
	f.msg = fmt.Sprintf(format, args...)
}
