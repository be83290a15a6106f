package flowtest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/flow/pkg/flow"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the measured size, the row heights, and every placement.
type Snapshot struct {
	Size       [2]int          `json:"size"`
	RowHeights []int           `json:"rowHeights"`
	Truncated  bool            `json:"truncated,omitempty"`
	Placements []PlacementNode `json:"placements"`
}

// PlacementNode is one serialized placement.
type PlacementNode struct {
	ID     string `json:"id"`
	Row    int    `json:"row"`
	Column int    `json:"column"`
	// Bounds is left, top, right, bottom.
	Bounds [4]int `json:"bounds"`
}

// Capture builds a snapshot from an arranger's last measurement and the
// placements returned by its Place call.
func Capture(a *flow.Arranger, placements []flow.Placement) *Snapshot {
	size := a.Size()
	snap := &Snapshot{
		Size:       [2]int{size.Width, size.Height},
		RowHeights: []int{},
		Placements: []PlacementNode{},
	}
	if p := a.Partition(); p != nil {
		for _, row := range p.Rows {
			snap.RowHeights = append(snap.RowHeights, row.Height)
		}
		snap.Truncated = p.Truncated
	}
	for i, pl := range placements {
		b := pl.Bounds
		snap.Placements = append(snap.Placements, PlacementNode{
			ID:     childID(pl.Child, i),
			Row:    pl.Row,
			Column: pl.Column,
			Bounds: [4]int{b.Left, b.Top, b.Right, b.Bottom},
		})
	}
	return snap
}

func childID(child flow.Child, index int) string {
	if s, ok := child.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T#%d", child, index)
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When FLOW_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("FLOW_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: FLOW_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: FLOW_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return lineDiff(string(b), string(a))
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func lineDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := 0; i < max(len(expectedLines), len(actualLines)); i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
