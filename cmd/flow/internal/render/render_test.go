package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/go-drift/flow/pkg/flow"
	"github.com/go-drift/flow/pkg/geometry"
	"github.com/go-drift/flow/pkg/label"
)

func layout(t *testing.T) (geometry.Size, *label.Container, []flow.Placement) {
	t.Helper()
	c := &label.Container{
		Pad: geometry.EdgeInsetsAll(4),
		Labels: []*label.Label{
			{Text: "Go", Padding: geometry.EdgeInsetsSymmetric(6, 3)},
			{Text: "Kotlin", Padding: geometry.EdgeInsetsSymmetric(6, 3)},
		},
	}
	a := flow.New(flow.Config{ColumnSpace: 4, RowSpace: 4}, nil)
	size := a.Measure(flow.Exact(80), flow.Unbounded(0), c)
	return size, c, a.Place()
}

func TestDraw(t *testing.T) {
	size, c, placements := layout(t)
	opts := DefaultOptions()

	img, err := Draw(size, c.Pad, placements, opts)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if b := img.Bounds(); b.Dx() != size.Width || b.Dy() != size.Height {
		t.Fatalf("image = %v, want %dx%d", b, size.Width, size.Height)
	}

	want := func(x, y int, c color.Color) {
		t.Helper()
		r1, g1, b1, a1 := img.At(x, y).RGBA()
		r2, g2, b2, a2 := c.RGBA()
		if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
			t.Errorf("pixel (%d,%d) = %v, want %v", x, y, img.At(x, y), c)
		}
	}
	want(0, 0, opts.Background)
	first := placements[0].Bounds
	want(first.Left, first.Top, opts.Border)
	want(first.Left+1, first.Top+1, opts.Child)
	want(size.Width-5, size.Height-5, opts.Content)
}

func TestDrawScaled(t *testing.T) {
	size, c, placements := layout(t)
	opts := DefaultOptions()
	opts.Scale = 3

	img, err := Draw(size, c.Pad, placements, opts)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if b := img.Bounds(); b.Dx() != size.Width*3 || b.Dy() != size.Height*3 {
		t.Errorf("scaled image = %v", b)
	}
}

func TestDrawEmpty(t *testing.T) {
	if _, err := Draw(geometry.Size{Width: 10}, geometry.EdgeInsets{}, nil, DefaultOptions()); err == nil {
		t.Error("expected error for zero height")
	}
}

func TestWritePNG(t *testing.T) {
	size, c, placements := layout(t)
	img, err := Draw(size, c.Pad, placements, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}
