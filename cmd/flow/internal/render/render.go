// Package render draws a measured and placed flow layout to an image.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/flow/pkg/flow"
	"github.com/go-drift/flow/pkg/geometry"
)

// Options controls colors and output scale.
type Options struct {
	Background color.Color
	Content    color.Color
	Child      color.Color
	Border     color.Color
	Text       color.Color
	Face       font.Face
	// Scale enlarges the output with nearest-neighbor sampling. Values
	// below 1 are treated as 1.
	Scale int
}

// DefaultOptions returns a light palette with the basic 7x13 face.
func DefaultOptions() Options {
	return Options{
		Background: color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
		Content:    color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Child:      color.RGBA{R: 0xbb, G: 0xde, B: 0xfb, A: 0xff},
		Border:     color.RGBA{R: 0x19, G: 0x76, B: 0xd2, A: 0xff},
		Text:       color.RGBA{R: 0x0d, G: 0x1b, B: 0x2a, A: 0xff},
		Face:       basicfont.Face7x13,
		Scale:      1,
	}
}

// Draw paints the container, its content box, and each placed child.
// Children that implement fmt.Stringer get their text drawn inside.
func Draw(size geometry.Size, padding geometry.EdgeInsets, placements []flow.Placement, opts Options) (*image.RGBA, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("cannot draw an empty layout (%dx%d)", size.Width, size.Height)
	}
	if opts.Face == nil {
		opts.Face = basicfont.Face7x13
	}

	bounds := geometry.Rect{Right: size.Width, Bottom: size.Height}
	img := image.NewRGBA(bounds.Image())
	fill(img, bounds, opts.Background)
	fill(img, padding.Deflate(bounds), opts.Content)

	for _, p := range placements {
		fill(img, p.Bounds, opts.Child)
		stroke(img, p.Bounds, opts.Border)
		if s, ok := p.Child.(fmt.Stringer); ok {
			drawText(img, p.Bounds, s.String(), opts)
		}
	}

	if opts.Scale > 1 {
		return scale(img, opts.Scale), nil
	}
	return img, nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func fill(img *image.RGBA, r geometry.Rect, c color.Color) {
	if r.IsEmpty() || c == nil {
		return
	}
	draw.Draw(img, r.Image(), image.NewUniform(c), image.Point{}, draw.Src)
}

func stroke(img *image.RGBA, r geometry.Rect, c color.Color) {
	if r.IsEmpty() || c == nil {
		return
	}
	fill(img, geometry.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Top + 1}, c)
	fill(img, geometry.Rect{Left: r.Left, Top: r.Bottom - 1, Right: r.Right, Bottom: r.Bottom}, c)
	fill(img, geometry.Rect{Left: r.Left, Top: r.Top, Right: r.Left + 1, Bottom: r.Bottom}, c)
	fill(img, geometry.Rect{Left: r.Right - 1, Top: r.Top, Right: r.Right, Bottom: r.Bottom}, c)
}

// drawText centers one line of text in r, clipped to r.
func drawText(img *image.RGBA, r geometry.Rect, text string, opts Options) {
	if text == "" || r.IsEmpty() {
		return
	}
	clip, ok := img.SubImage(r.Image()).(*image.RGBA)
	if !ok {
		return
	}
	m := opts.Face.Metrics()
	advance := font.MeasureString(opts.Face, text)
	textHeight := m.Ascent + m.Descent

	x := fixed.I(r.Left) + (fixed.I(r.Width())-advance)/2
	y := fixed.I(r.Top) + (fixed.I(r.Height())-textHeight)/2 + m.Ascent

	d := &font.Drawer{
		Dst:  clip,
		Src:  image.NewUniform(opts.Text),
		Face: opts.Face,
		Dot:  fixed.Point26_6{X: x, Y: y},
	}
	d.DrawString(text)
}

func scale(src *image.RGBA, factor int) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
