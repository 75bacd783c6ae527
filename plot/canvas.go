// Package plot renders Venn diagram patches, labels and sample points to an
// image so failed verifications can be inspected.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/gogpu/venn"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Canvas collects scatter markers for a diagram and renders both.
// It implements venntest.Plotter.
type Canvas struct {
	diagram venn.Diagram
	regions []venn.RegionID
	markers []venn.Point
	opts    options
}

// New creates a canvas drawing the given regions of d.
func New(d venn.Diagram, regions []venn.RegionID, opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Canvas{
		diagram: d,
		regions: regions,
		opts:    o,
	}
}

// Scatter records a marker at p.
func (c *Canvas) Scatter(p venn.Point) {
	c.markers = append(c.markers, p)
}

// Markers returns the recorded markers in order.
func (c *Canvas) Markers() []venn.Point {
	return c.markers
}

// viewport maps diagram coordinates to pixels with a uniform scale and the
// y axis pointing up.
type viewport struct {
	scale  float64
	offset venn.Point
	height float64
}

func (v viewport) project(p venn.Point) (float32, float32) {
	x := (p.X - v.offset.X) * v.scale
	y := v.height - (p.Y-v.offset.Y)*v.scale
	return float32(x), float32(y)
}

func (c *Canvas) bounds() venn.Rect {
	var bb venn.Rect
	first := true
	add := func(r venn.Rect) {
		if r.Empty() {
			return
		}
		if first {
			bb, first = r, false
			return
		}
		bb = bb.Union(r)
	}
	for _, id := range c.regions {
		add(c.diagram.Patch(id).BoundingBox())
		if lbl := c.diagram.Label(id); lbl != nil {
			p := lbl.Position()
			add(venn.Rect{Min: p, Max: p})
		}
	}
	for _, p := range c.markers {
		add(venn.Rect{Min: p, Max: p})
	}
	if first {
		return venn.Rect{Min: venn.Pt(-1, -1), Max: venn.Pt(1, 1)}
	}
	if bb.Width() == 0 {
		bb.Min.X--
		bb.Max.X++
	}
	if bb.Height() == 0 {
		bb.Min.Y--
		bb.Max.Y++
	}
	return bb
}

func (c *Canvas) viewport() viewport {
	w, h := float64(c.opts.width), float64(c.opts.height)
	bb := c.bounds()

	bw, bh := bb.Width(), bb.Height()
	usable := 1 - 2*c.opts.padding
	scale := math.Min(w*usable/bw, h*usable/bh)

	// Center the content.
	offset := venn.Pt(
		bb.Min.X-(w/scale-bw)/2,
		bb.Min.Y-(h/scale-bh)/2,
	)
	return viewport{scale: scale, offset: offset, height: h}
}

// Render draws the diagram and markers into a new image.
func (c *Canvas) Render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.opts.width, c.opts.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(c.opts.background), image.Point{}, draw.Src)

	vp := c.viewport()
	for i, id := range c.regions {
		outline := c.diagram.Patch(id).Outline()
		if outline == nil {
			continue
		}
		fill := c.opts.palette[i%len(c.opts.palette)]
		c.fillPath(img, vp, outline, fill)
	}

	for _, p := range c.markers {
		marker := venn.NewPath()
		marker.Circle(p.X, p.Y, c.opts.markerRadius/vp.scale)
		c.fillPath(img, vp, marker, c.opts.markerColor)
	}

	for _, id := range c.regions {
		lbl := c.diagram.Label(id)
		if lbl == nil {
			continue
		}
		text := string(id)
		if tl, ok := lbl.(venn.TextLabel); ok && tl.Text != "" {
			text = tl.Text
		}
		drawLabel(img, vp, lbl.Position(), text)
	}
	return img
}

func (c *Canvas) fillPath(dst draw.Image, vp viewport, path *venn.Path, col color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	tol := 0.25 / vp.scale
	for _, poly := range path.Flatten(tol) {
		if len(poly) < 3 {
			continue
		}
		x, y := vp.project(poly[0])
		z.MoveTo(x, y)
		for _, p := range poly[1:] {
			x, y = vp.project(p)
			z.LineTo(x, y)
		}
		z.ClosePath()
	}
	z.Draw(dst, b, image.NewUniform(col), image.Point{})
}

func drawLabel(dst draw.Image, vp viewport, at venn.Point, text string) {
	face := basicfont.Face7x13
	x, y := vp.project(at)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: face,
	}
	// Center the text on the anchor like a text label would be.
	width := d.MeasureString(text)
	ascent := face.Metrics().Ascent
	d.Dot = fixed.Point26_6{
		X: fixed.I(int(x)) - width/2,
		Y: fixed.I(int(y)) + ascent/2,
	}
	d.DrawString(text)
}

// EncodePNG renders the canvas and writes it as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.Render())
}

// SavePNG renders the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("plot: encode %s: %w", path, err)
	}
	return f.Close()
}
