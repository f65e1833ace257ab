package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/gg"
)

// maxCanvasSide bounds the raster we are willing to allocate.
const maxCanvasSide = 1 << 14

// Pass is a single stroke of a layered (glow) line.
type Pass struct {
	Color color.NRGBA
	Width int
}

// Canvas is a square RGBA raster with the drawing primitives the compositor needs.
// Every primitive alpha-blends over the current pixels.
//
// Vector primitives accumulate on a gg context. RadialGradient fills its own
// layer pixel by pixel, so the canvas keeps an ordered stack of finished layers
// and composites them source-over when the image is requested.
//
// Draw calls do not return errors. The first failure is kept and every later
// call becomes a no-op; check Err once the drawing sequence is done.
type Canvas struct {
	size   int
	layers []image.Image
	dc     *gg.Context
	err    error
}

// NewCanvas allocates a fully transparent size×size canvas.
func NewCanvas(size int) (*Canvas, error) {
	if size <= 0 || size > maxCanvasSide {
		return nil, &AllocationError{Width: size, Height: size, Err: fmt.Errorf("side must be within 1..%d", maxCanvasSide)}
	}
	return &Canvas{size: size}, nil
}

func (c *Canvas) Err() error { return c.err }

func (c *Canvas) Close() error {
	if c.dc == nil {
		return nil
	}
	err := c.dc.Close()
	c.dc = nil
	return err
}

// Image returns a snapshot of the canvas pixels (premultiplied RGBA).
func (c *Canvas) Image() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, c.size, c.size))
	for _, l := range c.layers {
		draw.Draw(out, l.Bounds(), l, l.Bounds().Min, draw.Over)
	}
	if c.dc != nil {
		img := c.dc.Image()
		draw.Draw(out, img.Bounds(), img, img.Bounds().Min, draw.Over)
	}
	return out
}

// pen returns the vector context, starting a fresh transparent one on top of
// the finished layers when needed.
func (c *Canvas) pen() *gg.Context {
	if c.dc == nil {
		c.dc = gg.NewContext(c.size, c.size)
		c.dc.SetLineCap(gg.LineCapButt)
	}
	return c.dc
}

// flush moves the vector context onto the layer stack.
func (c *Canvas) flush() {
	if c.dc == nil {
		return
	}
	c.layers = append(c.layers, c.dc.Image())
	_ = c.Close()
}

// FillCircle blends a filled disc of radius r centered on the pixel at center.
func (c *Canvas) FillCircle(center image.Point, r int, col color.NRGBA) {
	if c.err != nil {
		return
	}
	if r <= 0 {
		c.fail(fmt.Errorf("circle r=%d: %w", r, ErrInvalidGeometry))
		return
	}
	x, y := pixelCenter(center)
	c.pen()
	c.setColor(col)
	c.dc.DrawCircle(x, y, float64(r))
	c.fill("circle")
}

// FillEllipse blends a filled axis-aligned ellipse.
func (c *Canvas) FillEllipse(center image.Point, rx, ry int, col color.NRGBA) {
	if c.err != nil {
		return
	}
	if rx <= 0 || ry <= 0 {
		c.fail(fmt.Errorf("ellipse rx=%d ry=%d: %w", rx, ry, ErrInvalidGeometry))
		return
	}
	x, y := pixelCenter(center)
	c.pen()
	c.setColor(col)
	c.dc.DrawEllipse(x, y, float64(rx), float64(ry))
	c.fill("ellipse")
}

// Ring strokes a circular outline whose outer edge sits at radius r;
// the stroke grows inward by width pixels.
func (c *Canvas) Ring(center image.Point, r, width int, col color.NRGBA) {
	if c.err != nil {
		return
	}
	if width <= 0 || r < width {
		c.fail(fmt.Errorf("ring r=%d width=%d: %w", r, width, ErrInvalidGeometry))
		return
	}
	x, y := pixelCenter(center)
	c.pen()
	c.setColor(col)
	c.dc.SetLineWidth(float64(width))
	c.dc.DrawCircle(x, y, float64(r)-float64(width)/2)
	c.stroke("ring")
}

// Polygon blends a filled polygon through pts.
func (c *Canvas) Polygon(pts []image.Point, col color.NRGBA) {
	if c.err != nil {
		return
	}
	if len(pts) < 3 {
		c.fail(fmt.Errorf("polygon with %d points: %w", len(pts), ErrInvalidGeometry))
		return
	}
	c.pen()
	c.setColor(col)
	c.dc.MoveTo(pixelCenter(pts[0]))
	for _, p := range pts[1:] {
		c.dc.LineTo(pixelCenter(p))
	}
	c.dc.ClosePath()
	c.fill("polygon")
}

// Line strokes a straight segment with flat ends.
func (c *Canvas) Line(p1, p2 image.Point, col color.NRGBA, width int) {
	if c.err != nil {
		return
	}
	if width <= 0 {
		c.fail(fmt.Errorf("line width=%d: %w", width, ErrInvalidGeometry))
		return
	}
	c.pen()
	c.setColor(col)
	c.dc.SetLineWidth(float64(width))
	c.dc.MoveTo(pixelCenter(p1))
	c.dc.LineTo(pixelCenter(p2))
	c.stroke("line")
}

// GlowLine draws the same segment once per pass, in order. Passes are given
// back to front: wide and faint first, narrow and bright last.
func (c *Canvas) GlowLine(p1, p2 image.Point, passes ...Pass) {
	for _, p := range passes {
		c.Line(p1, p2, p.Color, p.Width)
	}
}

// RadialGradient approximates a radial fill with concentric bands step pixels
// wide, from rMax down to the center. shade is called with t = r/rMax for the
// band whose outer edge is r; a pixel at distance d from center takes the
// smallest band with r >= d. Each pixel is blended exactly once, with its
// coverage of the rMax disc applied at the rim.
func (c *Canvas) RadialGradient(center image.Point, rMax, step int, shade func(t float64) color.NRGBA) {
	if c.err != nil {
		return
	}
	if rMax <= 0 || step <= 0 {
		c.fail(fmt.Errorf("radial gradient r=%d step=%d: %w", rMax, step, ErrInvalidGeometry))
		return
	}

	bands := make([]color.NRGBA, (rMax+step-1)/step)
	for k := range bands {
		r := rMax - k*step
		bands[k] = shade(float64(r) / float64(rMax))
	}

	bounds := image.Rect(center.X-rMax-1, center.Y-rMax-1, center.X+rMax+2, center.Y+rMax+2).
		Intersect(image.Rect(0, 0, c.size, c.size))
	if bounds.Empty() {
		return
	}
	layer := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			d := math.Hypot(float64(x-center.X), float64(y-center.Y))
			coverage := math.Min(1, float64(rMax)+0.5-d)
			if coverage <= 0 {
				continue
			}
			k := int(math.Floor((float64(rMax) - d) / float64(step)))
			k = max(0, min(k, len(bands)-1))
			col := bands[k]
			if col.A == 0 {
				continue
			}
			if coverage < 1 {
				col.A = uint8(float64(col.A)*coverage + 0.5)
			}
			layer.SetNRGBA(x, y, col)
		}
	}

	c.flush()
	c.layers = append(c.layers, layer)
}

func (c *Canvas) setColor(col color.NRGBA) {
	c.dc.SetRGBA(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255, float64(col.A)/255)
}

func (c *Canvas) fill(op string) {
	if err := c.dc.Fill(); err != nil {
		c.fail(fmt.Errorf("fill %s: %w", op, err))
	}
}

func (c *Canvas) stroke(op string) {
	if err := c.dc.Stroke(); err != nil {
		c.fail(fmt.Errorf("stroke %s: %w", op, err))
	}
}

func (c *Canvas) fail(err error) {
	if c.err == nil {
		c.err = err
	}
	if c.dc != nil {
		c.dc.ClearPath()
	}
}

// pixelCenter maps an integer pixel coordinate to the center of that pixel.
func pixelCenter(p image.Point) (float64, float64) {
	return float64(p.X) + 0.5, float64(p.Y) + 0.5
}
