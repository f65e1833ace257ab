package render

import (
	"fmt"
	"image"
	"math"
	"math/rand/v2"
)

// Logger is the subset of the app logger the compositor reports to.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Owl geometry, all relative to Center.
const (
	owlOffsetY = -25 // the owl sits slightly above the canvas center

	headOffsetY = -185
	headRX      = 148
	headRY      = 125
	earHeight   = 70

	eyeOffsetY  = -10
	eyeSpacing  = 62
	beakOffsetY = 32

	frameRadius    = 478
	particleCount  = 25
	particleMinRad = 360.0
	particleMaxRad = 465.0
)

// layer is one named step of the fixed drawing sequence.
type layer struct {
	name string
	draw func(*Canvas)
}

// Compositor renders the owl mascot onto a fresh CanvasSize canvas.
type Compositor struct {
	Logger Logger
}

func NewCompositor() *Compositor {
	return &Compositor{}
}

// Render runs every layer in order and returns the finished layer image.
// seed drives the particle scatter; the same seed gives the same pixels.
// Pixels nothing was drawn on stay fully transparent; see Flatten and
// BakeBackground for the exported variants.
func (o *Compositor) Render(seed uint64) (*image.RGBA, error) {
	canvas, err := NewCanvas(CanvasSize)
	if err != nil {
		return nil, err
	}
	defer canvas.Close()

	rng := rand.New(rand.NewPCG(seed, seed))
	for _, l := range layers(rng) {
		l.draw(canvas)
		if err := canvas.Err(); err != nil {
			o.errorf("layer %s failed: %v", l.name, err)
			return nil, fmt.Errorf("draw %s: %w", l.name, err)
		}
		o.infof("layer %s done", l.name)
	}
	return canvas.Image(), nil
}

func layers(rng *rand.Rand) []layer {
	return []layer{
		{"background", drawBackground},
		{"body", drawBody},
		{"head", drawHead},
		{"facial disc", drawFacialDisc},
		{"eyes", drawEyes},
		{"beak", drawBeak},
		{"wings", drawWings},
		{"chest glow", drawChestGlow},
		{"chest pattern", drawChestPattern},
		{"head pattern", drawHeadPattern},
		{"feet", drawFeet},
		{"frame", drawFrame},
		{"particles", func(c *Canvas) { drawParticles(c, rng) }},
	}
}

func (o *Compositor) infof(format string, args ...interface{}) {
	if o.Logger != nil {
		o.Logger.Infof("compositor", format, args...)
	}
}

func (o *Compositor) errorf(format string, args ...interface{}) {
	if o.Logger != nil {
		o.Logger.Errorf("compositor", format, args...)
	}
}

// Anchors shared between layers.
var (
	owlCenter = Center.Add(image.Pt(0, owlOffsetY))
	headAt    = owlCenter.Add(image.Pt(0, headOffsetY))
	chestTop  = owlCenter.Add(image.Pt(0, 15))
	chestBot  = owlCenter.Add(image.Pt(0, 250))
)

func at(origin image.Point, dx, dy int) image.Point { return origin.Add(image.Pt(dx, dy)) }

func drawBackground(c *Canvas) {
	c.RadialGradient(at(Center, 0, -20), 440, 2, Glow(Amber, 25))
}

func drawBody(c *Canvas) {
	c.FillEllipse(at(owlCenter, 0, 160), 160, 130, BodyDark) // lower body
	c.FillEllipse(at(owlCenter, 0, 70), 155, 110, BodyDark)  // torso
	c.FillEllipse(at(owlCenter, 0, -30), 130, 90, BodyDark)  // upper chest
}

func drawHead(c *Canvas) {
	c.FillEllipse(headAt, headRX, headRY, BodyDark)

	crown := headAt.Y - headRY
	for _, side := range []int{-1, 1} {
		outer := image.Pt(Center.X+side*105, crown+25)
		tip := image.Pt(Center.X+side*95, crown-earHeight)
		inner := image.Pt(Center.X+side*65, crown+15)
		c.Polygon([]image.Point{outer, tip, inner}, BodyDark)
		c.Line(outer, tip, WithAlpha(Gold, 70), 2)
	}
}

func drawFacialDisc(c *Canvas) {
	c.FillEllipse(at(headAt, 0, -10), 100, 65, FaceDisc)
	// V notch at the top of the disc
	c.Polygon([]image.Point{
		at(headAt, -15, -80),
		at(headAt, 0, -55),
		at(headAt, 15, -80),
		at(headAt, 0, -90),
	}, BodyDark)
}

func drawEyes(c *Canvas) {
	for _, side := range []int{-1, 1} {
		eye := at(headAt, side*eyeSpacing, eyeOffsetY)

		c.Ring(eye, 40, 3, Gold)
		c.FillCircle(eye, 38, EyeBlack)
		c.RadialGradient(eye, 30, 1, Blend(GoldLight, GoldDark))
		c.FillCircle(eye, 12, EyeBlack)
		c.Ring(eye, 12, 1, WithAlpha(Gold, 40))

		c.FillCircle(at(eye, -9, -9), 5, GoldPale)
		c.FillCircle(at(eye, 5, 5), 2, WithAlpha(GoldLight, 100))
	}
}

func drawBeak(c *Canvas) {
	beak := at(headAt, 0, beakOffsetY)
	c.Polygon([]image.Point{at(beak, -11, 0), at(beak, 11, 0), at(beak, 0, 22)}, GoldWarm)
	c.Line(at(beak, -10, 1), at(beak, 0, 20), GoldLight, 1)
}

// wingOutline lists the wing silhouette for one side, from the shoulder down
// to the tip and back up along the body.
func wingOutline(side int) []image.Point {
	w := func(dx, dy int) image.Point { return at(owlCenter, side*dx, dy) }
	return []image.Point{
		w(150, -50),
		w(175, 10),
		w(200, 80),
		w(205, 160),
		w(185, 220),
		w(155, 260),
		w(135, 230),
		w(130, 160),
		w(135, 60),
	}
}

func drawWings(c *Canvas) {
	for _, side := range []int{-1, 1} {
		pts := wingOutline(side)
		c.Polygon(pts, WingDark)

		for i := 0; i < 5; i++ {
			c.Line(pts[i], pts[i+1], WithAlpha(Gold, 55), 2)
		}
		c.Line(pts[4], pts[5], WithAlpha(Gold, 70), 2)

		for j, frac := range []float64{0.35, 0.55, 0.75} {
			y := int(float64(owlCenter.Y+20) + frac*200)
			inner := image.Pt(Center.X+side*138, y)
			outer := image.Pt(Center.X+side*(195-j*12), y+12)
			c.Line(inner, outer, WithAlpha(Gold, 30), 1)
		}
	}
}

// chestGlowCenter is where the warm glow behind the chest pattern peaks.
func chestGlowCenter() image.Point {
	return image.Pt(Center.X, (chestTop.Y+chestBot.Y)/2-10)
}

func drawChestGlow(c *Canvas) {
	c.RadialGradient(chestGlowCenter(), 130, 2, Glow(Gold, 12))
}

func drawChestPattern(c *Canvas) {
	g := ChestGraph(chestTop)
	for _, e := range g.Edges {
		a, b := g.Endpoints(e)
		alpha := EdgeAlpha(a, b)
		c.GlowLine(a, b,
			Pass{WithAlpha(Gold, alpha/3), 7},
			Pass{WithAlpha(Gold, alpha/2), 4},
			Pass{WithAlpha(Gold, alpha), 2},
			Pass{WithAlpha(GoldLight, alpha/2), 1},
		)
	}
	for i, n := range g.Nodes {
		t := TierFor(i)
		c.FillCircle(n, t.OuterRadius, WithAlpha(Gold, t.OuterAlpha))
		c.FillCircle(n, t.CoreRadius, WithAlpha(Gold, t.CoreAlpha))
		c.FillCircle(n, t.HighlightRadius, GoldLight)
	}
}

func drawHeadPattern(c *Canvas) {
	g := HeadGraph(headAt)
	for _, e := range g.Edges {
		a, b := g.Endpoints(e)
		c.GlowLine(a, b,
			Pass{WithAlpha(Gold, 30), 5},
			Pass{WithAlpha(Gold, 70), 2},
			Pass{WithAlpha(GoldLight, 35), 1},
		)
	}
	for _, n := range g.Nodes {
		c.FillCircle(n, 5, WithAlpha(Gold, 50))
		c.FillCircle(n, 3, WithAlpha(Gold, 160))
		c.FillCircle(n, 1, GoldLight)
	}
}

func drawFeet(c *Canvas) {
	y := owlCenter.Y + 280
	for _, side := range []int{-1, 1} {
		x := Center.X + side*45
		for _, dx := range []int{-10, 0, 10} {
			c.Line(image.Pt(x+dx, y), image.Pt(x+dx+side*4, y+16), WithAlpha(Gold, 80), 2)
		}
	}
}

func drawFrame(c *Canvas) {
	c.Ring(Center, frameRadius, 1, WithAlpha(Gold, 40))
}

// drawParticles scatters faint gold dust in the annulus between the owl and
// the frame. It is the only layer that consumes the generator.
func drawParticles(c *Canvas, rng *rand.Rand) {
	sizes := [...]int{1, 1, 2}
	for i := 0; i < particleCount; i++ {
		angle := rng.Float64() * 2 * math.Pi
		dist := particleMinRad + rng.Float64()*(particleMaxRad-particleMinRad)
		p := image.Pt(
			int(float64(Center.X)+dist*math.Cos(angle)),
			int(float64(Center.Y)+dist*math.Sin(angle)),
		)
		size := sizes[rng.IntN(len(sizes))]
		alpha := uint8(15 + rng.IntN(31))
		c.FillCircle(p, size, WithAlpha(Gold, alpha))
	}
}
