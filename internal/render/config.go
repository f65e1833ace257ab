package render

import (
	"image"
	"image/color"
)

// Canvas geometry. The icon is square; every coordinate is derived from Center.
const CanvasSize = 1024

// DefaultSeed drives the ambient particle scatter when no seed is configured.
const DefaultSeed uint64 = 42

var Center = image.Pt(CanvasSize/2, CanvasSize/2)

// Palette: #0A0A0D background, #D4A853 gold.
// Straight (non-premultiplied) alpha.
var (
	BackgroundDark = color.NRGBA{R: 10, G: 10, B: 13, A: 255}
	Gold           = color.NRGBA{R: 212, G: 168, B: 83, A: 255}
	GoldDark       = color.NRGBA{R: 170, G: 125, B: 42, A: 255}
	GoldWarm       = color.NRGBA{R: 196, G: 148, B: 42, A: 255}
	GoldLight      = color.NRGBA{R: 240, G: 210, B: 150, A: 255}
	GoldPale       = color.NRGBA{R: 255, G: 235, B: 190, A: 255}
	BodyDark       = color.NRGBA{R: 30, G: 30, B: 36, A: 255}
	WingDark       = color.NRGBA{R: 22, G: 22, B: 28, A: 255}
	FaceDisc       = color.NRGBA{R: 40, G: 40, B: 48, A: 255}
	EyeBlack       = color.NRGBA{R: 6, G: 6, B: 8, A: 255}

	// Warm amber used by the background glow.
	Amber = color.NRGBA{R: 180, G: 140, B: 60, A: 255}
)

// WithAlpha returns c with its alpha channel replaced.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
