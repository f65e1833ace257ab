package render

import (
	"image/color"
	"math"
)

// LerpColor interpolates each channel of c1 towards c2 by t, truncating like
// an integer cast.
func LerpColor(c1, c2 color.NRGBA, t float64) color.NRGBA {
	ch := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return color.NRGBA{R: ch(c1.R, c2.R), G: ch(c1.G, c2.G), B: ch(c1.B, c2.B), A: ch(c1.A, c2.A)}
}

// FalloffAlpha is the glow alpha for a band at t = r/rMax: peak·(1-t)².
func FalloffAlpha(peak uint8, t float64) uint8 {
	t = math.Max(0, math.Min(1, t))
	return uint8(float64(peak) * (1 - t) * (1 - t))
}

// Glow returns a shade function for a soft radial glow of col fading out to rMax.
func Glow(col color.NRGBA, peak uint8) func(t float64) color.NRGBA {
	return func(t float64) color.NRGBA {
		return WithAlpha(col, FalloffAlpha(peak, t))
	}
}

// Blend returns a shade function biased towards from near the center: lerp(from, to, t²).
func Blend(from, to color.NRGBA) func(t float64) color.NRGBA {
	return func(t float64) color.NRGBA {
		return LerpColor(from, to, t*t)
	}
}
