package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func solidIcon(size int, c color.Color) image.Image {
	icon := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			icon.Set(x, y, c)
		}
	}
	return icon
}

var darkRGBA = color.RGBA{R: 10, G: 10, B: 13, A: 255}

func TestComposePreviewWithCaption(t *testing.T) {
	icon := solidIcon(100, color.RGBA{R: 212, G: 168, B: 83, A: 255})
	frame := ComposePreview(icon, 640, 480, "mascot-hora 1024x1024", basicfont.Face7x13)

	require.Equal(t, image.Rect(0, 0, 640, 480), frame.Bounds())
	assert.Equal(t, darkRGBA, frame.RGBAAt(0, 0))
	assert.Equal(t, darkRGBA, frame.RGBAAt(100, 192), "left of the icon square")

	// inset 40 → 560x400, minus a 96px caption band → 304px square at x=168
	assert.Equal(t, color.RGBA{R: 212, G: 168, B: 83, A: 255}, frame.RGBAAt(320, 192))

	captionPixels := 0
	for y := 344; y < 440; y++ {
		for x := 40; x < 600; x++ {
			if frame.RGBAAt(x, y) != darkRGBA {
				captionPixels++
			}
		}
	}
	assert.Greater(t, captionPixels, 0, "caption drawn in the band under the icon")
}

func TestComposePreviewWithoutCaption(t *testing.T) {
	icon := solidIcon(64, color.RGBA{R: 212, G: 168, B: 83, A: 255})
	frame := ComposePreview(icon, 640, 480, "", nil)

	// the whole 560x400 inset goes to the icon: a 400px square at x=120
	assert.Equal(t, color.RGBA{R: 212, G: 168, B: 83, A: 255}, frame.RGBAAt(320, 420))
	assert.Equal(t, darkRGBA, frame.RGBAAt(100, 240))
}

func TestComposePreviewTinyFrame(t *testing.T) {
	frame := ComposePreview(solidIcon(8, color.White), 30, 30, "x", basicfont.Face7x13)
	assert.Equal(t, image.Rect(0, 0, 30, 30), frame.Bounds())
	assert.Equal(t, darkRGBA, frame.RGBAAt(15, 15))
}

func TestCaptionFace(t *testing.T) {
	face, err := CaptionFace(captionSizePt)
	require.NoError(t, err)
	require.NotNil(t, face)
	assert.Greater(t, face.Metrics().Ascent.Ceil(), 0)
}

func TestNewFBPreviewDefaultsDevice(t *testing.T) {
	assert.Equal(t, DefaultFBDevice, NewFBPreview("").Device)
	assert.Equal(t, "/dev/fb1", NewFBPreview("/dev/fb1").Device)
}

func TestFBPreviewMissingDevice(t *testing.T) {
	p := NewFBPreview(t.TempDir() + "/no-such-fb")
	err := p.Show(solidIcon(4, color.White), "")
	assert.Error(t, err)
}
