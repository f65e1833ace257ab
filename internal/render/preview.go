package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/truetype"
	fb "github.com/gonutz/framebuffer"
	"github.com/hora-app/mascot/internal/render/layout"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// DefaultFBDevice is the framebuffer the preview writes to unless configured otherwise.
const DefaultFBDevice = "/dev/fb0"

const (
	previewMarginPx = 40
	captionBandPx   = 96
	captionSizePt   = 32
)

// FBPreview shows a finished icon on a Linux framebuffer, centered on the
// dark background with a caption line underneath.
type FBPreview struct {
	Device string
	Logger Logger

	face font.Face
}

func NewFBPreview(device string) *FBPreview {
	if device == "" {
		device = DefaultFBDevice
	}
	return &FBPreview{Device: device}
}

// Show composes the preview frame off-screen and blits it to the device.
func (p *FBPreview) Show(icon image.Image, caption string) error {
	dev, err := fb.Open(p.Device)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", p.Device, err)
	}
	defer dev.Close()

	bounds := dev.Bounds()
	if p.Logger != nil {
		p.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}
	frame := ComposePreview(icon, bounds.Dx(), bounds.Dy(), caption, p.captionFace())
	blitToFB(dev, frame)
	return nil
}

func (p *FBPreview) captionFace() font.Face {
	if p.face != nil {
		return p.face
	}
	face, err := CaptionFace(captionSizePt)
	if err != nil && p.Logger != nil {
		p.Logger.Errorf("fb", "truetype parse failed, using basicfont: %v", err)
	}
	p.face = face
	return face
}

// CaptionFace loads Go Regular at the given size. On failure it still returns
// a usable face (basicfont) alongside the error.
func CaptionFace(sizePt float64) (font.Face, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return basicfont.Face7x13, err
	}
	return truetype.NewFace(tt, &truetype.Options{Size: sizePt, DPI: 72, Hinting: font.HintingFull}), nil
}

// ComposePreview lays the icon out on a width×height frame: the largest
// centered square inside the margins, with the caption in a band below it.
// An empty caption or nil face leaves the whole area to the icon.
func ComposePreview(icon image.Image, width, height int, caption string, face font.Face) *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(frame, frame.Bounds(), image.NewUniform(BackgroundDark), image.Point{}, draw.Src)

	area := layout.Inset(frame.Bounds(), previewMarginPx)
	iconArea := area
	var captionArea image.Rectangle
	withCaption := caption != "" && face != nil
	if withCaption {
		iconArea, captionArea = layout.SplitBottom(area, captionBandPx)
	}

	if target := layout.CenterSquare(iconArea); !target.Empty() {
		xdraw.CatmullRom.Scale(frame, target, icon, icon.Bounds(), xdraw.Over, nil)
	}
	if withCaption && !captionArea.Empty() {
		drawCaption(frame, captionArea, caption, face)
	}
	return frame
}

// drawCaption centers text in area, both horizontally and on the line box.
func drawCaption(dst *image.RGBA, area image.Rectangle, text string, face font.Face) {
	drawer := &font.Drawer{Dst: dst, Src: image.NewUniform(GoldLight), Face: face}
	metrics := face.Metrics()
	textWidth := drawer.MeasureString(text).Ceil()
	lineHeight := (metrics.Ascent + metrics.Descent).Ceil()

	x := area.Min.X + (area.Dx()-textWidth)/2
	baseline := area.Min.Y + (area.Dy()-lineHeight)/2 + metrics.Ascent.Ceil()
	drawer.Dot = fixed.P(x, baseline)
	drawer.DrawString(text)
}

// blitToFB copies the frame onto the device pixel by pixel. The frame is
// composed at device size, so no scaling happens here.
func blitToFB(dev *fb.Device, frame *image.RGBA) {
	bounds := dev.Bounds()
	for y := 0; y < bounds.Dy() && y < frame.Bounds().Dy(); y++ {
		for x := 0; x < bounds.Dx() && x < frame.Bounds().Dx(); x++ {
			px := frame.RGBAAt(x, y)
			dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: px.R, G: px.G, B: px.B, A: 0xFF})
		}
	}
}
