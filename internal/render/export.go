package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// Flatten composites layer over a solid background. Every pixel of the result
// is opaque, so it encodes as an RGB PNG.
func Flatten(layer *image.RGBA, bg color.NRGBA) *image.RGBA {
	b := layer.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(dst, b, layer, b.Min, draw.Over)
	return dst
}

// BakeBackground keeps the colors of Flatten but carries the layer's own
// alpha, so pixels no shape touched stay transparent.
func BakeBackground(layer *image.RGBA, bg color.NRGBA) *image.NRGBA {
	flat := Flatten(layer, bg)
	b := layer.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		src := flat.Pix[flat.PixOffset(b.Min.X, y):]
		alpha := layer.Pix[layer.PixOffset(b.Min.X, y):]
		dst := out.Pix[out.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			i := x * 4
			dst[i+0] = src[i+0]
			dst[i+1] = src[i+1]
			dst[i+2] = src[i+2]
			dst[i+3] = alpha[i+3]
		}
	}
	return out
}

// Save writes img to path as PNG, replacing any existing file.
// A failed encode may leave a truncated file behind.
func Save(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return &IOError{Op: "encode", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	return nil
}
