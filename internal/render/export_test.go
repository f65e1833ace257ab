package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLayer() *image.RGBA {
	layer := image.NewRGBA(image.Rect(0, 0, 4, 4))
	layer.SetRGBA(1, 1, color.RGBA{R: 212, G: 168, B: 83, A: 255})
	layer.SetRGBA(2, 2, color.RGBA{R: 106, G: 84, B: 41, A: 128}) // half-transparent gold, premultiplied
	return layer
}

func TestFlattenIsOpaque(t *testing.T) {
	flat := Flatten(testLayer(), BackgroundDark)
	assert.True(t, flat.Opaque())
	assert.Equal(t, color.RGBA{R: 10, G: 10, B: 13, A: 255}, flat.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 212, G: 168, B: 83, A: 255}, flat.RGBAAt(1, 1))

	mixed := flat.RGBAAt(2, 2)
	assert.Greater(t, mixed.R, BackgroundDark.R)
	assert.Less(t, mixed.R, Gold.R)
}

func TestBakeBackgroundKeepsLayerAlpha(t *testing.T) {
	layer := testLayer()
	baked := BakeBackground(layer, BackgroundDark)
	flat := Flatten(layer, BackgroundDark)

	assert.False(t, baked.Opaque())
	assert.Equal(t, color.NRGBA{R: 10, G: 10, B: 13, A: 0}, baked.NRGBAAt(0, 0))
	assert.Equal(t, uint8(255), baked.NRGBAAt(1, 1).A)
	assert.Equal(t, uint8(128), baked.NRGBAAt(2, 2).A)

	f := flat.RGBAAt(2, 2)
	b := baked.NRGBAAt(2, 2)
	assert.Equal(t, [3]uint8{f.R, f.G, f.B}, [3]uint8{b.R, b.G, b.B})
}

func TestSaveWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, Save(Flatten(testLayer(), BackgroundDark), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
}

func TestSaveOverwritesWithSameContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	img := BakeBackground(testLayer(), BackgroundDark)

	require.NoError(t, Save(img, path))
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, Save(img, path))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(first, second))
}

func TestSaveUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	err := Save(testLayer(), path)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "create", ioErr.Op)
	assert.Equal(t, path, ioErr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
