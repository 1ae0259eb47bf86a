package tooling

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func twoRowImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for x := 0; x < 3; x++ {
		img.Set(x, 0, red)
		img.Set(x, 1, blue)
	}
	return img
}

func TestLoadImageFlipsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, twoRowImage()))
	require.NoError(t, f.Close())

	rgba, format, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, image.Rect(0, 0, 3, 2), rgba.Bounds())
	assert.Equal(t, blue, rgba.RGBAAt(0, 0))
	assert.Equal(t, red, rgba.RGBAAt(2, 1))
	assert.Len(t, rgba.Pix, 3*2*4)
}

func TestLoadImageErrors(t *testing.T) {
	_, _, err := LoadImage(filepath.Join(t.TempDir(), "missing.jpg"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "garbage.jpg")
	require.NoError(t, os.WriteFile(path, []byte("definitely not an image"), 0o644))
	_, _, err = LoadImage(path)
	assert.ErrorIs(t, err, image.ErrFormat)
}

func TestToRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	assert.Same(t, src, ToRGBA(src))

	sub := twoRowImage().SubImage(image.Rect(1, 1, 3, 2))
	rgba := ToRGBA(sub)
	assert.Equal(t, image.Rect(0, 0, 2, 1), rgba.Bounds())
	assert.Equal(t, blue, rgba.RGBAAt(0, 0))
}

func TestFlipVerticalOddHeight(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	img.Pix = []byte{1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3}
	FlipVertical(img)
	assert.Equal(t, []byte{3, 3, 3, 3, 2, 2, 2, 2, 1, 1, 1, 1}, img.Pix)
}
