package tooling

import (
	"fmt"
	"image"
	"os"

	// decoders register themselves with image.Decode
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes any registered image format into tightly packed RGBA rows. The rows are flipped so that the
// first row is the bottom of the image, which is where OpenGL expects texture coordinate v = 0.
func LoadImage(path string) (*image.RGBA, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode image %s: %w", path, err)
	}
	rgba := ToRGBA(img)
	FlipVertical(rgba)
	return rgba, format, nil
}

// ToRGBA returns img as *image.RGBA starting at (0, 0) with Stride == 4 * width. Images already in that shape are
// returned as they are, everything else is copied.
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		return rgba
	}
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// FlipVertical mirrors the rows of img in place.
func FlipVertical(img *image.RGBA) {
	h := img.Bounds().Dy()
	rowLen := 4 * img.Bounds().Dx()
	tmp := make([]byte, rowLen)
	for top, bottom := 0, h-1; top < bottom; top, bottom = top+1, bottom-1 {
		t := img.Pix[top*img.Stride : top*img.Stride+rowLen]
		b := img.Pix[bottom*img.Stride : bottom*img.Stride+rowLen]
		copy(tmp, t)
		copy(t, b)
		copy(b, tmp)
	}
}
