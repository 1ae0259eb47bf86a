package renderer

import (
	"fmt"
	"log"

	com "github.com/BartoszJakis/GraphicsProgramming242574/common"
	"github.com/BartoszJakis/GraphicsProgramming242574/tooling"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// LoadTexture decodes the image at path and uploads it as a mip mapped, repeating 2D texture. Only the RGB
// channels end up on the GPU.
func LoadTexture(path string) (uint32, error) {
	img, format, err := tooling.LoadImage(path)
	if err != nil {
		return 0, err
	}
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	if w == 0 || h == 0 {
		return 0, fmt.Errorf("image %s is empty", path)
	}
	log.Printf("Loaded image %s (%s, w: %dp, h:%d) %d Byte", path, format, w, h, len(img.Pix))

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := com.GLCheck("upload texture"); err != nil {
		gl.DeleteTextures(1, &tex)
		return 0, err
	}
	return tex, nil
}
