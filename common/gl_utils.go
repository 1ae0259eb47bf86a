package common

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// GLCheck drains the GL error flag and reports the first error seen after the named operation.
func GLCheck(op string) error {
	var first uint32
	// bounded, a lost context keeps reporting errors forever
	for i := 0; i < 16; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		if first == 0 {
			first = code
		}
	}
	if first != 0 {
		return fmt.Errorf("%s: GL error 0x%x (%s)", op, first, GLErrorName(first))
	}
	return nil
}

// GLErrorName maps the glGetError codes to their enum names.
func GLErrorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return "unknown"
	}
}
