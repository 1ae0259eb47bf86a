package model

import "github.com/go-gl/mathgl/mgl32"

// Uniform names shared with shaders/texture.vert and shaders/texture.frag
const (
	UniformModel        = "model"
	UniformView         = "view"
	UniformProjection   = "projection"
	UniformFractalColor = "fractalColor"
	UniformTexture      = "texture1"
)

// FrameUniforms holds the values uploaded once per frame. The model matrix is not part of it, it changes with every
// draw of the fractal.
type FrameUniforms struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Color      mgl32.Vec4
}

func NewFrameUniforms(c *Camera, s *State) FrameUniforms {
	return FrameUniforms{
		View:       c.GetView(),
		Projection: c.GetProjection(),
		Color:      mgl32.Vec4(s.Color),
	}
}
