package model

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	CAM_PERSPECTIVE_PROJECTION  = iota
	CAM_ORTHOGRAPHIC_PROJECTION = iota
)

// The fixed camera the fractal is shown with. The aspect does not follow the window on purpose, the scene was
// framed for 800x600 and keeps that framing in the square window.
const (
	DefaultFov    float32 = 45
	DefaultAspect float32 = 800.0 / 600.0
	DefaultNear   float32 = 0.1
	DefaultFar    float32 = 100
)

var DefaultCamPos = mgl32.Vec3{0, 0, -3}

type Camera struct {
	ProjectionType int

	Fov    float32 // degrees
	Aspect float32
	Near   float32
	Far    float32

	// Pos is the translation applied to the world, (0, 0, -3) moves the scene three units away from the eye.
	Pos mgl32.Vec3
}

func NewCamera(fov float32, near float32, far float32) *Camera {
	return &Camera{
		ProjectionType: CAM_PERSPECTIVE_PROJECTION,
		Fov:            fov,
		Aspect:         DefaultAspect,
		Near:           near,
		Far:            far,
		Pos:            DefaultCamPos,
	}
}

// NewDefaultCamera is the 45° perspective camera, three units back along Z.
func NewDefaultCamera() *Camera {
	return NewCamera(DefaultFov, DefaultNear, DefaultFar)
}

func (c *Camera) Move(v mgl32.Vec3) {
	c.Pos = c.Pos.Add(v)
}

// Reset puts the camera back to its initial position and projection.
func (c *Camera) Reset() {
	c.Pos = DefaultCamPos
	c.ProjectionType = CAM_PERSPECTIVE_PROJECTION
}

func (c *Camera) ToggleProjection() {
	if c.ProjectionType == CAM_PERSPECTIVE_PROJECTION {
		c.ProjectionType = CAM_ORTHOGRAPHIC_PROJECTION
	} else {
		c.ProjectionType = CAM_PERSPECTIVE_PROJECTION
	}
}

func (c *Camera) GetProjection() mgl32.Mat4 {
	switch c.ProjectionType {
	case CAM_PERSPECTIVE_PROJECTION:
		return mgl32.Perspective(c.Fov*degToRad, c.Aspect, c.Near, c.Far)
	case CAM_ORTHOGRAPHIC_PROJECTION:
		// the view volume keeps the viewport aspect so nothing gets stretched
		return mgl32.Ortho(-c.Aspect, c.Aspect, -1, 1, c.Near, c.Far)
	default:
		log.Printf("Failed to select projection type, returning identity.")
		return mgl32.Ident4()
	}
}

func (c *Camera) GetView() mgl32.Mat4 {
	return mgl32.Ident4().Mul4(mgl32.Translate3D(c.Pos.X(), c.Pos.Y(), c.Pos.Z()))
}
