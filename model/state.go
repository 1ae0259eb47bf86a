package model

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinRecursion int32 = 0
	MaxRecursion int32 = 10
	MinAngle     int32 = 1
	MaxAngle     int32 = 360
)

// degToRad is rounded to float32 once, so a degree converts with a single float32 multiply.
const degToRad = float32(math.Pi / 180)

var DefaultFractalColor = [4]float32{2.0, 0.1, 1.4, 1.5}

// State is everything the control panel edits. It lives for the whole run inside the render core and is handed to
// the panel and the frame by pointer, nothing about it is global.
type State struct {
	Recursion int32
	AngleX    int32 // degrees around +Y
	AngleY    int32 // degrees around +X
	Color     [4]float32

	// ExportRequested is raised by the panel and cleared by whoever writes the STL file.
	ExportRequested bool
}

func NewState() *State {
	return &State{
		Recursion: MinRecursion,
		AngleX:    MinAngle,
		AngleY:    MinAngle,
		Color:     DefaultFractalColor,
	}
}

// Clamp pulls every slider value back into its allowed range.
func (s *State) Clamp() {
	s.Recursion = clamp(s.Recursion, MinRecursion, MaxRecursion)
	s.AngleX = clamp(s.AngleX, MinAngle, MaxAngle)
	s.AngleY = clamp(s.AngleY, MinAngle, MaxAngle)
}

// ModelMatrix is the root transform of the fractal, first rotated around +Y by AngleX then around +X by AngleY.
func (s *State) ModelMatrix() mgl32.Mat4 {
	m := mgl32.Ident4()
	m = m.Mul4(mgl32.HomogRotate3D(radians(s.AngleX), mgl32.Vec3{0, 1, 0}))
	m = m.Mul4(mgl32.HomogRotate3D(radians(s.AngleY), mgl32.Vec3{1, 0, 0}))
	return m
}

// RGB exposes the color part the color picker edits. Alpha stays untouched.
func (s *State) RGB() *[3]float32 {
	return (*[3]float32)(s.Color[:3])
}

func radians(deg int32) float32 {
	return float32(deg) * degToRad
}

func clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
