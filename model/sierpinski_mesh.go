package model

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	sqrt3 = float32(math.Sqrt(3))
	sqrt6 = float32(math.Sqrt(6))
)

// NewSierpinskiMesh builds the base tetrahedron of edge length a. Its centroid of the base triangle sits in the
// origin and the apex points along +Z.
//
//	A = (0, 0, a√6/3)      apex
//	B = (0, -2a√3/6, 0)
//	C = (a/2, a√3/6, 0)
//	D = (-a/2, a√3/6, 0)
//
// The three side faces come first (InnerFaces, vertices 0..8) followed by the base CDB (OuterFaces, 9..11).
func NewSierpinskiMesh(a float32) *Mesh {
	pA := mgl32.Vec3{0, 0, a * sqrt6 / 3}
	pB := mgl32.Vec3{0, -2 * a * sqrt3 / 6, 0}
	pC := mgl32.Vec3{a / 2, a * sqrt3 / 6, 0}
	pD := mgl32.Vec3{-a / 2, a * sqrt3 / 6, 0}

	v := []Vertex{ // 12 * 20 = 240 Byte
		// side CDA
		{Pos: pC, TexCoord: mgl32.Vec2{1, 1}}, // [0]
		{Pos: pD, TexCoord: mgl32.Vec2{0, 0}},
		{Pos: pA, TexCoord: mgl32.Vec2{1, 0}},
		// side BAD
		{Pos: pB, TexCoord: mgl32.Vec2{1, 1}}, // [3]
		{Pos: pA, TexCoord: mgl32.Vec2{0, 0}},
		{Pos: pD, TexCoord: mgl32.Vec2{1, 0}},
		// side BCA
		{Pos: pB, TexCoord: mgl32.Vec2{1, 1}}, // [6]
		{Pos: pC, TexCoord: mgl32.Vec2{1, 0}},
		{Pos: pA, TexCoord: mgl32.Vec2{0, 0}},
		// base CDB
		{Pos: pC, TexCoord: mgl32.Vec2{1, 1}}, // [9]
		{Pos: pD, TexCoord: mgl32.Vec2{0, 0}},
		{Pos: pB, TexCoord: mgl32.Vec2{1, 0}},
	}

	mesh, err := NewMesh(v, map[FaceSet]VertexRange{
		InnerFaces: {First: 0, Count: 9},
		OuterFaces: {First: 9, Count: 3},
	})
	if err != nil {
		// the layout above is fixed, so this is a programming error
		panic(err)
	}
	return mesh
}
