// Package fractal computes the transforms a Sierpinski tetrahedron is drawn with. It never touches GPU state
// itself, every draw goes through a Drawer the caller prepared.
package fractal

import (
	"math"

	"github.com/BartoszJakis/GraphicsProgramming242574/model"
	"github.com/go-gl/mathgl/mgl32"
)

// Drawer issues one draw of the given faces of the currently bound mesh with m as model matrix. The caller binds
// buffers and program beforehand, a Drawer only uploads the matrix and draws.
type Drawer interface {
	Draw(faces model.FaceSet, m mgl32.Mat4)
}

// Corners are the offsets from the center of a unit tetrahedron to the centers of its four half sized children.
var Corners = [4]mgl32.Vec3{
	{0, -2 * float32(math.Sqrt(3)) / 6, 0},
	{-0.5, float32(math.Sqrt(3)) / 6, 0},
	{0.5, float32(math.Sqrt(3)) / 6, 0},
	{0, 0, float32(math.Sqrt(6)) / 3},
}

// ChildScale is applied once per recursion level.
const ChildScale float32 = 0.5

// Generate walks the subdivision tree below m. The root call (curDepth 0) additionally draws the outer faces
// with the identity matrix, and leaves (curDepth >= maxDepth) draw the inner faces with their accumulated matrix.
// With maxDepth 0 the root is a leaf too and both draws happen.
func Generate(d Drawer, m mgl32.Mat4, maxDepth int, curDepth int) {
	if curDepth == 0 {
		d.Draw(model.OuterFaces, mgl32.Ident4())
	}
	if curDepth >= maxDepth {
		d.Draw(model.InnerFaces, m)
		return
	}
	for _, c := range Corners {
		Generate(d, Translate(Scale(m, ChildScale), c), maxDepth, curDepth+1)
	}
}

// Scale returns m·S(s). Only the three basis columns change, the translation column is kept.
func Scale(m mgl32.Mat4, s float32) mgl32.Mat4 {
	for i := 0; i < 12; i++ {
		m[i] = m[i] * s
	}
	return m
}

// Translate returns m·T(v). Only the translation column changes:
//
//	m[3] = ((m[0]*v.x + m[1]*v.y) + m[2]*v.z) + m[3]
//
// Every product is rounded to float32 before it is summed, so the compiler cannot fuse it into an FMA and the
// result matches the usual glm::translate bit for bit.
func Translate(m mgl32.Mat4, v mgl32.Vec3) mgl32.Mat4 {
	for r := 0; r < 4; r++ {
		x := float32(m[r] * v[0])
		y := float32(m[4+r] * v[1])
		z := float32(m[8+r] * v[2])
		m[12+r] = float32(float32(x+y)+z) + m[12+r]
	}
	return m
}
