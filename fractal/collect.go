package fractal

import (
	"github.com/BartoszJakis/GraphicsProgramming242574/model"
	"github.com/BartoszJakis/GraphicsProgramming242574/stl"
	"github.com/go-gl/mathgl/mgl32"
)

// Collector turns draws into world space triangles by applying each model matrix to the faces of Mesh on the CPU,
// the same work the vertex shader does on the GPU. Triangles go straight into the encoder, nothing is buffered, so
// memory stays flat at any depth.
type Collector struct {
	Mesh    *model.Mesh
	Encoder *stl.Encoder

	err error
}

func NewCollector(m *model.Mesh, enc *stl.Encoder) *Collector {
	return &Collector{Mesh: m, Encoder: enc}
}

// TriangleCount is the number of triangles Generate hands a Collector for the given depth.
func TriangleCount(m *model.Mesh, maxDepth int) int {
	return len(m.Faces(model.OuterFaces))/3 + InnerDraws(maxDepth)*len(m.Faces(model.InnerFaces))/3
}

func (c *Collector) Draw(faces model.FaceSet, m mgl32.Mat4) {
	if c.err != nil {
		return
	}
	v := c.Mesh.Faces(faces)
	for i := 0; i+2 < len(v); i += 3 {
		tri := [3]mgl32.Vec3{
			mgl32.TransformCoordinate(v[i].Pos, m),
			mgl32.TransformCoordinate(v[i+1].Pos, m),
			mgl32.TransformCoordinate(v[i+2].Pos, m),
		}
		if c.err = c.Encoder.Encode(stl.Triangle{Normal: stl.FaceNormal(tri), V: tri}); c.err != nil {
			return
		}
	}
}

// Err is the first encoding error, later draws are dropped once one occurred.
func (c *Collector) Err() error {
	return c.err
}
