package renderer

import (
	"github.com/BartoszJakis/GraphicsProgramming242574/model"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// drawContext is the fractal.Drawer of the GL path. It expects program and vertex array of mesh to be bound and
// only ever touches the model uniform and glDrawArrays.
type drawContext struct {
	modelLoc int32
	mesh     *model.Mesh

	calls     int
	triangles int
}

func newDrawContext(p *Program, m *model.Mesh) *drawContext {
	return &drawContext{
		modelLoc: p.Location(model.UniformModel),
		mesh:     m,
	}
}

func (d *drawContext) Draw(faces model.FaceSet, m mgl32.Mat4) {
	first, count := d.mesh.Range(faces)
	if count == 0 {
		return
	}
	gl.UniformMatrix4fv(d.modelLoc, 1, false, &m[0])
	gl.DrawArrays(gl.TRIANGLES, first, count)
	d.calls++
	d.triangles += int(count) / 3
}
