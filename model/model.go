package model

import (
	"github.com/BartoszJakis/GraphicsProgramming242574/tooling"
)

// Model couples a Mesh with the GL object names its vertices live in once uploaded. VAO and VBO stay 0 until the
// renderer added the model to its scene.
type Model struct {
	Mesh *Mesh
	Name string
	VAO  uint32
	VBO  uint32
}

func NewModel(m *Mesh, n string) *Model {
	return &Model{
		Name: n,
		Mesh: m,
	}
}

// Uploaded reports whether the model currently owns GPU buffers.
func (m *Model) Uploaded() bool {
	return m.VAO != 0 && m.VBO != 0
}

// GetVBufferSize returns the size required for keeping this model in device memory.
// Mainly used to determine the size argument for gl.BufferData
func (m *Model) GetVBufferSize() int {
	return len(tooling.RawBytes(m.Mesh.Vertices))
}

// GetVBufferBytes returns the raw bytes representing all vertices for this model.
// Mainly used as the data argument of gl.BufferData to move memory from CPU to GPU
func (m *Model) GetVBufferBytes() []byte {
	return tooling.RawBytes(m.Mesh.Vertices)
}
