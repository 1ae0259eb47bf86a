package renderer

import (
	"fmt"
	"log"

	com "github.com/BartoszJakis/GraphicsProgramming242574/common"
	"github.com/BartoszJakis/GraphicsProgramming242574/model"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// These functions are part of the rendering core but are split into their own file for logical separation. Their
// focus is scene handling. Adding removing and adjusting things shown in the 3D world of the renderer.

func (c *Core) DefaultCam() {
	c.Cam = model.NewDefaultCamera()
}

func (c *Core) FindInScene(name string) (*model.Model, error) {
	for i, v := range c.models {
		if v.Name == name {
			return c.models[i], nil
		}
	}
	return nil, fmt.Errorf("model '%s' not found", name)
}

// SetScene replaces whatever is shown with the given model.
func (c *Core) SetScene(m *model.Model) error {
	c.ClearScene()
	return c.AddToScene(m)
}

func (c *Core) AddToScene(m *model.Model) error {
	// Careful, we set references for device memory on an object outside the Core.
	// If the object is dereferenced we will not be able to recover this memory
	if err := c.allocateVBuffer(m); err != nil {
		return err
	}
	c.models = append(c.models, m)
	log.Printf("Added model '%s' to scene, %d vertices in %d Byte", m.Name, len(m.Mesh.Vertices), m.GetVBufferSize())
	return nil
}

func (c *Core) ClearScene() {
	for len(c.models) > 0 {
		c.RemoveFromScene(c.models[0])
	}
}

// RemoveFromScene drops the reference to a model found in the scene.
// Comparison is done naively by name until more sophisticated methods are required.
func (c *Core) RemoveFromScene(m *model.Model) {
	for i, v := range c.models {
		if v.Name == m.Name {
			c.DestroyModelBuffers(v)
			c.models = append(c.models[:i], c.models[i+1:]...)
			return
		}
	}
}

func (c *Core) DestroyModelBuffers(m *model.Model) {
	if m.VBO != 0 {
		gl.DeleteBuffers(1, &m.VBO)
		m.VBO = 0
	}
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
		m.VAO = 0
	}
}

// allocateVBuffer uploads the vertices once and records the attribute layout in a fresh vertex array object.
func (c *Core) allocateVBuffer(m *model.Model) error {
	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	gl.GenBuffers(1, &m.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	data := m.GetVBufferBytes()
	gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(data), gl.STATIC_DRAW)

	stride := model.VertexStride()
	for _, a := range model.VertexAttributes() {
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, gl.FLOAT, false, stride, a.Offset)
		gl.EnableVertexAttribArray(a.Location)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if err := com.GLCheck("allocate vertex buffer"); err != nil {
		c.DestroyModelBuffers(m)
		return fmt.Errorf("model '%s': %w", m.Name, err)
	}
	return nil
}
