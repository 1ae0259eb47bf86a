package renderer

import (
	"github.com/BartoszJakis/GraphicsProgramming242574/fractal"
)

// ExportSTL writes the named scene model at the current recursion depth to the configured export path.
func (c *Core) ExportSTL(name string) error {
	m, err := c.FindInScene(name)
	if err != nil {
		return err
	}
	return fractal.ExportSTL(c.cfg.ExportPath, m.Mesh, int(c.State.Recursion))
}
