package fractal

import (
	"fmt"

	"github.com/BartoszJakis/GraphicsProgramming242574/model"
	"github.com/BartoszJakis/GraphicsProgramming242574/stl"
	"github.com/go-gl/mathgl/mgl32"
)

// Encode streams the fractal at the given depth into enc, which has to announce TriangleCount triangles. The root
// is the identity so the output holds the fractal in its own coordinates, not the rotation shown on screen.
func Encode(enc *stl.Encoder, mesh *model.Mesh, maxDepth int) error {
	c := NewCollector(mesh, enc)
	Generate(c, mgl32.Ident4(), maxDepth, 0)
	return c.Err()
}

func Header(maxDepth int) [80]byte {
	return stl.Header(fmt.Sprintf("sierpinski tetrahedron, recursion %d", maxDepth))
}

// ExportSTL writes the fractal at the given depth as binary STL.
func ExportSTL(path string, mesh *model.Mesh, maxDepth int) error {
	err := stl.StreamFile(path, Header(maxDepth), TriangleCount(mesh, maxDepth), func(enc *stl.Encoder) error {
		return Encode(enc, mesh, maxDepth)
	})
	if err != nil {
		return fmt.Errorf("export fractal: %w", err)
	}
	return nil
}
