package fractal

import (
	"path/filepath"
	"testing"

	"github.com/BartoszJakis/GraphicsProgramming242574/model"
	"github.com/BartoszJakis/GraphicsProgramming242574/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportSTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sierpinski.stl")
	mesh := model.NewSierpinskiMesh(1)
	require.NoError(t, ExportSTL(path, mesh, 2))

	s, err := stl.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Triangles, 1+16*3)
	assert.Contains(t, string(s.Header[:]), "recursion 2")

	for i, tri := range s.Triangles {
		assert.InDelta(t, 1, tri.Normal.Len(), 1e-5, "triangle %d", i)
	}
}

func TestExportSTLBadPath(t *testing.T) {
	err := ExportSTL(filepath.Join(t.TempDir(), "missing", "x.stl"), model.NewSierpinskiMesh(1), 0)
	assert.Error(t, err)
}
