package fractal

import (
	"bytes"
	"io"
	"testing"

	"github.com/BartoszJakis/GraphicsProgramming242574/model"
	"github.com/BartoszJakis/GraphicsProgramming242574/stl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect runs the fractal through a Collector into memory and reads the triangles back.
func collect(t *testing.T, mesh *model.Mesh, depth int) []stl.Triangle {
	t.Helper()
	var buf bytes.Buffer
	enc, err := stl.NewEncoder(&buf, Header(depth), TriangleCount(mesh, depth))
	require.NoError(t, err)
	require.NoError(t, Encode(enc, mesh, depth))
	require.NoError(t, enc.Close())

	s, err := stl.Read(&buf)
	require.NoError(t, err)
	return s.Triangles
}

func TestTriangleCount(t *testing.T) {
	mesh := model.NewSierpinskiMesh(1)
	assert.Equal(t, 4, TriangleCount(mesh, 0))
	assert.Equal(t, 1+16*3, TriangleCount(mesh, 2))
	assert.Equal(t, 1+(1<<20)*3, TriangleCount(mesh, 10))
}

func TestCollectorDepthZero(t *testing.T) {
	mesh := model.NewSierpinskiMesh(1)
	tris := collect(t, mesh, 0)

	require.Len(t, tris, 4)
	// outer face comes first and is untransformed
	base := mesh.Faces(model.OuterFaces)
	assert.Equal(t, [3]mgl32.Vec3{base[0].Pos, base[1].Pos, base[2].Pos}, tris[0].V)
	for i, tri := range tris {
		assert.InDelta(t, 1, tri.Normal.Len(), 1e-5, "triangle %d", i)
	}
}

func TestCollectorDepthOne(t *testing.T) {
	mesh := model.NewSierpinskiMesh(1)
	tris := collect(t, mesh, 1)
	require.Len(t, tris, 1+4*3)

	// first child is the half sized tetrahedron moved by half the first corner
	side := mesh.Faces(model.InnerFaces)
	off := Corners[0].Mul(0.5)
	for k := 0; k < 3; k++ {
		exp := side[k].Pos.Mul(0.5).Add(off)
		got := tris[1].V[k]
		for i := range exp {
			assert.InDelta(t, exp[i], got[i], 1e-6, "vertex %d component %d", k, i)
		}
	}
}

func TestCollectorStopsOnEncoderError(t *testing.T) {
	mesh := model.NewSierpinskiMesh(1)
	// room for the outer face only
	enc, err := stl.NewEncoder(io.Discard, Header(1), 1)
	require.NoError(t, err)

	c := NewCollector(mesh, enc)
	Generate(c, mgl32.Ident4(), 1, 0)
	assert.Error(t, c.Err())
	assert.NoError(t, enc.Close())
}

// Streaming keeps allocations independent of the depth, a deep export must not buffer its triangles.
func TestEncodeAllocationsFlat(t *testing.T) {
	mesh := model.NewSierpinskiMesh(1)
	allocs := func(depth int) float64 {
		return testing.AllocsPerRun(3, func() {
			enc, err := stl.NewEncoder(io.Discard, Header(depth), TriangleCount(mesh, depth))
			if err == nil {
				err = Encode(enc, mesh, depth)
			}
			if err != nil {
				t.Fatal(err)
			}
		})
	}
	shallow, deep := allocs(1), allocs(6)
	assert.Less(t, deep, float64(32))
	assert.LessOrEqual(t, deep, shallow+2)
}
