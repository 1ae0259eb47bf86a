package model

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexLayout(t *testing.T) {
	assert.Equal(t, int32(20), VertexStride())

	attr := VertexAttributes()
	require.Len(t, attr, 2)
	assert.Equal(t, Attribute{Location: 0, Size: 3, Offset: 0}, attr[0])
	assert.Equal(t, Attribute{Location: 1, Size: 2, Offset: 12}, attr[1])
}

func TestSierpinskiMeshRanges(t *testing.T) {
	m := NewSierpinskiMesh(1)
	require.Len(t, m.Vertices, 12)

	first, count := m.Range(InnerFaces)
	assert.Equal(t, int32(0), first)
	assert.Equal(t, int32(9), count)

	first, count = m.Range(OuterFaces)
	assert.Equal(t, int32(9), first)
	assert.Equal(t, int32(3), count)

	assert.Len(t, m.Faces(InnerFaces), 9)
	assert.Len(t, m.Faces(OuterFaces), 3)
}

// TestSierpinskiMeshGeometry confirms the base is flat in z=0 and every edge of the tetrahedron has length a
func TestSierpinskiMeshGeometry(t *testing.T) {
	const a = 2
	m := NewSierpinskiMesh(a)

	for i, v := range m.Faces(OuterFaces) {
		if v.Pos.Z() != 0 {
			t.Errorf("base vertex %d not in z=0: %v", i, v.Pos)
		}
	}

	for tri := 0; tri < len(m.Vertices); tri += 3 {
		for e := 0; e < 3; e++ {
			p := m.Vertices[tri+e].Pos
			q := m.Vertices[tri+(e+1)%3].Pos
			l := p.Sub(q).Len()
			if !mgl32.FloatEqualThreshold(l, a, 1e-5) {
				t.Errorf("triangle %d edge %d has length %f, expected %d", tri/3, e, l, a)
			}
		}
	}

	// apex sits above the origin, every side face touches it
	apex := mgl32.Vec3{0, 0, a * sqrt6 / 3}
	for tri := 0; tri < 9; tri += 3 {
		found := false
		for e := 0; e < 3; e++ {
			if m.Vertices[tri+e].Pos == apex {
				found = true
			}
		}
		assert.True(t, found, "side face %d misses the apex", tri/3)
	}
}

func TestNewMeshRejectsBadRanges(t *testing.T) {
	v := make([]Vertex, 6)

	_, err := NewMesh(v, map[FaceSet]VertexRange{InnerFaces: {First: 3, Count: 6}})
	assert.Error(t, err)

	_, err = NewMesh(v, map[FaceSet]VertexRange{InnerFaces: {First: 0, Count: 4}})
	assert.Error(t, err)

	m, err := NewMesh(v, map[FaceSet]VertexRange{InnerFaces: {First: 0, Count: 6}})
	require.NoError(t, err)
	first, count := m.Range(OuterFaces)
	assert.Zero(t, first)
	assert.Zero(t, count)
}

func TestFaceSetString(t *testing.T) {
	assert.Equal(t, "outer", OuterFaces.String())
	assert.Equal(t, "inner", InnerFaces.String())
	assert.Equal(t, "FaceSet(7)", FaceSet(7).String())
}

func TestModelBufferBytes(t *testing.T) {
	mdl := NewModel(NewSierpinskiMesh(1), "sierpinski")
	assert.Equal(t, 12*20, mdl.GetVBufferSize())
	assert.Len(t, mdl.GetVBufferBytes(), mdl.GetVBufferSize())
	assert.False(t, mdl.Uploaded())
}
