package model

import "fmt"

// FaceSet selects a contiguous run of triangles inside a Mesh.
type FaceSet int

const (
	// OuterFaces is drawn once per frame at the recursion root.
	OuterFaces FaceSet = iota
	// InnerFaces is drawn at every recursion leaf.
	InnerFaces
)

func (f FaceSet) String() string {
	switch f {
	case OuterFaces:
		return "outer"
	case InnerFaces:
		return "inner"
	default:
		return fmt.Sprintf("FaceSet(%d)", int(f))
	}
}

// VertexRange is a [First, First+Count) slice of the vertex buffer, as glDrawArrays takes it.
type VertexRange struct {
	First int32
	Count int32
}

type Mesh struct {
	Vertices []Vertex
	ranges   map[FaceSet]VertexRange
}

// NewMesh creates a non-indexed triangle mesh. Every range has to lie inside v and cover whole triangles.
func NewMesh(v []Vertex, ranges map[FaceSet]VertexRange) (*Mesh, error) {
	for f, r := range ranges {
		if r.First < 0 || r.Count < 0 || int(r.First+r.Count) > len(v) {
			return nil, fmt.Errorf("range %v (%d, %d) outside of %d vertices", f, r.First, r.Count, len(v))
		}
		if r.Count%3 != 0 {
			return nil, fmt.Errorf("range %v holds %d vertices, not a multiple of 3", f, r.Count)
		}
	}
	return &Mesh{
		Vertices: v,
		ranges:   ranges,
	}, nil
}

// Range reports first vertex and vertex count of the given faces, (0, 0) if the mesh has none of them.
func (m *Mesh) Range(f FaceSet) (first int32, count int32) {
	r := m.ranges[f]
	return r.First, r.Count
}

// Faces returns the vertices of the given face set, three per triangle.
func (m *Mesh) Faces(f FaceSet) []Vertex {
	first, count := m.Range(f)
	return m.Vertices[first : first+count]
}
