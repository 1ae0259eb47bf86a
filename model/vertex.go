package model

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is tightly packed, 12 + 8 = 20 Byte, which is exactly what glVertexAttribPointer gets as stride.
type Vertex struct {
	Pos      mgl32.Vec3 // 12 Byte (float32 * 3, no padding)
	TexCoord mgl32.Vec2 // 8 Byte (float32 * 2, no padding)
}

// Attribute describes one float vertex attribute as the vertex shader sees it through its layout location.
type Attribute struct {
	Location uint32
	Size     int32
	Offset   uintptr
}

// VertexStride is the byte distance between two consecutive vertices in the vertex buffer.
func VertexStride() int32 {
	return int32(unsafe.Sizeof(Vertex{}))
}

// VertexAttributes returns the attribute layout matching shaders/texture.vert
func VertexAttributes() []Attribute {
	return []Attribute{
		{
			Location: 0,
			Size:     3,
			Offset:   unsafe.Offsetof(Vertex{}.Pos),
		},
		{
			Location: 1,
			Size:     2,
			Offset:   unsafe.Offsetof(Vertex{}.TexCoord),
		},
	}
}
