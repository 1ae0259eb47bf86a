package stl

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var unitTriangle = [3]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

func TestWriteReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solid.stl")
	in := NewSolid("sierpinski depth 1", FromFaces([][3]mgl32.Vec3{
		unitTriangle,
		{{0, 0, 0}, {0, 0, 1}, {1, 0, 0}},
	}))
	require.NoError(t, WriteFile(path, in))

	out, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, in.Header, out.Header)
	assert.Equal(t, in.Triangles, out.Triangles)
	assert.Equal(t, "sierpinski depth 1", trimHeader(out.Header))
}

func TestWriteLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, NewSolid("", []Triangle{{V: unitTriangle}})))

	b := buf.Bytes()
	require.Len(t, b, headerSize+4+triangleSize)
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(b[80:84]))
	// missing normal is filled in from the winding
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, toVec3(b[84:96]))
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, toVec3(b[108:120]))
}

func TestReadTruncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, NewSolid("", FromFaces([][3]mgl32.Vec3{unitTriangle, unitTriangle}))))
	b := buf.Bytes()

	_, err := Read(bytes.NewReader(b[:len(b)-10]))
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = Read(bytes.NewReader(b[:40]))
	assert.Error(t, err)
}

func TestFaceNormal(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, FaceNormal(unitTriangle))
	assert.Equal(t, mgl32.Vec3{}, FaceNormal([3]mgl32.Vec3{{1, 1, 1}, {1, 1, 1}, {2, 2, 2}}))
}

func TestNewSolidCutsHeader(t *testing.T) {
	long := bytes.Repeat([]byte("x"), 100)
	s := NewSolid(string(long), nil)
	assert.Equal(t, string(long[:80]), trimHeader(s.Header))
}

func TestEncoderCountMismatch(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, Header("two"), 2)
	require.NoError(t, err)
	require.NoError(t, enc.Encode(Triangle{V: unitTriangle}))
	assert.Error(t, enc.Close())

	require.NoError(t, enc.Encode(Triangle{V: unitTriangle}))
	assert.Error(t, enc.Encode(Triangle{V: unitTriangle}))
	assert.NoError(t, enc.Close())
	assert.Len(t, buf.Bytes(), headerSize+4+2*triangleSize)
}

func TestStreamFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stream.stl")
	faces := FromFaces([][3]mgl32.Vec3{unitTriangle, {{0, 0, 0}, {0, 0, 1}, {1, 0, 0}}})
	require.NoError(t, StreamFile(path, Header("streamed"), len(faces), func(enc *Encoder) error {
		for _, f := range faces {
			if err := enc.Encode(f); err != nil {
				return err
			}
		}
		return nil
	}))

	out, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, faces, out.Triangles)
	assert.Equal(t, "streamed", trimHeader(out.Header))

	// announcing more than emitted fails the file
	err = StreamFile(path, Header(""), 3, func(enc *Encoder) error { return enc.Encode(faces[0]) })
	assert.Error(t, err)
}
