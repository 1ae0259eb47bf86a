package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// Header turns text into an STL header, cut at 80 Byte.
func Header(text string) (h [headerSize]byte) {
	copy(h[:], text)
	return h
}

// NewSolid fills the header with the given text, cut at 80 Byte.
func NewSolid(header string, t []Triangle) *Solid {
	return &Solid{Header: Header(header), Triangles: t}
}

// FromFaces builds triangles from bare vertex triples, normals are derived from the winding.
func FromFaces(faces [][3]mgl32.Vec3) []Triangle {
	t := make([]Triangle, len(faces))
	for i, f := range faces {
		t[i] = Triangle{Normal: FaceNormal(f), V: f}
	}
	return t
}

// FaceNormal is the unit normal of a counter clockwise triangle, zero for degenerate ones.
func FaceNormal(v [3]mgl32.Vec3) mgl32.Vec3 {
	n := v[1].Sub(v[0]).Cross(v[2].Sub(v[0]))
	if n.Len() == 0 {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}

// Encoder streams triangles into w one record at a time. The triangle count goes into the file up front, so it
// has to be known when the encoder is created and Close fails if a different number was encoded.
type Encoder struct {
	w        io.Writer
	buf      [triangleSize]byte
	expected uint32
	written  uint32
}

func NewEncoder(w io.Writer, header [headerSize]byte, count int) (*Encoder, error) {
	if count < 0 || uint64(count) > math.MaxUint32 {
		return nil, fmt.Errorf("stl: %d triangles exceed the format limit", count)
	}
	if _, err := w.Write(header[:]); err != nil {
		return nil, err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(count)); err != nil {
		return nil, err
	}
	return &Encoder{w: w, expected: uint32(count)}, nil
}

// Encode writes one triangle. A zero normal is replaced by the one derived from the winding.
func (e *Encoder) Encode(t Triangle) error {
	if e.written == e.expected {
		return fmt.Errorf("stl: more than the announced %d triangles", e.expected)
	}
	n := t.Normal
	if n == (mgl32.Vec3{}) {
		n = FaceNormal(t.V)
	}
	b := e.buf[:]
	putVec3(b[0:12], n)
	putVec3(b[12:24], t.V[0])
	putVec3(b[24:36], t.V[1])
	putVec3(b[36:48], t.V[2])
	binary.LittleEndian.PutUint16(b[48:50], 0)
	if _, err := e.w.Write(b); err != nil {
		return err
	}
	e.written++
	return nil
}

func (e *Encoder) Close() error {
	if e.written != e.expected {
		return fmt.Errorf("stl: %d of %d announced triangles written", e.written, e.expected)
	}
	return nil
}

func Write(w io.Writer, s *Solid) error {
	enc, err := NewEncoder(w, s.Header, len(s.Triangles))
	if err != nil {
		return err
	}
	for _, t := range s.Triangles {
		if err := enc.Encode(t); err != nil {
			return err
		}
	}
	return enc.Close()
}

func WriteFile(path string, s *Solid) error {
	return StreamFile(path, s.Header, len(s.Triangles), func(enc *Encoder) error {
		for _, t := range s.Triangles {
			if err := enc.Encode(t); err != nil {
				return err
			}
		}
		return nil
	})
}

// StreamFile creates path and lets emit encode exactly count triangles into it through a buffered writer.
func StreamFile(path string, header [headerSize]byte, count int, emit func(*Encoder) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create stl file: %w", err)
	}
	bw := bufio.NewWriter(f)
	enc, err := NewEncoder(bw, header, count)
	if err == nil {
		err = emit(enc)
	}
	if err == nil {
		err = enc.Close()
	}
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("write stl file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close stl file %s: %w", path, err)
	}
	log.Printf("Wrote stl file %s, Triangle Count: %d", path, count)
	return nil
}

func putVec3(b []byte, v mgl32.Vec3) {
	binary.LittleEndian.PutUint32(b[0:4], math.Float32bits(v[0]))
	binary.LittleEndian.PutUint32(b[4:8], math.Float32bits(v[1]))
	binary.LittleEndian.PutUint32(b[8:12], math.Float32bits(v[2]))
}
