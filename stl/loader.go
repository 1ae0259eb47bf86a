// Package stl reads and writes binary STL files: an 80 Byte header, a little endian uint32 triangle count and
// 50 Byte per triangle (normal, three vertices, 2 Byte attribute count).
package stl

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	headerSize   = 80
	triangleSize = 50
)

var ErrTruncated = errors.New("stl: truncated triangle data")

type Triangle struct {
	Normal mgl32.Vec3
	V      [3]mgl32.Vec3
}

// Solid is the content of one STL file.
type Solid struct {
	Header    [headerSize]byte
	Triangles []Triangle
}

func ReadFile(path string) (*Solid, error) {
	log.Printf("Reading stl file %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stl file: %w", err)
	}
	defer f.Close()

	s, err := Read(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("read stl file %s: %w", path, err)
	}
	log.Printf("Successfully read stl file, Header: '%s', Triangle Count: %d, Triangle memory size: %d KiB",
		trimHeader(s.Header), len(s.Triangles), len(s.Triangles)*triangleSize/1024)
	return s, nil
}

func Read(r io.Reader) (*Solid, error) {
	s := &Solid{}
	if _, err := io.ReadFull(r, s.Header[:]); err != nil {
		return nil, fmt.Errorf("stl header: %w", err)
	}
	var cnt uint32
	if err := binary.Read(r, binary.LittleEndian, &cnt); err != nil {
		return nil, fmt.Errorf("stl triangle count: %w", err)
	}

	s.Triangles = make([]Triangle, 0, min(cnt, 1<<20))
	b := make([]byte, triangleSize)
	for i := uint32(0); i < cnt; i++ {
		if _, err := io.ReadFull(r, b); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: triangle %d of %d", ErrTruncated, i, cnt)
			}
			return nil, err
		}
		s.Triangles = append(s.Triangles, Triangle{
			Normal: toVec3(b[0:12]),
			V: [3]mgl32.Vec3{
				toVec3(b[12:24]),
				toVec3(b[24:36]),
				toVec3(b[36:48]),
			},
		})
		// b[48:50] attribute byte count, unused
	}
	return s, nil
}

func trimHeader(h [headerSize]byte) string {
	n := 0
	for n < len(h) && h[n] != 0 {
		n++
	}
	return string(h[:n])
}

func toVec3(bytes []byte) mgl32.Vec3 {
	return mgl32.Vec3{
		toFloat32(bytes[:4]),
		toFloat32(bytes[4:8]),
		toFloat32(bytes[8:12]),
	}
}

func toFloat32(bytes []byte) float32 {
	bits := binary.LittleEndian.Uint32(bytes)
	float := math.Float32frombits(bits)
	return float
}
