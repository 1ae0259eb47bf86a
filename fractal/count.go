package fractal

import (
	"github.com/BartoszJakis/GraphicsProgramming242574/model"
	"github.com/go-gl/mathgl/mgl32"
)

// InnerDraws is the number of leaves of the 4-ary tree of the given depth.
func InnerDraws(maxDepth int) int {
	if maxDepth < 0 {
		maxDepth = 0
	}
	return 1 << (2 * uint(maxDepth))
}

// TotalDraws adds the single outer draw of the root.
func TotalDraws(maxDepth int) int {
	return 1 + InnerDraws(maxDepth)
}

// Counter counts draws by kind without keeping any matrix.
type Counter struct {
	Outer int
	Inner int
}

func (c *Counter) Draw(faces model.FaceSet, _ mgl32.Mat4) {
	switch faces {
	case model.OuterFaces:
		c.Outer++
	case model.InnerFaces:
		c.Inner++
	}
}

func (c *Counter) Total() int {
	return c.Outer + c.Inner
}

// Call is one recorded draw.
type Call struct {
	Faces model.FaceSet
	Model mgl32.Mat4
}

// Recorder keeps the full ordered draw sequence.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Draw(faces model.FaceSet, m mgl32.Mat4) {
	r.Calls = append(r.Calls, Call{Faces: faces, Model: m})
}

// Filter returns the recorded calls of one kind, in draw order.
func (r *Recorder) Filter(faces model.FaceSet) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Faces == faces {
			out = append(out, c)
		}
	}
	return out
}

// Multi forwards each draw to all of its drawers in order.
type Multi []Drawer

func (md Multi) Draw(faces model.FaceSet, m mgl32.Mat4) {
	for _, d := range md {
		d.Draw(faces, m)
	}
}
