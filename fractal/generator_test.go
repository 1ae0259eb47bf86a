package fractal

import (
	"math"
	"testing"

	"github.com/BartoszJakis/GraphicsProgramming242574/model"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawCounts(t *testing.T) {
	for d := 0; d <= int(model.MaxRecursion); d++ {
		c := &Counter{}
		Generate(c, mgl32.Ident4(), d, 0)
		if c.Outer != 1 {
			t.Errorf("depth %d: %d outer draws, expected 1", d, c.Outer)
		}
		if c.Inner != InnerDraws(d) {
			t.Errorf("depth %d: %d inner draws, expected %d", d, c.Inner, InnerDraws(d))
		}
		assert.Equal(t, TotalDraws(d), c.Total())
	}
	assert.Equal(t, 1048576, InnerDraws(10))
	assert.Equal(t, 1, InnerDraws(-2))
}

// TestDepthZeroDrawsBoth makes sure the root draws the outer faces and, being a leaf as well, the inner faces
func TestDepthZeroDrawsBoth(t *testing.T) {
	root := (&model.State{AngleX: 30, AngleY: 60}).ModelMatrix()
	r := &Recorder{}
	Generate(r, root, 0, 0)

	require.Len(t, r.Calls, 2)
	assert.Equal(t, Call{Faces: model.OuterFaces, Model: mgl32.Ident4()}, r.Calls[0])
	assert.Equal(t, Call{Faces: model.InnerFaces, Model: root}, r.Calls[1])
}

func TestDepthTwoDrawSequence(t *testing.T) {
	r := &Recorder{}
	Generate(r, mgl32.Ident4(), 2, 0)

	require.Len(t, r.Calls, 17)
	assert.Equal(t, model.OuterFaces, r.Calls[0].Faces)
	assert.Len(t, r.Filter(model.OuterFaces), 1)

	leaves := r.Filter(model.InnerFaces)
	require.Len(t, leaves, 16)
	for i := range Corners {
		for j := range Corners {
			exp := Corners[i].Mul(0.5).Add(Corners[j].Mul(0.25))
			got := leaves[i*4+j].Model.Col(3).Vec3()
			if got != exp {
				t.Errorf("leaf (%d, %d) translated by %v, expected %v", i, j, got, exp)
			}
		}
	}
}

func TestDepthOneTranslations(t *testing.T) {
	r := &Recorder{}
	Generate(r, mgl32.Ident4(), 1, 0)
	leaves := r.Filter(model.InnerFaces)
	require.Len(t, leaves, 4)

	seen := map[mgl32.Vec3]bool{}
	for i, l := range leaves {
		got := l.Model.Col(3).Vec3()
		assert.Equal(t, Corners[i].Mul(0.5), got)
		seen[got] = true
	}
	assert.Len(t, seen, 4, "children must use distinct offsets")
}

func TestLeafScaleIdentityRoot(t *testing.T) {
	for d := 0; d <= 6; d++ {
		r := &Recorder{}
		Generate(r, mgl32.Ident4(), d, 0)
		exp := float32(math.Pow(0.5, float64(d)))
		for _, l := range r.Filter(model.InnerFaces) {
			sx, sy, sz := mgl32.Extract3DScale(l.Model)
			if sx != exp || sy != exp || sz != exp {
				t.Errorf("depth %d: leaf scale (%v, %v, %v), expected %v\n%s", d, sx, sy, sz, exp, l.Model.String())
			}
			lin := l.Model.Mat3()
			if lin != mgl32.Ident3().Mul(exp) {
				t.Errorf("depth %d: leaf has a non uniform linear part\n%s", d, l.Model.String())
			}
		}
	}
}

func TestLeafScaleRotatedRoot(t *testing.T) {
	root := (&model.State{AngleX: 37, AngleY: 211}).ModelMatrix()
	for d := 0; d <= 4; d++ {
		r := &Recorder{}
		Generate(r, root, d, 0)
		exp := float32(math.Pow(0.5, float64(d)))
		for _, l := range r.Filter(model.InnerFaces) {
			for c := 0; c < 3; c++ {
				ln := l.Model.Col(c).Vec3().Len()
				assert.InDelta(t, exp, ln, 1e-6, "depth %d column %d", d, c)
			}
			assert.Equal(t, float32(1), l.Model.At(3, 3))
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	root := (&model.State{AngleX: 123, AngleY: 45}).ModelMatrix()
	a, b := &Recorder{}, &Recorder{}
	Generate(a, root, 3, 0)
	Generate(b, root, 3, 0)
	assert.Equal(t, a.Calls, b.Calls)
}

func TestScaleTranslateMatchMatrixProduct(t *testing.T) {
	m := (&model.State{AngleX: 10, AngleY: 20}).ModelMatrix()
	m = Translate(m, mgl32.Vec3{0.3, -0.2, 0.7})

	s := Scale(m, 0.5)
	assert.Equal(t, m.Mul4(mgl32.Scale3D(0.5, 0.5, 0.5)), s)

	v := Corners[3]
	got := Translate(s, v)
	exp := s.Mul4(mgl32.Translate3D(v[0], v[1], v[2]))
	assert.True(t, got.ApproxEqualThreshold(exp, 1e-6), "got\n%s\nexpected\n%s", got.String(), exp.String())
	assert.Equal(t, s.Mat3(), got.Mat3())
}

func TestMultiForwards(t *testing.T) {
	c := &Counter{}
	r := &Recorder{}
	Generate(Multi{c, r}, mgl32.Ident4(), 1, 0)
	assert.Equal(t, 5, c.Total())
	assert.Len(t, r.Calls, 5)
}
