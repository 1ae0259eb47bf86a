package renderer

// Config bundles everything the render core would otherwise hard code. There is no flag or environment parsing,
// the values are fixed at compile time through DefaultConfig.
type Config struct {
	Title         string
	Width, Height int32

	VertShaderPath string
	FragShaderPath string
	TexturePath    string
	ExportPath     string

	ClearColor [4]float32
	// MeshEdge is the edge length of the base tetrahedron
	MeshEdge float32
}

const PROGRAM_NAME = "242574 SIERPINSKI TRIANGLE"
const WINDOW_WIDTH, WINDOW_HEIGHT int32 = 1280, 1280

func DefaultConfig() Config {
	return Config{
		Title:          PROGRAM_NAME,
		Width:          WINDOW_WIDTH,
		Height:         WINDOW_HEIGHT,
		VertShaderPath: "shaders/texture.vert",
		FragShaderPath: "shaders/texture.frag",
		TexturePath:    "res/textures/stone.jpg",
		ExportPath:     "sierpinski.stl",
		ClearColor:     [4]float32{0.2, 0.3, 0.3, 1.0},
		MeshEdge:       1,
	}
}
