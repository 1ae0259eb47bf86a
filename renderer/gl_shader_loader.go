package renderer

import (
	"fmt"
	"log"
	"os"

	com "github.com/BartoszJakis/GraphicsProgramming242574/common"
	"github.com/BartoszJakis/GraphicsProgramming242574/tooling"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked vertex + fragment shader pair. Uniform locations are looked up once by name and cached.
type Program struct {
	ID        uint32
	locations map[string]int32
}

// LoadProgram reads both GLSL sources from disk and builds the program from them.
func LoadProgram(vertPath string, fragPath string) (*Program, error) {
	vertSrc, err := readShaderSource(vertPath)
	if err != nil {
		return nil, err
	}
	fragSrc, err := readShaderSource(fragPath)
	if err != nil {
		return nil, err
	}
	id, err := com.NewGLProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("shader program (%s, %s): %w", vertPath, fragPath, err)
	}
	log.Printf("Created shader program %d from %s and %s", id, vertPath, fragPath)
	return &Program{
		ID:        id,
		locations: make(map[string]int32),
	}, nil
}

func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Location returns the location of the named uniform, -1 if the program does not use it. GL ignores uploads to
// -1 so a missing uniform only gets logged once.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(tooling.TerminatedStr(name)))
	if loc < 0 {
		log.Printf("Uniform '%s' not active in program %d", name, p.ID)
	}
	p.locations[name] = loc
	return loc
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.Location(name), 1, false, &m[0])
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4f(p.Location(name), v[0], v[1], v[2], v[3])
}

func (p *Program) SetInt(name string, i int32) {
	gl.Uniform1i(p.Location(name), i)
}

func (p *Program) Delete() {
	gl.DeleteProgram(p.ID)
	p.ID = 0
}

func readShaderSource(shaderFile string) (string, error) {
	b, err := os.ReadFile(shaderFile)
	if err != nil {
		return "", fmt.Errorf("failed to read shader file '%s': %w", shaderFile, err)
	}
	log.Printf("Read shader file (%s) of size: %dByte", shaderFile, len(b))
	return string(b), nil
}
