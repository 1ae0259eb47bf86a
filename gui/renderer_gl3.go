package gui

import (
	"fmt"

	com "github.com/BartoszJakis/GraphicsProgramming242574/common"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/mmp/imgui-go/v4"
)

const imguiVertexShader = `#version 330 core
uniform mat4 ProjMtx;
in vec2 Position;
in vec2 UV;
in vec4 Color;
out vec2 Frag_UV;
out vec4 Frag_Color;
void main()
{
	Frag_UV = UV;
	Frag_Color = Color;
	gl_Position = ProjMtx * vec4(Position.xy, 0, 1);
}
`

// the font atlas is a single channel texture, its red channel is the coverage
const imguiFragmentShader = `#version 330 core
uniform sampler2D Texture;
in vec2 Frag_UV;
in vec4 Frag_Color;
out vec4 Out_Color;
void main()
{
	Out_Color = vec4(Frag_Color.rgb, Frag_Color.a * texture(Texture, Frag_UV.st).r);
}
`

// glRenderer draws imgui draw data with its own program and buffers and leaves the GL state as it found it.
type glRenderer struct {
	io imgui.IO

	fontTexture   uint32
	program       uint32
	locTex        int32
	locProjMtx    int32
	locPosition   uint32
	locUV         uint32
	locColor      uint32
	vboHandle     uint32
	elementHandle uint32
}

func newGLRenderer(io imgui.IO) (*glRenderer, error) {
	r := &glRenderer{io: io}
	if err := r.createDeviceObjects(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *glRenderer) Dispose() {
	if r.vboHandle != 0 {
		gl.DeleteBuffers(1, &r.vboHandle)
	}
	r.vboHandle = 0
	if r.elementHandle != 0 {
		gl.DeleteBuffers(1, &r.elementHandle)
	}
	r.elementHandle = 0
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
	r.program = 0
	if r.fontTexture != 0 {
		gl.DeleteTextures(1, &r.fontTexture)
		r.io.Fonts().SetTextureID(0)
	}
	r.fontTexture = 0
}

// Render translates the imgui draw data into GL calls. Display size is in window coordinates, framebuffer size in
// pixels, they differ on high-DPI screens.
func (r *glRenderer) Render(displaySize [2]float32, framebufferSize [2]float32, drawData imgui.DrawData) {
	displayWidth, displayHeight := displaySize[0], displaySize[1]
	fbWidth, fbHeight := framebufferSize[0], framebufferSize[1]
	if fbWidth <= 0 || fbHeight <= 0 || displayWidth <= 0 || displayHeight <= 0 {
		return
	}
	drawData.ScaleClipRects(imgui.Vec2{X: fbWidth / displayWidth, Y: fbHeight / displayHeight})

	saved := saveGLState()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	orthoProjection := [4][4]float32{
		{2.0 / displayWidth, 0.0, 0.0, 0.0},
		{0.0, 2.0 / -displayHeight, 0.0, 0.0},
		{0.0, 0.0, -1.0, 0.0},
		{-1.0, 1.0, 0.0, 1.0},
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.UseProgram(r.program)
	gl.Uniform1i(r.locTex, 0)
	gl.UniformMatrix4fv(r.locProjMtx, 1, false, &orthoProjection[0][0])
	gl.BindSampler(0, 0)

	// a throw away VAO keeps the vertex layout out of the scene's vertex arrays
	var vaoHandle uint32
	gl.GenVertexArrays(1, &vaoHandle)
	gl.BindVertexArray(vaoHandle)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vboHandle)
	gl.EnableVertexAttribArray(r.locPosition)
	gl.EnableVertexAttribArray(r.locUV)
	gl.EnableVertexAttribArray(r.locColor)
	vertexSize, vertexOffsetPos, vertexOffsetUv, vertexOffsetCol := imgui.VertexBufferLayout()
	gl.VertexAttribPointerWithOffset(r.locPosition, 2, gl.FLOAT, false, int32(vertexSize), uintptr(vertexOffsetPos))
	gl.VertexAttribPointerWithOffset(r.locUV, 2, gl.FLOAT, false, int32(vertexSize), uintptr(vertexOffsetUv))
	gl.VertexAttribPointerWithOffset(r.locColor, 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), uintptr(vertexOffsetCol))
	indexSize := imgui.IndexBufferLayout()
	drawType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		drawType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vboHandle)
		gl.BufferData(gl.ARRAY_BUFFER, vertexBufferSize, vertexBuffer, gl.STREAM_DRAW)

		indexBuffer, indexBufferSize := list.IndexBuffer()
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.elementHandle)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBufferSize, indexBuffer, gl.STREAM_DRAW)

		var indexBufferOffset uintptr
		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
				clipRect := cmd.ClipRect()
				gl.Scissor(int32(clipRect.X), int32(fbHeight)-int32(clipRect.W), int32(clipRect.Z-clipRect.X), int32(clipRect.W-clipRect.Y))
				gl.DrawElementsWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()), drawType, indexBufferOffset)
			}
			indexBufferOffset += uintptr(cmd.ElementCount() * indexSize)
		}
	}
	gl.DeleteVertexArrays(1, &vaoHandle)
}

func (r *glRenderer) createDeviceObjects() error {
	var lastTexture, lastArrayBuffer, lastVertexArray int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &lastArrayBuffer)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &lastVertexArray)
	defer func() {
		gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))
		gl.BindBuffer(gl.ARRAY_BUFFER, uint32(lastArrayBuffer))
		gl.BindVertexArray(uint32(lastVertexArray))
	}()

	program, err := com.NewGLProgram(imguiVertexShader, imguiFragmentShader)
	if err != nil {
		return fmt.Errorf("imgui shader program: %w", err)
	}
	r.program = program
	r.locTex = gl.GetUniformLocation(program, gl.Str("Texture\x00"))
	r.locProjMtx = gl.GetUniformLocation(program, gl.Str("ProjMtx\x00"))
	r.locPosition = uint32(gl.GetAttribLocation(program, gl.Str("Position\x00")))
	r.locUV = uint32(gl.GetAttribLocation(program, gl.Str("UV\x00")))
	r.locColor = uint32(gl.GetAttribLocation(program, gl.Str("Color\x00")))

	gl.GenBuffers(1, &r.vboHandle)
	gl.GenBuffers(1, &r.elementHandle)

	r.createFontsTexture()
	return nil
}

func (r *glRenderer) createFontsTexture() {
	image := r.io.Fonts().TextureDataAlpha8()

	gl.GenTextures(1, &r.fontTexture)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(image.Width), int32(image.Height),
		0, gl.RED, gl.UNSIGNED_BYTE, image.Pixels)

	r.io.Fonts().SetTextureID(imgui.TextureID(r.fontTexture))
}

// glState is the subset of GL state the imgui pass changes.
type glState struct {
	program, texture, sampler, activeTexture int32
	arrayBuffer, vertexArray                 int32
	polygonMode                              [2]int32
	viewport, scissorBox                     [4]int32
	blendSrcRgb, blendDstRgb                 int32
	blendSrcAlpha, blendDstAlpha             int32
	blendEquationRgb, blendEquationAlpha     int32
	blend, cullFace, depthTest, scissorTest  bool
}

func saveGLState() glState {
	var s glState
	gl.GetIntegerv(gl.ACTIVE_TEXTURE, &s.activeTexture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &s.texture)
	gl.GetIntegerv(gl.SAMPLER_BINDING, &s.sampler)
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &s.arrayBuffer)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &s.vertexArray)
	gl.GetIntegerv(gl.POLYGON_MODE, &s.polygonMode[0])
	gl.GetIntegerv(gl.VIEWPORT, &s.viewport[0])
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissorBox[0])
	gl.GetIntegerv(gl.BLEND_SRC_RGB, &s.blendSrcRgb)
	gl.GetIntegerv(gl.BLEND_DST_RGB, &s.blendDstRgb)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrcAlpha)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDstAlpha)
	gl.GetIntegerv(gl.BLEND_EQUATION_RGB, &s.blendEquationRgb)
	gl.GetIntegerv(gl.BLEND_EQUATION_ALPHA, &s.blendEquationAlpha)
	s.blend = gl.IsEnabled(gl.BLEND)
	s.cullFace = gl.IsEnabled(gl.CULL_FACE)
	s.depthTest = gl.IsEnabled(gl.DEPTH_TEST)
	s.scissorTest = gl.IsEnabled(gl.SCISSOR_TEST)
	return s
}

func (s glState) restore() {
	gl.UseProgram(uint32(s.program))
	gl.BindTexture(gl.TEXTURE_2D, uint32(s.texture))
	gl.BindSampler(0, uint32(s.sampler))
	gl.ActiveTexture(uint32(s.activeTexture))
	gl.BindVertexArray(uint32(s.vertexArray))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(s.arrayBuffer))
	gl.BlendEquationSeparate(uint32(s.blendEquationRgb), uint32(s.blendEquationAlpha))
	gl.BlendFuncSeparate(uint32(s.blendSrcRgb), uint32(s.blendDstRgb), uint32(s.blendSrcAlpha), uint32(s.blendDstAlpha))
	setEnabled(gl.BLEND, s.blend)
	setEnabled(gl.CULL_FACE, s.cullFace)
	setEnabled(gl.DEPTH_TEST, s.depthTest)
	setEnabled(gl.SCISSOR_TEST, s.scissorTest)
	gl.PolygonMode(gl.FRONT_AND_BACK, uint32(s.polygonMode[0]))
	gl.Viewport(s.viewport[0], s.viewport[1], s.viewport[2], s.viewport[3])
	gl.Scissor(s.scissorBox[0], s.scissorBox[1], s.scissorBox[2], s.scissorBox[3])
}

func setEnabled(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}
