// Package gui is the immediate mode control panel drawn on top of the scene. It owns an imgui context, feeds it
// SDL input and renders its draw data with OpenGL 3.3.
package gui

import (
	"log"

	com "github.com/BartoszJakis/GraphicsProgramming242574/common"
	"github.com/mmp/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
)

type Overlay struct {
	context  *imgui.Context
	io       imgui.IO
	platform *sdlPlatform
	renderer *glRenderer
	window   *com.Window
}

// NewOverlay needs the window's GL context to be current, the font atlas is uploaded right away.
func NewOverlay(w *com.Window) (*Overlay, error) {
	ctx := imgui.CreateContext(nil)
	io := imgui.CurrentIO()
	// no imgui.ini next to the binary, nothing persists across runs
	io.SetIniFilename("")
	imgui.StyleColorsDark()

	r, err := newGLRenderer(io)
	if err != nil {
		ctx.Destroy()
		return nil, err
	}
	log.Println("Created imgui overlay")
	return &Overlay{
		context:  ctx,
		io:       io,
		platform: newSDLPlatform(io, w.Win),
		renderer: r,
		window:   w,
	}, nil
}

// ProcessEvent hands an SDL event to imgui and reports whether the GUI wants to keep it for itself.
func (o *Overlay) ProcessEvent(ev sdl.Event) bool {
	return o.platform.ProcessEvent(ev)
}

// WantsKeyboard is true while a widget has keyboard focus, app key bindings should stay quiet then.
func (o *Overlay) WantsKeyboard() bool {
	return o.io.WantCaptureKeyboard()
}

func (o *Overlay) NewFrame() {
	o.platform.NewFrame()
	imgui.NewFrame()
}

// Render finishes the imgui frame and draws it over whatever is in the back buffer.
func (o *Overlay) Render() {
	imgui.Render()
	w, h := o.window.Win.GetSize()
	fw, fh := o.window.DrawableSize()
	o.renderer.Render(
		[2]float32{float32(w), float32(h)},
		[2]float32{float32(fw), float32(fh)},
		imgui.RenderedDrawData(),
	)
}

func (o *Overlay) Destroy() {
	o.renderer.Dispose()
	o.context.Destroy()
}
