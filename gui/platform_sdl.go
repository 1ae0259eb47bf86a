package gui

import (
	"bytes"

	"github.com/mmp/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
)

// sdlPlatform feeds SDL input and timing into the imgui IO. Mouse button presses are latched so a click that starts
// and ends between two frames is still seen by the GUI.
type sdlPlatform struct {
	io     imgui.IO
	window *sdl.Window

	time        uint64
	buttonsDown [3]bool
}

func newSDLPlatform(io imgui.IO, window *sdl.Window) *sdlPlatform {
	p := &sdlPlatform{
		io:     io,
		window: window,
	}
	p.setKeyMapping()
	sdl.StartTextInput()
	return p
}

func (p *sdlPlatform) setKeyMapping() {
	keys := map[int]int{
		imgui.KeyTab:        sdl.SCANCODE_TAB,
		imgui.KeyLeftArrow:  sdl.SCANCODE_LEFT,
		imgui.KeyRightArrow: sdl.SCANCODE_RIGHT,
		imgui.KeyUpArrow:    sdl.SCANCODE_UP,
		imgui.KeyDownArrow:  sdl.SCANCODE_DOWN,
		imgui.KeyPageUp:     sdl.SCANCODE_PAGEUP,
		imgui.KeyPageDown:   sdl.SCANCODE_PAGEDOWN,
		imgui.KeyHome:       sdl.SCANCODE_HOME,
		imgui.KeyEnd:        sdl.SCANCODE_END,
		imgui.KeyInsert:     sdl.SCANCODE_INSERT,
		imgui.KeyDelete:     sdl.SCANCODE_DELETE,
		imgui.KeyBackspace:  sdl.SCANCODE_BACKSPACE,
		imgui.KeySpace:      sdl.SCANCODE_SPACE,
		imgui.KeyEnter:      sdl.SCANCODE_RETURN,
		imgui.KeyEscape:     sdl.SCANCODE_ESCAPE,
		imgui.KeyA:          sdl.SCANCODE_A,
		imgui.KeyC:          sdl.SCANCODE_C,
		imgui.KeyV:          sdl.SCANCODE_V,
		imgui.KeyX:          sdl.SCANCODE_X,
		imgui.KeyY:          sdl.SCANCODE_Y,
		imgui.KeyZ:          sdl.SCANCODE_Z,
	}
	for imguiKey, nativeKey := range keys {
		p.io.KeyMap(imguiKey, nativeKey)
	}
}

// NewFrame updates display size, delta time and mouse state. Must be called before imgui.NewFrame.
func (p *sdlPlatform) NewFrame() {
	w, h := p.window.GetSize()
	p.io.SetDisplaySize(imgui.Vec2{X: float32(w), Y: float32(h)})

	freq := sdl.GetPerformanceFrequency()
	now := sdl.GetPerformanceCounter()
	if p.time > 0 && now > p.time {
		p.io.SetDeltaTime(float32(now-p.time) / float32(freq))
	} else {
		p.io.SetDeltaTime(1.0 / 60.0)
	}
	p.time = now

	x, y, state := sdl.GetMouseState()
	p.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	for i, button := range []uint32{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE} {
		p.io.SetMouseButtonDown(i, p.buttonsDown[i] || (state&sdl.Button(button)) != 0)
		p.buttonsDown[i] = false
	}
}

// ProcessEvent forwards input events and reports whether the event type is one the GUI currently consumes.
func (p *sdlPlatform) ProcessEvent(event sdl.Event) bool {
	switch ev := event.(type) {
	case *sdl.MouseWheelEvent:
		var dx, dy float32
		if ev.X > 0 {
			dx++
		} else if ev.X < 0 {
			dx--
		}
		if ev.Y > 0 {
			dy++
		} else if ev.Y < 0 {
			dy--
		}
		p.io.AddMouseWheelDelta(dx, dy)
		return p.io.WantCaptureMouse()
	case *sdl.MouseButtonEvent:
		if ev.Type == sdl.MOUSEBUTTONDOWN {
			switch ev.Button {
			case sdl.BUTTON_LEFT:
				p.buttonsDown[0] = true
			case sdl.BUTTON_RIGHT:
				p.buttonsDown[1] = true
			case sdl.BUTTON_MIDDLE:
				p.buttonsDown[2] = true
			}
		}
		return p.io.WantCaptureMouse()
	case *sdl.MouseMotionEvent:
		return p.io.WantCaptureMouse()
	case *sdl.TextInputEvent:
		n := bytes.IndexByte(ev.Text[:], 0)
		if n < 0 {
			n = len(ev.Text)
		}
		p.io.AddInputCharacters(string(ev.Text[:n]))
		return p.io.WantCaptureKeyboard()
	case *sdl.KeyboardEvent:
		key := int(ev.Keysym.Scancode)
		if ev.Type == sdl.KEYDOWN {
			p.io.KeyPress(key)
		} else if ev.Type == sdl.KEYUP {
			p.io.KeyRelease(key)
		}
		p.io.KeyShift(sdl.SCANCODE_LSHIFT, sdl.SCANCODE_RSHIFT)
		p.io.KeyCtrl(sdl.SCANCODE_LCTRL, sdl.SCANCODE_RCTRL)
		p.io.KeyAlt(sdl.SCANCODE_LALT, sdl.SCANCODE_RALT)
		p.io.KeySuper(sdl.SCANCODE_LGUI, sdl.SCANCODE_RGUI)
		return p.io.WantCaptureKeyboard()
	}
	return false
}
