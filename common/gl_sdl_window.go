package common

import (
	"fmt"
	"log"

	"github.com/veandco/go-sdl2/sdl"
)

const SDL_MAJOR, SDL_MINOR, SDL_PATCH = int(sdl.MAJOR_VERSION), int(sdl.MINOR_VERSION), int(sdl.PATCHLEVEL)

// OpenGL 3.3 core, the same profile the GLSL sources in shaders/ are written against
const GL_MAJOR, GL_MINOR int = 3, 3

// Window encapsulates all window handling components and the OpenGL context that is bound to it. It uses SDL for
// window management and user input, thus simplifying the process of getting a current GL context to draw with.
type Window struct {
	sdlVersion string
	glVersion  string

	Win       *sdl.Window
	Ctx       sdl.GLContext
	Resized   bool
	Minimized bool
	Close     bool
}

// NewWindow constructs a new Window struct by default initializing things, stating some meta information and
// calling the corresponding init functions for the SDL window and the GL context. On tear down, we need to delete
// the context, destroy the sdl.window and quit SDL.
func NewWindow(title string, w int32, h int32) (*Window, error) {
	window := &Window{
		sdlVersion: fmt.Sprintf("v%d.%d.%d", SDL_MAJOR, SDL_MINOR, SDL_PATCH),
		glVersion:  fmt.Sprintf("v%d.%d core", GL_MAJOR, GL_MINOR),
	}
	if err := window.initSDLWindow(title, w, h); err != nil {
		return nil, err
	}
	if err := window.createGLContext(); err != nil {
		window.Destroy()
		return nil, err
	}
	log.Printf("Generated SDL/OpenGL window - SDL: %s OpenGL: %s", window.sdlVersion, window.glVersion)
	return window, nil
}

// Destroy is a convenience method to tear down everything that has been initialized by the window itself.
func (w *Window) Destroy() {
	if w.Ctx != nil {
		sdl.GLDeleteContext(w.Ctx)
		w.Ctx = nil
	}
	if w.Win != nil {
		if err := w.Win.Destroy(); err != nil {
			log.Printf("Failed to destroy SDL window: %v", err)
		}
		w.Win = nil
	}
	sdl.Quit()
}

// DrawableSize reports the size of the framebuffer in pixels, which differs from the window size on high-DPI screens.
func (w *Window) DrawableSize() (int32, int32) {
	return w.Win.GLGetDrawableSize()
}

// Swap presents the back buffer.
func (w *Window) Swap() {
	w.Win.GLSwap()
}

func (w *Window) initSDLWindow(title string, width int32, height int32) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_TIMER); err != nil {
		return fmt.Errorf("failed to initialize SDL: %w", err)
	}
	log.Println("Initialized SDL")

	attributes := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, GL_MAJOR},
		{sdl.GL_CONTEXT_MINOR_VERSION, GL_MINOR},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, 24},
	}
	for _, a := range attributes {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return fmt.Errorf("failed to set GL attribute %d: %w", a.attr, err)
		}
	}

	win, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		width,
		height,
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE|sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create SDL window for use with OpenGL: %w", err)
	}
	log.Printf("Created SDL window for use with OpenGL. Title: \"%s\", Width: %d, Height: %d", title, width, height)
	w.Win = win
	return nil
}

func (w *Window) createGLContext() error {
	ctx, err := w.Win.GLCreateContext()
	if err != nil {
		return fmt.Errorf("failed to create OpenGL context: %w", err)
	}
	w.Ctx = ctx
	if err := w.Win.GLMakeCurrent(ctx); err != nil {
		return fmt.Errorf("failed to make OpenGL context current: %w", err)
	}
	// vsync is a nice to have, some drivers refuse it
	if err := sdl.GLSetSwapInterval(1); err != nil {
		log.Printf("Swap interval not supported: %v", err)
	}
	return nil
}
