package renderer

import (
	"fmt"
	"log"
	"time"

	com "github.com/BartoszJakis/GraphicsProgramming242574/common"
	"github.com/BartoszJakis/GraphicsProgramming242574/fractal"
	"github.com/BartoszJakis/GraphicsProgramming242574/gui"
	"github.com/BartoszJakis/GraphicsProgramming242574/model"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

type Core struct {
	cfg Config

	// OS/Window level
	Win     *com.Window
	Overlay *gui.Overlay

	// Drawing infrastructure level
	program *Program
	texture uint32

	// 3D World
	Cam    *model.Camera
	State  *model.State
	models []*model.Model

	// Frame level
	stats gui.Stats
}

// Externally facing functions

func NewRenderCore(cfg Config) *Core {
	return &Core{
		cfg:   cfg,
		State: model.NewState(),
	}
}

func (c *Core) Config() Config {
	return c.cfg
}

// Initialize brings up window, GL context, GUI and shader program. Any error returned is fatal for the app, a
// texture that fails to load is only logged and drawing continues without it.
func (c *Core) Initialize() error {
	win, err := com.NewWindow(c.cfg.Title, c.cfg.Width, c.cfg.Height)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	c.Win = win

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Printf("OpenGL version %s, vendor %s, renderer %s",
		gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.VENDOR)), gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.Enable(gl.DEPTH_TEST)

	c.Overlay, err = gui.NewOverlay(c.Win)
	if err != nil {
		return fmt.Errorf("failed to create GUI overlay: %w", err)
	}

	c.program, err = LoadProgram(c.cfg.VertShaderPath, c.cfg.FragShaderPath)
	if err != nil {
		return err
	}

	c.texture, err = LoadTexture(c.cfg.TexturePath)
	if err != nil {
		log.Printf("Warning: failed to load texture, continuing without: %v", err)
		c.texture = 0
	}

	c.program.Use()
	c.program.SetInt(model.UniformTexture, 0)
	c.DefaultCam()

	if err := com.GLCheck("initialize render core"); err != nil {
		log.Printf("Warning: %v", err)
	}
	log.Println("Successfully initialized render core")
	return nil
}

type iterationHandler func(sdl.Event, *Core)

type drawHandler func(time.Duration, *Core)

// Loop this function represents the event-loop for user interaction and currently also contains
// the primary draw call that renders each frame. The whole purpose of this function is to provide
// a neat interface for call backs and all basic functionality a well-behaved app should have. E.g.:
// Not rendering if minimized, close on Window 'close button', close on ESC key.
func (c *Core) Loop(ih iterationHandler, dh drawHandler) {
	t0 := time.Now()
	frames := 0
	var event sdl.Event
	c.Win.Close = false
	for !c.Win.Close {
		for event = sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			c.Overlay.ProcessEvent(event)
			// Doing some basic functionality for basic window handling
			switch ev := event.(type) {
			case *sdl.QuitEvent:
				c.Win.Close = true
			case *sdl.WindowEvent:
				if ev.Event == sdl.WINDOWEVENT_RESIZED {
					c.Win.Resized = true
				} else if ev.Event == sdl.WINDOWEVENT_MINIMIZED {
					c.Win.Minimized = true
				} else if ev.Event == sdl.WINDOWEVENT_RESTORED {
					c.Win.Minimized = false
				}
			case *sdl.KeyboardEvent:
				if ev.Keysym.Sym == sdl.K_ESCAPE {
					c.Win.Close = true
				}
			}
			ih(event, c)
		}
		if !c.Win.Minimized {
			dh(time.Since(t0), c)
			c.drawFrame()
			frames++
		} else {
			// Sleep until new events change c.Win.Minimized
			sdl.WaitEvent()
		}
	}
	dt := time.Since(t0)
	log.Printf("Elapsed: %v, rough avg fps: %v fps", dt, float64(frames)/dt.Seconds())
}

func (c *Core) Destroy() {
	// If user has not cleaned up all models manually, warn and remove them now
	if len(c.models) > 0 {
		log.Printf("Leftover models in render core!: %v", len(c.models))
		c.ClearScene()
	}
	if c.texture != 0 {
		gl.DeleteTextures(1, &c.texture)
		c.texture = 0
	}
	if c.program != nil {
		c.program.Delete()
		c.program = nil
	}
	if c.Overlay != nil {
		c.Overlay.Destroy()
		c.Overlay = nil
	}
	if c.Win != nil {
		c.Win.Destroy()
		c.Win = nil
	}
}

// LastFrameStats reports draw calls and triangles of the previous frame.
func (c *Core) LastFrameStats() gui.Stats {
	return c.stats
}

// drawFrame builds the control panel, then draws the fractal of every model in the scene and the panel on top.
// The caller binds nothing, all GL state needed is set up here.
func (c *Core) drawFrame() {
	c.Overlay.NewFrame()
	c.Overlay.Build(c.State, c.stats)
	c.State.Clamp()

	if c.Win.Resized {
		w, h := c.Win.DrawableSize()
		log.Printf("Window resized, drawable size: %dx%d", w, h)
		c.Win.Resized = false
	}
	w, h := c.Win.DrawableSize()
	gl.Viewport(0, 0, w, h)
	cc := c.cfg.ClearColor
	gl.ClearColor(cc[0], cc[1], cc[2], cc[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, c.texture)

	c.program.Use()
	u := model.NewFrameUniforms(c.Cam, c.State)
	c.program.SetInt(model.UniformTexture, 0)
	c.program.SetVec4(model.UniformFractalColor, u.Color)
	c.program.SetMat4(model.UniformView, u.View)
	c.program.SetMat4(model.UniformProjection, u.Projection)

	root := c.State.ModelMatrix()
	stats := gui.Stats{}
	for _, m := range c.models {
		gl.BindVertexArray(m.VAO)
		dc := newDrawContext(c.program, m.Mesh)
		fractal.Generate(dc, root, int(c.State.Recursion), 0)
		stats.DrawCalls += dc.calls
		stats.Triangles += dc.triangles
	}
	gl.BindVertexArray(0)

	c.Overlay.Render()
	c.Win.Swap()
	c.stats = stats
}
