package main

import (
	"log"
	"os"
	"runtime"
	"time"

	"github.com/BartoszJakis/GraphicsProgramming242574/model"
	"github.com/BartoszJakis/GraphicsProgramming242574/renderer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
)

// distance the camera moves per key press
const CAM_STEP float32 = 0.25
const SCENE_MODEL = "sierpinski"

func init() {
	// SDL and OpenGL calls have to come from the thread that created the context
	runtime.LockOSThread()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(os.Stdout)
	log.Println("Starting sierpinski renderer")
	log.Printf("Using GoLang: [%s]", runtime.Version())
}

func onIteration(event sdl.Event, c *renderer.Core) {
	switch ev := event.(type) {
	case *sdl.KeyboardEvent:
		if ev.Type != sdl.KEYUP || c.Overlay.WantsKeyboard() {
			return
		}
		switch ev.Keysym.Sym {
		case sdl.K_1:
			c.Cam.ToggleProjection()
			log.Printf("Switching projection to -> %d", c.Cam.ProjectionType)
		case sdl.K_3:
			// Reset camera
			c.Cam.Reset()
		case sdl.K_w:
			c.Cam.Move(mgl32.Vec3{0, 0, CAM_STEP})
		case sdl.K_a:
			c.Cam.Move(mgl32.Vec3{CAM_STEP, 0, 0})
		case sdl.K_s:
			c.Cam.Move(mgl32.Vec3{0, 0, -CAM_STEP})
		case sdl.K_d:
			c.Cam.Move(mgl32.Vec3{-CAM_STEP, 0, 0})
		}
	}
}

func onDraw(_ time.Duration, c *renderer.Core) {
	if !c.State.ExportRequested {
		return
	}
	c.State.ExportRequested = false
	if err := c.ExportSTL(SCENE_MODEL); err != nil {
		log.Printf("Failed to export fractal: %v", err)
		return
	}
	st := c.LastFrameStats()
	log.Printf("Exported fractal at recursion %d to %s (%d triangles on screen)",
		c.State.Recursion, c.Config().ExportPath, st.Triangles)
}

func main() {
	cfg := renderer.DefaultConfig()

	core := renderer.NewRenderCore(cfg)
	if err := core.Initialize(); err != nil {
		core.Destroy()
		log.Fatalf("Failed to initialize render core: %v", err)
	}

	sierpinski := model.NewModel(model.NewSierpinskiMesh(cfg.MeshEdge), SCENE_MODEL)
	if err := core.SetScene(sierpinski); err != nil {
		core.Destroy()
		log.Fatalf("Failed to upload %s: %v", sierpinski.Name, err)
	}

	core.Loop(
		onIteration,
		onDraw,
	)
	core.RemoveFromScene(sierpinski)
	core.Destroy()
}
