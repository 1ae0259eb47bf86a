package gui

import (
	"fmt"

	"github.com/BartoszJakis/GraphicsProgramming242574/model"
	"github.com/mmp/imgui-go/v4"
)

const PanelTitle = "SIERPINSKI"

// Stats are numbers of the previous frame shown below the controls.
type Stats struct {
	DrawCalls int
	Triangles int
}

// Build lays out the control panel for this frame. Widgets write straight into s, the values are clamped by the
// caller before they are used.
func (o *Overlay) Build(s *model.State, st Stats) {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 10}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	if imgui.Begin(PanelTitle) {
		imgui.SliderInt("X AXIS", &s.AngleX, model.MinAngle, model.MaxAngle)
		imgui.SliderInt("Y AXIS", &s.AngleY, model.MinAngle, model.MaxAngle)
		imgui.SliderInt("RECURSION", &s.Recursion, model.MinRecursion, model.MaxRecursion)
		imgui.ColorEdit3("FRACTAL COLOR", s.RGB())
		if imgui.Button("EXPORT STL") {
			s.ExportRequested = true
		}
		imgui.Separator()
		imgui.Text(statsLine(o.io.Framerate(), st))
	}
	imgui.End()
}

func statsLine(fps float32, st Stats) string {
	return fmt.Sprintf("%.1f fps, %d draw calls, %d triangles", fps, st.DrawCalls, st.Triangles)
}
