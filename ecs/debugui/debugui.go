// Package debugui provides immediate-mode GUI inspection for ECS
// applications using Dear ImGui. Debug windows are ordinary entities
// carrying an ImguiItem component, rendered by the DebugSystem each frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/sigil/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// InputState tracks Dear ImGui's input capture state. Use this to decide
// whether the game should ignore mouse or keyboard input this frame.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// DebugSystem renders every ImguiItem in its entity list and refreshes the
// input capture state. Register it with the scheduler like any other
// system; the registry dispatches entities spawned by SpawnDebugUI to it at
// the next Update.
type DebugSystem struct {
	ecs.System
	Input InputState
}

func NewDebugSystem() *DebugSystem {
	s := &DebugSystem{}
	ecs.RequireComponent[ImguiItem](s)
	return s
}

func (d *DebugSystem) Update(dt float64) {
	io := imgui.CurrentIO()
	d.Input.WantCaptureMouse = io.WantCaptureMouse()
	d.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, e := range d.GetSystemEntities() {
		item := ecs.MustGetComponent[ImguiItem](e)
		if item.Render != nil {
			item.Render()
		}
	}
}
