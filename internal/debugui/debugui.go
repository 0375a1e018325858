// Package debugui draws Dear ImGui debug windows on top of a running
// session: frame timings, scheduler statistics and game counters.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
)

// ImguiItem is a named Dear ImGui render function.
type ImguiItem struct {
	Name   string
	Render func()
}

// Windows is the resource listing every ImguiItem drawn each frame.
type Windows struct {
	Items []ImguiItem
}

func (w *Windows) Add(name string, render func()) {
	w.Items = append(w.Items, ImguiItem{Name: name, Render: render})
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input, so the game can ignore keys typed into a debug window.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

var readInputState = func() ImguiInputState {
	io := imgui.CurrentIO()
	return ImguiInputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}

// ImguiSystem defers every window's render function to the end of the
// frame and refreshes ImguiInputState.
type ImguiSystem struct {
	Windows    engine.Resource[Windows]
	InputState engine.Resource[ImguiInputState]
}

func (s *ImguiSystem) Execute(frame *engine.UpdateFrame) {
	if state := s.InputState.Get(); state != nil {
		*state = readInputState()
	}

	windows := s.Windows.Get()
	if windows == nil {
		return
	}
	for _, item := range windows.Items {
		frame.Commands.Defer(item.Render)
	}
}
