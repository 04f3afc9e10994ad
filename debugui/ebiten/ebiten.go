// Package ebiten provides Dear ImGui backend integration for the Ebiten game
// engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend. Call BeginFrame
// before rendering inspector windows, EndFrame after, and Draw from the host's
// Draw to composite the overlay on top of the scene.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend with a window of the given size. The
// imgui.ini settings file is disabled so debug runs leave nothing behind.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: b}
}
