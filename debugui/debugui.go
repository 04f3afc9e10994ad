// Package debugui provides immediate-mode inspector windows for blue scenes
// using Dear ImGui: a scene tree browser, a coroutine inspector and a
// performance stats window.
package debugui

import "github.com/NaxHPL/blue"

// Inspector bundles the standard debug windows for a scene.
type Inspector struct {
	Browser    *SceneBrowser
	Coroutines *CoroutineInspector
	Stats      *PerformanceStats
}

// NewInspector creates an inspector with all windows enabled.
func NewInspector() *Inspector {
	return &Inspector{
		Browser:    NewSceneBrowser(),
		Coroutines: NewCoroutineInspector(),
		Stats:      NewPerformanceStats(120),
	}
}

// Render draws every window. Call between the ImGui backend's frame begin and
// end.
func (in *Inspector) Render(scene *blue.Scene, deltaTime float32) {
	in.Browser.Render(scene)
	in.Coroutines.Render(scene.Coroutines())
	in.Stats.Render(scene, deltaTime)
}
