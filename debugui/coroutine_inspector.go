package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/NaxHPL/blue"
)

// CoroutineInspector lists live coroutines with their tag, pause state and
// the yield instruction they are suspended on, with per-row pause/stop
// controls.
type CoroutineInspector struct{}

// NewCoroutineInspector creates an inspector.
func NewCoroutineInspector() *CoroutineInspector {
	return &CoroutineInspector{}
}

// Render draws the inspector window.
func (ci *CoroutineInspector) Render(s *blue.CoroutineScheduler) {
	if !imgui.BeginV("Coroutines", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := s.Stats()
	imgui.Text(fmt.Sprintf("Live: %d  Advanced: %d  Last tick: %s",
		stats.Live, stats.Advanced, stats.LastDuration))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("CoroutineTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Tag")
		imgui.TableSetupColumn("State")
		imgui.TableSetupColumn("Waiting On")
		imgui.TableSetupColumn("Actions")
		imgui.TableHeadersRow()

		row := 0
		s.Each(func(co *blue.Coroutine) bool {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			tag := co.Tag()
			if tag == "" {
				tag = "(untagged)"
			}
			imgui.Text(tag)

			imgui.TableNextColumn()
			if co.Paused() {
				imgui.Text("paused")
			} else {
				imgui.Text("running")
			}

			imgui.TableNextColumn()
			if cur := co.Current(); cur != nil {
				imgui.Text(cur.Kind().String())
			} else {
				imgui.Text("-")
			}

			imgui.TableNextColumn()
			if co.Paused() {
				if imgui.Button(fmt.Sprintf("Resume##%d", row)) {
					co.Resume()
				}
			} else {
				if imgui.Button(fmt.Sprintf("Pause##%d", row)) {
					co.Pause()
				}
			}
			imgui.SameLine()
			if imgui.Button(fmt.Sprintf("Stop##%d", row)) {
				co.Stop()
			}

			row++
			return true
		})

		imgui.EndTable()
	}

	imgui.End()
}
