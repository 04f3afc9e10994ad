package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/NaxHPL/blue"
)

// PerformanceStats plots frame times and shows the schedulers' last-pass
// statistics.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// NewPerformanceStats creates a stats window keeping the given number of
// frame samples.
func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Render draws the stats window.
func (ps *PerformanceStats) Render(scene *blue.Scene, deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	imgui.Text(fmt.Sprintf("Entities: %d", scene.EntityCount()))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Updater") {
		s := scene.Updater().Stats()
		imgui.BulletText(fmt.Sprintf("Live: %d", s.Live))
		imgui.BulletText(fmt.Sprintf("Updated: %d", s.Updated))
		imgui.BulletText(fmt.Sprintf("Last pass: %s", s.LastDuration))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Renderer") {
		s := scene.Renderer().Stats()
		imgui.BulletText(fmt.Sprintf("Live: %d", s.Live))
		imgui.BulletText(fmt.Sprintf("Visible: %d", s.Visible))
		imgui.BulletText(fmt.Sprintf("Flushes: %d", s.Flushes))
		imgui.BulletText(fmt.Sprintf("Last pass: %s", s.LastDuration))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Coroutines") {
		s := scene.Coroutines().Stats()
		imgui.BulletText(fmt.Sprintf("Live: %d", s.Live))
		imgui.BulletText(fmt.Sprintf("Advanced: %d", s.Advanced))
		imgui.BulletText(fmt.Sprintf("Last tick: %s", s.LastDuration))
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures the wall-clock delta between Render calls for feeding
// PerformanceStats.
type FrameTimer struct {
	lastFrameTime time.Time
}

// NewFrameTimer creates a timer starting now.
func NewFrameTimer() *FrameTimer {
	return &FrameTimer{lastFrameTime: time.Now()}
}

// GetDeltaTime returns the seconds since the previous call.
func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
