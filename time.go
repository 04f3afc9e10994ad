package blue

// Time is the per-frame time source supplied by the host loop. Step is called
// once at the start of every frame with the raw delta; consumers read the
// scaled or unscaled delta from the resulting UpdateFrame.
type Time struct {
	timeScale float64
	delta     float64
	rawDelta  float64
	elapsed   float64
	frame     uint64
}

// NewTime creates a time source with a time scale of 1.
func NewTime() *Time {
	return &Time{timeScale: 1}
}

// Step advances the clock by the raw frame delta, in seconds.
func (t *Time) Step(raw float64) {
	t.rawDelta = raw
	t.delta = raw * t.timeScale
	t.elapsed += t.delta
	t.frame++
}

// TimeScale returns the current time scale.
func (t *Time) TimeScale() float64 { return t.timeScale }

// SetTimeScale changes the scale applied to DeltaTime. RawDeltaTime is never
// scaled.
func (t *Time) SetTimeScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	t.timeScale = scale
}

// DeltaTime returns the scaled delta of the current frame, in seconds.
func (t *Time) DeltaTime() float64 { return t.delta }

// RawDeltaTime returns the unscaled delta of the current frame, in seconds.
func (t *Time) RawDeltaTime() float64 { return t.rawDelta }

// Elapsed returns the total scaled time since the clock started.
func (t *Time) Elapsed() float64 { return t.elapsed }

// FrameCount returns the number of Step calls so far.
func (t *Time) FrameCount() uint64 { return t.frame }

// Frame returns an UpdateFrame for the current tick, bound to scene.
func (t *Time) Frame(scene *Scene) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime:    t.delta,
		RawDeltaTime: t.rawDelta,
		Scene:        scene,
	}
}
