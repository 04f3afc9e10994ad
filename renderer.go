package blue

import (
	"cmp"
	"time"
)

// RendererStats provides statistics about the last render pass.
type RendererStats struct {
	Live         int
	Visible      int
	Flushes      int
	LastDuration time.Duration
}

// Renderer maintains the active, order-sorted set of renderable components,
// culls them against the camera and draws them through a batch, flushing
// exactly when the material changes between consecutive visible members.
type Renderer struct {
	reg   *registry[Renderable]
	stats RendererStats
}

// NewRenderer creates an empty renderer.
func NewRenderer() *Renderer {
	return &Renderer{reg: newRegistry[Renderable]()}
}

// Register stages r for addition at the next Render. Registering a
// renderable that is pending removal cancels the removal. Returns false for
// nil or already-registered members.
func (rd *Renderer) Register(r Renderable) bool {
	if r == nil {
		return false
	}
	r.base().ensureID()
	return rd.reg.register(r)
}

// Unregister stages r for removal at the next Render. Unregistering a
// pending addition cancels it.
func (rd *Renderer) Unregister(r Renderable) bool {
	if r == nil {
		return false
	}
	return rd.reg.unregister(r)
}

// Contains reports whether r is live or staged for addition.
func (rd *Renderer) Contains(r Renderable) bool {
	if r == nil {
		return false
	}
	return rd.reg.contains(r)
}

// ApplyRenderOrderChanges marks the order dirty so the next Render re-sorts.
func (rd *Renderer) ApplyRenderOrderChanges() {
	rd.reg.markDirty()
}

// Render applies pending changes, sorts by ascending render order, clears the
// camera's background color and draws every visible active member. The batch
// is begun with the first visible member's material and flushed only on
// material transitions, so consecutive members sharing a material share one
// batch.
func (rd *Renderer) Render(cam *Camera, batch Batch) {
	start := time.Now()

	rd.reg.commit(nil)
	rd.reg.ensureSorted(func(a, b Renderable) int {
		return cmp.Compare(a.base().renderOrder, b.base().renderOrder)
	})

	batch.Clear(cam.BackgroundColor)

	camBounds := cam.Bounds()
	view := cam.Matrix()

	var current *Material
	begun := false
	visible := 0
	flushes := 0

	for _, r := range rd.reg.live {
		if !r.base().ActiveInHierarchy() {
			continue
		}
		if !r.Bounds().Intersects(camBounds) {
			continue
		}
		visible++

		mat := r.Material()
		if mat == nil {
			mat = DefaultMaterial
		}
		if !begun {
			batch.Begin(mat, view)
			current = mat
			begun = true
		} else if mat != current {
			batch.Flush(mat, view)
			current = mat
			flushes++
		}
		r.Render(batch)
	}

	if begun {
		batch.End()
	}

	rd.stats = RendererStats{
		Live:         rd.reg.liveLen(),
		Visible:      visible,
		Flushes:      flushes,
		LastDuration: time.Since(start),
	}
}

// Stats returns statistics about the last render pass.
func (rd *Renderer) Stats() RendererStats {
	return rd.stats
}
