package blue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NaxHPL/blue"
)

func testCamera() *blue.Camera {
	cam := blue.NewCamera(100, 100)
	cam.X, cam.Y = 50, 50
	return cam
}

func TestRendererBatching(t *testing.T) {
	t.Run("flushes exactly on material transitions", func(t *testing.T) {
		m1 := blue.NewMaterial()
		m2 := blue.NewMaterial()
		batch := &recordingBatch{mats: []*blue.Material{m1, m2}}

		rd := blue.NewRenderer()
		rd.Register(newTestRenderable("X", 0, blue.NewRect(0, 0, 10, 10), m1))
		rd.Register(newTestRenderable("Y", 1, blue.NewRect(20, 20, 10, 10), m2))

		rd.Render(testCamera(), batch)

		want := []string{"clear", "begin:M1", "draw", "flush:M2", "draw", "end"}
		assert.Equal(t, want, batch.calls)
		assert.Equal(t, 1, rd.Stats().Flushes)
	})

	t.Run("shared material shares one batch", func(t *testing.T) {
		m1 := blue.NewMaterial()
		batch := &recordingBatch{mats: []*blue.Material{m1}}

		rd := blue.NewRenderer()
		for i := range 3 {
			rd.Register(newTestRenderable("R", i, blue.NewRect(0, 0, 10, 10), m1))
		}
		rd.Render(testCamera(), batch)

		want := []string{"clear", "begin:M1", "draw", "draw", "draw", "end"}
		assert.Equal(t, want, batch.calls)
	})

	t.Run("nil material falls back to the default", func(t *testing.T) {
		batch := &recordingBatch{}

		rd := blue.NewRenderer()
		rd.Register(newTestRenderable("X", 0, blue.NewRect(0, 0, 10, 10), nil))
		rd.Render(testCamera(), batch)

		want := []string{"clear", "begin:default", "draw", "end"}
		assert.Equal(t, want, batch.calls)
	})

	t.Run("identical-looking materials are distinct by pointer", func(t *testing.T) {
		m1 := blue.NewMaterial()
		m2 := blue.NewMaterial()
		batch := &recordingBatch{mats: []*blue.Material{m1, m2}}

		rd := blue.NewRenderer()
		rd.Register(newTestRenderable("X", 0, blue.NewRect(0, 0, 10, 10), m1))
		rd.Register(newTestRenderable("Y", 1, blue.NewRect(0, 0, 10, 10), m2))
		rd.Render(testCamera(), batch)

		assert.Equal(t, 1, rd.Stats().Flushes, "equal field values must still flush")
	})
}

func TestRendererCulling(t *testing.T) {
	t.Run("members outside the camera are not drawn", func(t *testing.T) {
		m1 := blue.NewMaterial()
		batch := &recordingBatch{mats: []*blue.Material{m1}}

		rd := blue.NewRenderer()
		rd.Register(newTestRenderable("in", 0, blue.NewRect(10, 10, 10, 10), m1))
		rd.Register(newTestRenderable("out", 1, blue.NewRect(500, 500, 10, 10), m1))
		rd.Render(testCamera(), batch)

		want := []string{"clear", "begin:M1", "draw", "end"}
		assert.Equal(t, want, batch.calls)
		assert.Equal(t, 1, rd.Stats().Visible)
	})

	t.Run("inactive members are not drawn", func(t *testing.T) {
		batch := &recordingBatch{}

		rd := blue.NewRenderer()
		r := newTestRenderable("X", 0, blue.NewRect(0, 0, 10, 10), nil)
		r.SetEnabled(false)
		rd.Register(r)
		rd.Render(testCamera(), batch)

		assert.Equal(t, []string{"clear"}, batch.calls)
	})

	t.Run("background is cleared even with nothing visible", func(t *testing.T) {
		batch := &recordingBatch{}
		rd := blue.NewRenderer()
		rd.Render(testCamera(), batch)

		assert.Equal(t, []string{"clear"}, batch.calls, "no begin/end without a visible member")
	})
}

func TestRendererOrdering(t *testing.T) {
	m1 := blue.NewMaterial()
	m2 := blue.NewMaterial()

	// M1, M2, M1 in render order forces two flushes; sorting by render order
	// is what keeps the flush count minimal for sorted materials.
	batch := &recordingBatch{mats: []*blue.Material{m1, m2}}
	rd := blue.NewRenderer()
	rd.Register(newTestRenderable("c", 2, blue.NewRect(0, 0, 10, 10), m1))
	rd.Register(newTestRenderable("a", 0, blue.NewRect(0, 0, 10, 10), m1))
	rd.Register(newTestRenderable("b", 1, blue.NewRect(0, 0, 10, 10), m2))
	rd.Render(testCamera(), batch)

	want := []string{"clear", "begin:M1", "draw", "flush:M2", "draw", "flush:M1", "draw", "end"}
	assert.Equal(t, want, batch.calls)

	t.Run("render order change needs ApplyRenderOrderChanges", func(t *testing.T) {
		batch := &recordingBatch{mats: []*blue.Material{m1, m2}}
		rd := blue.NewRenderer()
		x := newTestRenderable("x", 0, blue.NewRect(0, 0, 10, 10), m1)
		y := newTestRenderable("y", 1, blue.NewRect(0, 0, 10, 10), m2)
		rd.Register(x)
		rd.Register(y)
		rd.Render(testCamera(), batch)

		x.SetRenderOrder(5)
		batch.calls = nil
		rd.Render(testCamera(), batch)
		assert.Equal(t, "begin:M1", batch.calls[1], "order must be stable without an explicit apply")

		rd.ApplyRenderOrderChanges()
		batch.calls = nil
		rd.Render(testCamera(), batch)
		assert.Equal(t, "begin:M2", batch.calls[1])
	})
}
