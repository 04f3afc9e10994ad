package blue_test

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/NaxHPL/blue"
)

// testUpdatable records the order it was updated in against a shared log.
type testUpdatable struct {
	blue.ComponentBase
	name string
	log  *[]string
	fn   func(frame *blue.UpdateFrame)
}

func newTestUpdatable(name string, order int, log *[]string) *testUpdatable {
	u := &testUpdatable{name: name, log: log}
	u.SetUpdateOrder(order)
	return u
}

func (u *testUpdatable) Update(frame *blue.UpdateFrame) {
	if u.log != nil {
		*u.log = append(*u.log, u.name)
	}
	if u.fn != nil {
		u.fn(frame)
	}
}

// testRenderable draws a marker through the batch so tests can assert batch
// call sequences.
type testRenderable struct {
	blue.ComponentBase
	name   string
	bounds blue.Rect
	mat    *blue.Material
}

func newTestRenderable(name string, order int, bounds blue.Rect, mat *blue.Material) *testRenderable {
	r := &testRenderable{name: name, bounds: bounds, mat: mat}
	r.SetRenderOrder(order)
	return r
}

func (r *testRenderable) Bounds() blue.Rect        { return r.bounds }
func (r *testRenderable) Material() *blue.Material { return r.mat }
func (r *testRenderable) Render(b blue.Batch)      { b.Draw(nil, ebitenIdentity()) }

// recordingBatch records the renderer's call sequence.
type recordingBatch struct {
	calls []string
	mats  []*blue.Material
}

func (b *recordingBatch) Clear(c color.Color) {
	b.calls = append(b.calls, "clear")
}

func (b *recordingBatch) Begin(mat *blue.Material, view ebiten.GeoM) {
	b.calls = append(b.calls, fmt.Sprintf("begin:%s", b.matName(mat)))
}

func (b *recordingBatch) Draw(img *ebiten.Image, transform ebiten.GeoM) {
	b.calls = append(b.calls, "draw")
}

func (b *recordingBatch) Flush(mat *blue.Material, view ebiten.GeoM) {
	b.calls = append(b.calls, fmt.Sprintf("flush:%s", b.matName(mat)))
}

func (b *recordingBatch) End() {
	b.calls = append(b.calls, "end")
}

func (b *recordingBatch) matName(mat *blue.Material) string {
	for i, m := range b.mats {
		if m == mat {
			return fmt.Sprintf("M%d", i+1)
		}
	}
	if mat == blue.DefaultMaterial {
		return "default"
	}
	return "?"
}

func ebitenIdentity() ebiten.GeoM {
	var m ebiten.GeoM
	return m
}
