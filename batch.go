package blue

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Batch is the narrow drawable-surface abstraction the renderer drives. The
// renderer guarantees the call order Clear, Begin, Draw..., Flush?, Draw...,
// End; a Flush is issued exactly when the material of the next draw differs
// from the batch's current material.
type Batch interface {
	// Clear fills the target with the given color.
	Clear(c color.Color)
	// Begin starts a batch with the given material and view transform.
	Begin(mat *Material, view ebiten.GeoM)
	// Draw draws an image with the given world transform under the current
	// material and view.
	Draw(img *ebiten.Image, transform ebiten.GeoM)
	// Flush ends the current batch and immediately begins a new one with the
	// given material, keeping the view transform.
	Flush(mat *Material, view ebiten.GeoM)
	// End ends the batch.
	End()
}

// SpriteBatch is the ebiten-backed Batch. Draw options are pooled and reused
// across draws.
type SpriteBatch struct {
	target *ebiten.Image
	mat    *Material
	view   ebiten.GeoM
	opts   *SharedPool[ebiten.DrawImageOptions]
}

// NewSpriteBatch creates a batch drawing onto target.
func NewSpriteBatch(target *ebiten.Image) *SpriteBatch {
	return &SpriteBatch{
		target: target,
		opts:   NewSharedPool[ebiten.DrawImageOptions](nil),
	}
}

// SetTarget redirects subsequent draws to a new target image.
func (b *SpriteBatch) SetTarget(target *ebiten.Image) {
	b.target = target
}

// Clear fills the target with the given color.
func (b *SpriteBatch) Clear(c color.Color) {
	b.target.Fill(c)
}

// Begin starts a batch with the given material and view transform.
func (b *SpriteBatch) Begin(mat *Material, view ebiten.GeoM) {
	if mat == nil {
		mat = DefaultMaterial
	}
	b.mat = mat
	b.view = view
}

// Draw draws img under the current material, composing the world transform
// with the view.
func (b *SpriteBatch) Draw(img *ebiten.Image, transform ebiten.GeoM) {
	if img == nil || b.mat == nil {
		return
	}
	transform.Concat(b.view)

	if b.mat.Shader != nil {
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		op := &ebiten.DrawRectShaderOptions{}
		op.GeoM = transform
		op.Blend = b.mat.Blend
		op.Images[0] = img
		op.Uniforms = b.mat.Uniforms
		b.target.DrawRectShader(w, h, b.mat.Shader, op)
		return
	}

	op := b.opts.Get()
	op.GeoM = transform
	op.Blend = b.mat.Blend
	op.Filter = b.mat.Filter
	b.target.DrawImage(img, op)
	*op = ebiten.DrawImageOptions{}
	b.opts.Put(op)
}

// Flush ends the current batch and begins a new one with the given material.
// Ebiten batches draw calls internally per state change, so flushing here is
// a state swap rather than an explicit submit.
func (b *SpriteBatch) Flush(mat *Material, view ebiten.GeoM) {
	if mat == nil {
		mat = DefaultMaterial
	}
	b.mat = mat
	b.view = view
}

// End ends the batch.
func (b *SpriteBatch) End() {
	b.mat = nil
}
