package blue

import "github.com/hajimehoshi/ebiten/v2"

// SpriteRenderer draws a texture at its entity's transform. It is the
// baseline renderable: bounds follow the transform, the material defaults to
// DefaultMaterial when unset.
type SpriteRenderer struct {
	ComponentBase

	Texture *ebiten.Image
	// OriginX, OriginY is the pivot inside the texture, in texels.
	OriginX, OriginY float64

	mat *Material
}

// NewSpriteRenderer creates a sprite for the given texture.
func NewSpriteRenderer(tex *ebiten.Image) *SpriteRenderer {
	return &SpriteRenderer{Texture: tex}
}

// SetMaterial sets the sprite's material. Nil means DefaultMaterial.
func (s *SpriteRenderer) SetMaterial(mat *Material) { s.mat = mat }

// Material returns the sprite's material, or nil for the default.
func (s *SpriteRenderer) Material() *Material { return s.mat }

// Bounds returns the world-space rectangle covered by the texture. Rotation
// is folded in conservatively by taking the transformed corners' extents.
func (s *SpriteRenderer) Bounds() Rect {
	if s.Texture == nil {
		return Rect{}
	}
	e := s.Entity()
	if e == nil {
		return Rect{}
	}
	w := float64(s.Texture.Bounds().Dx())
	h := float64(s.Texture.Bounds().Dy())
	m := e.Transform.Matrix()

	x0, y0 := m.Apply(-s.OriginX, -s.OriginY)
	x1, y1 := m.Apply(w-s.OriginX, -s.OriginY)
	x2, y2 := m.Apply(-s.OriginX, h-s.OriginY)
	x3, y3 := m.Apply(w-s.OriginX, h-s.OriginY)

	minX := min(x0, x1, x2, x3)
	minY := min(y0, y1, y2, y3)
	maxX := max(x0, x1, x2, x3)
	maxY := max(y0, y1, y2, y3)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Render draws the texture through the batch.
func (s *SpriteRenderer) Render(b Batch) {
	if s.Texture == nil {
		return
	}
	e := s.Entity()
	if e == nil {
		return
	}
	var m ebiten.GeoM
	m.Translate(-s.OriginX, -s.OriginY)
	m.Concat(e.Transform.Matrix())
	b.Draw(s.Texture, m)
}
