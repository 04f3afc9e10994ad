package blue

import "github.com/hajimehoshi/ebiten/v2"

// Transform is an entity's spatial state: position, rotation and scale
// relative to its parent entity.
type Transform struct {
	X, Y     float64
	Rotation float64 // radians
	ScaleX   float64
	ScaleY   float64

	entity *Entity
}

func newTransform(e *Entity) Transform {
	return Transform{ScaleX: 1, ScaleY: 1, entity: e}
}

// SetPosition sets the local position.
func (t *Transform) SetPosition(x, y float64) {
	t.X, t.Y = x, y
}

// SetScale sets a uniform local scale.
func (t *Transform) SetScale(s float64) {
	t.ScaleX, t.ScaleY = s, s
}

// LocalMatrix returns the transform relative to the parent entity.
func (t *Transform) LocalMatrix() ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(t.ScaleX, t.ScaleY)
	m.Rotate(t.Rotation)
	m.Translate(t.X, t.Y)
	return m
}

// Matrix returns the world transform, composing the local matrix with every
// ancestor's.
func (t *Transform) Matrix() ebiten.GeoM {
	m := t.LocalMatrix()
	if t.entity == nil {
		return m
	}
	for p := t.entity.parent; p != nil; p = p.parent {
		m.Concat(p.Transform.LocalMatrix())
	}
	return m
}

// WorldPosition returns the entity's origin in world space.
func (t *Transform) WorldPosition() (float64, float64) {
	m := t.Matrix()
	return m.Apply(0, 0)
}
