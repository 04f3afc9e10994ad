package blue

import "github.com/hajimehoshi/ebiten/v2"

// Material describes the draw state a batch is begun with. Two renderables
// share a batch only if they reference the same Material; identity is by
// pointer, never by field comparison.
type Material struct {
	Blend   ebiten.Blend
	Filter  ebiten.Filter
	Address ebiten.Address

	// Shader, when non-nil, replaces the fixed-function pipeline for every
	// draw in the batch.
	Shader   *ebiten.Shader
	Uniforms map[string]any
}

// DefaultMaterial is used for renderables whose Material() returns nil.
var DefaultMaterial = &Material{
	Blend:  ebiten.BlendSourceOver,
	Filter: ebiten.FilterNearest,
}

// NewMaterial creates a material with the default blend and filter.
func NewMaterial() *Material {
	return &Material{
		Blend:  ebiten.BlendSourceOver,
		Filter: ebiten.FilterNearest,
	}
}
