package blue

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// NineSliceRenderer stretches a texture over an arbitrary target size while
// keeping its border unscaled: corners are drawn 1:1, edges stretch along one
// axis, the center stretches along both.
type NineSliceRenderer struct {
	ComponentBase

	Texture *ebiten.Image
	// Left, Right, Top, Bottom are the border thicknesses in texels.
	Left, Right, Top, Bottom float64
	// Width, Height is the target size in world units.
	Width, Height float64

	mat *Material
}

// NewNineSliceRenderer creates a nine-slice for the given texture and uniform
// border thickness.
func NewNineSliceRenderer(tex *ebiten.Image, border float64) *NineSliceRenderer {
	n := &NineSliceRenderer{
		Texture: tex,
		Left:    border, Right: border, Top: border, Bottom: border,
	}
	if tex != nil {
		n.Width = float64(tex.Bounds().Dx())
		n.Height = float64(tex.Bounds().Dy())
	}
	return n
}

// SetMaterial sets the material. Nil means DefaultMaterial.
func (n *NineSliceRenderer) SetMaterial(mat *Material) { n.mat = mat }

// Material returns the material, or nil for the default.
func (n *NineSliceRenderer) Material() *Material { return n.mat }

// Bounds returns the world-space rectangle covered by the target size.
func (n *NineSliceRenderer) Bounds() Rect {
	e := n.Entity()
	if e == nil {
		return Rect{}
	}
	x, y := e.Transform.WorldPosition()
	return Rect{X: x, Y: y, W: n.Width, H: n.Height}
}

// Render draws the nine patches through the batch.
func (n *NineSliceRenderer) Render(b Batch) {
	e := n.Entity()
	if n.Texture == nil || e == nil || n.Width <= 0 || n.Height <= 0 {
		return
	}

	srcW := float64(n.Texture.Bounds().Dx())
	srcH := float64(n.Texture.Bounds().Dy())
	centerSrcW := srcW - n.Left - n.Right
	centerSrcH := srcH - n.Top - n.Bottom
	centerDstW := n.Width - n.Left - n.Right
	centerDstH := n.Height - n.Top - n.Bottom
	if centerSrcW <= 0 || centerSrcH <= 0 {
		return
	}

	world := e.Transform.Matrix()

	srcX := []float64{0, n.Left, srcW - n.Right}
	srcY := []float64{0, n.Top, srcH - n.Bottom}
	srcSW := []float64{n.Left, centerSrcW, n.Right}
	srcSH := []float64{n.Top, centerSrcH, n.Bottom}
	dstX := []float64{0, n.Left, n.Width - n.Right}
	dstY := []float64{0, n.Top, n.Height - n.Bottom}
	dstSW := []float64{n.Left, centerDstW, n.Right}
	dstSH := []float64{n.Top, centerDstH, n.Bottom}

	base := n.Texture.Bounds().Min
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if srcSW[col] <= 0 || srcSH[row] <= 0 || dstSW[col] <= 0 || dstSH[row] <= 0 {
				continue
			}
			patch := n.Texture.SubImage(rectAt(
				base.X, base.Y,
				srcX[col], srcY[row], srcSW[col], srcSH[row],
			)).(*ebiten.Image)

			var m ebiten.GeoM
			m.Scale(dstSW[col]/srcSW[col], dstSH[row]/srcSH[row])
			m.Translate(dstX[col], dstY[row])
			m.Concat(world)
			b.Draw(patch, m)
		}
	}
}

func rectAt(baseX, baseY int, x, y, w, h float64) image.Rectangle {
	return image.Rect(
		baseX+int(x), baseY+int(y),
		baseX+int(x+w), baseY+int(y+h),
	)
}
