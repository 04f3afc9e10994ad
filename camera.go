package blue

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Camera defines what the renderer sees: a world-space viewport used for
// culling, a view matrix applied to every batch, and the color the target is
// cleared to before anything is drawn.
type Camera struct {
	// X, Y is the world position of the viewport center.
	X, Y float64
	// Width, Height is the viewport size in pixels at zoom 1.
	Width, Height float64
	Zoom          float64

	BackgroundColor color.Color
}

// NewCamera creates a camera centered at the origin with the given viewport
// size, zoom 1 and a black background.
func NewCamera(width, height float64) *Camera {
	return &Camera{
		Width:           width,
		Height:          height,
		Zoom:            1,
		BackgroundColor: color.Black,
	}
}

// Bounds returns the world-space rectangle visible through the camera.
func (c *Camera) Bounds() Rect {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	w := c.Width / zoom
	h := c.Height / zoom
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Matrix returns the world-to-screen view matrix the batch is begun with.
func (c *Camera) Matrix() ebiten.GeoM {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	var m ebiten.GeoM
	m.Translate(-c.X, -c.Y)
	m.Scale(zoom, zoom)
	m.Translate(c.Width/2, c.Height/2)
	return m
}
