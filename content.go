package blue

import (
	"fmt"
	"image"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"

	// Texture decoders beyond the stdlib set.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Content loads and caches textures by name from a file system. It is the
// narrow asset-loader collaborator: the engine core addresses assets by
// string name and never touches files itself.
type Content struct {
	fsys     fs.FS
	textures map[string]*ebiten.Image
}

// NewContent creates a content loader over the given file system.
func NewContent(fsys fs.FS) *Content {
	return &Content{
		fsys:     fsys,
		textures: make(map[string]*ebiten.Image),
	}
}

// LoadTexture returns the texture with the given name, loading and caching it
// on first use. Supported formats: png, jpeg, bmp, tiff, webp.
func (c *Content) LoadTexture(name string) (*ebiten.Image, error) {
	if tex, ok := c.textures[name]; ok {
		return tex, nil
	}

	f, err := c.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("content: open texture %q: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("content: decode texture %q: %w", name, err)
	}

	tex := ebiten.NewImageFromImage(img)
	c.textures[name] = tex
	return tex, nil
}

// Unload drops the named texture from the cache and releases its image.
func (c *Content) Unload(name string) {
	if tex, ok := c.textures[name]; ok {
		tex.Deallocate()
		delete(c.textures, name)
	}
}

// UnloadAll drops every cached texture.
func (c *Content) UnloadAll() {
	for name, tex := range c.textures {
		tex.Deallocate()
		delete(c.textures, name)
	}
}

// Loaded returns the number of cached textures.
func (c *Content) Loaded() int {
	return len(c.textures)
}
