package blue_test

import (
	"bytes"
	"image"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"

	"github.com/NaxHPL/blue"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestContent(t *testing.T) {
	fsys := fstest.MapFS{
		"textures/hero.png": {Data: pngBytes(t, 4, 8)},
		"textures/bad.png":  {Data: []byte("not an image")},
	}

	t.Run("loads and caches textures", func(t *testing.T) {
		c := blue.NewContent(fsys)
		tex, err := c.LoadTexture("textures/hero.png")
		assert.NoError(t, err)
		assert.Equal(t, 4, tex.Bounds().Dx())
		assert.Equal(t, 8, tex.Bounds().Dy())

		again, err := c.LoadTexture("textures/hero.png")
		assert.NoError(t, err)
		assert.Same(t, tex, again, "second load must hit the cache")
		assert.Equal(t, 1, c.Loaded())
	})

	t.Run("missing file", func(t *testing.T) {
		c := blue.NewContent(fsys)
		_, err := c.LoadTexture("textures/ghost.png")
		assert.Error(t, err)
	})

	t.Run("undecodable file", func(t *testing.T) {
		c := blue.NewContent(fsys)
		_, err := c.LoadTexture("textures/bad.png")
		assert.Error(t, err)
	})

	t.Run("unload drops the cache entry", func(t *testing.T) {
		c := blue.NewContent(fsys)
		_, err := c.LoadTexture("textures/hero.png")
		assert.NoError(t, err)

		c.Unload("textures/hero.png")
		assert.Zero(t, c.Loaded())
	})
}
