package scenes

import (
	"image"

	"github.com/automoto/spacehog/assets"
	"github.com/hajimehoshi/ebiten/v2"
)

type frameKey struct {
	id     assets.ID
	frames int
}

// imageCache uploads each library image once and slices strips into
// frames on first use.
type imageCache struct {
	lib    *assets.Library
	images map[assets.ID]*ebiten.Image
	frames map[frameKey][]*ebiten.Image
}

func newImageCache(lib *assets.Library) *imageCache {
	c := &imageCache{
		lib:    lib,
		images: make(map[assets.ID]*ebiten.Image, len(assets.All())),
		frames: make(map[frameKey][]*ebiten.Image),
	}
	for _, id := range assets.All() {
		c.images[id] = ebiten.NewImageFromImage(lib.Image(id))
	}
	return c
}

func (c *imageCache) frame(id assets.ID, frames, index int) *ebiten.Image {
	if frames < 1 {
		frames = 1
	}
	key := frameKey{id, frames}
	strip, ok := c.frames[key]
	if !ok {
		img := c.images[id]
		w := img.Bounds().Dx() / frames
		h := img.Bounds().Dy()
		strip = make([]*ebiten.Image, frames)
		for i := range strip {
			strip[i] = img.SubImage(image.Rect(i*w, 0, (i+1)*w, h)).(*ebiten.Image)
		}
		c.frames[key] = strip
	}
	if index < 0 || index >= len(strip) {
		index = len(strip) - 1
	}
	return strip[index]
}
