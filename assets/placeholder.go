package assets

import (
	"image"
	"image/color"
)

type placeholderStrip struct {
	frameW, frameH int
	frames         int
	fill           color.RGBA
}

var placeholders = [idCount]placeholderStrip{
	PlayerShip:          {96, 120, 1, color.RGBA{0x3d, 0xd6, 0xf5, 0xff}},
	CapturedShip:        {96, 120, 1, color.RGBA{0xd6, 0x3d, 0xf5, 0xff}},
	BlueBug:             {64, 56, 1, color.RGBA{0x40, 0x70, 0xff, 0xff}},
	RedBug:              {64, 56, 2, color.RGBA{0xff, 0x40, 0x40, 0xff}},
	YellowBug:           {64, 56, 2, color.RGBA{0xff, 0xd8, 0x30, 0xff}},
	Commander1:          {80, 72, 2, color.RGBA{0x30, 0xe0, 0x70, 0xff}},
	Commander2:          {80, 72, 2, color.RGBA{0xe0, 0x80, 0x30, 0xff}},
	PlayerBullet:        {10, 30, 1, color.RGBA{0xff, 0xff, 0xff, 0xff}},
	EnemyBullet:         {10, 30, 1, color.RGBA{0xff, 0x90, 0x90, 0xff}},
	PiercingBullet:      {10, 30, 1, color.RGBA{0x90, 0xff, 0xff, 0xff}},
	PowerUpItemPiercing: {48, 48, 1, color.RGBA{0x90, 0xff, 0xff, 0xff}},
	HUDIconPiercing:     {32, 32, 1, color.RGBA{0x90, 0xff, 0xff, 0xff}},
	PowerUpItemMissile:  {48, 48, 1, color.RGBA{0xff, 0xa0, 0x40, 0xff}},
	HUDIconMissile:      {32, 32, 1, color.RGBA{0xff, 0xa0, 0x40, 0xff}},
	PowerUpItemLaser:    {48, 48, 1, color.RGBA{0xff, 0x40, 0xa0, 0xff}},
	HUDIconLaser:        {32, 32, 1, color.RGBA{0xff, 0x40, 0xa0, 0xff}},
	ExplosionEnemy:      {64, 64, 5, color.RGBA{0xff, 0xb0, 0x30, 0xff}},
	ExplosionPlayer:     {64, 64, 4, color.RGBA{0xff, 0x60, 0x20, 0xff}},
}

// PlaceholderProvider draws flat sprite strips so the game runs without art.
// Each frame of a strip is slightly darker than the last, which keeps
// animations visible.
type PlaceholderProvider struct{}

func (PlaceholderProvider) Image(id ID) (image.Image, error) {
	strip := placeholders[id]
	img := image.NewRGBA(image.Rect(0, 0, strip.frameW*strip.frames, strip.frameH))
	for f := 0; f < strip.frames; f++ {
		c := shade(strip.fill, f)
		for y := 0; y < strip.frameH; y++ {
			for x := f * strip.frameW; x < (f+1)*strip.frameW; x++ {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img, nil
}

func shade(c color.RGBA, step int) color.RGBA {
	k := 1 - 0.15*float64(step)
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}
