package components

import (
	"github.com/automoto/spacehog/assets"
	"github.com/automoto/spacehog/assets/animations"
	"github.com/yohamta/donburi"
)

// SpriteData says which image strip an entity draws and which frame of it.
type SpriteData struct {
	Asset     assets.ID
	Frames    int
	Animation *animations.Animation
}

// Frame is the strip index to draw this tick.
func (s *SpriteData) Frame() int {
	if s.Animation == nil {
		return 0
	}
	return s.Animation.Frame()
}

// SetStrip swaps in a new image strip and rewinds the animation.
func (s *SpriteData) SetStrip(asset assets.ID, frames int, frameDelayMs int64, loops bool) {
	s.Asset = asset
	s.Frames = frames
	if s.Animation == nil {
		s.Animation = animations.NewAnimation(0, frames-1, frameDelayMs, loops)
		return
	}
	s.Animation.Reset(0, frames-1, frameDelayMs, loops)
}

var Sprite = donburi.NewComponentType[SpriteData]()
