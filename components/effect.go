package components

import (
	"github.com/automoto/spacehog/config"
	"github.com/yohamta/donburi"
)

// EffectData is a pooled one-shot visual effect.
type EffectData struct {
	Type   config.EffectType
	Active bool
}

var Effect = donburi.NewComponentType[EffectData]()
