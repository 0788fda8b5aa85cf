package factory

import (
	"github.com/automoto/spacehog/archetypes"
	"github.com/automoto/spacehog/components"
	"github.com/automoto/spacehog/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateEffect pre-allocates one inactive pooled effect. Effects never
// collide, so their objects stay out of the collision space.
func CreateEffect(w donburi.World, size float64) *donburi.Entry {
	effect := archetypes.Effect.Spawn(w)

	obj := resolv.NewObject(components.ParkX, components.ParkY, size, size)
	obj.Data = effect
	components.Object.SetValue(effect, components.ObjectData{Object: obj})

	stats := config.EffectEnemyExplosion.Stats()
	components.Effect.SetValue(effect, components.EffectData{Type: config.EffectEnemyExplosion})

	sprite := components.SpriteData{}
	sprite.SetStrip(stats.Asset, stats.FrameCount, stats.FrameDelayMs, false)
	components.Sprite.SetValue(effect, sprite)

	return effect
}
