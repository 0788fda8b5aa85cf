package systems

import (
	"github.com/automoto/spacehog/components"
	"github.com/automoto/spacehog/config"
	"github.com/automoto/spacehog/logger"
	"github.com/automoto/spacehog/systems/factory"
	"github.com/automoto/spacehog/tags"
	"github.com/yohamta/donburi"
)

// EffectManager owns the pool of one-shot visual effects.
type EffectManager struct {
	world donburi.World
	pool  []*donburi.Entry
}

func NewEffectManager(w donburi.World, size float64, capacity int) *EffectManager {
	m := &EffectManager{world: w, pool: make([]*donburi.Entry, 0, capacity)}
	for i := 0; i < capacity; i++ {
		m.pool = append(m.pool, factory.CreateEffect(w, size))
	}
	return m
}

// Spawn plays an effect of type t centred on (cx, cy). A full pool drops
// the request.
func (m *EffectManager) Spawn(t config.EffectType, cx, cy float64) bool {
	for _, e := range m.pool {
		effect := components.Effect.Get(e)
		if effect.Active {
			continue
		}
		stats := t.Stats()
		effect.Type = t
		effect.Active = true

		sprite := components.Sprite.Get(e)
		sprite.SetStrip(stats.Asset, stats.FrameCount, stats.FrameDelayMs, false)
		sprite.Animation.Play()

		obj := components.Object.Get(e)
		obj.MoveTo(cx-obj.W/2, cy-obj.H/2)
		return true
	}
	logger.Log.Debug("effect pool full, spawn dropped")
	return false
}

// UpdateAll advances every active effect and retires the finished ones.
func (m *EffectManager) UpdateAll(deltaMs int64) {
	tags.Effect.Each(m.world, func(e *donburi.Entry) {
		effect := components.Effect.Get(e)
		if !effect.Active {
			return
		}
		sprite := components.Sprite.Get(e)
		sprite.Animation.Update(deltaMs)
		if sprite.Animation.Finished() {
			effect.Active = false
			components.Object.Get(e).Park()
		}
	})
}

func (m *EffectManager) Pool() []*donburi.Entry {
	return m.pool
}

func (m *EffectManager) ActiveCount() int {
	n := 0
	tags.Effect.Each(m.world, func(e *donburi.Entry) {
		if components.Effect.Get(e).Active {
			n++
		}
	})
	return n
}
