package systems

import (
	"math/rand"

	"github.com/automoto/spacehog/assets"
	"github.com/automoto/spacehog/components"
	"github.com/automoto/spacehog/config"
	"github.com/automoto/spacehog/gamemath"
	"github.com/automoto/spacehog/logger"
	"github.com/automoto/spacehog/systems/factory"
	"github.com/automoto/spacehog/tags"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// EnemyManager owns the fixed enemy pool and drives every enemy each tick.
type EnemyManager struct {
	world      donburi.World
	lib        *assets.Library
	scaler     *gamemath.Scaler
	rng        *rand.Rand
	strategies Strategies
	pool       []*donburi.Entry
}

func NewEnemyManager(w donburi.World, space *resolv.Space, lib *assets.Library, scaler *gamemath.Scaler, rng *rand.Rand, capacity int) *EnemyManager {
	m := &EnemyManager{
		world:      w,
		lib:        lib,
		scaler:     scaler,
		rng:        rng,
		strategies: NewStrategies(rng),
		pool:       make([]*donburi.Entry, 0, capacity),
	}
	width, height := m.enemySize(config.EnemyBlueBug)
	for i := 0; i < capacity; i++ {
		m.pool = append(m.pool, factory.CreateEnemy(w, space, width, height))
	}
	return m
}

// enemySize scales the type's virtual width and keeps the art's aspect ratio.
func (m *EnemyManager) enemySize(t config.EnemyType) (float64, float64) {
	typ := t.Config()
	width := m.scaler.ScaleX(typ.VirtualWidth)
	return width, width * m.lib.AspectRatio(typ.Asset, typ.FrameCount)
}

// Spawn reconfigures the first inactive enemy. When the pool is full the
// request is dropped and Spawn reports false.
func (m *EnemyManager) Spawn(t config.EnemyType, x, y float64, rate config.FireRate, pattern config.MovementPattern, speed config.MovementSpeed) bool {
	m.strategies.For(pattern)

	e := m.firstFree()
	if e == nil {
		logger.Log.WithFields(logrus.Fields{
			"enemy":   t.String(),
			"pattern": pattern.String(),
		}).Debug("enemy pool full, spawn dropped")
		return false
	}

	typ := t.Config()
	width, height := m.enemySize(t)

	components.Enemy.SetValue(e, components.EnemyData{
		Type:    t,
		Active:  true,
		Pattern: pattern,
		Speed:   speed.PixelsPerFrame(),
	})
	components.Health.SetValue(e, components.HealthData{Current: typ.Health, Max: typ.Health})
	components.Movement.Get(e).Reset()

	sprite := components.Sprite.Get(e)
	sprite.SetStrip(typ.Asset, typ.FrameCount, config.Enemy.AnimationDelayMs, typ.FrameCount > 1)
	if typ.FrameCount > 1 {
		sprite.Animation.Play()
	}

	obj := components.Object.Get(e)
	obj.W, obj.H = width, height
	obj.MoveTo(x, y)

	w := components.Weapon.Get(e)
	w.FireRate = rate
	w.CooldownMs = m.rng.Int63n(rate.DelayMs())
	return true
}

func (m *EnemyManager) firstFree() *donburi.Entry {
	for _, e := range m.pool {
		if !components.Enemy.Get(e).Active {
			return e
		}
	}
	return nil
}

// UpdateAll runs every pooled enemy. Bullets keep flying after their
// shooter is defeated.
func (m *EnemyManager) UpdateAll(deltaMs int64, screenHeight, screenWidth float64) {
	for _, e := range m.pool {
		UpdateBullets(components.BulletBank.Get(e), deltaMs, screenHeight)

		enemy := components.Enemy.Get(e)
		if !enemy.Active {
			continue
		}

		components.Sprite.Get(e).Animation.Update(deltaMs)
		TickCooldown(e, deltaMs)

		obj := components.Object.Get(e)
		if components.Weapon.Get(e).CooldownMs <= 0 && obj.Y > 0 {
			FireWeapon(e, config.BulletEnemyStandard)
		}

		strategy := m.strategies.For(enemy.Pattern)
		strategy.Update(e, deltaMs, screenHeight, screenWidth)
		m.wrap(e, strategy, screenHeight, screenWidth)
	}
}

// wrap sends an enemy that left the screen on any edge back to the top at
// a random x.
func (m *EnemyManager) wrap(e *donburi.Entry, strategy MovementStrategy, screenHeight, screenWidth float64) {
	obj := components.Object.Get(e)
	out := obj.Y > screenHeight ||
		obj.Y < -obj.H*2 ||
		obj.X < -obj.W ||
		obj.X > screenWidth
	if !out {
		return
	}
	obj.MoveTo(m.rng.Float64()*screenWidth, -obj.H)
	strategy.OnOutOfBounds(e)
}

// DamageEnemy applies damage to an active enemy. It reports true only on
// the hit that takes the enemy from active to defeated.
func DamageEnemy(e *donburi.Entry, amount int) bool {
	enemy := components.Enemy.Get(e)
	if !enemy.Active {
		return false
	}
	hp := components.Health.Get(e)
	hp.Current -= amount
	if hp.Current <= 0 {
		enemy.Active = false
		return true
	}
	return false
}

func EnemyActive(e *donburi.Entry) bool {
	return components.Enemy.Get(e).Active
}

// Pool returns every pooled enemy in slot order.
func (m *EnemyManager) Pool() []*donburi.Entry {
	return m.pool
}

// ActiveEnemies appends the active enemies to dst in slot order.
func (m *EnemyManager) ActiveEnemies(dst []*donburi.Entry) []*donburi.Entry {
	for _, e := range m.pool {
		if components.Enemy.Get(e).Active {
			dst = append(dst, e)
		}
	}
	return dst
}

func (m *EnemyManager) ActiveCount() int {
	n := 0
	tags.Enemy.Each(m.world, func(e *donburi.Entry) {
		if EnemyActive(e) {
			n++
		}
	})
	return n
}

// ActiveBulletCount counts enemy bullets in flight, including those whose
// shooter is gone.
func (m *EnemyManager) ActiveBulletCount() int {
	n := 0
	tags.EnemyBullet.Each(m.world, func(b *donburi.Entry) {
		if BulletActive(b) {
			n++
		}
	})
	return n
}
