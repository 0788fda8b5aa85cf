package systems

import (
	"math"

	"github.com/automoto/spacehog/components"
	"github.com/automoto/spacehog/config"
	"github.com/automoto/spacehog/gamemath"
	"github.com/yohamta/donburi"
)

// RequiredPoolSize is the bullet pool size that sustained fire at the
// fastest configured rate can never exhaust, given the longest time a
// bullet stays on screen.
func RequiredPoolSize(lifetimeSeconds float64) int {
	return PoolSizeFor(lifetimeSeconds, config.FastestFireRate().ShotsPerSecond())
}

// PoolSizeFor is floor(lifetime * rate * margin) + 1.
func PoolSizeFor(lifetimeSeconds, shotsPerSecond float64) int {
	return int(math.Floor(lifetimeSeconds*shotsPerSecond*config.Pools.SafetyMargin)) + 1
}

// BulletLifetime is how long a bullet of type t takes to cross a screen of
// the given height at the nominal tick rate.
func BulletLifetime(screenHeight float64, t config.BulletType) float64 {
	speed := math.Abs(t.Stats().Speed)
	return screenHeight / (speed * float64(config.C.TickRate))
}

// FireBullet activates the first inactive bullet in the bank, centred on x.
// It reports false and does nothing when every bullet is in flight.
func FireBullet(bank *components.BulletBankData, t config.BulletType, x, y float64) bool {
	for _, e := range bank.Bullets {
		b := components.Bullet.Get(e)
		if b.Active {
			continue
		}
		spawnBullet(e, b, t, x, y)
		return true
	}
	return false
}

func spawnBullet(e *donburi.Entry, b *components.BulletData, t config.BulletType, x, y float64) {
	stats := t.Stats()
	b.Type = t
	b.Damage = stats.Damage
	b.Pierces = stats.Pierces
	b.Speed = stats.Speed
	b.Active = true

	components.Sprite.Get(e).Asset = stats.Asset

	obj := components.Object.Get(e)
	obj.MoveTo(x-obj.W/2, y)
}

// UpdateBullets moves every active bullet and retires the ones that left
// the top or bottom of the screen.
func UpdateBullets(bank *components.BulletBankData, deltaMs int64, screenHeight float64) {
	nd := gamemath.NormalizedDelta(deltaMs, config.C.ReferenceFrameMs)
	for _, e := range bank.Bullets {
		b := components.Bullet.Get(e)
		if !b.Active {
			continue
		}
		obj := components.Object.Get(e)
		obj.Translate(0, b.Speed*nd)
		if obj.Y < -obj.H || obj.Y > screenHeight {
			deactivateBullet(e, b)
		}
	}
}

// OnBulletCollision retires a bullet after a hit unless it pierces.
func OnBulletCollision(e *donburi.Entry) {
	b := components.Bullet.Get(e)
	if !b.Pierces {
		deactivateBullet(e, b)
	}
}

func deactivateBullet(e *donburi.Entry, b *components.BulletData) {
	b.Active = false
	components.Object.Get(e).Park()
}

// BulletActive reports whether a pooled bullet is in flight.
func BulletActive(e *donburi.Entry) bool {
	return components.Bullet.Get(e).Active
}

// ActiveBullets appends the bank's in-flight bullets to dst.
func ActiveBullets(bank *components.BulletBankData, dst []*donburi.Entry) []*donburi.Entry {
	for _, e := range bank.Bullets {
		if components.Bullet.Get(e).Active {
			dst = append(dst, e)
		}
	}
	return dst
}

func CountActiveBullets(bank *components.BulletBankData) int {
	n := 0
	for _, e := range bank.Bullets {
		if components.Bullet.Get(e).Active {
			n++
		}
	}
	return n
}
