package world

import (
	"slices"

	"github.com/automoto/spacehog/components"
	"github.com/automoto/spacehog/config"
	"github.com/automoto/spacehog/systems"
	"github.com/automoto/spacehog/tags"
	"github.com/yohamta/donburi"
)

// checkCollisions runs after everything has moved. The three passes are
// ordered: a fatal hit on the player ends the frame's collision work.
func (g *GameWorld) checkCollisions() {
	g.playerBulletsVsEnemies()

	if systems.PlayerLifeState(g.player) != config.Alive {
		return
	}
	if g.enemyBulletsVsPlayer() {
		return
	}
	g.enemiesVsPlayer()
}

// playerBulletsVsEnemies scans every active player bullet against every
// active enemy in pool order. Bullets that start partly off-screen can
// still hit, so this pass does not use the broad phase.
func (g *GameWorld) playerBulletsVsEnemies() {
	g.playerBullets = systems.ActiveBullets(components.BulletBank.Get(g.player), g.playerBullets[:0])
	g.activeEnemies = g.enemies.ActiveEnemies(g.activeEnemies[:0])

	for _, b := range g.playerBullets {
		box := components.Object.Get(b).AABB()
		damage := components.Bullet.Get(b).Damage
		for _, e := range g.activeEnemies {
			if systems.EnemyActive(e) && box.Overlaps(components.Object.Get(e).AABB()) {
				systems.OnBulletCollision(b)
				if systems.DamageEnemy(e, damage) {
					g.onEnemyDefeated(e)
				}
			}
			if !systems.BulletActive(b) {
				break
			}
		}
	}
}

// enemyBulletsVsPlayer reports true if the player was destroyed.
func (g *GameWorld) enemyBulletsVsPlayer() bool {
	obj := components.Object.Get(g.player)
	for _, b := range g.nearPlayer(tags.ResolvEnemyBullet) {
		if !systems.BulletActive(b) {
			continue
		}
		if !obj.AABB().Overlaps(components.Object.Get(b).AABB()) {
			continue
		}
		damage := components.Bullet.Get(b).Damage
		systems.OnBulletCollision(b)
		if systems.DamagePlayer(g.player, damage) {
			g.onPlayerDestroyed()
			return true
		}
	}
	return false
}

// enemiesVsPlayer applies contact damage to both sides of every ram.
func (g *GameWorld) enemiesVsPlayer() {
	obj := components.Object.Get(g.player)
	for _, e := range g.nearPlayer(tags.ResolvEnemy) {
		if !systems.EnemyActive(e) {
			continue
		}
		if !obj.AABB().Overlaps(components.Object.Get(e).AABB()) {
			continue
		}
		playerDestroyed := systems.DamagePlayer(g.player, config.Collision.ContactDamage)
		if systems.DamageEnemy(e, config.Collision.ContactDamage) {
			g.onEnemyDefeated(e)
		}
		if playerDestroyed {
			g.onPlayerDestroyed()
			return
		}
	}
}

// nearPlayer returns the entries tagged tag in the cells around the player.
// The cell range is grown by one on every side: resolv maps an object to
// cells through X+W-1, so a box overlapping the player by under a pixel
// across a cell edge lands in a neighbouring cell. Each object is
// returned once even when it spans several cells.
func (g *GameWorld) nearPlayer(tag string) []*donburi.Entry {
	cx, cy, ex, ey := components.Object.Get(g.player).BoundsToSpace(0, 0)

	g.nearby = g.nearby[:0]
	g.seen = g.seen[:0]
	for ix := cx - 1; ix <= ex+1; ix++ {
		for iy := cy - 1; iy <= ey+1; iy++ {
			cell := g.space.Cell(ix, iy)
			if cell == nil || !cell.ContainsTags(tag) {
				continue
			}
			for _, o := range cell.Objects {
				if !o.HasTags(tag) || slices.Contains(g.seen, o) {
					continue
				}
				g.seen = append(g.seen, o)
				if e, ok := o.Data.(*donburi.Entry); ok {
					g.nearby = append(g.nearby, e)
				}
			}
		}
	}
	return g.nearby
}

// onEnemyDefeated is the single defeat path for bullets and rams alike.
func (g *GameWorld) onEnemyDefeated(e *donburi.Entry) {
	g.score += components.Enemy.Get(e).Type.Config().Score

	obj := components.Object.Get(e)
	c := obj.MidPoint()
	g.effects.Spawn(config.EffectEnemyExplosion, c.X, c.Y)
	g.levels.OnEnemyDefeated()
	obj.Park()
}

func (g *GameWorld) onPlayerDestroyed() {
	c := components.Object.Get(g.player).MidPoint()
	g.effects.Spawn(config.EffectPlayerExplosion, c.X, c.Y)
}
