package factory

import (
	"github.com/automoto/spacehog/archetypes"
	"github.com/automoto/spacehog/components"
	"github.com/automoto/spacehog/config"
	"github.com/automoto/spacehog/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateEnemy pre-allocates one inactive pooled enemy with its own bullets.
func CreateEnemy(w donburi.World, space *resolv.Space, width, height float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)

	obj := resolv.NewObject(components.ParkX, components.ParkY, width, height)
	obj.AddTags(tags.ResolvEnemy)
	obj.Data = enemy
	space.Add(obj)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	typ := config.EnemyBlueBug.Config()
	components.Enemy.SetValue(enemy, components.EnemyData{
		Type:    config.EnemyBlueBug,
		Pattern: config.PatternStraightDown,
		Speed:   config.SpeedNormal.PixelsPerFrame(),
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: typ.Health,
		Max:     typ.Health,
	})
	components.Weapon.SetValue(enemy, components.WeaponData{FireRate: config.FireRateTardy})
	components.BulletBank.SetValue(enemy, CreateBulletBank(w, space, config.Pools.EnemyBullets, tags.EnemyBullet, tags.ResolvEnemyBullet))

	sprite := components.SpriteData{}
	sprite.SetStrip(typ.Asset, typ.FrameCount, config.Enemy.AnimationDelayMs, true)
	components.Sprite.SetValue(enemy, sprite)

	return enemy
}
