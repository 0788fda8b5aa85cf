package factory

import (
	"github.com/automoto/spacehog/archetypes"
	"github.com/automoto/spacehog/components"
	"github.com/automoto/spacehog/config"
	"github.com/automoto/spacehog/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer creates the ship at (x, y) with a bullet bank of the given size.
func CreatePlayer(w donburi.World, space *resolv.Space, x, y, width, height float64, bulletPoolSize int) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	obj := resolv.NewObject(x, y, width, height)
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	space.Add(obj)
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		LifeState: config.Alive,
		Lives:     config.Player.StartingLives,
		Weapon:    config.WeaponStandardGun,
		StartY:    y,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: config.Player.MaxHP,
		Max:     config.Player.MaxHP,
	})
	components.Weapon.SetValue(player, components.WeaponData{FireRate: config.FireRateTardy})
	components.BulletBank.SetValue(player, CreateBulletBank(w, space, bulletPoolSize, tags.PlayerBullet, tags.ResolvPlayerBullet))

	sprite := components.SpriteData{}
	sprite.SetStrip(config.Alive.Asset(), 1, 0, false)
	components.Sprite.SetValue(player, sprite)

	return player
}
