package factory

import (
	"github.com/automoto/spacehog/archetypes"
	"github.com/automoto/spacehog/components"
	"github.com/automoto/spacehog/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateBulletBank pre-allocates size inactive bullets tagged for the owner
// side and returns them as a bank.
func CreateBulletBank(w donburi.World, space *resolv.Space, size int, owner donburi.IComponentType, resolvTag string) components.BulletBankData {
	bank := components.BulletBankData{Bullets: make([]*donburi.Entry, 0, size)}
	for i := 0; i < size; i++ {
		bank.Bullets = append(bank.Bullets, createBullet(w, space, owner, resolvTag))
	}
	return bank
}

func createBullet(w donburi.World, space *resolv.Space, owner donburi.IComponentType, resolvTag string) *donburi.Entry {
	bullet := archetypes.Bullet.Spawn(w, owner)

	obj := resolv.NewObject(components.ParkX, components.ParkY, config.Bullets.Width, config.Bullets.Height)
	obj.AddTags(resolvTag)
	obj.Data = bullet
	space.Add(obj)
	components.Object.SetValue(bullet, components.ObjectData{Object: obj})

	stats := config.BulletPlayerStandard.Stats()
	components.Bullet.SetValue(bullet, components.BulletData{
		Type:    config.BulletPlayerStandard,
		Damage:  stats.Damage,
		Pierces: stats.Pierces,
		Speed:   stats.Speed,
	})
	components.Sprite.SetValue(bullet, components.SpriteData{Asset: stats.Asset, Frames: 1})
	return bullet
}
