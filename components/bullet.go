package components

import (
	"github.com/automoto/spacehog/config"
	"github.com/yohamta/donburi"
)

// BulletData is a pooled projectile. Spawning copies the type's stats in.
type BulletData struct {
	Type    config.BulletType
	Active  bool
	Damage  int
	Pierces bool
	Speed   float64 // pixels per reference frame, sign is direction
}

var Bullet = donburi.NewComponentType[BulletData]()

// BulletBankData is a ship's fixed pool of bullets.
type BulletBankData struct {
	Bullets []*donburi.Entry
}

var BulletBank = donburi.NewComponentType[BulletBankData]()
