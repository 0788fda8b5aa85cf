package components

import (
	"github.com/automoto/spacehog/config"
	"github.com/yohamta/donburi"
)

// WeaponData rate-limits a ship's firing.
type WeaponData struct {
	FireRate   config.FireRate
	CooldownMs int64
}

var Weapon = donburi.NewComponentType[WeaponData]()
