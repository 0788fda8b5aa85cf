package systems

import (
	"github.com/automoto/spacehog/components"
	"github.com/automoto/spacehog/config"
	"github.com/yohamta/donburi"
)

// WeaponSystem decides what a ship shoots. Update runs once per tick while
// the ship is alive.
type WeaponSystem interface {
	Fire(ship *donburi.Entry) bool
	Update(ship *donburi.Entry, deltaMs int64)
}

type StandardGun struct{}

func (StandardGun) Fire(ship *donburi.Entry) bool {
	return FireWeapon(ship, config.BulletPlayerStandard)
}

func (StandardGun) Update(ship *donburi.Entry, deltaMs int64) {
	TickCooldown(ship, deltaMs)
}

type PiercingGun struct{}

func (PiercingGun) Fire(ship *donburi.Entry) bool {
	return FireWeapon(ship, config.BulletPlayerPiercing)
}

func (PiercingGun) Update(ship *donburi.Entry, deltaMs int64) {
	TickCooldown(ship, deltaMs)
}

var (
	standardGun WeaponSystem = StandardGun{}
	piercingGun WeaponSystem = PiercingGun{}
)

// WeaponFor returns the shared weapon system for t. Weapons without an
// implementation yet fall back to the standard gun.
func WeaponFor(t config.WeaponType) WeaponSystem {
	switch t {
	case config.WeaponPiercingGun:
		return piercingGun
	default:
		return standardGun
	}
}

// FireWeapon emits one bullet of type t from the ship's nose if its
// cooldown has elapsed, then re-arms the cooldown.
func FireWeapon(ship *donburi.Entry, t config.BulletType) bool {
	w := components.Weapon.Get(ship)
	if w.CooldownMs > 0 {
		return false
	}
	obj := components.Object.Get(ship)
	FireBullet(components.BulletBank.Get(ship), t, obj.X+obj.W/2, obj.Y)
	w.CooldownMs = w.FireRate.DelayMs()
	return true
}

// TickCooldown counts the weapon cooldown down toward zero.
func TickCooldown(ship *donburi.Entry, deltaMs int64) {
	w := components.Weapon.Get(ship)
	if w.CooldownMs > 0 {
		w.CooldownMs -= deltaMs
	}
}

func UpgradeFireRate(ship *donburi.Entry, rate config.FireRate) {
	components.Weapon.Get(ship).FireRate = rate
}
