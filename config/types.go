package config

import (
	"fmt"

	"github.com/automoto/spacehog/assets"
)

// FireRate is a named shot cadence.
type FireRate int

const (
	FireRateTardy FireRate = iota
	FireRateSlow
	FireRateStandard
	FireRateFast
	FireRateHyper
	FireRateMachineGun
)

var fireRateDelays = map[FireRate]int64{
	FireRateTardy:      1000,
	FireRateSlow:       500,
	FireRateStandard:   250,
	FireRateFast:       125,
	FireRateHyper:      75,
	FireRateMachineGun: 50,
}

// FireRates lists every rate, slowest first.
var FireRates = []FireRate{
	FireRateTardy, FireRateSlow, FireRateStandard,
	FireRateFast, FireRateHyper, FireRateMachineGun,
}

// DelayMs is the cooldown between two shots.
func (r FireRate) DelayMs() int64 {
	d, ok := fireRateDelays[r]
	if !ok {
		panic(fmt.Sprintf("unknown fire rate %d", int(r)))
	}
	return d
}

func (r FireRate) ShotsPerSecond() float64 {
	return 1000 / float64(r.DelayMs())
}

func (r FireRate) String() string {
	switch r {
	case FireRateTardy:
		return "tardy"
	case FireRateSlow:
		return "slow"
	case FireRateStandard:
		return "standard"
	case FireRateFast:
		return "fast"
	case FireRateHyper:
		return "hyper"
	case FireRateMachineGun:
		return "machine-gun"
	}
	return fmt.Sprintf("FireRate(%d)", int(r))
}

// FastestFireRate returns the rate with the shortest delay.
func FastestFireRate() FireRate {
	fastest := FireRates[0]
	for _, r := range FireRates[1:] {
		if r.DelayMs() < fastest.DelayMs() {
			fastest = r
		}
	}
	return fastest
}

// MovementSpeed is a named enemy speed.
type MovementSpeed int

const (
	SpeedTardy MovementSpeed = iota
	SpeedSlow
	SpeedNormal
	SpeedFast
	SpeedVeryFast
)

var movementSpeeds = map[MovementSpeed]float64{
	SpeedTardy:    0.5,
	SpeedSlow:     2.5,
	SpeedNormal:   5,
	SpeedFast:     7.5,
	SpeedVeryFast: 20,
}

// PixelsPerFrame is the distance covered per reference frame.
func (s MovementSpeed) PixelsPerFrame() float64 {
	v, ok := movementSpeeds[s]
	if !ok {
		panic(fmt.Sprintf("unknown movement speed %d", int(s)))
	}
	return v
}

// MovementPattern selects an enemy movement strategy.
type MovementPattern int

const (
	PatternStraightDown MovementPattern = iota
	PatternZigZag
	PatternDiagonal
	PatternHunter
)

// MovementPatterns lists every pattern.
var MovementPatterns = []MovementPattern{
	PatternStraightDown, PatternZigZag, PatternDiagonal, PatternHunter,
}

func (p MovementPattern) String() string {
	switch p {
	case PatternStraightDown:
		return "straight-down"
	case PatternZigZag:
		return "zig-zag"
	case PatternDiagonal:
		return "diagonal"
	case PatternHunter:
		return "hunter"
	}
	return fmt.Sprintf("MovementPattern(%d)", int(p))
}

// BulletType identifies a projectile configuration.
type BulletType int

const (
	BulletPlayerStandard BulletType = iota
	BulletEnemyStandard
	BulletPlayerPiercing
)

// BulletStats describes one projectile type.
type BulletStats struct {
	Asset   assets.ID
	Speed   float64 // pixels per reference frame, negative travels up
	Damage  int
	Pierces bool
}

var BulletTypes = map[BulletType]BulletStats{
	BulletPlayerStandard: {Asset: assets.PlayerBullet, Speed: -25, Damage: 1},
	BulletEnemyStandard:  {Asset: assets.EnemyBullet, Speed: 15, Damage: 1},
	BulletPlayerPiercing: {Asset: assets.PiercingBullet, Speed: -35, Damage: 2, Pierces: true},
}

func (b BulletType) Stats() BulletStats {
	s, ok := BulletTypes[b]
	if !ok {
		panic(fmt.Sprintf("unknown bullet type %d", int(b)))
	}
	return s
}

// EnemyType identifies an enemy kind.
type EnemyType int

const (
	EnemyBlueBug EnemyType = iota
	EnemyRedBug
	EnemyYellowBug
	EnemyCommander1
	EnemyCommander2
)

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name         string
	Asset        assets.ID
	Health       int
	Score        int
	FrameCount   int
	VirtualWidth float64
}

var EnemyTypes = map[EnemyType]EnemyTypeConfig{
	EnemyBlueBug:    {Name: "blue-bug", Asset: assets.BlueBug, Health: 1, Score: 25, FrameCount: 1, VirtualWidth: 120},
	EnemyRedBug:     {Name: "red-bug", Asset: assets.RedBug, Health: 1, Score: 15, FrameCount: 2, VirtualWidth: 120},
	EnemyYellowBug:  {Name: "yellow-bug", Asset: assets.YellowBug, Health: 1, Score: 10, FrameCount: 2, VirtualWidth: 110},
	EnemyCommander1: {Name: "commander-1", Asset: assets.Commander1, Health: 2, Score: 50, FrameCount: 2, VirtualWidth: 160},
	EnemyCommander2: {Name: "commander-2", Asset: assets.Commander2, Health: 2, Score: 50, FrameCount: 2, VirtualWidth: 160},
}

func (e EnemyType) Config() EnemyTypeConfig {
	c, ok := EnemyTypes[e]
	if !ok {
		panic(fmt.Sprintf("unknown enemy type %d", int(e)))
	}
	return c
}

func (e EnemyType) String() string {
	if c, ok := EnemyTypes[e]; ok {
		return c.Name
	}
	return fmt.Sprintf("EnemyType(%d)", int(e))
}

// EffectType identifies a one-shot visual effect.
type EffectType int

const (
	EffectEnemyExplosion EffectType = iota
	EffectPlayerExplosion
)

type EffectStats struct {
	Asset        assets.ID
	FrameCount   int
	FrameDelayMs int64
}

var EffectTypes = map[EffectType]EffectStats{
	EffectEnemyExplosion:  {Asset: assets.ExplosionEnemy, FrameCount: 5, FrameDelayMs: 50},
	EffectPlayerExplosion: {Asset: assets.ExplosionPlayer, FrameCount: 4, FrameDelayMs: 75},
}

func (e EffectType) Stats() EffectStats {
	s, ok := EffectTypes[e]
	if !ok {
		panic(fmt.Sprintf("unknown effect type %d", int(e)))
	}
	return s
}

// WeaponType identifies a player weapon.
type WeaponType int

const (
	WeaponStandardGun WeaponType = iota
	WeaponPiercingGun
	WeaponMissileLauncher
	WeaponLaserBeam
)

func (w WeaponType) String() string {
	switch w {
	case WeaponStandardGun:
		return "standard-gun"
	case WeaponPiercingGun:
		return "piercing-gun"
	case WeaponMissileLauncher:
		return "missile-launcher"
	case WeaponLaserBeam:
		return "laser-beam"
	}
	return fmt.Sprintf("WeaponType(%d)", int(w))
}

// PowerUpType identifies a collectible power-up.
type PowerUpType int

const (
	PowerUpPiercingShot PowerUpType = iota
	PowerUpMissiles
)

type PowerUpStats struct {
	Name       string
	Weapon     WeaponType
	DurationMs int64
	ItemAsset  assets.ID
	HUDAsset   assets.ID
}

var PowerUpTypes = map[PowerUpType]PowerUpStats{
	PowerUpPiercingShot: {
		Name:       "piercing-shot",
		Weapon:     WeaponPiercingGun,
		DurationMs: 10_000,
		ItemAsset:  assets.PowerUpItemPiercing,
		HUDAsset:   assets.HUDIconPiercing,
	},
	PowerUpMissiles: {
		Name:       "missiles",
		Weapon:     WeaponMissileLauncher,
		DurationMs: 15_000,
		ItemAsset:  assets.PowerUpItemMissile,
		HUDAsset:   assets.HUDIconMissile,
	},
}

func (p PowerUpType) Stats() PowerUpStats {
	s, ok := PowerUpTypes[p]
	if !ok {
		panic(fmt.Sprintf("unknown power-up type %d", int(p)))
	}
	return s
}

func (p PowerUpType) String() string {
	if s, ok := PowerUpTypes[p]; ok {
		return s.Name
	}
	return fmt.Sprintf("PowerUpType(%d)", int(p))
}
