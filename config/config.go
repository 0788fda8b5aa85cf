package config

import "image/color"

// Config holds screen and timing values shared by every package.
type Config struct {
	// Default window size in pixels.
	Width  int
	Height int

	// Design resolution every authored length is expressed in.
	VirtualWidth  float64
	VirtualHeight float64

	// ReferenceFrameMs is the frame interval all speeds are authored against.
	ReferenceFrameMs float64
	// TickRate is the simulation cadence in ticks per second.
	TickRate int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	StartingLives int
	MaxHP         int
	RespawnMs     int64

	// Dimensions
	WidthFraction  float64 // ship width as a fraction of screen width
	VirtualOffsetY float64 // start y is screen height minus this (scaled)

	// FollowFactor is the fraction of the gap to the touch point closed each tick.
	FollowFactor float64
}

// PoolConfig sizes every fixed-capacity pool.
type PoolConfig struct {
	Enemies      int
	Effects      int
	EnemyBullets int // per enemy
	// SafetyMargin multiplies the computed player bullet requirement.
	SafetyMargin float64
}

type BulletConfig struct {
	Width  float64
	Height float64
}

type EffectConfig struct {
	VirtualSize float64
}

type CollisionConfig struct {
	ContactDamage int
	CellSize      int
}

type LevelConfig struct {
	IntermissionMs int64
	DefaultStartY  float64
}

type ZigZagConfig struct {
	Frequency float64 // radians per reference frame
}

type HunterConfig struct {
	ReverseSpeed    float64 // pixels per reference frame, negative is up
	TriggerFraction float64 // fraction of screen height past which reversing may start
	ReverseChance   int     // percent per frame
	ReverseMs       int64
}

type StarfieldConfig struct {
	Layers        int
	StarsPerLayer int
	MaxSpeed      int
	LifeSpan      float64
	Decay         float64
	TwinkleMs     float32
	VirtualSize   float64
}

type EnemyConfig struct {
	AnimationDelayMs int64
}

type DebugConfig struct {
	Enabled bool
}

// ColorConfig is the palette used by the front-end.
type ColorConfig struct {
	Background color.RGBA
	Star       color.RGBA
	HUD        color.RGBA
	Banner     color.RGBA
	DebugText  color.RGBA
}

var C *Config

var (
	Player    PlayerConfig
	Pools     PoolConfig
	Bullets   BulletConfig
	Effects   EffectConfig
	Collision CollisionConfig
	Level     LevelConfig
	ZigZag    ZigZagConfig
	Hunter    HunterConfig
	Starfield StarfieldConfig
	Enemy     EnemyConfig
	Debug     DebugConfig
	Colors    ColorConfig
)

func init() {
	C = &Config{
		Width:            540,
		Height:           960,
		VirtualWidth:     1080,
		VirtualHeight:    1920,
		ReferenceFrameMs: 16,
		TickRate:         60,
	}

	Player = PlayerConfig{
		StartingLives:  3,
		MaxHP:          5,
		RespawnMs:      2000,
		WidthFraction:  1.0 / 7.0,
		VirtualOffsetY: 300,
		FollowFactor:   0.25,
	}

	Pools = PoolConfig{
		Enemies:      50,
		Effects:      30,
		EnemyBullets: 5,
		SafetyMargin: 1.2,
	}

	Bullets = BulletConfig{
		Width:  10,
		Height: 30,
	}

	Effects = EffectConfig{
		VirtualSize: 150,
	}

	Collision = CollisionConfig{
		ContactDamage: 5,
		CellSize:      32,
	}

	Level = LevelConfig{
		IntermissionMs: 3000,
		DefaultStartY:  defaultStartY,
	}

	ZigZag = ZigZagConfig{
		Frequency: 0.05,
	}

	Hunter = HunterConfig{
		ReverseSpeed:    -6,
		TriggerFraction: 0.7,
		ReverseChance:   5,
		ReverseMs:       2000,
	}

	Starfield = StarfieldConfig{
		Layers:        3,
		StarsPerLayer: 50,
		MaxSpeed:      25,
		LifeSpan:      20,
		Decay:         0.1,
		TwinkleMs:     900,
		VirtualSize:   6,
	}

	Enemy = EnemyConfig{
		AnimationDelayMs: 250,
	}

	Debug = DebugConfig{
		Enabled: false,
	}

	Colors = ColorConfig{
		Background: color.RGBA{0x05, 0x05, 0x12, 0xff},
		Star:       color.RGBA{0xc8, 0xc8, 0xd2, 0xff},
		HUD:        color.RGBA{0xff, 0xff, 0xff, 0xff},
		Banner:     color.RGBA{0xff, 0xe0, 0x60, 0xff},
		DebugText:  color.RGBA{0x60, 0xff, 0x60, 0xff},
	}
}
