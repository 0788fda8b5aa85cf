package components

import (
	"github.com/automoto/spacehog/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	LifeState      config.LifeState
	Lives          int
	RespawnTimerMs int64

	Weapon         config.WeaponType
	PowerUps       []config.PowerUpType // FIFO, head at index 0
	ActivePowerUp  config.PowerUpType
	HasPowerUp     bool
	PowerUpTimerMs int64

	StartY float64
}

var Player = donburi.NewComponentType[PlayerData]()
