package config

import "github.com/automoto/spacehog/assets"

// LifeState drives both the player's simulation and its visual.
type LifeState int

const (
	Alive LifeState = iota
	Captured
	Exploding
	Respawning
	GameOver
)

var lifeStateAssets = map[LifeState]assets.ID{
	Alive:      assets.PlayerShip,
	Captured:   assets.CapturedShip,
	Exploding:  assets.PlayerShip,
	Respawning: assets.PlayerShip,
	GameOver:   assets.PlayerShip,
}

// Asset returns the image drawn for the ship in this state.
func (s LifeState) Asset() assets.ID {
	return lifeStateAssets[s]
}

// Visible reports whether the ship itself is drawn and hit-tested.
func (s LifeState) Visible() bool {
	return s == Alive || s == Captured
}

func (s LifeState) String() string {
	switch s {
	case Alive:
		return "ALIVE"
	case Captured:
		return "CAPTURED"
	case Exploding:
		return "EXPLODING"
	case Respawning:
		return "RESPAWNING"
	case GameOver:
		return "GAME_OVER"
	}
	return "UNKNOWN"
}

// LevelState is the level manager's phase.
type LevelState int

const (
	LevelRunning LevelState = iota
	LevelIntermission
	LevelCampaignComplete
)

func (s LevelState) String() string {
	switch s {
	case LevelRunning:
		return "RUNNING"
	case LevelIntermission:
		return "INTERMISSION"
	case LevelCampaignComplete:
		return "CAMPAIGN_COMPLETE"
	}
	return "UNKNOWN"
}

// WorldState is the run's overall state.
type WorldState int

const (
	WorldPlaying WorldState = iota
	WorldGameOver
)

func (s WorldState) String() string {
	if s == WorldGameOver {
		return "GAME_OVER"
	}
	return "PLAYING"
}
