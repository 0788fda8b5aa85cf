package components

import (
	"github.com/automoto/spacehog/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Type    config.EnemyType
	Active  bool
	Pattern config.MovementPattern
	Speed   float64 // pixels per reference frame
}

var Enemy = donburi.NewComponentType[EnemyData]()

type HunterPhase int

const (
	HunterForward HunterPhase = iota
	HunterReversing
)

// MovementData is the per-entity state slot used by the shared movement
// strategies. Each strategy only reads its own fields.
type MovementData struct {
	// zig-zag
	Phase float64

	// diagonal
	HasDirection bool
	DirX, DirY   float64

	// hunter
	Hunter         HunterPhase
	ReverseTimerMs int64
}

// Reset clears all strategy state, as when a pooled enemy is respawned.
func (m *MovementData) Reset() {
	*m = MovementData{}
}

var Movement = donburi.NewComponentType[MovementData]()
