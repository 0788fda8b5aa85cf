package world

import (
	"github.com/automoto/spacehog/components"
	"github.com/automoto/spacehog/config"
	"github.com/automoto/spacehog/systems"
)

// DebugData is a point-in-time summary for the debug overlay.
type DebugData struct {
	LevelNumber         int
	LevelState          config.LevelState
	TotalEnemies        int
	EnemiesDefeated     int
	ActiveEnemies       int
	ActivePlayerBullets int
	ActiveEnemyBullets  int
	ActiveEffects       int
	PlayerHP            int
	PlayerLives         int
	Score               int
}

// DebugData is computed on demand; nothing here is cached between ticks.
func (g *GameWorld) DebugData() DebugData {
	return DebugData{
		LevelNumber:         g.levels.LevelNumber(),
		LevelState:          g.levels.State(),
		TotalEnemies:        g.levels.TotalEnemies(),
		EnemiesDefeated:     g.levels.EnemiesDefeated(),
		ActiveEnemies:       g.enemies.ActiveCount(),
		ActivePlayerBullets: systems.CountActiveBullets(components.BulletBank.Get(g.player)),
		ActiveEnemyBullets:  g.enemies.ActiveBulletCount(),
		ActiveEffects:       g.effects.ActiveCount(),
		PlayerHP:            components.Health.Get(g.player).Current,
		PlayerLives:         components.Player.Get(g.player).Lives,
		Score:               g.score,
	}
}
