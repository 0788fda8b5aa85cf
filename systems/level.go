package systems

import (
	"github.com/automoto/spacehog/config"
	"github.com/automoto/spacehog/gamemath"
	"github.com/automoto/spacehog/logger"
	"github.com/sirupsen/logrus"
)

// EnemySpawner is what the level manager drives.
type EnemySpawner interface {
	Spawn(t config.EnemyType, x, y float64, rate config.FireRate, pattern config.MovementPattern, speed config.MovementSpeed) bool
}

// LevelManager plays a campaign of levels front to back, spawning each
// level's enemies on schedule.
type LevelManager struct {
	spawner  EnemySpawner
	scaler   *gamemath.Scaler
	campaign []config.LevelProperties

	state       config.LevelState
	current     *config.LevelProperties
	levelNumber int

	levelTimerMs        int64
	intermissionTimerMs int64
	queue               []config.SpawnEvent

	totalEnemies int
	defeated     int
}

// NewLevelManager starts the first level of the campaign immediately.
func NewLevelManager(spawner EnemySpawner, scaler *gamemath.Scaler, campaign []config.LevelProperties) *LevelManager {
	m := &LevelManager{
		spawner:  spawner,
		scaler:   scaler,
		campaign: append([]config.LevelProperties(nil), campaign...),
	}
	m.startNextLevel()
	return m
}

// OnEnemyDefeated counts one defeat toward the current level.
func (m *LevelManager) OnEnemyDefeated() {
	m.defeated++
}

func (m *LevelManager) Update(deltaMs int64) {
	switch m.state {
	case config.LevelRunning:
		m.levelTimerMs += deltaMs
		for len(m.queue) > 0 && m.queue[0].TimeMs <= m.levelTimerMs {
			ev := m.queue[0]
			m.queue = m.queue[1:]
			m.spawner.Spawn(
				ev.Enemy,
				m.scaler.ScaleX(ev.StartX),
				m.scaler.ScaleY(ev.StartY),
				m.current.EnemyFireRate,
				ev.Pattern,
				ev.Speed,
			)
		}

		// Completion counts defeats, not empty screens: wrapped stragglers
		// can still be on screen during the intermission.
		if m.defeated >= m.totalEnemies {
			m.state = config.LevelIntermission
			m.intermissionTimerMs = config.Level.IntermissionMs
			logger.Log.WithField("levelNumber", m.levelNumber).Info("level complete")
		}
	case config.LevelIntermission:
		m.intermissionTimerMs -= deltaMs
		if m.intermissionTimerMs <= 0 {
			m.startNextLevel()
		}
	case config.LevelCampaignComplete:
	}
}

func (m *LevelManager) startNextLevel() {
	if len(m.campaign) == 0 {
		m.state = config.LevelCampaignComplete
		logger.Log.Info("campaign complete")
		return
	}
	next := m.campaign[0]
	m.campaign = m.campaign[1:]

	m.current = &next
	m.queue = append(m.queue[:0], next.SpawnEvents...)
	m.totalEnemies = len(next.SpawnEvents)
	m.defeated = 0
	m.levelNumber++
	m.levelTimerMs = 0
	m.state = config.LevelRunning

	logger.Log.WithFields(logrus.Fields{
		"levelNumber": m.levelNumber,
		"name":        next.Name,
		"enemies":     m.totalEnemies,
	}).Info("level started")
}

func (m *LevelManager) State() config.LevelState { return m.state }

// Current returns the level being played, or nil before any level starts.
func (m *LevelManager) Current() *config.LevelProperties { return m.current }

func (m *LevelManager) LevelNumber() int { return m.levelNumber }

func (m *LevelManager) TotalEnemies() int { return m.totalEnemies }

func (m *LevelManager) EnemiesDefeated() int { return m.defeated }

// PendingSpawns is the number of events not yet fired in this level.
func (m *LevelManager) PendingSpawns() int { return len(m.queue) }

// IntermissionRemainingMs is the time left before the next level starts.
func (m *LevelManager) IntermissionRemainingMs() int64 {
	if m.state != config.LevelIntermission {
		return 0
	}
	return m.intermissionTimerMs
}
