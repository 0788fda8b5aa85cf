package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFastestFireRate(t *testing.T) {
	assert.Equal(t, FireRateMachineGun, FastestFireRate())
	assert.InDelta(t, 20.0, FastestFireRate().ShotsPerSecond(), 1e-9)
	assert.InDelta(t, 1.0, FireRateTardy.ShotsPerSecond(), 1e-9)
}

func TestCampaignOrder(t *testing.T) {
	levels := Campaign()
	require.Len(t, levels, 3)
	assert.Len(t, levels[0].SpawnEvents, 6)
	assert.Len(t, levels[1].SpawnEvents, 9)
	assert.Len(t, levels[2].SpawnEvents, 12)
}

func TestSpawnEventsAreTimeOrdered(t *testing.T) {
	for _, lvl := range Campaign() {
		for i := 1; i < len(lvl.SpawnEvents); i++ {
			assert.LessOrEqual(t, lvl.SpawnEvents[i-1].TimeMs, lvl.SpawnEvents[i].TimeMs, lvl.Name)
		}
	}
}

func TestSpawnEventsDefaultOffScreenTop(t *testing.T) {
	for _, lvl := range Campaign() {
		for _, ev := range lvl.SpawnEvents {
			assert.Equal(t, Level.DefaultStartY, ev.StartY)
		}
	}
}

// No level may ever need more enemy slots than the pool provides, even if
// every enemy in it stays alive at once.
func TestLevelDensityFitsPools(t *testing.T) {
	for _, lvl := range Campaign() {
		assert.LessOrEqual(t, len(lvl.SpawnEvents), Pools.Enemies, lvl.Name)
		// Each defeat spawns one explosion; a whole level dying at once
		// plus one player explosion must still fit.
		assert.LessOrEqual(t, len(lvl.SpawnEvents)+1, Pools.Effects, lvl.Name)
	}
}

func TestTablesCoverEveryConstant(t *testing.T) {
	for _, r := range FireRates {
		assert.NotPanics(t, func() { r.DelayMs() })
	}
	for _, e := range []EnemyType{EnemyBlueBug, EnemyRedBug, EnemyYellowBug, EnemyCommander1, EnemyCommander2} {
		assert.NotPanics(t, func() { e.Config() })
	}
	for _, b := range []BulletType{BulletPlayerStandard, BulletEnemyStandard, BulletPlayerPiercing} {
		assert.NotPanics(t, func() { b.Stats() })
	}
	assert.Panics(t, func() { EnemyType(42).Config() })
}

func TestLifeStateVisibility(t *testing.T) {
	assert.True(t, Alive.Visible())
	assert.True(t, Captured.Visible())
	assert.False(t, Exploding.Visible())
	assert.False(t, Respawning.Visible())
	assert.False(t, GameOver.Visible())
}
