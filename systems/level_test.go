package systems

import (
	"testing"

	"github.com/automoto/spacehog/config"
	"github.com/automoto/spacehog/gamemath"
	"github.com/automoto/spacehog/logger"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spawnCall struct {
	enemy   config.EnemyType
	x, y    float64
	rate    config.FireRate
	pattern config.MovementPattern
	speed   config.MovementSpeed
}

type recordingSpawner struct {
	calls []spawnCall
}

func (r *recordingSpawner) Spawn(t config.EnemyType, x, y float64, rate config.FireRate, pattern config.MovementPattern, speed config.MovementSpeed) bool {
	r.calls = append(r.calls, spawnCall{t, x, y, rate, pattern, speed})
	return true
}

func testCampaign() []config.LevelProperties {
	return []config.LevelProperties{
		{
			Name:           "one",
			PlayerFireRate: config.FireRateTardy,
			EnemyFireRate:  config.FireRateSlow,
			SpawnEvents: []config.SpawnEvent{
				{TimeMs: 0, Enemy: config.EnemyBlueBug, StartX: 100, StartY: -100, Pattern: config.PatternStraightDown, Speed: config.SpeedSlow},
				{TimeMs: 500, Enemy: config.EnemyRedBug, StartX: 200, StartY: -100, Pattern: config.PatternZigZag, Speed: config.SpeedSlow},
				{TimeMs: 500, Enemy: config.EnemyYellowBug, StartX: 300, StartY: -100, Pattern: config.PatternHunter, Speed: config.SpeedSlow},
				{TimeMs: 1000, Enemy: config.EnemyCommander1, StartX: 400, StartY: -100, Pattern: config.PatternDiagonal, Speed: config.SpeedFast},
			},
		},
		{
			Name:           "two",
			PlayerFireRate: config.FireRateSlow,
			EnemyFireRate:  config.FireRateStandard,
			SpawnEvents: []config.SpawnEvent{
				{TimeMs: 0, Enemy: config.EnemyCommander2, StartX: 540, StartY: -100, Pattern: config.PatternStraightDown, Speed: config.SpeedNormal},
			},
		},
	}
}

func newTestLevels(campaign []config.LevelProperties) (*recordingSpawner, *LevelManager) {
	spawner := &recordingSpawner{}
	scaler := gamemath.NewScaler(testWidth, testHeight, 1080, 1920)
	return spawner, NewLevelManager(spawner, scaler, campaign)
}

func TestLevelStartsImmediately(t *testing.T) {
	_, lm := newTestLevels(testCampaign())

	assert.Equal(t, config.LevelRunning, lm.State())
	assert.Equal(t, 1, lm.LevelNumber())
	assert.Equal(t, "one", lm.Current().Name)
	assert.Equal(t, 4, lm.TotalEnemies())
	assert.Equal(t, 4, lm.PendingSpawns())
}

func TestSpawnsFollowScheduleInOrder(t *testing.T) {
	spawner, lm := newTestLevels(testCampaign())

	lm.Update(16)
	require.Len(t, spawner.calls, 1)
	assert.Equal(t, spawnCall{config.EnemyBlueBug, 50, -50, config.FireRateSlow, config.PatternStraightDown, config.SpeedSlow}, spawner.calls[0])

	lm.Update(483)
	assert.Len(t, spawner.calls, 1)

	lm.Update(1)
	require.Len(t, spawner.calls, 3)
	assert.Equal(t, config.EnemyRedBug, spawner.calls[1].enemy)
	assert.Equal(t, config.EnemyYellowBug, spawner.calls[2].enemy)
	assert.Equal(t, 1, lm.PendingSpawns())

	// A long frame drains everything that is due.
	lm.Update(5000)
	assert.Len(t, spawner.calls, 4)
	assert.Equal(t, 0, lm.PendingSpawns())
}

func TestLevelCompletesOnDefeats(t *testing.T) {
	spawner, lm := newTestLevels(testCampaign())
	lm.Update(1000)
	require.Len(t, spawner.calls, 4)

	for i := 0; i < 3; i++ {
		lm.OnEnemyDefeated()
	}
	lm.Update(16)
	assert.Equal(t, config.LevelRunning, lm.State())

	lm.OnEnemyDefeated()
	lm.Update(16)
	assert.Equal(t, config.LevelIntermission, lm.State())
	assert.Equal(t, config.Level.IntermissionMs, lm.IntermissionRemainingMs())

	lm.Update(2999)
	assert.Equal(t, config.LevelIntermission, lm.State())
	assert.Len(t, spawner.calls, 4, "nothing spawns during the intermission")

	lm.Update(1)
	assert.Equal(t, config.LevelRunning, lm.State())
	assert.Equal(t, 2, lm.LevelNumber())
	assert.Equal(t, "two", lm.Current().Name)
	assert.Equal(t, 0, lm.EnemiesDefeated())
	assert.Equal(t, int64(0), lm.IntermissionRemainingMs())

	lm.Update(16)
	require.Len(t, spawner.calls, 5)
	assert.Equal(t, config.FireRateStandard, spawner.calls[4].rate)
	assert.Equal(t, 270.0, spawner.calls[4].x)
}

func TestCampaignCompleteIsTerminal(t *testing.T) {
	spawner, lm := newTestLevels(testCampaign()[1:])
	lm.Update(16)
	lm.OnEnemyDefeated()
	lm.Update(16)
	lm.Update(config.Level.IntermissionMs)

	require.Equal(t, config.LevelCampaignComplete, lm.State())
	for i := 0; i < 10; i++ {
		lm.OnEnemyDefeated()
		lm.Update(1000)
	}
	assert.Equal(t, config.LevelCampaignComplete, lm.State())
	assert.Equal(t, 1, lm.LevelNumber())
	assert.Len(t, spawner.calls, 1)
}

func TestEmptyCampaign(t *testing.T) {
	_, lm := newTestLevels(nil)

	assert.Equal(t, config.LevelCampaignComplete, lm.State())
	assert.Nil(t, lm.Current())
	assert.Equal(t, 0, lm.LevelNumber())
}

func TestLevelManagerCopiesCampaign(t *testing.T) {
	campaign := testCampaign()
	_, lm := newTestLevels(campaign)
	campaign[0].Name = "changed"

	assert.Equal(t, "one", lm.Current().Name)
}

func TestBuiltInCampaign(t *testing.T) {
	_, lm := newTestLevels(config.Campaign())
	assert.Equal(t, len(config.Level1.SpawnEvents), lm.TotalEnemies())
}

func TestLevelLogsUseLevelNumberField(t *testing.T) {
	prevHooks := logger.Log.ReplaceHooks(make(logrus.LevelHooks))
	prevLevel := logger.Log.GetLevel()
	t.Cleanup(func() {
		logger.Log.ReplaceHooks(prevHooks)
		logger.Log.SetLevel(prevLevel)
	})
	logger.Log.SetLevel(logrus.InfoLevel)
	hook := test.NewLocal(logger.Log)

	_, lm := newTestLevels(testCampaign())
	for i := 0; i < lm.TotalEnemies(); i++ {
		lm.OnEnemyDefeated()
	}
	lm.Update(16)
	require.Equal(t, config.LevelIntermission, lm.State())

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "level started", entries[0].Message)
	assert.Equal(t, "level complete", entries[1].Message)
	for _, e := range entries {
		assert.Equal(t, 1, e.Data["levelNumber"])
		assert.NotContains(t, e.Data, "level")
	}
}
