package systems

import (
	"testing"

	"github.com/automoto/spacehog/components"
	"github.com/automoto/spacehog/config"
	"github.com/automoto/spacehog/systems/factory"
	"github.com/automoto/spacehog/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func newEnemyManager(t *testing.T, capacity int) (*testEnv, *EnemyManager) {
	t.Helper()
	env := newTestEnv(t)
	return env, NewEnemyManager(env.w, env.space, env.lib, env.scaler, env.rng, capacity)
}

func spawnBlueBug(m *EnemyManager, x, y float64) bool {
	return m.Spawn(config.EnemyBlueBug, x, y, config.FireRateTardy, config.PatternStraightDown, config.SpeedTardy)
}

func TestEnemySpawnConfiguresSlot(t *testing.T) {
	_, m := newEnemyManager(t, 3)

	require.True(t, m.Spawn(config.EnemyCommander1, 120, 40, config.FireRateSlow, config.PatternZigZag, config.SpeedFast))

	e := m.Pool()[0]
	enemy := components.Enemy.Get(e)
	assert.True(t, enemy.Active)
	assert.Equal(t, config.EnemyCommander1, enemy.Type)
	assert.Equal(t, config.PatternZigZag, enemy.Pattern)
	assert.Equal(t, 7.5, enemy.Speed)
	assert.Equal(t, 2, components.Health.Get(e).Current)

	obj := components.Object.Get(e)
	assert.Equal(t, 120.0, obj.X)
	assert.Equal(t, 40.0, obj.Y)
	// 160 virtual px at half scale, 80x72 frames.
	assert.InDelta(t, 80.0, obj.W, 1e-9)
	assert.InDelta(t, 72.0, obj.H, 1e-9)

	w := components.Weapon.Get(e)
	assert.Equal(t, config.FireRateSlow, w.FireRate)
	assert.GreaterOrEqual(t, w.CooldownMs, int64(0))
	assert.Less(t, w.CooldownMs, int64(500))

	sprite := components.Sprite.Get(e)
	assert.Equal(t, 2, sprite.Frames)
	assert.True(t, sprite.Animation.Loops)
}

func TestEnemyPoolExhaustionIsNoOp(t *testing.T) {
	_, m := newEnemyManager(t, 3)

	for i := 0; i < 3; i++ {
		require.True(t, spawnBlueBug(m, 100, 100))
	}
	assert.False(t, spawnBlueBug(m, 100, 100))
	assert.Equal(t, 3, m.ActiveCount())
}

func TestEnemySpawnResetsMovementState(t *testing.T) {
	_, m := newEnemyManager(t, 1)
	e := m.Pool()[0]
	mv := components.Movement.Get(e)
	mv.Phase = 3
	mv.HasDirection = true
	mv.Hunter = components.HunterReversing

	require.True(t, spawnBlueBug(m, 100, 100))
	assert.Equal(t, components.MovementData{}, *components.Movement.Get(e))
}

func TestUnknownPatternFailsFast(t *testing.T) {
	_, m := newEnemyManager(t, 1)
	assert.Panics(t, func() {
		m.Spawn(config.EnemyBlueBug, 0, 0, config.FireRateTardy, config.MovementPattern(42), config.SpeedTardy)
	})
}

func TestEnemyWrapsOnEveryEdge(t *testing.T) {
	cases := []struct {
		name string
		x, y float64
	}{
		{"bottom", 100, testHeight + 1},
		{"top", 100, -200},
		{"left", -61, 100},
		{"right", testWidth + 1, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, m := newEnemyManager(t, 1)
			require.True(t, spawnBlueBug(m, tc.x, tc.y))
			e := m.Pool()[0]
			components.Weapon.Get(e).CooldownMs = 10_000

			m.UpdateAll(16, testHeight, testWidth)

			obj := components.Object.Get(e)
			assert.True(t, EnemyActive(e), "wrapping keeps the enemy alive")
			assert.Equal(t, -obj.H, obj.Y)
			assert.GreaterOrEqual(t, obj.X, 0.0)
			assert.Less(t, obj.X, testWidth)
		})
	}
}

func TestEnemyOnScreenIsNotWrapped(t *testing.T) {
	_, m := newEnemyManager(t, 1)
	require.True(t, spawnBlueBug(m, 100, -60))
	e := m.Pool()[0]
	components.Weapon.Get(e).CooldownMs = 10_000

	m.UpdateAll(16, testHeight, testWidth)

	obj := components.Object.Get(e)
	assert.Equal(t, 100.0, obj.X)
	assert.Equal(t, -59.5, obj.Y)
}

func TestEnemyFiresOnlyOnScreen(t *testing.T) {
	_, m := newEnemyManager(t, 1)
	require.True(t, spawnBlueBug(m, 100, -50))
	e := m.Pool()[0]
	components.Weapon.Get(e).CooldownMs = 0

	m.UpdateAll(16, testHeight, testWidth)
	assert.Equal(t, 0, m.ActiveBulletCount())

	components.Object.Get(e).MoveTo(100, 100)
	m.UpdateAll(16, testHeight, testWidth)
	assert.Equal(t, 1, m.ActiveBulletCount())
	assert.Equal(t, config.FireRateTardy.DelayMs(), components.Weapon.Get(e).CooldownMs)
}

func TestEnemyBulletsOutliveShooter(t *testing.T) {
	_, m := newEnemyManager(t, 1)
	require.True(t, spawnBlueBug(m, 100, 100))
	e := m.Pool()[0]
	bank := components.BulletBank.Get(e)
	require.True(t, FireBullet(bank, config.BulletEnemyStandard, 130, 200))

	require.True(t, DamageEnemy(e, 1))
	m.UpdateAll(16, testHeight, testWidth)

	bullet := bank.Bullets[0]
	assert.True(t, BulletActive(bullet))
	assert.Equal(t, 215.0, components.Object.Get(bullet).Y)
}

func TestDamageEnemyReportsDefeatOnce(t *testing.T) {
	_, m := newEnemyManager(t, 1)
	require.True(t, m.Spawn(config.EnemyCommander2, 100, 100, config.FireRateTardy, config.PatternStraightDown, config.SpeedTardy))
	e := m.Pool()[0]

	assert.False(t, DamageEnemy(e, 1))
	assert.True(t, EnemyActive(e))
	assert.True(t, DamageEnemy(e, 1))
	assert.False(t, EnemyActive(e))
	assert.False(t, DamageEnemy(e, 1), "already defeated")
}

func TestActiveEnemiesKeepsSlotOrder(t *testing.T) {
	_, m := newEnemyManager(t, 3)
	for i := 0; i < 3; i++ {
		require.True(t, spawnBlueBug(m, float64(i*100), 100))
	}
	DamageEnemy(m.Pool()[1], 1)

	active := m.ActiveEnemies(nil)
	assert.Equal(t, []*donburi.Entry{m.Pool()[0], m.Pool()[2]}, active)
}

func TestActiveBulletCountSeesOnlyEnemyBullets(t *testing.T) {
	env, m := newEnemyManager(t, 2)
	require.True(t, spawnBlueBug(m, 100, 100))
	e := m.Pool()[0]
	require.True(t, FireBullet(components.BulletBank.Get(e), config.BulletEnemyStandard, 130, 200))
	require.True(t, FireBullet(components.BulletBank.Get(m.Pool()[1]), config.BulletEnemyStandard, 300, 200))

	playerBank := factory.CreateBulletBank(env.w, env.space, 2, tags.PlayerBullet, tags.ResolvPlayerBullet)
	require.True(t, FireBullet(&playerBank, config.BulletPlayerStandard, 200, 500))

	require.True(t, DamageEnemy(e, 1))
	assert.Equal(t, 0, m.ActiveCount())
	assert.Equal(t, 2, m.ActiveBulletCount())
}
