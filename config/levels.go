package config

// SpawnEvent schedules one enemy relative to the start of a level.
// StartX and StartY are in virtual units.
type SpawnEvent struct {
	TimeMs  int64
	Enemy   EnemyType
	StartX  float64
	StartY  float64
	Pattern MovementPattern
	Speed   MovementSpeed
}

// LevelProperties are the rules of one campaign level. SpawnEvents are
// consumed in declaration order.
type LevelProperties struct {
	Name           string
	PlayerFireRate FireRate
	EnemyFireRate  FireRate
	SpawnEvents    []SpawnEvent
}

// defaultStartY places a spawn just above the visible area.
const defaultStartY = -100

func spawnAt(timeMs int64, enemy EnemyType, x float64, pattern MovementPattern, speed MovementSpeed) SpawnEvent {
	return SpawnEvent{
		TimeMs:  timeMs,
		Enemy:   enemy,
		StartX:  x,
		StartY:  defaultStartY,
		Pattern: pattern,
		Speed:   speed,
	}
}

var (
	Level1       LevelProperties
	Level2       LevelProperties
	Level10Horde LevelProperties
)

func init() {
	Level1 = LevelProperties{
		Name:           "Level 1",
		PlayerFireRate: FireRateTardy,
		EnemyFireRate:  FireRateSlow,
		SpawnEvents: []SpawnEvent{
			// A simple wave of blue bugs
			spawnAt(1000, EnemyBlueBug, 100, PatternDiagonal, SpeedNormal),
			spawnAt(1500, EnemyBlueBug, 500, PatternStraightDown, SpeedTardy),
			spawnAt(2000, EnemyBlueBug, 900, PatternHunter, SpeedNormal),
			// First red bugs
			spawnAt(3500, EnemyRedBug, 500, PatternHunter, SpeedFast),
			spawnAt(4000, EnemyRedBug, 300, PatternZigZag, SpeedTardy),
			spawnAt(4000, EnemyRedBug, 700, PatternDiagonal, SpeedNormal),
		},
	}

	Level2 = LevelProperties{
		Name:           "Level 2",
		PlayerFireRate: FireRateSlow,
		EnemyFireRate:  FireRateStandard,
		SpawnEvents: []SpawnEvent{
			spawnAt(1000, EnemyRedBug, 200, PatternZigZag, SpeedSlow),
			spawnAt(1000, EnemyRedBug, 800, PatternStraightDown, SpeedNormal),
			spawnAt(1500, EnemyYellowBug, 500, PatternZigZag, SpeedFast),

			// V formation
			spawnAt(3000, EnemyBlueBug, 500, PatternStraightDown, SpeedVeryFast),
			spawnAt(3250, EnemyBlueBug, 400, PatternZigZag, SpeedTardy),
			spawnAt(3250, EnemyBlueBug, 600, PatternStraightDown, SpeedSlow),
			spawnAt(3500, EnemyBlueBug, 300, PatternZigZag, SpeedNormal),
			spawnAt(3500, EnemyBlueBug, 700, PatternStraightDown, SpeedFast),

			spawnAt(5000, EnemyCommander1, 500, PatternHunter, SpeedVeryFast),
		},
	}

	Level10Horde = LevelProperties{
		Name:           "Horde",
		PlayerFireRate: FireRateStandard,
		EnemyFireRate:  FireRateFast,
		SpawnEvents: []SpawnEvent{
			// Wall of blue bugs
			spawnAt(1000, EnemyBlueBug, 100, PatternDiagonal, SpeedTardy),
			spawnAt(1000, EnemyBlueBug, 300, PatternZigZag, SpeedVeryFast),
			spawnAt(1000, EnemyBlueBug, 500, PatternStraightDown, SpeedNormal),
			spawnAt(1000, EnemyBlueBug, 700, PatternZigZag, SpeedVeryFast),
			spawnAt(1000, EnemyBlueBug, 900, PatternDiagonal, SpeedTardy),

			// Yellow flankers
			spawnAt(3000, EnemyYellowBug, 50, PatternStraightDown, SpeedTardy),
			spawnAt(3200, EnemyYellowBug, 1000, PatternHunter, SpeedSlow),
			spawnAt(3400, EnemyYellowBug, 50, PatternHunter, SpeedNormal),
			spawnAt(3600, EnemyYellowBug, 1000, PatternStraightDown, SpeedFast),

			// Red bugs escorting a commander
			spawnAt(6000, EnemyRedBug, 300, PatternStraightDown, SpeedVeryFast),
			spawnAt(6000, EnemyRedBug, 700, PatternZigZag, SpeedTardy),
			spawnAt(6500, EnemyCommander2, 500, PatternStraightDown, SpeedSlow),
		},
	}
}

// Campaign returns the levels in play order. Each call returns a fresh
// slice so callers may consume it.
func Campaign() []LevelProperties {
	return []LevelProperties{Level1, Level2, Level10Horde}
}
