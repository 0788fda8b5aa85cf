package world

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/automoto/spacehog/assets"
	"github.com/automoto/spacehog/components"
	"github.com/automoto/spacehog/config"
	"github.com/automoto/spacehog/gamemath"
	"github.com/automoto/spacehog/logger"
	"github.com/automoto/spacehog/systems"
	"github.com/automoto/spacehog/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Input is the latest player intent sampled by the front-end.
type Input struct {
	TouchX          float64
	Touching        bool
	Firing          bool
	ActivatePowerUp bool
}

type Options struct {
	Width  float64
	Height float64
	Assets assets.Provider
	// Rand drives every random decision. Defaults to a time-seeded source.
	Rand *rand.Rand
	// Campaign defaults to config.Campaign() when nil.
	Campaign []config.LevelProperties
	// OnGameOver is called once, on the tick the run ends.
	OnGameOver func()
}

// GameWorld owns every manager and the player, and advances them together
// one tick at a time.
type GameWorld struct {
	ecs    donburi.World
	space  *resolv.Space
	scaler *gamemath.Scaler
	lib    *assets.Library

	width, height float64

	state      config.WorldState
	score      int
	onGameOver func()

	player    *donburi.Entry
	enemies   *systems.EnemyManager
	effects   *systems.EffectManager
	levels    *systems.LevelManager
	starfield *systems.Starfield

	levelWasRunning bool

	// scratch slices reused by collision checks
	playerBullets []*donburi.Entry
	activeEnemies []*donburi.Entry
	nearby        []*donburi.Entry
	seen          []*resolv.Object
}

// New loads every asset and builds all pools. A missing asset is fatal.
func New(opts Options) (*GameWorld, error) {
	lib, err := assets.Load(opts.Assets)
	if err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	campaign := opts.Campaign
	if campaign == nil {
		campaign = config.Campaign()
	}

	g := &GameWorld{
		ecs:        donburi.NewWorld(),
		scaler:     gamemath.NewScaler(opts.Width, opts.Height, config.C.VirtualWidth, config.C.VirtualHeight),
		lib:        lib,
		width:      opts.Width,
		height:     opts.Height,
		onGameOver: opts.OnGameOver,
	}

	cell := config.Collision.CellSize
	spaceEntry := factory.CreateSpace(g.ecs, int(opts.Width), int(opts.Height), cell, cell)
	g.space = components.Space.Get(spaceEntry)

	bulletPoolSize := systems.RequiredPoolSize(systems.BulletLifetime(opts.Height, config.BulletPlayerStandard))
	playerW := g.scaler.SpriteWidth(config.Player.WidthFraction)
	playerH := playerW * lib.AspectRatio(config.Alive.Asset(), 1)
	g.player = factory.CreatePlayer(
		g.ecs, g.space,
		opts.Width/2-playerW/2,
		opts.Height-g.scaler.ScaleY(config.Player.VirtualOffsetY),
		playerW, playerH,
		bulletPoolSize,
	)

	g.enemies = systems.NewEnemyManager(g.ecs, g.space, lib, g.scaler, rng, config.Pools.Enemies)
	g.effects = systems.NewEffectManager(g.ecs, g.scaler.ScaleX(config.Effects.VirtualSize), config.Pools.Effects)
	g.levels = systems.NewLevelManager(g.enemies, g.scaler, campaign)
	g.starfield = systems.NewStarfield(opts.Width, opts.Height, g.scaler, rng)

	if lvl := g.levels.Current(); lvl != nil {
		systems.UpgradeFireRate(g.player, lvl.PlayerFireRate)
	}

	logger.Log.WithFields(logrus.Fields{
		"width":        opts.Width,
		"height":       opts.Height,
		"bulletPool":   bulletPoolSize,
		"enemyPool":    config.Pools.Enemies,
		"effectPool":   config.Pools.Effects,
		"campaignSize": len(campaign),
	}).Info("game world ready")

	return g, nil
}

// Update advances the simulation by deltaMs. Order: starfield, player,
// input, level, enemies, effects, collisions.
func (g *GameWorld) Update(deltaMs int64, in Input) {
	if g.state == config.WorldGameOver {
		return
	}
	if systems.PlayerLifeState(g.player) == config.GameOver {
		g.state = config.WorldGameOver
		logger.Log.WithField("score", g.score).Info("game over")
		if g.onGameOver != nil {
			g.onGameOver()
		}
		return
	}

	g.starfield.Update(deltaMs)

	systems.UpdatePlayer(g.player, deltaMs, g.height, g.width)
	g.applyInput(in)

	running := g.levels.State() == config.LevelRunning
	if running && !g.levelWasRunning {
		if lvl := g.levels.Current(); lvl != nil {
			systems.UpgradeFireRate(g.player, lvl.PlayerFireRate)
		}
	}
	g.levelWasRunning = running

	g.levels.Update(deltaMs)
	g.enemies.UpdateAll(deltaMs, g.height, g.width)
	g.effects.UpdateAll(deltaMs)
	g.checkCollisions()
}

func (g *GameWorld) applyInput(in Input) {
	if systems.PlayerLifeState(g.player) != config.Alive {
		return
	}
	if in.Touching {
		systems.SteerPlayer(g.player, in.TouchX, g.width)
	}
	if in.Firing {
		systems.FirePlayer(g.player)
	}
	if in.ActivatePowerUp {
		systems.ActivateNextPowerUp(g.player)
	}
}

// CollectPowerUp queues a power-up on the player.
func (g *GameWorld) CollectPowerUp(t config.PowerUpType) {
	systems.CollectPowerUp(g.player, t)
}

// ActivateNextPowerUp starts the head of the power-up queue.
func (g *GameWorld) ActivateNextPowerUp() bool {
	return systems.ActivateNextPowerUp(g.player)
}

// PowerUpQueue returns a copy of the queued power-ups, oldest first.
func (g *GameWorld) PowerUpQueue() []config.PowerUpType {
	q := components.Player.Get(g.player).PowerUps
	return append([]config.PowerUpType(nil), q...)
}

func (g *GameWorld) State() config.WorldState { return g.state }
func (g *GameWorld) Score() int { return g.score }
func (g *GameWorld) Player() *donburi.Entry { return g.player }
func (g *GameWorld) Enemies() *systems.EnemyManager { return g.enemies }
func (g *GameWorld) Effects() *systems.EffectManager { return g.effects }
func (g *GameWorld) Levels() *systems.LevelManager { return g.levels }
func (g *GameWorld) Starfield() *systems.Starfield { return g.starfield }
func (g *GameWorld) Library() *assets.Library { return g.lib }
func (g *GameWorld) Scaler() *gamemath.Scaler { return g.scaler }
func (g *GameWorld) Space() *resolv.Space { return g.space }
func (g *GameWorld) Size() (width, height float64) { return g.width, g.height }
func (g *GameWorld) ECS() donburi.World { return g.ecs }
