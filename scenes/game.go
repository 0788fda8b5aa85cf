package scenes

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/automoto/spacehog/assets"
	"github.com/automoto/spacehog/config"
	"github.com/automoto/spacehog/engine"
	"github.com/automoto/spacehog/logger"
	"github.com/automoto/spacehog/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi/ecs"
)

// GameOptions configures a fresh run.
type GameOptions struct {
	Assets assets.Provider
	// Seed makes a run reproducible. Zero picks a time-based seed.
	Seed  int64
	Debug bool
}

// GameScene hosts one run. The simulation ticks on the engine loop's
// goroutine; this scene only samples input and draws under the loop's lock.
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         GameOptions

	world  *world.GameWorld
	loop   *engine.GameLoop
	images *imageCache
	cancel context.CancelFunc
	once   sync.Once

	gameOver atomic.Bool
	debug    bool

	// intermission banner fade, driven from Update
	banner      *gween.Tween
	bannerAlpha float32
}

func NewGameScene(sc SceneChanger, opts GameOptions) (*GameScene, error) {
	gs := &GameScene{
		sceneChanger: sc,
		opts:         opts,
		debug:        opts.Debug,
	}

	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewSource(opts.Seed))
	}
	w, err := world.New(world.Options{
		Width:      float64(config.C.Width),
		Height:     float64(config.C.Height),
		Assets:     opts.Assets,
		Rand:       rng,
		OnGameOver: func() { gs.gameOver.Store(true) },
	})
	if err != nil {
		return nil, fmt.Errorf("new game scene: %w", err)
	}
	gs.world = w
	gs.loop = engine.NewGameLoop(w, config.C.TickRate)
	gs.images = newImageCache(w.Library())

	gs.ecs = ecs.NewECS(w.ECS())
	gs.ecs.AddSystem(gs.updateInput)
	gs.ecs.AddSystem(gs.updateBanner)

	gs.ecs.AddRenderer(layerBackground, gs.drawStarfield)
	gs.ecs.AddRenderer(layerWorld, gs.drawEnemies)
	gs.ecs.AddRenderer(layerWorld, gs.drawBullets)
	gs.ecs.AddRenderer(layerWorld, gs.drawPlayer)
	gs.ecs.AddRenderer(layerWorld, gs.drawEffects)
	gs.ecs.AddRenderer(layerHUD, gs.drawHUD)
	gs.ecs.AddRenderer(layerDebug, gs.drawDebug)

	return gs, nil
}

func (gs *GameScene) start() {
	ctx, cancel := context.WithCancel(context.Background())
	gs.cancel = cancel
	gs.loop.Start(ctx)
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.start)

	if gs.gameOver.Load() {
		gs.loop.Stop()
		gs.cancel()
		score := 0
		gs.loop.View(func() { score = gs.world.Score() })
		logger.Log.WithField("score", score).Info("run finished")
		gs.sceneChanger.ChangeScene(NewGameOverScene(gs.sceneChanger, gs.opts, score))
		return
	}

	gs.ecs.Update()
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(config.Colors.Background)

	gs.loop.View(func() {
		gs.ecs.Draw(screen)
	})
}
