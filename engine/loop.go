package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/automoto/spacehog/logger"
	"github.com/automoto/spacehog/world"
)

// Simulation is anything advanced once per tick.
type Simulation interface {
	Update(deltaMs int64, in world.Input)
}

// GameLoop drives a Simulation from its own goroutine at a fixed cadence.
// Each tick measures real elapsed time and passes it through unchanged:
// a stall produces one large step, never several small ones.
//
// Update and every View call share one lock, so readers always see whole
// frames. Input is a latest-value snapshot; writes between ticks overwrite
// each other.
type GameLoop struct {
	sim      Simulation
	tickRate int
	now      func() time.Time

	mu    sync.Mutex
	input atomic.Pointer[world.Input]
	// powerUp is a one-shot request consumed by the next tick.
	powerUp atomic.Bool

	// lifecycle serialises Start and Stop.
	lifecycle sync.Mutex
	running   atomic.Bool
	stopChan  chan struct{}
	done      chan struct{}
	last      time.Time
}

type Option func(*GameLoop)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(g *GameLoop) { g.now = now }
}

func NewGameLoop(sim Simulation, tickRate int, opts ...Option) *GameLoop {
	g := &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		now:      time.Now,
	}
	g.input.Store(&world.Input{})
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Start launches the loop goroutine. It stops when ctx is cancelled or
// Stop is called.
func (g *GameLoop) Start(ctx context.Context) {
	g.lifecycle.Lock()
	defer g.lifecycle.Unlock()

	if !g.running.CompareAndSwap(false, true) {
		return
	}
	g.stopChan = make(chan struct{})
	g.done = make(chan struct{})
	g.last = g.now()
	go g.run(ctx, g.stopChan, g.done)
}

// run clears the running flag before closing done, so the loop can be
// started again as soon as done is closed.
func (g *GameLoop) run(ctx context.Context, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer g.running.Store(false)

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	logger.Log.WithField("tickRate", g.tickRate).Info("game loop started")

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("game loop stopped")
			return
		case <-stop:
			logger.Log.Info("game loop stopped")
			return
		case <-ticker.C:
			now := g.now()
			delta := now.Sub(g.last).Milliseconds()
			g.last = now
			g.Step(delta)
		}
	}
}

// Stop ends the loop and waits for the tick in progress to finish.
func (g *GameLoop) Stop() {
	g.lifecycle.Lock()
	defer g.lifecycle.Unlock()

	if !g.running.CompareAndSwap(true, false) {
		return
	}
	close(g.stopChan)
	<-g.done
}

// Step runs exactly one tick of deltaMs under the frame lock.
func (g *GameLoop) Step(deltaMs int64) {
	in := *g.input.Load()
	in.ActivatePowerUp = g.powerUp.Swap(false)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.sim.Update(deltaMs, in)
}

// SetInput replaces the input snapshot read by the next tick.
func (g *GameLoop) SetInput(in world.Input) {
	in.ActivatePowerUp = false
	g.input.Store(&in)
}

// RequestPowerUp asks the next tick to activate the queued power-up.
func (g *GameLoop) RequestPowerUp() {
	g.powerUp.Store(true)
}

// View runs fn while holding the frame lock.
func (g *GameLoop) View(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn()
}

func (g *GameLoop) Running() bool {
	return g.running.Load()
}
