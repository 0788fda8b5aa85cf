package systems

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/automoto/spacehog/components"
	"github.com/automoto/spacehog/config"
	"github.com/automoto/spacehog/gamemath"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// MovementStrategy moves one enemy per tick. Strategies are shared between
// every enemy using the same pattern; anything an enemy needs to remember
// lives in its own components.Movement slot.
type MovementStrategy interface {
	Update(e *donburi.Entry, deltaMs int64, screenHeight, screenWidth float64)
	// OnOutOfBounds runs after the enemy has been wrapped back to the top.
	OnOutOfBounds(e *donburi.Entry)
}

type noBoundsHook struct{}

func (noBoundsHook) OnOutOfBounds(*donburi.Entry) {}

func normalizedDelta(deltaMs int64) float64 {
	return gamemath.NormalizedDelta(deltaMs, config.C.ReferenceFrameMs)
}

// StraightDown descends at the enemy's speed.
type StraightDown struct {
	noBoundsHook
}

func (StraightDown) Update(e *donburi.Entry, deltaMs int64, _, _ float64) {
	speed := components.Enemy.Get(e).Speed
	components.Object.Get(e).Translate(0, speed*normalizedDelta(deltaMs))
}

// ZigZag descends while swaying sideways on a sine wave.
type ZigZag struct {
	noBoundsHook
	Frequency float64 // radians per reference frame
}

func (z ZigZag) Update(e *donburi.Entry, deltaMs int64, _, _ float64) {
	nd := normalizedDelta(deltaMs)
	speed := components.Enemy.Get(e).Speed
	m := components.Movement.Get(e)

	components.Object.Get(e).Translate(math.Sin(m.Phase)*speed, speed*nd)
	m.Phase += z.Frequency * nd
}

// Diagonal crosses the screen from a random side corner to the opposite
// bottom corner. The path is picked on the first tick and again after
// every wrap.
type Diagonal struct {
	rng *rand.Rand
}

func (d *Diagonal) Update(e *donburi.Entry, deltaMs int64, screenHeight, screenWidth float64) {
	m := components.Movement.Get(e)
	obj := components.Object.Get(e)

	if !m.HasDirection {
		startsLeft := d.rng.Intn(2) == 0
		startX, targetX := screenWidth, -obj.W
		if startsLeft {
			startX, targetX = -obj.W, screenWidth
		}
		startY := d.rng.Float64() * (screenHeight / 2)
		obj.MoveTo(startX, startY)

		dir := math2.NewVec2(targetX-startX, screenHeight-startY).Normalized()
		m.DirX, m.DirY = dir.XY()
		m.HasDirection = true
	}

	step := components.Enemy.Get(e).Speed * normalizedDelta(deltaMs)
	obj.Translate(m.DirX*step, m.DirY*step)
}

func (d *Diagonal) OnOutOfBounds(e *donburi.Entry) {
	components.Movement.Get(e).HasDirection = false
}

// Hunter dives toward the bottom and, once deep enough, may pull back up
// for a while before diving again.
type Hunter struct {
	rng          *rand.Rand
	ReverseSpeed float64
}

func (h *Hunter) Update(e *donburi.Entry, deltaMs int64, screenHeight, _ float64) {
	nd := normalizedDelta(deltaMs)
	m := components.Movement.Get(e)
	obj := components.Object.Get(e)

	switch m.Hunter {
	case components.HunterForward:
		obj.Translate(0, components.Enemy.Get(e).Speed*nd)
		if obj.Y > screenHeight*config.Hunter.TriggerFraction && h.rng.Intn(100) < config.Hunter.ReverseChance {
			m.Hunter = components.HunterReversing
			m.ReverseTimerMs = config.Hunter.ReverseMs
		}
	case components.HunterReversing:
		obj.Translate(0, h.ReverseSpeed*nd)
		m.ReverseTimerMs -= deltaMs
		if m.ReverseTimerMs <= 0 {
			m.Hunter = components.HunterForward
		}
	}
}

func (h *Hunter) OnOutOfBounds(e *donburi.Entry) {
	components.Movement.Get(e).Hunter = components.HunterForward
}

// Strategies holds one pre-built strategy per movement pattern.
type Strategies map[config.MovementPattern]MovementStrategy

// NewStrategies builds every strategy once, up front.
func NewStrategies(rng *rand.Rand) Strategies {
	return Strategies{
		config.PatternStraightDown: StraightDown{},
		config.PatternZigZag:       ZigZag{Frequency: config.ZigZag.Frequency},
		config.PatternDiagonal:     &Diagonal{rng: rng},
		config.PatternHunter:       &Hunter{rng: rng, ReverseSpeed: config.Hunter.ReverseSpeed},
	}
}

// For returns the strategy for p. A missing entry is a programming error.
func (s Strategies) For(p config.MovementPattern) MovementStrategy {
	strategy, ok := s[p]
	if !ok {
		panic(fmt.Sprintf("no movement strategy for pattern %s", p))
	}
	return strategy
}
