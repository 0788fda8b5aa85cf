package systems

import (
	"testing"

	"github.com/automoto/spacehog/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarfieldLayers(t *testing.T) {
	env := newTestEnv(t)
	sf := NewStarfield(testWidth, testHeight, env.scaler, env.rng)

	require.Len(t, sf.Stars, config.Starfield.Layers*config.Starfield.StarsPerLayer)
	for _, s := range sf.Stars {
		assert.GreaterOrEqual(t, s.X, 0.0)
		assert.Less(t, s.X, testWidth)
		assert.GreaterOrEqual(t, s.speed, 1.0)
		assert.Equal(t, uint8(s.baseAlpha), s.Alpha())
	}
	front, back := sf.Stars[0], sf.Stars[len(sf.Stars)-1]
	assert.Greater(t, front.Size, back.Size)
}

func TestStarsScrollAndRecycle(t *testing.T) {
	env := newTestEnv(t)
	sf := NewStarfield(testWidth, testHeight, env.scaler, env.rng)

	sf.Stars[0].Y = 100
	sf.Stars[1].Y = testHeight
	sf.Stars[2].Y = 100
	sf.Stars[2].life = 0.01
	speed := sf.Stars[0].speed

	sf.Update(16)

	assert.InDelta(t, 100+speed, sf.Stars[0].Y, 1e-9)
	assert.Equal(t, -sf.Stars[1].Size, sf.Stars[1].Y)
	assert.Equal(t, -sf.Stars[2].Size, sf.Stars[2].Y)
	assert.Equal(t, config.Starfield.LifeSpan, sf.Stars[2].life)
}

func TestStarsTwinkleWithinRange(t *testing.T) {
	env := newTestEnv(t)
	sf := NewStarfield(testWidth, testHeight, env.scaler, env.rng)

	dimmed := false
	for i := 0; i < 200; i++ {
		sf.Update(16)
		s := sf.Stars[0]
		assert.LessOrEqual(t, s.Alpha(), s.baseAlpha)
		assert.GreaterOrEqual(t, float64(s.Alpha()), float64(s.baseAlpha)*0.6-1)
		if s.Alpha() < s.baseAlpha {
			dimmed = true
		}
	}
	assert.True(t, dimmed)
}
