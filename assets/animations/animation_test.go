package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOneShotFinishesOnLastFrame(t *testing.T) {
	a := NewAnimation(0, 4, 50, false)
	a.Play()

	for i := 0; i < 4; i++ {
		a.Update(50)
		assert.Equal(t, i+1, a.Frame())
		assert.False(t, a.Finished())
	}

	a.Update(50)
	assert.True(t, a.Finished())
	assert.Equal(t, 4, a.Frame())

	a.Update(50)
	assert.Equal(t, 4, a.Frame(), "finished animation holds its last frame")
}

func TestAdvancesAtMostOneFramePerUpdate(t *testing.T) {
	a := NewAnimation(0, 4, 50, false)
	a.Play()

	a.Update(500)
	assert.Equal(t, 1, a.Frame())
}

func TestLoopingWraps(t *testing.T) {
	a := NewAnimation(0, 1, 250, true)
	a.Play()

	a.Update(250)
	assert.Equal(t, 1, a.Frame())
	a.Update(250)
	assert.Equal(t, 0, a.Frame())
	assert.True(t, a.Looped)
	assert.Equal(t, Playing, a.State())
}

func TestPausedDoesNotAdvance(t *testing.T) {
	a := NewAnimation(0, 3, 10, true)
	a.Update(100)
	assert.Equal(t, 0, a.Frame())

	a.Play()
	a.Pause()
	a.Update(100)
	assert.Equal(t, 0, a.Frame())
	assert.Equal(t, Paused, a.State())
}

func TestResetRewinds(t *testing.T) {
	a := NewAnimation(0, 1, 10, false)
	a.Play()
	a.Update(10)
	a.Update(10)
	assert.True(t, a.Finished())

	a.Reset(0, 3, 75, false)
	assert.Equal(t, Paused, a.State())
	assert.Equal(t, 0, a.Frame())

	a.Play()
	a.Update(75)
	assert.Equal(t, 1, a.Frame())
}
