package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
		{"negative coords", Rect{X: -5, Y: -5, W: 6, H: 6}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestRectCenter(t *testing.T) {
	c := Rect{X: 10, Y: 20, W: 30, H: 40}.Center()
	assert.Equal(t, math.NewVec2(25, 40), c)
}

func TestLerpAndClamp(t *testing.T) {
	assert.InDelta(t, 25.0, Lerp(0, 100, 0.25), 1e-9)
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, Clamp(13, 0, 10))
	assert.Equal(t, 4.0, Clamp(4, 0, 10))
}

func TestScaler(t *testing.T) {
	s := NewScaler(540, 960, 1080, 1920)
	assert.InDelta(t, 50.0, s.ScaleX(100), 1e-9)
	assert.InDelta(t, 150.0, s.ScaleY(300), 1e-9)
	assert.InDelta(t, 12.0, s.ScaleFont(24), 1e-9)
	assert.InDelta(t, 540.0/7, s.SpriteWidth(1.0/7), 1e-9)
}

func TestNormalizedDelta(t *testing.T) {
	assert.InDelta(t, 1.0, NormalizedDelta(16, 16), 1e-9)
	assert.InDelta(t, 2.0, NormalizedDelta(32, 16), 1e-9)
}
