package systems

import (
	"math/rand"

	"github.com/automoto/spacehog/config"
	"github.com/automoto/spacehog/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var starAlphas = [][]uint8{
	{170, 200, 255}, // front layer
	{110, 130},
	{50, 70}, // deepest layer
}

var layerSpeedFactor = []float64{1, 0.6, 0.25}

// Star is one background point. Deeper layers are dimmer and slower.
type Star struct {
	X, Y  float64
	Size  float64
	Layer int

	speed     float64
	baseAlpha uint8
	life      float64
	twinkle   float32
	fadeOut   *gween.Tween
	fadeIn    *gween.Tween
	fading    bool
}

// Alpha is the star's current brightness.
func (s *Star) Alpha() uint8 {
	return uint8(float32(s.baseAlpha) * s.twinkle)
}

// Starfield is the scrolling parallax background. It is purely cosmetic.
type Starfield struct {
	Stars  []Star
	width  float64
	height float64
	rng    *rand.Rand
}

func NewStarfield(width, height float64, scaler *gamemath.Scaler, rng *rand.Rand) *Starfield {
	cfg := config.Starfield
	sf := &Starfield{
		Stars:  make([]Star, 0, cfg.Layers*cfg.StarsPerLayer),
		width:  width,
		height: height,
		rng:    rng,
	}
	size := scaler.ScaleX(cfg.VirtualSize)
	for layer := 0; layer < cfg.Layers; layer++ {
		alphas := starAlphas[layer%len(starAlphas)]
		for i := 0; i < cfg.StarsPerLayer; i++ {
			speed := float64(1+rng.Intn(cfg.MaxSpeed-1)) * float64(layer+1) * 0.5
			speed *= layerSpeedFactor[layer%len(layerSpeedFactor)]
			if speed < 1 {
				speed = 1
			}
			// Twinkle periods are staggered so the field never pulses in sync.
			period := cfg.TwinkleMs * (0.5 + rng.Float32())
			sf.Stars = append(sf.Stars, Star{
				X:         rng.Float64() * width,
				Y:         rng.Float64() * height,
				Size:      size / float64(layer+1),
				Layer:     layer,
				speed:     speed,
				baseAlpha: alphas[rng.Intn(len(alphas))],
				life:      cfg.LifeSpan,
				twinkle:   1,
				fading:    true,
				fadeOut:   gween.New(1, 0.6, period, ease.InOutSine),
				fadeIn:    gween.New(0.6, 1, period, ease.InOutSine),
			})
		}
	}
	return sf
}

// Update scrolls every star and recycles the ones that fell off the bottom
// or burned out.
func (sf *Starfield) Update(deltaMs int64) {
	nd := gamemath.NormalizedDelta(deltaMs, config.C.ReferenceFrameMs)
	for i := range sf.Stars {
		s := &sf.Stars[i]
		s.Y += s.speed * nd
		s.life -= config.Starfield.Decay * nd
		sf.twinkle(s, float32(deltaMs))
		if s.Y > sf.height || s.life <= 0 {
			s.X = sf.rng.Float64() * sf.width
			s.Y = -s.Size
			s.life = config.Starfield.LifeSpan
		}
	}
}

func (sf *Starfield) twinkle(s *Star, dt float32) {
	tween := s.fadeIn
	if s.fading {
		tween = s.fadeOut
	}
	v, done := tween.Update(dt)
	s.twinkle = v
	if done {
		tween.Reset()
		s.fading = !s.fading
	}
}
