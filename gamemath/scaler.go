package gamemath

// Scaler converts lengths authored against a virtual design resolution
// into actual screen pixels.
type Scaler struct {
	width, height float64
	sx, sy        float64
}

func NewScaler(screenWidth, screenHeight, virtualWidth, virtualHeight float64) *Scaler {
	return &Scaler{
		width:  screenWidth,
		height: screenHeight,
		sx:     screenWidth / virtualWidth,
		sy:     screenHeight / virtualHeight,
	}
}

func (s *Scaler) ScaleX(v float64) float64 { return v * s.sx }
func (s *Scaler) ScaleY(v float64) float64 { return v * s.sy }

// ScaleFont scales a font size by the horizontal factor so text never
// outgrows narrow screens.
func (s *Scaler) ScaleFont(size float64) float64 { return size * s.sx }

// SpriteWidth returns a width that is the given fraction of the screen width.
func (s *Scaler) SpriteWidth(fraction float64) float64 { return s.width * fraction }

func (s *Scaler) ScreenWidth() float64 { return s.width }
func (s *Scaler) ScreenHeight() float64 { return s.height }
