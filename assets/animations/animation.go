package animations

// State is the playback state of an Animation.
type State int

const (
	Paused State = iota
	Playing
	Finished
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	default:
		return "paused"
	}
}

// Animation cycles through frame indices [First, Last] on a millisecond
// clock. It advances at most one frame per Update.
type Animation struct {
	First        int
	Last         int
	FrameDelayMs int64
	Loops        bool
	Looped       bool // set once a looping animation wraps around

	state State
	index int // frames advanced since Restart, grows unbounded while looping
	timer int64
}

func NewAnimation(first, last int, frameDelayMs int64, loops bool) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		FrameDelayMs: frameDelayMs,
		Loops:        loops,
	}
}

func (a *Animation) frameCount() int {
	return a.Last - a.First + 1
}

func (a *Animation) Update(deltaMs int64) {
	if a.state != Playing {
		return
	}
	a.timer += deltaMs
	if a.timer < a.FrameDelayMs {
		return
	}
	a.timer -= a.FrameDelayMs
	a.index++
	if a.index >= a.frameCount() {
		if a.Loops {
			a.Looped = true
		} else {
			a.state = Finished
		}
	}
}

// Frame returns the frame to draw. A finished animation holds its last frame.
func (a *Animation) Frame() int {
	if a.state == Finished {
		return a.Last
	}
	return a.First + a.index%a.frameCount()
}

func (a *Animation) State() State { return a.state }

func (a *Animation) Finished() bool { return a.state == Finished }

func (a *Animation) Play() {
	if a.state != Finished {
		a.state = Playing
	}
}

func (a *Animation) Pause() {
	if a.state == Playing {
		a.state = Paused
	}
}

// Restart rewinds to the first frame and leaves the animation paused.
func (a *Animation) Restart() {
	a.index = 0
	a.timer = 0
	a.Looped = false
	a.state = Paused
}

// Reset reconfigures the animation for a new frame range and rewinds it.
func (a *Animation) Reset(first, last int, frameDelayMs int64, loops bool) {
	a.First = first
	a.Last = last
	a.FrameDelayMs = frameDelayMs
	a.Loops = loops
	a.Restart()
}
