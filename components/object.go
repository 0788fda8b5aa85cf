package components

import (
	"github.com/automoto/spacehog/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ObjectData is an entity's position and size. The bounding box is always
// derived from the live resolv object, never cached.
type ObjectData struct {
	*resolv.Object
}

// AABB returns the current bounding box.
func (o *ObjectData) AABB() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// MidPoint returns the centre of the current bounding box.
func (o *ObjectData) MidPoint() math.Vec2 {
	return o.AABB().Center()
}

// MoveTo places the object and refreshes its broad-phase cells.
func (o *ObjectData) MoveTo(x, y float64) {
	o.X = x
	o.Y = y
	o.Update()
}

// Translate moves the object by (dx, dy) and refreshes its broad-phase cells.
func (o *ObjectData) Translate(dx, dy float64) {
	o.MoveTo(o.X+dx, o.Y+dy)
}

// Resize changes the object's size and refreshes its broad-phase cells.
func (o *ObjectData) Resize(w, h float64) {
	o.W = w
	o.H = h
	o.Update()
}

// ParkX and ParkY is where retired pooled objects wait, outside the
// collision space.
const (
	ParkX = -1000
	ParkY = -1000
)

// Park moves the object out of play.
func (o *ObjectData) Park() {
	o.MoveTo(ParkX, ParkY)
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
