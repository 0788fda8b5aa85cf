package scenes

import (
	"github.com/automoto/spacehog/config"
	"github.com/automoto/spacehog/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

var (
	touchIDs    []ebiten.TouchID
	newTouchIDs []ebiten.TouchID
)

// updateInput samples mouse, touch and keys into the loop's input snapshot.
// The first finger steers and fires; any further finger activates the next
// power-up.
func (gs *GameScene) updateInput(_ *ecs.ECS) {
	var in world.Input

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		x, _ := ebiten.TouchPosition(touchIDs[0])
		in.TouchX = float64(x)
		in.Touching = true
		in.Firing = true

		newTouchIDs = inpututil.AppendJustPressedTouchIDs(newTouchIDs[:0])
		for _, id := range newTouchIDs {
			if id != touchIDs[0] {
				gs.loop.RequestPowerUp()
				break
			}
		}
	} else {
		x, y := ebiten.CursorPosition()
		if x >= 0 && y >= 0 && x < config.C.Width && y < config.C.Height {
			in.TouchX = float64(x)
			in.Touching = true
		}
		in.Firing = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	}

	gs.loop.SetInput(in)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		gs.loop.RequestPowerUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		gs.debug = !gs.debug
	}
	if gs.debug && inpututil.IsKeyJustPressed(ebiten.KeyP) {
		gs.loop.View(func() {
			gs.world.CollectPowerUp(config.PowerUpPiercingShot)
		})
	}
}
