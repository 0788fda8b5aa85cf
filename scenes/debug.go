package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/spacehog/components"
	"github.com/automoto/spacehog/config"
	"github.com/automoto/spacehog/fonts"
	"github.com/automoto/spacehog/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// drawDebug outlines every collision object in play and prints the world
// snapshot. Toggled with F3.
func (gs *GameScene) drawDebug(_ *ecs.ECS, screen *ebiten.Image) {
	if !gs.debug {
		return
	}

	for _, obj := range gs.world.Space().Objects() {
		if obj.X == components.ParkX && obj.Y == components.ParkY {
			continue
		}

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = color.RGBA{255, 0, 0, 255} // Red
		} else if obj.HasTags(tags.ResolvPlayerBullet) {
			c = color.RGBA{0, 255, 0, 255} // Green
		}
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}

	d := gs.world.DebugData()
	lines := []string{
		fmt.Sprintf("level %d %s", d.LevelNumber, d.LevelState),
		fmt.Sprintf("defeated %d/%d", d.EnemiesDefeated, d.TotalEnemies),
		fmt.Sprintf("enemies %d", d.ActiveEnemies),
		fmt.Sprintf("bullets %d player %d enemy", d.ActivePlayerBullets, d.ActiveEnemyBullets),
		fmt.Sprintf("effects %d", d.ActiveEffects),
		fmt.Sprintf("hp %d lives %d", d.PlayerHP, d.PlayerLives),
		fmt.Sprintf("fps %.0f tps %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
	}
	face := fonts.Debug.Get()
	lineH := face.Metrics().Height.Ceil()
	y := config.C.Height / 4
	for _, line := range lines {
		text.Draw(screen, line, face, hudMargin, y, config.Colors.DebugText)
		y += lineH
	}
}
