package scenes

import (
	"image/color"

	"github.com/automoto/spacehog/components"
	"github.com/automoto/spacehog/config"
	"github.com/automoto/spacehog/systems"
	"github.com/automoto/spacehog/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var spriteDrawOp = &ebiten.DrawImageOptions{}

// drawSprite stretches the entity's current frame over its bounding box.
func (gs *GameScene) drawSprite(screen *ebiten.Image, e *donburi.Entry) {
	sprite := components.Sprite.Get(e)
	obj := components.Object.Get(e)
	img := gs.images.frame(sprite.Asset, sprite.Frames, sprite.Frame())

	b := img.Bounds()
	spriteDrawOp.GeoM.Reset()
	spriteDrawOp.GeoM.Scale(obj.W/float64(b.Dx()), obj.H/float64(b.Dy()))
	spriteDrawOp.GeoM.Translate(obj.X, obj.Y)
	screen.DrawImage(img, spriteDrawOp)
}

func (gs *GameScene) drawStarfield(_ *ecs.ECS, screen *ebiten.Image) {
	star := config.Colors.Star
	c := color.NRGBA{R: star.R, G: star.G, B: star.B}
	for i := range gs.world.Starfield().Stars {
		s := &gs.world.Starfield().Stars[i]
		c.A = s.Alpha()
		vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.Size), float32(s.Size), c, false)
	}
}

func (gs *GameScene) drawEnemies(e *ecs.ECS, screen *ebiten.Image) {
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if systems.EnemyActive(entry) {
			gs.drawSprite(screen, entry)
		}
	})
}

// drawBullets draws every bullet in flight, including enemy bullets whose
// shooter is already gone.
func (gs *GameScene) drawBullets(e *ecs.ECS, screen *ebiten.Image) {
	draw := func(entry *donburi.Entry) {
		if systems.BulletActive(entry) {
			gs.drawSprite(screen, entry)
		}
	}
	tags.PlayerBullet.Each(e.World, draw)
	tags.EnemyBullet.Each(e.World, draw)
}

func (gs *GameScene) drawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		if systems.PlayerLifeState(entry).Visible() {
			gs.drawSprite(screen, entry)
		}
	})
}

func (gs *GameScene) drawEffects(e *ecs.ECS, screen *ebiten.Image) {
	tags.Effect.Each(e.World, func(entry *donburi.Entry) {
		if components.Effect.Get(entry).Active {
			gs.drawSprite(screen, entry)
		}
	})
}
