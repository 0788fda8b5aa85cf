package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/spacehog/assets"
	"github.com/automoto/spacehog/components"
	"github.com/automoto/spacehog/config"
	"github.com/automoto/spacehog/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin       = 10
	hudBarWidth     = 130
	hudBarHeight    = 13
	hudIconSize     = 24
	bannerFadeMs    = 600
	frameIntervalMs = 1000.0 / 60
)

var hudIconOp = &ebiten.DrawImageOptions{}

// updateBanner fades the intermission banner in when a level ends and
// drops it when the next one starts.
func (gs *GameScene) updateBanner(_ *ecs.ECS) {
	intermission := false
	gs.loop.View(func() {
		intermission = gs.world.Levels().State() == config.LevelIntermission
	})

	if !intermission {
		gs.banner = nil
		gs.bannerAlpha = 0
		return
	}
	if gs.banner == nil {
		gs.banner = gween.New(0, 1, bannerFadeMs, ease.OutQuad)
	}
	gs.bannerAlpha, _ = gs.banner.Update(frameIntervalMs)
}

// drawHUD renders score, health, lives and the power-up queue, plus the
// banner between levels.
func (gs *GameScene) drawHUD(_ *ecs.ECS, screen *ebiten.Image) {
	player := gs.world.Player()
	hp := components.Health.Get(player)
	data := components.Player.Get(player)
	face := fonts.HUD.Get()
	width := config.C.Width

	// Background (dark gray)
	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth), float32(hudBarHeight),
		color.RGBA{40, 40, 40, 255}, false)

	// Current HP (green)
	ratio := float32(hp.Current) / float32(hp.Max)
	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth)*ratio, float32(hudBarHeight),
		color.RGBA{40, 220, 40, 255}, false)

	small := fonts.Small.Get()
	lives := fmt.Sprintf("LIVES %d", data.Lives)
	text.Draw(screen, lives, small, hudMargin, hudMargin+hudBarHeight+small.Metrics().Height.Ceil(), config.Colors.HUD)

	score := fmt.Sprintf("%06d", gs.world.Score())
	scoreW := text.BoundString(face, score).Dx()
	text.Draw(screen, score, face, width-hudMargin-scoreW, hudMargin+face.Metrics().Ascent.Ceil(), config.Colors.HUD)

	gs.drawPowerUps(screen, data)

	if gs.banner != nil {
		gs.drawBanner(screen)
	}
}

func (gs *GameScene) drawPowerUps(screen *ebiten.Image, data *components.PlayerData) {
	y := float64(config.C.Height - hudMargin - hudIconSize)
	x := float64(hudMargin)

	if data.HasPowerUp {
		gs.drawIcon(screen, data.ActivePowerUp.Stats().HUDAsset, x, y, 1)
		secs := fmt.Sprintf("%ds", (data.PowerUpTimerMs+999)/1000)
		text.Draw(screen, secs, fonts.Small.Get(), int(x)+hudIconSize+4, int(y)+hudIconSize-4, config.Colors.HUD)
		x += hudIconSize * 3
	}
	for _, p := range data.PowerUps {
		gs.drawIcon(screen, p.Stats().HUDAsset, x, y, 0.6)
		x += hudIconSize + 4
	}
}

func (gs *GameScene) drawIcon(screen *ebiten.Image, id assets.ID, x, y float64, alpha float32) {
	img := gs.images.frame(id, 1, 0)
	b := img.Bounds()
	hudIconOp.GeoM.Reset()
	hudIconOp.GeoM.Scale(hudIconSize/float64(b.Dx()), hudIconSize/float64(b.Dy()))
	hudIconOp.GeoM.Translate(x, y)
	hudIconOp.ColorScale.Reset()
	hudIconOp.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(img, hudIconOp)
}

func (gs *GameScene) drawBanner(screen *ebiten.Image) {
	levels := gs.world.Levels()
	msg := fmt.Sprintf("LEVEL %d CLEAR", levels.LevelNumber())
	face := fonts.Banner.Get()

	banner := config.Colors.Banner
	c := color.NRGBA{R: banner.R, G: banner.G, B: banner.B, A: uint8(255 * gs.bannerAlpha)}

	w := text.BoundString(face, msg).Dx()
	x := (config.C.Width - w) / 2
	y := config.C.Height / 3
	text.Draw(screen, msg, face, x, y, c)

	next := fmt.Sprintf("next wave in %d", (levels.IntermissionRemainingMs()+999)/1000)
	small := fonts.Small.Get()
	nw := text.BoundString(small, next).Dx()
	text.Draw(screen, next, small, (config.C.Width-nw)/2, y+face.Metrics().Height.Ceil(), c)
}
