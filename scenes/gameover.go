package scenes

import (
	"fmt"

	"github.com/automoto/spacehog/config"
	"github.com/automoto/spacehog/fonts"
	"github.com/automoto/spacehog/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// GameOverScene shows the final score until the player taps to go again.
type GameOverScene struct {
	sceneChanger SceneChanger
	opts         GameOptions
	score        int
	touchIDs     []ebiten.TouchID
}

func NewGameOverScene(sc SceneChanger, opts GameOptions, score int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, opts: opts, score: score}
}

func (gs *GameOverScene) Update() {
	gs.touchIDs = inpututil.AppendJustPressedTouchIDs(gs.touchIDs[:0])
	restart := len(gs.touchIDs) > 0 ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if !restart {
		return
	}

	// Only the first run honours -seed.
	opts := gs.opts
	opts.Seed = 0
	next, err := NewGameScene(gs.sceneChanger, opts)
	if err != nil {
		logger.Log.WithError(err).Error("could not restart")
		return
	}
	gs.sceneChanger.ChangeScene(next)
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(config.Colors.Background)

	title := "GAME OVER"
	titleFont := fonts.Banner.Get()
	titleX := (config.C.Width - text.BoundString(titleFont, title).Dx()) / 2
	text.Draw(screen, title, titleFont, titleX, config.C.Height/3, config.Colors.Banner)

	menuFont := fonts.HUD.Get()
	lines := []string{
		fmt.Sprintf("SCORE %06d", gs.score),
		"tap to play again",
	}
	y := config.C.Height / 2
	for _, line := range lines {
		x := (config.C.Width - text.BoundString(menuFont, line).Dx()) / 2
		text.Draw(screen, line, menuFont, x, y, config.Colors.HUD)
		y += menuFont.Metrics().Height.Ceil() * 2
	}
}
