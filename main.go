package main

import (
	"flag"
	"image"
	"os"

	"github.com/automoto/spacehog/assets"
	"github.com/automoto/spacehog/config"
	"github.com/automoto/spacehog/fonts"
	"github.com/automoto/spacehog/gamemath"
	"github.com/automoto/spacehog/logger"
	"github.com/automoto/spacehog/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	debug := flag.Bool("debug", false, "start with the debug overlay and cheat keys enabled")
	seed := flag.Int64("seed", 0, "random seed for a reproducible run (0 picks one)")
	width := flag.Int("width", config.C.Width, "window width in pixels")
	height := flag.Int("height", config.C.Height, "window height in pixels")
	assetDir := flag.String("assets", "", "directory of <asset>.png sprite strips (placeholders when empty)")
	flag.Parse()

	logger.Init()

	config.C.Width = *width
	config.C.Height = *height
	config.Debug.Enabled = *debug

	scaler := gamemath.NewScaler(float64(config.C.Width), float64(config.C.Height), config.C.VirtualWidth, config.C.VirtualHeight)
	if err := fonts.LoadDefaults(scaler.ScaleFont(1)); err != nil {
		logger.Log.WithError(err).Fatal("failed to load fonts")
	}

	var provider assets.Provider = assets.PlaceholderProvider{}
	if *assetDir != "" {
		provider = assets.FSProvider{FS: os.DirFS(*assetDir), Dir: "."}
	}

	g := &Game{}
	scene, err := scenes.NewGameScene(g, scenes.GameOptions{
		Assets: provider,
		Seed:   *seed,
		Debug:  config.Debug.Enabled,
	})
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to start game")
	}
	g.scene = scene

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("spacehog")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(g); err != nil {
		logger.Log.WithError(err).Fatal("game exited")
	}
}
