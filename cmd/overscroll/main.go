package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/overscroll/assets/icon"
	"github.com/depeter/overscroll/internal/app"
	"github.com/depeter/overscroll/internal/config"
	"github.com/depeter/overscroll/internal/ui"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Init fonts
	if err := ui.InitFonts(goregular.TTF); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	// Create game
	game, err := app.NewGame(cfg)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("overscroll")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.UI.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
