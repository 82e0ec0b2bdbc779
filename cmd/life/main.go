//go:build ebiten

package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"gol-paint/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		logger = log.New(os.Stderr, "life: ", log.LstdFlags)
	}

	game, err := app.New(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("gol-paint: Game of Life")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
