//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"hudedit/internal/app"
	"hudedit/internal/store"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	state, err := store.Load(cfg.StatePath)
	if err != nil {
		log.Fatalf("load huds: %v", err)
	}

	game := app.New(cfg, state)

	ebiten.SetWindowTitle("hudedit — press E to edit, Esc to leave")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	runErr := ebiten.RunGame(game)
	if err := game.Save(); err != nil {
		log.Printf("%v", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}
