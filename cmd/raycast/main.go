//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"raycaster/internal/app"
	"raycaster/internal/audio"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	stop, err := app.StartCPUProfile(cfg.CPUProfile)
	if err != nil {
		log.Fatalf("cpu profile: %v", err)
	}
	defer stop()

	atlas, err := cfg.LoadAtlas()
	if err != nil {
		log.Fatalf("load tileset: %v", err)
	}
	w, err := cfg.NewWorld(atlas)
	if err != nil {
		log.Fatal(err)
	}

	if !cfg.Mute {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer player.Close()
			w.SetListener(player)
		}
	}

	game := app.New(w, atlas, cfg.Scale)
	width, height := game.Layout(0, 0)

	ebiten.SetWindowTitle("raycaster")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(width, height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
