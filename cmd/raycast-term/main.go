package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"

	"raycaster/internal/app"
	"raycaster/internal/audio"
	"raycaster/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 30
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal: %v", err)
	}

	runErr := term.New(screen, w, atlas, cfg.TPS).Run()
	screen.Fini()
	if runErr != nil {
		log.Fatal(runErr)
	}
}
