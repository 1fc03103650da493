package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"raycaster/internal/core"
	"raycaster/internal/texture"
	"raycaster/internal/world"
)

func main() {
	steps := flag.Int("steps", 240, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	layoutName := flag.String("layout", "pillars", "map layout to walk through")
	seed := flag.Int64("seed", 1337, "layout seed")
	width := flag.Int("w", 320, "frame buffer width")
	height := flag.Int("h", 200, "frame buffer height")
	top := flag.Int("top", 10, "number of results to print")
	manualOnly := flag.Bool("manual", false, "skip the grid and only evaluate the defaults plus overrides")
	var overrideFlags kvList
	flag.Var(&overrideFlags, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	overrides, err := parseOverrides(overrideFlags)
	if err != nil {
		log.Fatal(err)
	}

	layout, ok := core.Layouts()[*layoutName]
	if !ok {
		log.Fatalf("unknown layout %q", *layoutName)
	}
	atlas, err := texture.NewAtlas(texture.Placeholder(core.WallVariants), core.WallVariants, 1)
	if err != nil {
		log.Fatalf("placeholder atlas: %v", err)
	}

	base := world.DefaultConfig()
	base.Seed = *seed
	sets := paramGrid()
	if *manualOnly {
		sets = []paramSet{defaultParams()}
	}
	if len(overrides) > 0 {
		fmt.Printf("Overrides: %s\n", overrideFlags.String())
	}
	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps, %dx%d)\n", len(sets), *workers, *steps, *width, *height)

	start := time.Now()
	results := sweep(base, layout, atlas, sets, overrides, *steps, *workers, *width, *height)

	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		res := results[i]
		fmt.Printf("%2d) coverage=%.3f fill=%.3f clamped=%.3f bumps=%d travel=%.2f frames=%d render=%s params=%s\n",
			i+1, res.coverage, res.fill, res.clamped, res.bumps, res.travel, res.frames, res.elapsed.Round(time.Millisecond), res.params)
	}
}
