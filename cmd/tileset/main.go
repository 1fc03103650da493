// Command tileset writes the built-in placeholder wall atlas as a BMP so it
// can be edited and loaded back with -tileset.
package main

import (
	"flag"
	"log"

	"raycaster/internal/core"
	"raycaster/internal/texture"
)

func main() {
	out := flag.String("o", "walls.bmp", "output path")
	frames := flag.Int("frames", core.WallVariants, "number of wall frames")
	flag.Parse()

	if *frames <= 0 {
		log.Fatalf("frames must be positive, got %d", *frames)
	}
	img := texture.Placeholder(*frames)
	if err := texture.SaveBMP(*out, img); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %dx%d atlas with %d frames to %s", img.W, img.H, *frames, *out)
}
