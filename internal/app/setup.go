package app

import (
	"errors"
	"fmt"
	"strings"

	"raycaster/internal/core"
	"raycaster/internal/texture"
	"raycaster/internal/world"
)

// LoadAtlas decodes the configured tileset, or generates the placeholder
// walls when no tileset is set.
func (c *Config) LoadAtlas() (*texture.Atlas, error) {
	frames := c.Frames
	if frames <= 0 {
		frames = core.WallVariants
	}
	var img *texture.Image
	if c.Tileset == "" {
		img = texture.Placeholder(frames)
	} else {
		loaded, err := texture.Load(c.Tileset)
		if err != nil {
			return nil, err
		}
		img = loaded
	}
	atlas, err := texture.NewAtlas(img, frames, 1)
	if err != nil {
		return nil, fmt.Errorf("tileset %q: %w", c.Tileset, err)
	}
	return atlas, nil
}

// ErrTooFewFrames reports an atlas with fewer frames than the layouts place
// wall types.
var ErrTooFewFrames = errors.New("atlas has fewer frames than wall types")

// NewWorld builds the world with the selected layout and compiled-in
// parameters. Edits cycle through one wall type per atlas frame.
func (c *Config) NewWorld(atlas *texture.Atlas) (*world.World, error) {
	frames, _ := atlas.Frames()
	if frames < core.WallVariants {
		return nil, fmt.Errorf("%d frames, need %d: %w", frames, core.WallVariants, ErrTooFewFrames)
	}
	layout, ok := core.Layouts()[c.Layout]
	if !ok {
		return nil, fmt.Errorf("unknown layout %q (available: %s)", c.Layout, strings.Join(core.LayoutNames(), ", "))
	}
	cfg := world.DefaultConfig()
	cfg.Seed = c.Seed
	cfg.WallVariants = frames
	return world.New(cfg, layout), nil
}
