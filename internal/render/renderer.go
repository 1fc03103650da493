package render

import (
	"fmt"

	"raycaster/internal/texture"
	"raycaster/internal/world"
)

// Renderer draws whichever view the world's mode selects.
type Renderer struct {
	Scene    *Projector
	Overhead *Overhead
}

// NewRenderer builds the scene projector over atlas and the default overhead
// view.
func NewRenderer(atlas *texture.Atlas) *Renderer {
	return &Renderer{Scene: NewProjector(atlas), Overhead: NewOverhead()}
}

// Draw renders the active view of w into fb.
func (r *Renderer) Draw(fb *FrameBuffer, w *world.World) {
	switch mode := w.Mode(); mode {
	case world.ModeScene:
		r.Scene.Render(fb, w)
	case world.ModeOverhead:
		r.Overhead.Render(fb, w)
	default:
		panic(fmt.Sprintf("render: unknown view mode %v", mode))
	}
}
