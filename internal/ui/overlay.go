//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"raycaster/internal/render"
	"raycaster/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	minimapSize   = 128
	minimapMargin = 8
)

var (
	minimapBorder  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	minimapHeading = color.RGBA{R: 255, G: 200, B: 40, A: 255}
)

// Overlay draws the minimap and the debug readout on top of the view.
type Overlay struct {
	world       *world.World
	scale       int
	showMinimap bool
	showInfo    bool

	overhead *render.Overhead
	fb       *render.FrameBuffer
	painter  *render.Painter
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(w *world.World, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{world: w, scale: scale, showMinimap: true}
	o.overhead = render.NewOverhead()
	o.overhead.Rays = false
	o.fb = render.NewFrameBuffer(minimapSize, minimapSize)
	o.painter = render.NewPainter(minimapSize, minimapSize)
	return o
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.showMinimap = !o.showMinimap
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.showInfo = !o.showInfo
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showMinimap && o.world.Mode() == world.ModeScene {
		o.drawMinimap(screen)
	}
	if o.showInfo {
		v := o.world.Viewer()
		msg := fmt.Sprintf("FPS %.1f  TPS %.1f\npos %.2f,%.2f  view %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(), v.Pos.X, v.Pos.Y, o.world.Mode())
		ebitenutil.DebugPrintAt(screen, msg, minimapMargin, o.world.Config().ScreenH*o.scale-36)
	}
}

func (o *Overlay) drawMinimap(screen *ebiten.Image) {
	o.overhead.Render(o.fb, o.world)
	x := float64(minimapMargin)
	y := float64(minimapMargin)
	o.painter.Blit(screen, o.fb, x, y, 1)

	cs := float64(render.CellSize(o.world.Map(), minimapSize, minimapSize))
	v := o.world.Viewer()
	d := v.Direction()
	cx := float32(x + v.Pos.X*cs)
	cy := float32(y + v.Pos.Y*cs)
	vector.StrokeLine(screen, cx, cy, cx+float32(d.X*cs), cy+float32(d.Y*cs), 1, minimapHeading, false)
	vector.StrokeRect(screen, float32(x), float32(y), minimapSize, minimapSize, 1, minimapBorder, false)
}
