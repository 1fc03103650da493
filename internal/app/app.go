//go:build ebiten

package app

import (
	"raycaster/internal/core"
	"raycaster/internal/render"
	"raycaster/internal/texture"
	"raycaster/internal/ui"
	"raycaster/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a world to the ebiten.Game interface.
type Game struct {
	world    *world.World
	renderer *render.Renderer
	fb       *render.FrameBuffer
	painter  *render.Painter
	hud      *ui.HUD
	overlay  *ui.Overlay
	clock    *core.Clock

	scale   int
	showHUD bool
}

// New constructs a Game drawing w with walls from atlas.
func New(w *world.World, atlas *texture.Atlas, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	cfg := w.Config()
	g := &Game{
		world:    w,
		renderer: render.NewRenderer(atlas),
		fb:       render.NewFrameBuffer(cfg.ScreenW, cfg.ScreenH),
		painter:  render.NewPainter(cfg.ScreenW, cfg.ScreenH),
		hud:      ui.NewHUD(w, "Raycaster", hudWidth, cfg.ScreenH*scale),
		overlay:  ui.NewOverlay(w, scale),
		clock:    core.NewClock(),
		scale:    scale,
		showHUD:  true,
	}
	g.clock.Start()
	return g
}

// Update handles per-frame input and advances the world by the measured
// frame time.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.world.ToggleMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.world.Reset(g.world.Config().Seed)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.edit(ebiten.CursorPosition())
	}

	g.overlay.Update()
	if g.showHUD {
		g.hud.Update(g.viewWidth())
	}

	g.world.Update(g.clock.Tick(), readInput())
	return nil
}

func (g *Game) edit(mx, my int) {
	if mx < 0 || my < 0 || mx >= g.viewWidth() {
		return
	}
	g.world.EditAt(mx/g.scale, my/g.scale)
}

func readInput() world.Input {
	var in world.Input
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		in.Move++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		in.Move--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Turn++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Turn--
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		in.Strafe++
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		in.Strafe--
	}
	return in
}

// Draw renders the active view, the overlay and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.fb, g.world)
	g.painter.Blit(screen, g.fb, 0, 0, float64(g.scale))
	g.overlay.Draw(screen)
	if g.showHUD {
		g.hud.Draw(screen, g.viewWidth())
	}
}

func (g *Game) viewWidth() int { return g.fb.W * g.scale }

// Layout returns the logical screen size: the view plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewWidth() + hudWidth, g.fb.H * g.scale
}
