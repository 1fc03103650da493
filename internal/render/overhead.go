package render

import (
	"image/color"

	"raycaster/internal/core"
	"raycaster/internal/world"
)

const viewerMarkerSize = 5

// DefaultCellPalette colors wall variants 1, 2 and 3 in the overhead view.
var DefaultCellPalette = []color.RGBA{
	{R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
}

// Overhead draws the map from above with the viewer's rays.
type Overhead struct {
	Palette     []color.RGBA
	Background  uint32
	RayColor    uint32
	ViewerColor uint32
	// Rays enables drawing one ray per frame buffer column and outlining the
	// cells they hit.
	Rays bool
}

// NewOverhead returns the standard debug view.
func NewOverhead() *Overhead {
	return &Overhead{
		Palette:     DefaultCellPalette,
		Background:  0xff000000,
		RayColor:    0xffffffff,
		ViewerColor: 0xffff0000,
		Rays:        true,
	}
}

// CellSize returns the edge of one map cell in pixels when m is drawn into a
// w x h surface.
func CellSize(m *core.Map, w, h int) int {
	mw, mh := m.Dimensions()
	cs := w / mw
	if alt := h / mh; alt < cs {
		cs = alt
	}
	if cs < 1 {
		cs = 1
	}
	return cs
}

// Render draws the overhead view of w into fb.
func (o *Overhead) Render(fb *FrameBuffer, w *world.World) {
	fb.Clear(o.Background)
	m := w.Map()
	cs := CellSize(m, fb.W, fb.H)
	mw, mh := m.Dimensions()
	for row := 0; row < mh; row++ {
		for col := 0; col < mw; col++ {
			v := m.At(col, row)
			if v == core.Empty {
				continue
			}
			c := packRGBA(paletteColor(o.Palette, int(v)-1))
			fillClipped(fb, col*cs, row*cs, cs, cs, c)
		}
	}

	v := w.Viewer()
	vx, vy := int(v.Pos.X*float64(cs)), int(v.Pos.Y*float64(cs))
	if o.Rays {
		fov := w.Config().Viewer.FOV
		caster := w.Caster()
		for i := 0; i < fb.W; i++ {
			angle := world.RayAngle(v.Heading, fov, i, fb.W)
			hit, ok := caster.Cast(v.Pos, core.FromAngle(angle))
			if !ok {
				continue
			}
			hx, hy := int(hit.Point.X*float64(cs)), int(hit.Point.Y*float64(cs))
			drawLine(fb, vx, vy, hx, hy, o.RayColor)
			outlineClipped(fb, hit.Col*cs, hit.Row*cs, cs, cs, o.RayColor)
		}
	}
	half := viewerMarkerSize / 2
	fillClipped(fb, vx-half, vy-half, viewerMarkerSize, viewerMarkerSize, o.ViewerColor)
}

func fillClipped(fb *FrameBuffer, x, y, w, h int, c uint32) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, fb.W), min(y+h, fb.H)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	fb.DrawRect(x0, y0, x1-x0, y1-y0, c)
}

func outlineClipped(fb *FrameBuffer, x, y, w, h int, c uint32) {
	fillClipped(fb, x, y, w, 1, c)
	fillClipped(fb, x, y+h-1, w, 1, c)
	fillClipped(fb, x, y, 1, h, c)
	fillClipped(fb, x+w-1, y, 1, h, c)
}

// drawLine plots a Bresenham line, skipping points outside the buffer.
func drawLine(fb *FrameBuffer, x0, y0, x1, y1 int, c uint32) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := y1 - y0
	if dy > 0 {
		dy = -dy
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if x0 >= 0 && x0 < fb.W && y0 >= 0 && y0 < fb.H {
			fb.Pix[y0*fb.W+x0] = c
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
