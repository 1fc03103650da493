package render

import (
	"math"

	"raycaster/internal/core"
	"raycaster/internal/raycast"
	"raycaster/internal/texture"
	"raycaster/internal/world"
)

// Scene background colors.
const (
	CeilingColor uint32 = 0xffcccccc
	FloorColor   uint32 = 0xff999999
)

// ColumnSample describes what one screen column sees.
type ColumnSample struct {
	Angle    float64
	Hit      raycast.Hit
	Distance float64
	// Height is the projected wall slice height in pixels, 0 when nothing is
	// drawn.
	Height int
	// Top is the first row of the slice.
	Top int
	// Frame and TexX select the texture column sampled for the slice.
	Frame int
	TexX  int
}

// Projector renders the first-person view one column at a time.
type Projector struct {
	atlas   *texture.Atlas
	scratch []uint32
}

// NewProjector returns a projector texturing walls from atlas.
func NewProjector(atlas *texture.Atlas) *Projector {
	return &Projector{atlas: atlas}
}

// Atlas returns the wall textures.
func (p *Projector) Atlas() *texture.Atlas { return p.atlas }

// Column casts the ray for column i of a width x height view. It returns
// false when the ray hits no wall.
func (p *Projector) Column(w *world.World, i, width, height int) (ColumnSample, bool) {
	v := w.Viewer()
	params := w.Config().Viewer
	angle := world.RayAngle(v.Heading, params.FOV, i, width)
	hit, ok := w.Caster().Cast(v.Pos, core.FromAngle(angle))
	if !ok {
		return ColumnSample{Angle: angle}, false
	}
	dist := v.Pos.Dist(hit.Point)
	h := WallHeight(params.Projection, height, dist, angle-v.Heading)
	return ColumnSample{
		Angle:    angle,
		Hit:      hit,
		Distance: dist,
		Height:   h,
		Top:      (height - h) / 2,
		Frame:    int(hit.Type - 1),
		TexX:     TextureColumn(hit.Point, p.atlas.FrameWidth()),
	}, true
}

// Render draws the scene into fb: ceiling and floor halves, then one
// textured wall slice per column.
func (p *Projector) Render(fb *FrameBuffer, w *world.World) {
	half := fb.H / 2
	fb.DrawRect(0, 0, fb.W, half, CeilingColor)
	fb.DrawRect(0, half, fb.W, fb.H-half, FloorColor)

	if cap(p.scratch) < fb.H {
		p.scratch = make([]uint32, fb.H)
	}
	for i := 0; i < fb.W; i++ {
		s, ok := p.Column(w, i, fb.W, fb.H)
		if !ok || s.Height <= 0 {
			continue
		}
		col := p.scratch[:s.Height]
		p.atlas.ColumnInto(col, s.Frame, 0, s.TexX)
		for y, c := range col {
			fb.Pix[(s.Top+y)*fb.W+i] = c
		}
	}
}

// WallHeight projects a wall at distance dist seen rel radians off the view
// axis onto a screen of screenH rows. The cosine term removes fish-eye
// distortion. Degenerate inputs yield 0.
func WallHeight(k float64, screenH int, dist, rel float64) int {
	h := k * float64(screenH) / (dist * math.Cos(rel))
	if math.IsNaN(h) || h <= 0 {
		return 0
	}
	if h > float64(screenH) {
		return screenH
	}
	return int(h)
}

// TextureColumn maps an intersection point to a source column of a frame
// frameW pixels wide. The offset along the wall is whichever sub-cell offset
// from the nearest grid line is larger in magnitude.
func TextureColumn(p core.Vec2, frameW int) int {
	hx := p.X - math.Floor(p.X+0.5)
	hy := p.Y - math.Floor(p.Y+0.5)
	off := hx
	if math.Abs(hy) > math.Abs(hx) {
		off = hy
	}
	t := int(off * float64(frameW))
	if t < 0 {
		t += frameW
	}
	if t >= frameW {
		t = frameW - 1
	}
	if t < 0 {
		t = 0
	}
	return t
}
