// Package world owns the explicit game state: the map, the viewer, the view
// mode and the ray caster they share.
package world

import (
	"math"

	"raycaster/internal/core"
	"raycaster/internal/raycast"
)

// ViewMode selects what the renderer draws.
type ViewMode int

const (
	// ModeScene is the first-person projected view.
	ModeScene ViewMode = iota
	// ModeOverhead is the 2D map with the cast rays.
	ModeOverhead
)

func (m ViewMode) String() string {
	switch m {
	case ModeScene:
		return "scene"
	case ModeOverhead:
		return "overhead"
	default:
		return "unknown"
	}
}

// Viewer is the moving point of view. Pos is in cell units.
type Viewer struct {
	Pos     core.Vec2
	Heading float64
}

// Direction returns the unit vector the viewer faces.
func (v Viewer) Direction() core.Vec2 { return core.FromAngle(v.Heading) }

// Input is the per-frame control state, each axis in [-1, 1].
type Input struct {
	Move   float64 // forward/back along the heading
	Turn   float64 // positive turns clockwise on screen
	Strafe float64 // positive moves to the viewer's right
}

// Listener receives notifications about world events. Presentation layers use
// it for audio cues.
type Listener interface {
	OnBump(pos core.Vec2)
	OnCellEdit(col, row int, value core.Cell)
}

// World is the complete mutable state of a session.
type World struct {
	cfg    Config
	layout core.Layout
	m      *core.Map
	caster *raycast.Caster
	viewer Viewer
	mode   ViewMode

	listener Listener
	blocked  bool
}

// New builds a world from cfg and populates its map with layout. A nil
// layout produces the bordered map.
func New(cfg Config, layout core.Layout) *World {
	cfg = cfg.normalized()
	if layout == nil {
		layout = core.Bordered
	}
	m := core.NewMap(cfg.MapW, cfg.MapH)
	w := &World{
		cfg:    cfg,
		layout: layout,
		m:      m,
		caster: raycast.New(m, cfg.Viewer.MaxDistance),
	}
	w.Reset(cfg.Seed)
	return w
}

// Reset rebuilds the map from the layout and returns the viewer to the
// center of the map facing along +x.
func (w *World) Reset(seed int64) {
	w.cfg.Seed = seed
	w.layout(w.m, seed)
	w.viewer = Viewer{Pos: core.Vec2{X: float64(w.cfg.MapW) / 2, Y: float64(w.cfg.MapH) / 2}}
	w.blocked = false
}

// SetListener registers l for world events. Nil disables notifications.
func (w *World) SetListener(l Listener) { w.listener = l }

// Config returns the active configuration, including adjusted parameters.
func (w *World) Config() Config { return w.cfg }

// Map returns the grid.
func (w *World) Map() *core.Map { return w.m }

// Caster returns the ray caster bound to the map.
func (w *World) Caster() *raycast.Caster { return w.caster }

// Viewer returns the current point of view.
func (w *World) Viewer() Viewer { return w.viewer }

// SetViewer places the viewer, clamped to the map.
func (w *World) SetViewer(v Viewer) {
	v.Pos = w.clampToMap(v.Pos)
	w.viewer = v
}

// Mode returns the active view mode.
func (w *World) Mode() ViewMode { return w.mode }

// ToggleMode switches between the scene and overhead views.
func (w *World) ToggleMode() ViewMode {
	if w.mode == ModeScene {
		w.mode = ModeOverhead
	} else {
		w.mode = ModeScene
	}
	return w.mode
}

// ColumnAngle returns the absolute ray angle for screen column i.
func (w *World) ColumnAngle(i int) float64 {
	return RayAngle(w.viewer.Heading, w.cfg.Viewer.FOV, i, w.cfg.ScreenW)
}

// RayAngle spreads fov evenly across width columns centred on heading and
// returns the angle of column i.
func RayAngle(heading, fov float64, i, width int) float64 {
	return heading - fov/2 + float64(i)*fov/float64(width)
}

// Update advances the viewer by dt seconds of input. Movement slides along
// walls: each axis only advances when its destination cell is free.
func (w *World) Update(dt float64, in Input) {
	if dt <= 0 {
		return
	}
	p := w.cfg.Viewer
	w.viewer.Heading += p.AngularSpeed * in.Turn * dt

	dir := w.viewer.Direction()
	right := core.Vec2{X: -dir.Y, Y: dir.X}
	delta := dir.Scale(p.Speed * in.Move * dt).Add(right.Scale(p.Speed * in.Strafe * dt))
	if delta.X == 0 && delta.Y == 0 {
		w.blocked = false
		return
	}

	pos := w.viewer.Pos
	blocked := false
	if next := pos.X + delta.X; w.passable(pos, core.Vec2{X: next, Y: pos.Y}) {
		pos.X = next
	} else if delta.X != 0 {
		blocked = true
	}
	if next := pos.Y + delta.Y; w.passable(pos, core.Vec2{X: pos.X, Y: next}) {
		pos.Y = next
	} else if delta.Y != 0 {
		blocked = true
	}
	w.viewer.Pos = w.clampToMap(pos)

	if blocked && !w.blocked && w.listener != nil {
		w.listener.OnBump(w.viewer.Pos)
	}
	w.blocked = blocked
}

// passable reports whether the viewer may move from one point to another.
// Staying within the current cell is always allowed so a viewer whose cell
// was edited into a wall can walk out.
func (w *World) passable(from, to core.Vec2) bool {
	fc, fr := int(math.Floor(from.X)), int(math.Floor(from.Y))
	tc, tr := int(math.Floor(to.X)), int(math.Floor(to.Y))
	if fc == tc && fr == tr {
		return true
	}
	return !w.m.Solid(tc, tr)
}

func (w *World) clampToMap(p core.Vec2) core.Vec2 {
	max := core.Vec2{
		X: math.Nextafter(float64(w.cfg.MapW), 0),
		Y: math.Nextafter(float64(w.cfg.MapH), 0),
	}
	return p.Clamp(core.Vec2{}, max)
}

// EditCellAt cycles the cell under overhead-view pixel (px, py). It returns
// the new value and false when the point is outside the map.
func (w *World) EditCellAt(px, py int) (core.Cell, bool) {
	if px < 0 || py < 0 {
		return 0, false
	}
	col, row := px/w.cfg.CellSize, py/w.cfg.CellSize
	return w.EditCell(col, row)
}

// EditColumn cycles the wall seen through screen column i of the scene view.
// It returns false when the column's ray hits nothing.
func (w *World) EditColumn(i int) (core.Cell, bool) {
	if i < 0 || i >= w.cfg.ScreenW {
		return 0, false
	}
	hit, ok := w.caster.Cast(w.viewer.Pos, core.FromAngle(w.ColumnAngle(i)))
	if !ok {
		return 0, false
	}
	return w.EditCell(hit.Col, hit.Row)
}

// EditAt applies a pointer edit at screen pixel (px, py) according to the
// active view mode.
func (w *World) EditAt(px, py int) (core.Cell, bool) {
	if w.mode == ModeOverhead {
		return w.EditCellAt(px, py)
	}
	return w.EditColumn(px)
}

// EditCell cycles map cell (col, row) through the wall variants.
func (w *World) EditCell(col, row int) (core.Cell, bool) {
	if !w.m.InBounds(col, row) {
		return 0, false
	}
	v := w.m.Toggle(w.m.Index(col, row), w.cfg.WallVariants)
	if w.listener != nil {
		w.listener.OnCellEdit(col, row, v)
	}
	return v, true
}
