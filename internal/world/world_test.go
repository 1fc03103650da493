package world

import (
	"math"
	"testing"

	"raycaster/internal/core"
)

const eps = 1e-9

type recorder struct {
	bumps []core.Vec2
	edits []core.Cell
}

func (r *recorder) OnBump(p core.Vec2) { r.bumps = append(r.bumps, p) }

func (r *recorder) OnCellEdit(_, _ int, v core.Cell) { r.edits = append(r.edits, v) }

func TestUpdateDisplacementPerTick(t *testing.T) {
	w := New(DefaultConfig(), nil)
	start := w.Viewer().Pos
	if start != (core.Vec2{X: 8, Y: 8}) {
		t.Fatalf("spawn %v, expected map center", start)
	}

	w.Update(0.5, Input{Move: 1})
	speed := DefaultConfig().Viewer.Speed
	got := w.Viewer().Pos
	if math.Abs(got.X-(8+speed*0.5)) > eps || math.Abs(got.Y-8) > eps {
		t.Fatalf("after move: %v", got)
	}

	w.Update(0.25, Input{Turn: 1})
	if h := w.Viewer().Heading; math.Abs(h-0.75) > eps {
		t.Fatalf("heading %.6f, expected 0.75", h)
	}

	w.Update(0, Input{Move: 1, Turn: 1})
	if w.Viewer().Pos != got || math.Abs(w.Viewer().Heading-0.75) > eps {
		t.Fatal("zero dt must not change the viewer")
	}
}

func TestUpdateDeterministic(t *testing.T) {
	a := New(DefaultConfig(), core.Pillars)
	b := New(DefaultConfig(), core.Pillars)
	steps := []struct {
		dt float64
		in Input
	}{
		{0.016, Input{Move: 1}},
		{0.033, Input{Move: 1, Turn: 0.5}},
		{0.020, Input{Strafe: -1}},
		{0.100, Input{Move: -1, Turn: -1}},
	}
	for i := 0; i < 50; i++ {
		s := steps[i%len(steps)]
		a.Update(s.dt, s.in)
		b.Update(s.dt, s.in)
		if a.Viewer() != b.Viewer() {
			t.Fatalf("step %d: %+v vs %+v", i, a.Viewer(), b.Viewer())
		}
	}
}

func TestStrafeIsPerpendicular(t *testing.T) {
	w := New(DefaultConfig(), nil)
	w.SetFloatParameter(KeySpeed, 1)
	w.Update(1, Input{Strafe: 1})
	got := w.Viewer().Pos
	if math.Abs(got.X-8) > eps || math.Abs(got.Y-9) > eps {
		t.Fatalf("strafe right from heading 0 ended at %v, expected (8,9)", got)
	}
}

func TestCollisionSlidesAlongWall(t *testing.T) {
	w := New(DefaultConfig(), nil)
	rec := &recorder{}
	w.SetListener(rec)
	w.SetFloatParameter(KeySpeed, 1)
	w.SetViewer(Viewer{Pos: core.Vec2{X: 1.05, Y: 5.5}, Heading: 3 * math.Pi / 4})

	w.Update(1, Input{Move: 1})
	got := w.Viewer().Pos
	if got.X != 1.05 {
		t.Fatalf("x advanced into the border wall: %v", got)
	}
	if math.Abs(got.Y-(5.5+math.Sqrt2/2)) > 1e-6 {
		t.Fatalf("y did not slide: %v", got)
	}
	if len(rec.bumps) != 1 {
		t.Fatalf("expected one bump, got %d", len(rec.bumps))
	}

	w.Update(0.1, Input{Move: 1})
	if len(rec.bumps) != 1 {
		t.Fatalf("holding against a wall must not repeat the bump, got %d", len(rec.bumps))
	}
	w.Update(0.1, Input{})
	w.Update(0.1, Input{Move: 1})
	if len(rec.bumps) != 2 {
		t.Fatalf("expected a second bump after releasing, got %d", len(rec.bumps))
	}
}

func TestSetViewerClampsToMap(t *testing.T) {
	w := New(DefaultConfig(), nil)
	w.SetViewer(Viewer{Pos: core.Vec2{X: -5, Y: 20}})
	p := w.Viewer().Pos
	if p.X != 0 || p.Y >= 16 || p.Y < 15.999 {
		t.Fatalf("clamped to %v", p)
	}
}

func TestEditCellAtCyclesVariants(t *testing.T) {
	w := New(DefaultConfig(), nil)
	rec := &recorder{}
	w.SetListener(rec)
	if w.ToggleMode() != ModeOverhead {
		t.Fatal("expected overhead mode after toggle")
	}

	px, py := 3*32+5, 2*32+31
	for _, want := range []core.Cell{1, 2, 3, 0} {
		got, ok := w.EditAt(px, py)
		if !ok || got != want {
			t.Fatalf("edit returned %d ok=%v, expected %d", got, ok, want)
		}
	}
	if got := w.Map().At(3, 2); got != core.Empty {
		t.Fatalf("cell (3,2) = %d after full cycle", got)
	}
	if len(rec.edits) != 4 {
		t.Fatalf("expected 4 edit events, got %d", len(rec.edits))
	}
	if _, ok := w.EditCellAt(16*32, 0); ok {
		t.Fatal("edit outside the map must be ignored")
	}
	if _, ok := w.EditCellAt(-1, 4); ok {
		t.Fatal("negative pointer must be ignored")
	}
}

func TestEditColumnTargetsVisibleWall(t *testing.T) {
	w := New(DefaultConfig(), nil)
	if w.Mode() != ModeScene {
		t.Fatal("new world should start in scene mode")
	}
	got, ok := w.EditAt(256, 100)
	if !ok || got != 2 {
		t.Fatalf("edit returned %d ok=%v, expected the right wall to become 2", got, ok)
	}
	if w.Map().At(15, 8) != 2 {
		t.Fatalf("cell (15,8) = %d", w.Map().At(15, 8))
	}
}

func TestSetFloatParameter(t *testing.T) {
	w := New(DefaultConfig(), nil)
	if !w.SetFloatParameter(KeyFOV, 90) {
		t.Fatal("fov rejected")
	}
	if math.Abs(w.Config().Viewer.FOV-math.Pi/2) > eps {
		t.Fatalf("fov %.6f", w.Config().Viewer.FOV)
	}
	if p, ok := w.Parameters().Lookup(KeyFOV); !ok || p.Value != "90.000" {
		t.Fatalf("snapshot fov %+v ok=%v", p, ok)
	}
	if !w.SetFloatParameter(KeyMaxDistance, 12) || w.Caster().MaxDistance() != 12 {
		t.Fatal("max distance not forwarded to the caster")
	}
	for _, tc := range []struct {
		key   string
		value float64
	}{
		{KeyFOV, 0},
		{KeyFOV, 180},
		{KeyProjection, -1},
		{KeySpeed, math.NaN()},
		{"nope", 1},
	} {
		if w.SetFloatParameter(tc.key, tc.value) {
			t.Errorf("%s=%v accepted", tc.key, tc.value)
		}
	}
	if len(w.ParameterControls()) != 5 {
		t.Fatal("expected 5 controls")
	}
}

func TestResetRestoresLayoutAndSpawn(t *testing.T) {
	w := New(DefaultConfig(), nil)
	w.Update(1, Input{Move: 1, Turn: 1})
	w.ToggleMode()
	w.EditCellAt(32*4, 32*4)
	w.Reset(7)
	if w.Map().At(4, 4) != core.Empty {
		t.Fatal("reset did not rebuild the map")
	}
	if w.Viewer() != (Viewer{Pos: core.Vec2{X: 8, Y: 8}}) {
		t.Fatalf("viewer %+v after reset", w.Viewer())
	}
}
