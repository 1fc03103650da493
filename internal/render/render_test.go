package render

import (
	"math"
	"slices"
	"testing"

	"raycaster/internal/core"
	"raycaster/internal/texture"
	"raycaster/internal/world"
)

func placeholderAtlas(t *testing.T) *texture.Atlas {
	t.Helper()
	a, err := texture.NewAtlas(texture.Placeholder(3), 3, 1)
	if err != nil {
		t.Fatalf("atlas: %v", err)
	}
	return a
}

func TestCenterColumnHitsRightWall(t *testing.T) {
	w := world.New(world.DefaultConfig(), nil)
	p := NewProjector(placeholderAtlas(t))

	s, ok := p.Column(w, 256, 512, 512)
	if !ok {
		t.Fatal("center column missed")
	}
	if s.Angle != 0 {
		t.Fatalf("center ray angle %v, expected 0", s.Angle)
	}
	if s.Hit.Col != 15 || s.Hit.Row != 8 {
		t.Fatalf("hit (%d,%d), expected right border (15,8)", s.Hit.Col, s.Hit.Row)
	}
	if math.Abs(s.Distance-7) > 1e-9 {
		t.Fatalf("distance %.12f, expected 7", s.Distance)
	}
	if s.Height != 57 || s.Top != 227 {
		t.Fatalf("slice height %d top %d, expected 57 at 227", s.Height, s.Top)
	}
	if s.Frame != 0 || s.TexX != 0 {
		t.Fatalf("frame %d column %d, expected 0/0", s.Frame, s.TexX)
	}
}

func TestWallTypeWithoutFramePanics(t *testing.T) {
	a, err := texture.NewAtlas(texture.Placeholder(2), 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	w := world.New(world.DefaultConfig(), nil)
	w.EditCell(15, 8)
	w.EditCell(15, 8)
	p := NewProjector(a)
	s, ok := p.Column(w, 256, 512, 512)
	if !ok || s.Hit.Type != 3 || s.Frame != 2 {
		t.Fatalf("center column type %d frame %d ok=%v, expected type 3 frame 2", s.Hit.Type, s.Frame, ok)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("rendering wall type 3 from a 2-frame atlas did not panic")
		}
	}()
	p.Render(NewFrameBuffer(512, 512), w)
}

func TestRenderCentersSliceOverBackground(t *testing.T) {
	w := world.New(world.DefaultConfig(), nil)
	a := placeholderAtlas(t)
	fb := NewFrameBuffer(512, 512)
	NewProjector(a).Render(fb, w)

	if got := fb.At(256, 100); got != CeilingColor {
		t.Fatalf("ceiling %08x", got)
	}
	if got := fb.At(256, 400); got != FloorColor {
		t.Fatalf("floor %08x", got)
	}
	if got := fb.At(256, 226); got != CeilingColor {
		t.Fatalf("row above slice %08x", got)
	}
	if got := fb.At(256, 284); got != FloorColor {
		t.Fatalf("row below slice %08x", got)
	}
	want := a.Column(0, 0, 0, 57)
	for y := 0; y < 57; y++ {
		if got := fb.At(256, 227+y); got != want[y] {
			t.Fatalf("slice row %d: %08x, expected %08x", y, got, want[y])
		}
	}
}

func TestColumnsStayInsideScreen(t *testing.T) {
	w := world.New(world.DefaultConfig(), core.Pillars)
	a := placeholderAtlas(t)
	p := NewProjector(a)
	fb := NewFrameBuffer(320, 200)
	viewers := []world.Viewer{
		{Pos: core.Vec2{X: 8, Y: 8}},
		{Pos: core.Vec2{X: 1.001, Y: 1.001}, Heading: math.Pi / 4},
		{Pos: core.Vec2{X: 14.9, Y: 2.3}, Heading: 2.5},
		{Pos: core.Vec2{X: 8.5, Y: 14.99}, Heading: -math.Pi / 2},
	}
	for _, v := range viewers {
		w.SetViewer(v)
		for i := 0; i < fb.W; i++ {
			s, ok := p.Column(w, i, fb.W, fb.H)
			if !ok {
				continue
			}
			if s.Height < 0 || s.Height > fb.H || s.Top < 0 || s.Top+s.Height > fb.H {
				t.Fatalf("viewer %+v column %d: slice [%d,%d)", v, i, s.Top, s.Top+s.Height)
			}
			if s.TexX < 0 || s.TexX >= a.FrameWidth() {
				t.Fatalf("viewer %+v column %d: texture column %d", v, i, s.TexX)
			}
		}
		p.Render(fb, w)
	}
}

func TestWallHeight(t *testing.T) {
	prev := math.MaxInt
	for d := 0.05; d < 100; d *= 1.3 {
		h := WallHeight(25.0/32.0, 512, d, 0.3)
		if h > prev {
			t.Fatalf("height grew from %d to %d at distance %.3f", prev, h, d)
		}
		if h < 0 || h > 512 {
			t.Fatalf("height %d out of range", h)
		}
		prev = h
	}
	if h := WallHeight(1, 480, 0, 0); h != 480 {
		t.Fatalf("zero distance height %d, expected clamp to 480", h)
	}
	if h := WallHeight(1, 480, math.NaN(), 0); h != 0 {
		t.Fatalf("NaN distance height %d", h)
	}
	if h := WallHeight(1, 480, 2, math.Pi); h != 0 {
		t.Fatalf("behind-viewer height %d", h)
	}
	if h := WallHeight(1, 480, 1000, 0); h != 0 {
		t.Fatalf("far wall height %d, expected 0", h)
	}
}

func TestTextureColumnWrapsNegativeOffsets(t *testing.T) {
	cases := []struct {
		p    core.Vec2
		want int
	}{
		{core.Vec2{X: 3, Y: 2.25}, 16},
		{core.Vec2{X: 3, Y: 2.75}, 48},
		{core.Vec2{X: 5.125, Y: 7}, 8},
		{core.Vec2{X: 5.875, Y: 7}, 56},
		{core.Vec2{X: 15, Y: 8}, 0},
	}
	for _, tc := range cases {
		if got := TextureColumn(tc.p, 64); got != tc.want {
			t.Errorf("TextureColumn(%v) = %d, expected %d", tc.p, got, tc.want)
		}
	}
}

func TestFrameBufferBounds(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	fb.DrawRect(1, 1, 3, 2, 0xff112233)
	if fb.At(3, 2) != 0xff112233 || fb.At(0, 0) != 0 {
		t.Fatal("rect not drawn where expected")
	}
	buf := make([]byte, 4*4*3)
	fb.RGBA(buf)
	if got := buf[(1*4+1)*4 : (1*4+1)*4+4]; !slices.Equal(got, []byte{0x11, 0x22, 0x33, 0xff}) {
		t.Fatalf("RGBA bytes %v", got)
	}

	assertPanics(t, "SetPixel", func() { fb.SetPixel(4, 0, 1) })
	assertPanics(t, "DrawRect", func() { fb.DrawRect(2, 2, 3, 1, 1) })
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestRendererDispatchesOnMode(t *testing.T) {
	w := world.New(world.DefaultConfig(), nil)
	r := NewRenderer(placeholderAtlas(t))
	scene := NewFrameBuffer(512, 512)
	r.Draw(scene, w)

	w.ToggleMode()
	overhead := NewFrameBuffer(512, 512)
	r.Draw(overhead, w)

	if got := overhead.At(256, 256); got != r.Overhead.ViewerColor {
		t.Fatalf("viewer marker %08x", got)
	}
	if got := overhead.At(5, 5); got != packRGBA(DefaultCellPalette[0]) {
		t.Fatalf("corner wall %08x", got)
	}
	if got := overhead.At(100, 300); got != r.Overhead.Background {
		t.Fatalf("empty floor behind the viewer %08x", got)
	}
	if slices.Equal(scene.Pix, overhead.Pix) {
		t.Fatal("scene and overhead views rendered identically")
	}
}
