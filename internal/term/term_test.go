package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"raycaster/internal/render"
	"raycaster/internal/texture"
	"raycaster/internal/world"
)

func numbered(w, h int) *render.FrameBuffer {
	fb := render.NewFrameBuffer(w, h)
	for i := range fb.Pix {
		fb.Pix[i] = uint32(i)
	}
	return fb
}

func TestDownsamplePairsRows(t *testing.T) {
	fb := numbered(4, 6)
	cells := Downsample(fb, 4, 3, nil)
	if len(cells) != 12 {
		t.Fatalf("got %d cells", len(cells))
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			c := cells[y*4+x]
			if c.Top != fb.At(x, 2*y) || c.Bottom != fb.At(x, 2*y+1) {
				t.Fatalf("cell (%d,%d) = %+v", x, y, c)
			}
		}
	}
}

func TestDownsampleShrinksLargerBuffer(t *testing.T) {
	fb := numbered(8, 8)
	cells := Downsample(fb, 2, 2, make([]HalfBlock, 0, 16))
	c := cells[1*2+1]
	if c.Top != fb.At(4, 4) || c.Bottom != fb.At(4, 6) {
		t.Fatalf("cell (1,1) = %+v", c)
	}
	if len(Downsample(fb, 0, 3, cells)) != 0 {
		t.Fatal("empty grid should produce no cells")
	}
}

func TestKeyAction(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		r    rune
		want action
	}{
		{tcell.KeyUp, 0, actForward},
		{tcell.KeyRune, 'w', actForward},
		{tcell.KeyRune, 'S', actBack},
		{tcell.KeyLeft, 0, actTurnLeft},
		{tcell.KeyRune, 'd', actTurnRight},
		{tcell.KeyRune, 'z', actStrafeLeft},
		{tcell.KeyTab, 0, actToggleView},
		{tcell.KeyEscape, 0, actQuit},
		{tcell.KeyRune, 'q', actQuit},
		{tcell.KeyRune, '?', actNone},
		{tcell.KeyF1, 0, actNone},
	}
	for _, tc := range cases {
		if got := keyAction(tc.key, tc.r); got != tc.want {
			t.Errorf("keyAction(%v, %q) = %v, expected %v", tc.key, tc.r, got, tc.want)
		}
	}
}

func TestHoldExpires(t *testing.T) {
	var h holdState
	t0 := time.Unix(100, 0)
	h.press(actForward, t0)
	h.press(actTurnLeft, t0)
	in := h.input(t0.Add(holdTimeout / 2))
	if in.Move != 1 || in.Turn != -1 {
		t.Fatalf("held input %+v", in)
	}
	if in := h.input(t0.Add(holdTimeout)); in != (world.Input{}) {
		t.Fatalf("expired input %+v", in)
	}

	h.press(actStrafeLeft, t0)
	h.press(actStrafeRight, t0)
	if in := h.input(t0); in.Strafe != 0 {
		t.Fatalf("opposite strafes should cancel, got %+v", in)
	}
	h.press(actQuit, t0)
}

func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	s.SetSize(40, 21)
	atlas, err := texture.NewAtlas(texture.Placeholder(3), 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	w := world.New(world.DefaultConfig(), nil)
	return New(s, w, atlas, 30), s
}

func TestDrawFillsScreen(t *testing.T) {
	term, s := newTestTerminal(t)
	defer s.Fini()
	if term.fb.W != 40 || term.fb.H != 40 {
		t.Fatalf("frame buffer %dx%d", term.fb.W, term.fb.H)
	}
	term.tick(time.Now())

	cells, w, h := s.GetContents()
	if w != 40 || h != 21 {
		t.Fatalf("screen %dx%d", w, h)
	}
	if r := cells[10*w+20].Runes; len(r) == 0 || r[0] != '▀' {
		t.Fatalf("view cell runes %q", r)
	}
	if r := cells[20*w].Runes; len(r) == 0 || r[0] != 'W' {
		t.Fatalf("status line starts with %q", r)
	}
}

func TestEditFollowsViewMode(t *testing.T) {
	term, s := newTestTerminal(t)
	defer s.Fini()

	v, ok := term.edit(20, 10)
	if !ok || v != 2 {
		t.Fatalf("scene edit returned %d ok=%v, expected the facing wall to become 2", v, ok)
	}

	term.world.ToggleMode()
	// 40x40 buffer over a 16x16 map: 2 pixels per cell, so terminal cell
	// (6, 2) covers map cell (3, 2).
	v, ok = term.edit(6, 2)
	if !ok || v != 1 || term.world.Map().At(3, 2) != 1 {
		t.Fatalf("overhead edit returned %d ok=%v", v, ok)
	}
	if _, ok := term.edit(40, 0); ok {
		t.Fatal("edit outside the view must be ignored")
	}
}
