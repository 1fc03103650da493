// Package term presents the world in a terminal using half-block characters.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"raycaster/internal/core"
	"raycaster/internal/render"
	"raycaster/internal/texture"
	"raycaster/internal/world"
)

const help = "WASD/arrows move  z/x strafe  Tab view  click edit  r reset  q quit"

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

// Terminal drives a world on a tcell screen.
type Terminal struct {
	screen   tcell.Screen
	world    *world.World
	renderer *render.Renderer
	fb       *render.FrameBuffer
	cells    []HalfBlock
	cols     int
	rows     int

	clock *core.Clock
	step  *core.FixedStep
	hold  holdState

	mouseDown bool
	frames    int
	fpsStart  time.Time
	fps       float64
}

// New prepares an initialised screen for w, texturing walls from atlas and
// updating tps times per second.
func New(screen tcell.Screen, w *world.World, atlas *texture.Atlas, tps int) *Terminal {
	screen.EnableMouse()
	screen.HideCursor()
	t := &Terminal{
		screen:   screen,
		world:    w,
		renderer: render.NewRenderer(atlas),
		clock:    core.NewClock(),
		step:     core.NewFixedStep(tps),
	}
	t.resize()
	return t
}

// resize matches the frame buffer to the screen, keeping the last row for
// the status line.
func (t *Terminal) resize() {
	cols, rows := t.screen.Size()
	rows--
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	t.cols, t.rows = cols, rows
	t.fb = render.NewFrameBuffer(cols, 2*rows)
}

// Run processes input and renders until the user quits or the screen closes.
func (t *Terminal) Run() error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		defer close(events)
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	t.clock.Start()
	t.fpsStart = time.Now()
	timer := time.NewTimer(t.step.Step())
	defer timer.Stop()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !t.handle(ev, time.Now()) {
				return nil
			}
			continue
		case <-timer.C:
		}
		if now := time.Now(); t.step.Advance(now) {
			t.tick(now)
		}
		timer.Reset(t.step.Remaining())
	}
}

func (t *Terminal) handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch a := keyAction(ev.Key(), ev.Rune()); a {
		case actQuit:
			return false
		case actToggleView:
			t.world.ToggleMode()
		case actReset:
			t.world.Reset(t.world.Config().Seed)
		default:
			t.hold.press(a, now)
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons()&(tcell.Button1|tcell.Button2) != 0
		if pressed && !t.mouseDown {
			t.edit(ev.Position())
		}
		t.mouseDown = pressed
	case *tcell.EventResize:
		t.resize()
		t.screen.Sync()
	}
	return true
}

// edit applies a pointer edit at terminal cell (mx, my).
func (t *Terminal) edit(mx, my int) (core.Cell, bool) {
	if mx < 0 || my < 0 || mx >= t.cols || my >= t.rows {
		return 0, false
	}
	px := mx * t.fb.W / t.cols
	py := (2*my + 1) * t.fb.H / (2 * t.rows)
	if t.world.Mode() == world.ModeOverhead {
		cs := render.CellSize(t.world.Map(), t.fb.W, t.fb.H)
		return t.world.EditCell(px/cs, py/cs)
	}
	s, ok := t.renderer.Scene.Column(t.world, px, t.fb.W, t.fb.H)
	if !ok {
		return 0, false
	}
	return t.world.EditCell(s.Hit.Col, s.Hit.Row)
}

// tick advances the world by the elapsed time and redraws.
func (t *Terminal) tick(now time.Time) {
	t.world.Update(t.clock.Tick(), t.hold.input(now))
	t.draw()

	t.frames++
	if elapsed := now.Sub(t.fpsStart); elapsed >= time.Second {
		t.fps = float64(t.frames) / elapsed.Seconds()
		t.frames = 0
		t.fpsStart = now
	}
}

func (t *Terminal) draw() {
	t.renderer.Draw(t.fb, t.world)
	t.cells = Downsample(t.fb, t.cols, t.rows, t.cells)
	for y := 0; y < t.rows; y++ {
		for x := 0; x < t.cols; x++ {
			c := t.cells[y*t.cols+x]
			style := tcell.StyleDefault.Foreground(rgb(c.Top)).Background(rgb(c.Bottom))
			t.screen.SetContent(x, y, '▀', nil, style)
		}
	}
	status := fmt.Sprintf("%s | %s | %.0f fps", help, t.world.Mode(), t.fps)
	x := 0
	for _, r := range status {
		if x >= t.cols {
			break
		}
		t.screen.SetContent(x, t.rows, r, nil, statusStyle)
		x++
	}
	for ; x < t.cols; x++ {
		t.screen.SetContent(x, t.rows, ' ', nil, statusStyle)
	}
	t.screen.Show()
}

func rgb(p uint32) tcell.Color {
	return tcell.NewRGBColor(int32(p>>16&0xff), int32(p>>8&0xff), int32(p&0xff))
}
