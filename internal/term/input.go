package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"raycaster/internal/world"
)

// Terminals report key presses and repeats but never releases, so a key
// counts as held until holdTimeout passes without another press.
const holdTimeout = 180 * time.Millisecond

type action int

const (
	actNone action = iota
	actForward
	actBack
	actTurnLeft
	actTurnRight
	actStrafeLeft
	actStrafeRight
	actToggleView
	actReset
	actQuit
	actionCount
)

func keyAction(k tcell.Key, r rune) action {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit
	case tcell.KeyTab:
		return actToggleView
	case tcell.KeyUp:
		return actForward
	case tcell.KeyDown:
		return actBack
	case tcell.KeyLeft:
		return actTurnLeft
	case tcell.KeyRight:
		return actTurnRight
	case tcell.KeyRune:
	default:
		return actNone
	}
	switch r {
	case 'w', 'W':
		return actForward
	case 's', 'S':
		return actBack
	case 'a', 'A':
		return actTurnLeft
	case 'd', 'D':
		return actTurnRight
	case 'z', 'Z':
		return actStrafeLeft
	case 'x', 'X':
		return actStrafeRight
	case 'r', 'R':
		return actReset
	case 'q', 'Q':
		return actQuit
	}
	return actNone
}

// holdState emulates key-held state from repeated presses.
type holdState struct {
	until [actionCount]time.Time
}

func (h *holdState) press(a action, now time.Time) {
	if a <= actNone || a > actStrafeRight {
		return
	}
	h.until[a] = now.Add(holdTimeout)
}

func (h *holdState) held(a action, now time.Time) bool {
	return now.Before(h.until[a])
}

func (h *holdState) input(now time.Time) world.Input {
	var in world.Input
	if h.held(actForward, now) {
		in.Move++
	}
	if h.held(actBack, now) {
		in.Move--
	}
	if h.held(actTurnRight, now) {
		in.Turn++
	}
	if h.held(actTurnLeft, now) {
		in.Turn--
	}
	if h.held(actStrafeRight, now) {
		in.Strafe++
	}
	if h.held(actStrafeLeft, now) {
		in.Strafe--
	}
	return in
}
