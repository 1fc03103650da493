package ui

import (
	"image"
	"math"
	"strconv"

	"raycaster/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 18
	controlsTop    = panelPadding + headerBaseline + 14

	defaultFloatStep = 0.05
)

type controlState struct {
	control core.ParameterControl
	value   string

	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newControlStates(controls []core.ParameterControl, width int) []controlState {
	states := make([]controlState, 0, len(controls))
	for _, ctrl := range controls {
		states = append(states, controlState{control: ctrl, value: "--"})
	}
	for i := range states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = top
		states[i].minusRect = minus
		states[i].plusRect = plus
	}
	return states
}

// refreshControls copies current values from snap into the control states.
func refreshControls(states []controlState, snap core.ParameterSnapshot) {
	for i := range states {
		state := &states[i]
		param, ok := snap.Lookup(state.control.Key)
		parsed, numeric := param.Float()
		if !ok || !numeric {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.floatValue = parsed
		state.value = formatFloat(state.control, parsed)
		state.hasValue = true
	}
}

// nextValue returns the value one step in direction, clamped to the
// control's bounds. It reports false when the value cannot move.
func nextValue(state *controlState, direction int) (float64, bool) {
	if state == nil || direction == 0 || !state.hasValue {
		return 0, false
	}
	ctrl := state.control
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	target := ctrl.Clamp(state.floatValue + float64(direction)*step)
	if math.Abs(target-state.floatValue) < 1e-9 {
		return 0, false
	}
	return target, true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// infoLines formats the read-only parameters shown under the controls.
func infoLines(snap core.ParameterSnapshot, states []controlState) []string {
	adjustable := make(map[string]bool, len(states))
	for _, s := range states {
		adjustable[s.control.Key] = true
	}
	var lines []string
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			if adjustable[p.Key] {
				continue
			}
			lines = append(lines, p.Label+": "+p.Value)
		}
	}
	return lines
}
