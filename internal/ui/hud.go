//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"raycaster/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOff   = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonText  = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	buttonDim   = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

// HUD renders the parameter panel to the right of the view.
type HUD struct {
	source      core.ParameterProvider
	floatSetter core.FloatParameterSetter
	title       string
	width       int
	height      int
	panel       *ebiten.Image

	snapshot     core.ParameterSnapshot
	controls     []controlState
	panelOffsetX int
}

// NewHUD constructs a HUD panel for source. Adjustable controls are taken
// from source when it also provides them.
func NewHUD(source core.ParameterProvider, title string, width, height int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{source: source, title: title, width: width, height: height}
	if provider, ok := source.(core.ParameterControlsProvider); ok {
		h.controls = newControlStates(provider.ParameterControls(), width)
	}
	if setter, ok := source.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	if width > 0 && height > 0 {
		h.panel = ebiten.NewImage(width, height)
	}
	return h
}

// Update refreshes the cached parameter snapshot and handles clicks on the
// panel buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.source == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.source.Parameters()
	refreshControls(h.controls, h.snapshot)
	h.handleInput()
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || h.floatSetter == nil {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		direction := 0
		switch {
		case pointInRect(px, my, state.minusRect):
			direction = -1
		case pointInRect(px, my, state.plusRect):
			direction = 1
		default:
			continue
		}
		if target, ok := nextValue(state, direction); ok && h.floatSetter.SetFloatParameter(state.control.Key, target) {
			state.floatValue = target
			state.value = formatFloat(state.control, target)
		}
		return
	}
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.panel == nil {
		return
	}
	h.panel.Fill(panelColor)
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, titleColor)
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, headerY+lineHeight, dimColor)
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, labelColor)
		valueColor := labelColor
		if !state.hasValue {
			valueColor = dimColor
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		_, minusOK := nextValue(state, -1)
		_, plusOK := nextValue(state, 1)
		h.drawButton(state.minusRect, "-", minusOK && h.floatSetter != nil)
		h.drawButton(state.plusRect, "+", plusOK && h.floatSetter != nil)
	}

	y := controlsTop + len(h.controls)*lineHeight + infoSpacing
	for _, line := range infoLines(h.snapshot, h.controls) {
		if y > h.height-panelPadding {
			break
		}
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += infoSpacing
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, buttonText
	if !enabled {
		bg, fg = buttonOff, buttonDim
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
