package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-strategy/mode"
	"github.com/lixenwraith/snake-strategy/render"
)

// Handler processes user input events into session commands
type Handler struct {
	session *mode.Session
	layout  render.Layout

	// Button1 state of the previous mouse event, tcell reports levels not edges
	pressed bool
}

// NewHandler creates a new input handler
func NewHandler(session *mode.Session, layout render.Layout) *Handler {
	return &Handler{
		session: session,
		layout:  layout,
	}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventMouse:
		h.handleMouseEvent(ev)
	}
	return true
}

// handleKeyEvent processes keyboard shortcuts for the UI bar
func (h *Handler) handleKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'e':
		h.session.ToggleEditorMode()
	case 'f':
		h.session.ToggleFactionPlacement()
	case 'k':
		h.session.ToggleUnitKindPlacement()
	case 'c':
		h.session.Clear()
	}
	return true
}

// handleMouseEvent turns Button1 level changes into press and release commands
func (h *Handler) handleMouseEvent(ev *tcell.EventMouse) {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !h.pressed:
		h.pressed = true
		h.press(x, y)
	case !down && h.pressed:
		h.pressed = false
		h.release(x, y)
	}
}

func (h *Handler) press(x, y int) {
	if id, ok := h.layout.ButtonAt(x, y, h.session.EditorMode); ok {
		switch id {
		case render.ButtonEditor:
			h.session.ToggleEditorMode()
		case render.ButtonFaction:
			h.session.ToggleFactionPlacement()
		case render.ButtonKind:
			h.session.ToggleUnitKindPlacement()
		}
		return
	}

	pos, ok := h.layout.WorldAt(x, y)
	if !ok {
		return
	}
	if h.session.EditorMode {
		h.session.Place(pos)
		return
	}
	h.session.Press(pos)
}

func (h *Handler) release(x, y int) {
	if h.session.EditorMode {
		return
	}
	if pos, ok := h.layout.WorldAt(x, y); ok {
		h.session.Release(pos)
	}
}
