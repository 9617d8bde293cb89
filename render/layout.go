package render

import (
	"math"

	"github.com/lixenwraith/snake-strategy/parameter"
	"github.com/lixenwraith/snake-strategy/vmath"
)

// ButtonID identifies a toggle button in the UI bar
type ButtonID int

const (
	ButtonEditor ButtonID = iota
	ButtonFaction
	ButtonKind
)

// Button is a clickable region of the UI bar
type Button struct {
	ID   ButtonID
	Rect vmath.Rect
}

// Layout maps the world playfield onto terminal cells
// The field starts at the top-left cell, the UI bar sits directly below it
type Layout struct {
	field   parameter.PlayfieldConfig
	Columns int
	Rows    int
}

// NewLayout creates the layout for a playfield
func NewLayout(field parameter.PlayfieldConfig) Layout {
	return Layout{
		field:   field,
		Columns: field.Columns(),
		Rows:    field.Rows(),
	}
}

// FieldWidth returns the playfield width in cells
func (l Layout) FieldWidth() int { return l.Columns * parameter.CellsPerBlockX }

// FieldHeight returns the playfield height in rows
func (l Layout) FieldHeight() int { return l.Rows * parameter.CellsPerBlockY }

// Width returns the minimum screen width
func (l Layout) Width() int { return l.FieldWidth() }

// Height returns the minimum screen height including the UI bar
func (l Layout) Height() int { return l.FieldHeight() + parameter.UIBarHeight }

// ButtonRow returns the row of the toggle buttons
func (l Layout) ButtonRow() int { return l.FieldHeight() }

// StatusRow returns the row of the status line
func (l Layout) StatusRow() int { return l.FieldHeight() + 1 }

// CellOf returns the top-left cell of the block containing a world position
func (l Layout) CellOf(p vmath.Vec2) (int, int) {
	bx := int(math.Floor(p.X / l.field.BlockSize))
	by := int(math.Floor(p.Y / l.field.BlockSize))
	return bx * parameter.CellsPerBlockX, by * parameter.CellsPerBlockY
}

// InField reports whether a cell lies on the playfield
func (l Layout) InField(x, y int) bool {
	return x >= 0 && x < l.FieldWidth() && y >= 0 && y < l.FieldHeight()
}

// WorldAt returns the world point at the center of a field cell
func (l Layout) WorldAt(x, y int) (vmath.Vec2, bool) {
	if !l.InField(x, y) {
		return vmath.Vec2{}, false
	}
	cw := l.field.BlockSize / parameter.CellsPerBlockX
	ch := l.field.BlockSize / parameter.CellsPerBlockY
	return vmath.V((float64(x)+0.5)*cw, (float64(y)+0.5)*ch), true
}

// Buttons returns the visible buttons
// Placement buttons only exist while the editor is open
func (l Layout) Buttons(editor bool) []Button {
	ids := []ButtonID{ButtonEditor}
	if editor {
		ids = append(ids, ButtonFaction, ButtonKind)
	}
	buttons := make([]Button, len(ids))
	for i, id := range ids {
		buttons[i] = Button{
			ID: id,
			Rect: vmath.Rect{
				X:      i * (parameter.ButtonWidth + parameter.ButtonGap),
				Y:      l.ButtonRow(),
				Width:  parameter.ButtonWidth,
				Height: 1,
			},
		}
	}
	return buttons
}

// ButtonAt returns the visible button under a cell
func (l Layout) ButtonAt(x, y int, editor bool) (ButtonID, bool) {
	for _, b := range l.Buttons(editor) {
		if b.Rect.Contains(x, y) {
			return b.ID, true
		}
	}
	return 0, false
}
