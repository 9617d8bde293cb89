package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-strategy/component"
	"github.com/lixenwraith/snake-strategy/engine"
	"github.com/lixenwraith/snake-strategy/mode"
	"github.com/lixenwraith/snake-strategy/parameter"
)

type cell struct{ x, y int }

// Renderer draws a session onto a tcell screen
type Renderer struct {
	screen tcell.Screen
	layout Layout
}

// NewRenderer creates a renderer for the given layout
func NewRenderer(screen tcell.Screen, layout Layout) *Renderer {
	return &Renderer{
		screen: screen,
		layout: layout,
	}
}

// Layout returns the cell layout used for drawing and hit testing
func (r *Renderer) Layout() Layout {
	return r.layout
}

// RenderFrame renders the entire frame: units, health bars, projectiles, then the UI bar
func (r *Renderer) RenderFrame(s *mode.Session) {
	snap := s.Snapshot()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	r.screen.Clear()
	r.fill(0, 0, r.layout.FieldWidth(), r.layout.FieldHeight(), defaultStyle)

	occupied := make(map[cell]bool, len(snap.Units)*parameter.CellsPerBlockX)
	for _, u := range snap.Units {
		r.drawUnit(u, defaultStyle, occupied)
	}
	for _, u := range snap.Units {
		r.drawHealthBar(u, defaultStyle, occupied)
	}
	for _, p := range snap.Projectiles {
		r.drawProjectile(p, defaultStyle)
	}

	r.drawButtons(s)
	r.drawStatus(s, snap)

	r.screen.Show()
}

func (r *Renderer) fill(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func unitColor(f component.Faction, k component.Kind) tcell.Color {
	switch {
	case f == component.FactionFriendly && k == component.KindMelee:
		return RgbFriendlyMelee
	case f == component.FactionFriendly:
		return RgbFriendlyRanged
	case k == component.KindMelee:
		return RgbEnemyMelee
	default:
		return RgbEnemyRanged
	}
}

func (r *Renderer) drawUnit(u engine.UnitView, defaultStyle tcell.Style, occupied map[cell]bool) {
	glyph := GlyphMelee
	if u.Kind == component.KindRanged {
		glyph = GlyphRanged
	}
	style := defaultStyle.Foreground(unitColor(u.Faction, u.Kind))
	if u.Selected {
		style = style.Background(RgbSelected)
	}

	x, y := r.layout.CellOf(u.Position)
	for dy := 0; dy < parameter.CellsPerBlockY; dy++ {
		for dx := 0; dx < parameter.CellsPerBlockX; dx++ {
			if !r.layout.InField(x+dx, y+dy) {
				continue
			}
			r.screen.SetContent(x+dx, y+dy, glyph, nil, style)
			occupied[cell{x + dx, y + dy}] = true
		}
	}
}

// drawHealthBar draws the bar on the row above the head, never over another unit
func (r *Renderer) drawHealthBar(u engine.UnitView, defaultStyle tcell.Style, occupied map[cell]bool) {
	x, y := r.layout.CellOf(u.Position)
	y--
	filled := int(math.Round(u.HealthFraction * parameter.HealthBarWidth))

	for i := 0; i < parameter.HealthBarWidth; i++ {
		if !r.layout.InField(x+i, y) || occupied[cell{x + i, y}] {
			continue
		}
		color := RgbHealthLost
		if i < filled {
			color = RgbHealthFull
		}
		r.screen.SetContent(x+i, y, GlyphHealth, nil, defaultStyle.Foreground(color))
	}
}

func (r *Renderer) drawProjectile(p engine.ProjectileView, defaultStyle tcell.Style) {
	color := RgbEnemyMelee
	if p.Faction == component.FactionFriendly {
		color = RgbFriendlyMelee
	}
	// Sub-block column precision
	x, y := r.layout.CellOf(p.Position)
	cw := r.layout.field.BlockSize / parameter.CellsPerBlockX
	x += int(math.Mod(p.Position.X, r.layout.field.BlockSize) / cw)
	if !r.layout.InField(x, y) {
		return
	}
	r.screen.SetContent(x, y, GlyphProjectile, nil, defaultStyle.Foreground(color))
}

func buttonFace(id ButtonID, s *mode.Session) (string, tcell.Color) {
	switch id {
	case ButtonFaction:
		if s.PlacingFriendly {
			return "Friendly", RgbFriendlyMelee
		}
		return "Enemy", RgbEnemyMelee
	case ButtonKind:
		if s.PlacingMelee {
			return "Melee", RgbButtonActive
		}
		return "Ranged", RgbButtonYellow
	default:
		if s.EditorMode {
			return "Editor Mode", RgbButtonActive
		}
		return "Editor Mode", RgbButtonInactive
	}
}

func (r *Renderer) drawButtons(s *mode.Session) {
	barStyle := tcell.StyleDefault.Background(RgbUIBar)
	r.fill(0, r.layout.ButtonRow(), r.layout.Width(), parameter.UIBarHeight, barStyle)

	for _, b := range r.layout.Buttons(s.EditorMode) {
		label, bg := buttonFace(b.ID, s)
		style := tcell.StyleDefault.Foreground(RgbButtonText).Background(bg)
		text := " " + label
		if len(text) < b.Rect.Width {
			text += strings.Repeat(" ", b.Rect.Width-len(text))
		}
		r.drawText(b.Rect.X, b.Rect.Y, text[:b.Rect.Width], style)
	}
}

func (r *Renderer) drawStatus(s *mode.Session, snap engine.Snapshot) {
	style := tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbUIBar)
	c := snap.Counts

	modeText := "BATTLE"
	if s.EditorMode {
		modeText = "EDITOR"
	}
	status := fmt.Sprintf("%s T:%d F:%d (M%d R%d) E:%d (M%d R%d) P:%d",
		modeText, snap.Tick,
		c.Friendly(), c.FriendlyMelee, c.FriendlyRanged,
		c.Enemy(), c.EnemyMelee, c.EnemyRanged,
		c.Projectiles)

	if winner, ok := s.Simulation().Winner(); ok && !s.EditorMode && snap.Tick > 0 {
		status += " " + strings.ToUpper(winner.String()) + " WINS"
	}
	r.drawText(0, r.layout.StatusRow(), status, style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	width := r.layout.Width()
	for _, ch := range text {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
