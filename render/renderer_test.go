package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-strategy/engine"
	"github.com/lixenwraith/snake-strategy/mode"
	"github.com/lixenwraith/snake-strategy/parameter"
	"github.com/lixenwraith/snake-strategy/vmath"
)

func newTestRenderer(t *testing.T) (*Renderer, *mode.Session, tcell.SimulationScreen) {
	t.Helper()
	cfg := parameter.DefaultConfig()
	layout := NewLayout(cfg.Playfield)

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(layout.Width(), layout.Height())

	return NewRenderer(screen, layout), mode.NewSession(engine.NewSimulation(cfg)), screen
}

func rowText(screen tcell.SimulationScreen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func TestRenderFrame_Unit(t *testing.T) {
	r, s, screen := newTestRenderer(t)
	s.Place(vmath.V(100, 100))
	s.ToggleUnitKindPlacement()
	s.ToggleFactionPlacement()
	s.Place(vmath.V(300, 100))

	r.RenderFrame(s)

	for _, x := range []int{10, 11} {
		ch, _, style, _ := screen.GetContent(x, 5)
		fg, _, _ := style.Decompose()
		if ch != GlyphMelee || fg != RgbFriendlyMelee {
			t.Errorf("cell (%d, 5) = %q fg %v, want friendly melee", x, ch, fg)
		}
	}

	ch, _, style, _ := screen.GetContent(30, 5)
	fg, _, _ := style.Decompose()
	if ch != GlyphRanged || fg != RgbEnemyRanged {
		t.Errorf("enemy ranged cell = %q fg %v", ch, fg)
	}

	// Full health bar on the row above
	ch, _, style, _ = screen.GetContent(10, 4)
	fg, _, _ = style.Decompose()
	if ch != GlyphHealth || fg != RgbHealthFull {
		t.Errorf("health bar = %q fg %v", ch, fg)
	}
}

func TestRenderFrame_SelectedHighlight(t *testing.T) {
	r, s, screen := newTestRenderer(t)
	s.Place(vmath.V(100, 100))
	s.ToggleEditorMode()
	s.Press(vmath.V(105, 105))

	r.RenderFrame(s)

	_, _, style, _ := screen.GetContent(10, 5)
	_, bg, _ := style.Decompose()
	if bg != RgbSelected {
		t.Errorf("selected background = %v, want %v", bg, RgbSelected)
	}
}

func TestRenderFrame_Buttons(t *testing.T) {
	r, s, screen := newTestRenderer(t)
	width := r.Layout().Width()
	row := r.Layout().ButtonRow()

	r.RenderFrame(s)
	text := rowText(screen, row, width)
	for _, want := range []string{"Editor Mode", "Friendly", "Melee"} {
		if !strings.Contains(text, want) {
			t.Errorf("editor bar %q missing %q", text, want)
		}
	}

	s.ToggleFactionPlacement()
	s.ToggleUnitKindPlacement()
	r.RenderFrame(s)
	text = rowText(screen, row, width)
	if !strings.Contains(text, "Enemy") || !strings.Contains(text, "Ranged") {
		t.Errorf("toggled bar = %q", text)
	}

	s.ToggleEditorMode()
	r.RenderFrame(s)
	text = rowText(screen, row, width)
	if strings.Contains(text, "Enemy") || strings.Contains(text, "Ranged") {
		t.Errorf("placement buttons visible in battle mode: %q", text)
	}
	_, _, style, _ := screen.GetContent(1, row)
	_, bg, _ := style.Decompose()
	if bg != RgbButtonInactive {
		t.Errorf("editor button background in battle = %v", bg)
	}
}

func TestRenderFrame_StatusLine(t *testing.T) {
	r, s, screen := newTestRenderer(t)
	s.Place(vmath.V(100, 100))
	s.ToggleUnitKindPlacement()
	s.Place(vmath.V(140, 100))

	r.RenderFrame(s)
	status := rowText(screen, r.Layout().StatusRow(), r.Layout().Width())
	if !strings.Contains(status, "EDITOR") || !strings.Contains(status, "F:2 (M1 R1)") {
		t.Errorf("status = %q", status)
	}
	if strings.Contains(status, "WINS") {
		t.Error("winner shown before the battle started")
	}

	s.ToggleEditorMode()
	s.Step()
	r.RenderFrame(s)
	status = rowText(screen, r.Layout().StatusRow(), r.Layout().Width())
	if !strings.Contains(status, "BATTLE") || !strings.Contains(status, "FRIENDLY WINS") {
		t.Errorf("status = %q", status)
	}
}

func TestRenderFrame_Projectile(t *testing.T) {
	r, s, screen := newTestRenderer(t)
	s.ToggleUnitKindPlacement()
	s.Place(vmath.V(100, 100))
	s.ToggleFactionPlacement()
	s.Place(vmath.V(100, 260))
	s.ToggleEditorMode()
	s.Step()
	s.Step()

	r.RenderFrame(s)

	// Friendly shot moved one step down from (100, 100) to (100, 105)
	ch, _, style, _ := screen.GetContent(10, 5)
	fg, _, _ := style.Decompose()
	if ch != GlyphProjectile || fg != RgbFriendlyMelee {
		t.Errorf("projectile cell = %q fg %v", ch, fg)
	}
}
