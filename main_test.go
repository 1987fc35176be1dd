package main

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T, cols, rows int) model {
	t.Helper()
	config := defaultConfig()
	config.Seed = 99
	config.ExportDirectory = t.TempDir()
	m := initialModel(config, mustTypefaces(t))
	m.loadNames = func(context.Context, string) []string { return []string{"a b", "c d"} }
	m.now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }

	next, _ := m.Update(tea.WindowSizeMsg{Width: cols, Height: rows})
	m = next.(model)
	next, _ = m.Update(namesLoadedMsg(m.loadNames(context.Background(), "")))
	return next.(model)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelBuildsAfterNamesLoad(t *testing.T) {
	m := newTestModel(t, 200, 40)
	f := m.field()
	if m.mode != ModeRunning {
		t.Fatal("model should be running once names arrive")
	}
	if f.Width != 800 || f.Height != 312 {
		t.Fatalf("field = %vx%v, want 800x312", f.Width, f.Height)
	}
	if f.Generation != 1 || len(f.Particles) == 0 {
		t.Fatalf("generation %d with %d particles", f.Generation, len(f.Particles))
	}
	view := m.View()
	if !strings.Contains(view, "gen 1") {
		t.Fatalf("status line missing from view:\n%s", view)
	}
}

func TestModelClickRegeneratesAndUndo(t *testing.T) {
	m := newTestModel(t, 200, 40)
	seed := m.animator.Seed()

	next, _ := m.Update(tea.MouseMsg{X: 10, Y: 5, Type: tea.MouseLeft})
	m = next.(model)
	if m.field().Generation != 2 {
		t.Fatalf("generation = %d, want 2 after click", m.field().Generation)
	}
	if m.animator.Seed() == seed {
		t.Fatal("regenerate should pick a new seed")
	}

	next, _ = m.Update(keyMsg("u"))
	m = next.(model)
	if m.animator.Seed() != seed {
		t.Fatalf("undo restored seed %d, want %d", m.animator.Seed(), seed)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = next.(model)
	if m.animator.Seed() == seed {
		t.Fatal("redo should return to the regenerated seed")
	}
}

func TestModelPointerTracking(t *testing.T) {
	m := newTestModel(t, 200, 40)

	next, _ := m.Update(tea.MouseMsg{X: 3, Y: 2, Type: tea.MouseMotion})
	m = next.(model)
	if got := m.field().Pointer; got != (Vec{14, 20}) {
		t.Fatalf("pointer = %+v, want {14 20}", got)
	}

	next, _ = m.Update(tea.MouseMsg{X: 3, Y: m.canvasRows(), Type: tea.MouseMotion})
	m = next.(model)
	if m.field().Pointer != PointerOff {
		t.Fatal("moving onto the status row should take the pointer off the field")
	}

	next, _ = m.Update(tea.MouseMsg{X: 3, Y: 2, Type: tea.MouseMotion})
	m = next.(model)
	next, _ = m.Update(tea.MouseMsg{X: m.width, Y: 2, Type: tea.MouseMotion})
	m = next.(model)
	if m.field().Pointer != PointerOff {
		t.Fatal("moving past the right edge should take the pointer off the field")
	}
}

func TestModelFrameAdvancesSimulation(t *testing.T) {
	m := newTestModel(t, 200, 40)
	f := m.field()
	target := f.Particles[len(f.Particles)-1].Target
	f.MovePointer(target)

	next, cmd := m.Update(frameMsg(time.Now()))
	m = next.(model)
	if cmd == nil {
		t.Fatal("frame should schedule the next frame")
	}
	p := m.field().Particles[len(f.Particles)-1]
	if p.Pos == target {
		t.Fatal("particle under the pointer did not move")
	}
}

func TestModelResizeRebuilds(t *testing.T) {
	m := newTestModel(t, 200, 40)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(model)
	f := m.field()
	if f.Generation != 2 || f.Layout != LayoutCompact {
		t.Fatalf("after resize: generation %d layout %v", f.Generation, f.Layout)
	}
}

func TestModelVariantSwitchAndNavigate(t *testing.T) {
	m := newTestModel(t, 200, 100)
	next, _ := m.Update(keyMsg("v"))
	m = next.(model)
	f := m.field()
	if f.Variant != VariantShatter || f.Hotspot == nil {
		t.Fatalf("variant %v hotspot %v", f.Variant, f.Hotspot)
	}

	b := f.Hotspot.Bounds
	col := int((b.X + b.W/2) / (2 * m.term.dotSize))
	row := int((b.Y + b.H/2) / (4 * m.term.dotSize))
	next, _ = m.Update(tea.MouseMsg{X: col, Y: row, Type: tea.MouseLeft})
	m = next.(model)
	if m.field().Variant != VariantNameField {
		t.Fatalf("clicking the hotspot left variant %v", m.field().Variant)
	}
}

func TestModelExportText(t *testing.T) {
	m := newTestModel(t, 120, 30)
	next, _ := m.Update(keyMsg("t"))
	m = next.(model)
	if m.errorMessage != "" || !strings.HasPrefix(m.successMessage, "Saved ") {
		t.Fatalf("export status: error %q success %q", m.errorMessage, m.successMessage)
	}
}

func TestModelHelpAndQuit(t *testing.T) {
	m := newTestModel(t, 120, 30)
	next, _ := m.Update(keyMsg("?"))
	m = next.(model)
	if !strings.Contains(m.View(), "Particle Text Help") {
		t.Fatal("help view not shown")
	}
	next, _ = m.Update(keyMsg("?"))
	m = next.(model)
	if m.help {
		t.Fatal("help should toggle off")
	}
	if _, cmd := m.Update(keyMsg("q")); cmd == nil {
		t.Fatal("q should quit")
	}
}
