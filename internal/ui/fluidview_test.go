package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"algolab/internal/fluid"
)

func testScene() fluid.Scene {
	sc := fluid.DefaultScene()
	sc.Width = 12
	sc.Height = 12
	sc.Frames = 3
	sc.Emitter.Radius = 2
	return sc
}

func TestFluidModelStepsPerFrame(t *testing.T) {
	m, err := NewFluidModel(testScene(), NewStyles(LightTheme()))
	if err != nil {
		t.Fatalf("NewFluidModel() error = %v", err)
	}
	next, cmd := m.Update(frameMsg(time.Now()))
	fm := next.(FluidModel)
	if fm.frame != 1 {
		t.Errorf("frame = %d, want 1 after one tick", fm.frame)
	}
	if fm.done {
		t.Error("done after one of three frames")
	}
	if cmd == nil {
		t.Error("expected a follow-up tick command")
	}
}

func TestFluidModelFinishes(t *testing.T) {
	m, err := NewFluidModel(testScene(), NewStyles(LightTheme()))
	if err != nil {
		t.Fatalf("NewFluidModel() error = %v", err)
	}
	var model tea.Model = m
	for i := 0; i < 3; i++ {
		model, _ = model.(FluidModel).Update(frameMsg(time.Now()))
	}
	fm := model.(FluidModel)
	if !fm.done {
		t.Fatal("model not done after all frames")
	}
	if !strings.Contains(fm.View(), "done") {
		t.Error("view missing done notice")
	}

	next, cmd := fm.Update(frameMsg(time.Now()))
	if got := next.(FluidModel).frame; got != 3 {
		t.Errorf("frame advanced past budget: %d", got)
	}
	if cmd != nil {
		t.Error("expected no command once done")
	}
}

func TestFluidModelQuitKeys(t *testing.T) {
	m, err := NewFluidModel(testScene(), NewStyles(LightTheme()))
	if err != nil {
		t.Fatalf("NewFluidModel() error = %v", err)
	}
	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	}
	for _, key := range keys {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("key %s: no command returned", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %s: expected quit, got %T", key, cmd())
		}
	}
}

func TestFluidModelView(t *testing.T) {
	m, err := NewFluidModel(testScene(), NewStyles(LightTheme()))
	if err != nil {
		t.Fatalf("NewFluidModel() error = %v", err)
	}
	view := m.View()
	if !strings.Contains(view, "@") {
		t.Error("view missing the seeded density blob")
	}
	if !strings.Contains(view, "frame 0/3") {
		t.Errorf("view missing frame counter:\n%s", view)
	}
}

func TestNewFluidModelBadScene(t *testing.T) {
	sc := testScene()
	sc.Width = 1
	if _, err := NewFluidModel(sc, NewStyles(LightTheme())); err == nil {
		t.Error("expected error for a grid below the solver minimum")
	}
}
