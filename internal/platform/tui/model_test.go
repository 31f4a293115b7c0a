package tui

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

// fakeGame records the calls the model makes.
type fakeGame struct {
	resets  []core.RuntimeConfig
	inputs  []core.InputFrame
	state   core.GameState
	renders int
}

func (g *fakeGame) ID() string                   { return "fake" }
func (g *fakeGame) Reset(cfg core.RuntimeConfig) { g.resets = append(g.resets, cfg) }
func (g *fakeGame) State() core.GameState        { return g.state }
func (g *fakeGame) Render(dst *core.Screen) {
	g.renders++
	dst.DrawText(0, 0, "frame", core.ColorWhite)
}
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	copied := core.NewInputFrame()
	for a := range in.Actions {
		copied.Set(a)
	}
	g.inputs = append(g.inputs, copied)
	return core.StepResult{State: g.state}
}

func newTestModel(g *fakeGame, opts Options) Model {
	opts.Logger = log.New(io.Discard)
	return NewModel(g, core.RuntimeConfig{ScreenW: 20, ScreenH: 6, TickRate: 30, Seed: 7}, opts)
}

func TestModelInitResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	if cmd := m.Init(); cmd == nil {
		t.Error("Init() returned no command")
	}
	if len(g.resets) != 1 {
		t.Fatalf("Reset called %d times", len(g.resets))
	}
	// The help row is not part of the game's screen
	if g.resets[0].ScreenH != 5 || g.resets[0].Seed != 7 {
		t.Errorf("Reset(%+v)", g.resets[0])
	}
}

func TestModelKeysReachGameOnTick(t *testing.T) {
	g := &fakeGame{}
	var model tea.Model = newTestModel(g, Options{})

	model, _ = model.Update(runeKey('d'))
	model, _ = model.Update(runeKey('w'))
	model, cmd := model.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
	model, _ = model.Update(TickMsg{})

	if len(g.inputs) != 2 {
		t.Fatalf("Step called %d times, expected 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionRight) || !g.inputs[0].Has(core.ActionUp) {
		t.Errorf("first frame = %v", g.inputs[0].Actions)
	}
	if len(g.inputs[1].Actions) != 0 {
		t.Errorf("input not cleared between ticks: %v", g.inputs[1].Actions)
	}
	_ = model
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	model, cmd := newTestModel(g, Options{}).Update(runeKey('q'))

	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key did not quit")
	}
	if model.View() != "" {
		t.Error("View() not empty after quitting")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})
	m.Init()

	model, _ := m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})
	mm := model.(Model)

	if len(g.resets) != 1 {
		t.Errorf("resize reset the game")
	}
	if mm.screen.Width() != 50 || mm.screen.Height() != 19 {
		t.Errorf("screen = %dx%d, expected 50x19", mm.screen.Width(), mm.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{}
	view := newTestModel(g, Options{}).View()

	if g.renders != 1 {
		t.Errorf("Render called %d times", g.renders)
	}
	if !strings.Contains(view, "frame") {
		t.Errorf("View() missing game frame: %q", view)
	}
	if !strings.Contains(view, "quit") {
		t.Errorf("View() missing help line: %q", view)
	}
}

func TestModelLevelsChanged(t *testing.T) {
	events := make(chan string, 1)
	var reloaded []string
	fail := false
	watch := &Watch{
		Events: events,
		Reload: func(path string) error {
			if fail {
				return errors.New("broken level")
			}
			reloaded = append(reloaded, path)
			return nil
		},
	}

	g := &fakeGame{state: core.GameState{LevelName: "after"}}
	model, cmd := newTestModel(g, Options{Watch: watch}).Update(LevelsChangedMsg{Path: "/tmp/lvl.yaml"})
	if len(reloaded) != 1 || reloaded[0] != "/tmp/lvl.yaml" {
		t.Errorf("Reload calls = %v", reloaded)
	}
	if cmd == nil {
		t.Fatal("watch loop not continued")
	}
	if !strings.Contains(model.View(), "reloaded lvl.yaml") {
		t.Errorf("View() = %q, expected reload note", model.View())
	}
	if model.(Model).State().LevelName != "after" {
		t.Error("state not refreshed after reload")
	}

	// The continued command delivers the next event
	events <- "/tmp/other.yaml"
	if msg, ok := cmd().(LevelsChangedMsg); !ok || msg.Path != "/tmp/other.yaml" {
		t.Errorf("next message = %v", msg)
	}

	fail = true
	model, _ = model.Update(LevelsChangedMsg{Path: "/tmp/lvl.yaml"})
	if !strings.Contains(model.View(), "reload failed") {
		t.Errorf("View() = %q, expected failure note", model.View())
	}

	close(events)
	if msg := waitForChange(events)(); msg != nil {
		t.Errorf("closed watcher produced %v", msg)
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	g := &fakeGame{}
	model, _ := newTestModel(g, Options{ScreenshotDir: dir}).Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "fake_") {
		t.Errorf("screenshot files = %v", entries)
	}
	if !strings.Contains(model.View(), "saved fake_") {
		t.Error("no screenshot note in view")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorRed)
	s.DrawText(0, 1, "xy", core.ColorGray)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "abcd") {
		t.Errorf("same-color run split: %q", lines[0])
	}
	if !strings.Contains(lines[1], "xy") {
		t.Errorf("line 2 = %q", lines[1])
	}
}

func TestMenuModel(t *testing.T) {
	campaign := []levels.Level{{ID: "lvl01", Name: "One"}, {ID: "lvl02"}}
	var model tea.Model = NewMenuModel(campaign, 40, 10)

	view := model.View()
	if !strings.Contains(view, "One") || !strings.Contains(view, "lvl02") {
		t.Errorf("View() = %q", view)
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown}) // stays on the last item
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("select did not quit the menu")
	}

	sel := model.(MenuModel).Selected()
	if sel == nil || sel.LevelID != "lvl02" {
		t.Errorf("Selected() = %+v, expected lvl02", sel)
	}
}
