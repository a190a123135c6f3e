package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// stubGame records its inputs and reports a scripted state.
type stubGame struct {
	inputs []core.InputFrame
	state  core.GameState
	zoom   float64
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Zoom(delta float64) { g.zoom += delta }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.state}
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	cfg.PlayerName = "Padme"
	return cfg
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelKeysBecomeInput(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, testConfig())

	m, _ = update(t, m, keyMsg("left"))
	m, _ = update(t, m, keyMsg("p"))
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	if len(game.inputs) != 2 {
		t.Fatalf("Step called %d times, expected 2", len(game.inputs))
	}
	first, second := game.inputs[0], game.inputs[1]
	if !first.IsHeld(core.ActionRotateLeft) || !first.Has(core.ActionPause) {
		t.Errorf("first frame = %+v, expected held rotate and pressed pause", first)
	}
	// Presses last one tick, held keys last for the hold window
	if second.Has(core.ActionPause) {
		t.Error("pause press should not repeat on the next tick")
	}
	if !second.IsHeld(core.ActionRotateLeft) {
		t.Error("rotate should still be held within the hold window")
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &stubGame{state: core.GameState{Score: 250, GameOver: true}}
	m := NewModel(game, store, testConfig())
	for range 3 {
		m, _ = update(t, m, TickMsg{})
	}

	// Back to the menu and into a second game over
	game.state = core.GameState{}
	m, _ = update(t, m, TickMsg{})
	game.state = core.GameState{Score: 100, GameOver: true}
	m, _ = update(t, m, TickMsg{})

	scores, err := store.AllScores("stub")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("len(scores) = %d, expected 2", len(scores))
	}
	if scores[0].Score != 250 || scores[0].Player != "Padme" {
		t.Errorf("scores[0] = %s/%d, expected Padme/250", scores[0].Player, scores[0].Score)
	}
}

func TestModelExit(t *testing.T) {
	game := &stubGame{state: core.GameState{Exit: true}}

	standalone := NewModel(game, nil, testConfig())
	standalone, cmd := update(t, standalone, TickMsg{})
	if !isQuit(cmd) {
		t.Error("standalone model should quit when the game exits")
	}
	if !standalone.Exited() {
		t.Error("Exited() = false, expected true")
	}

	hosted := newGameModel(game, nil, testConfig())
	hosted, cmd = update(t, hosted, TickMsg{})
	if cmd != nil {
		t.Error("hosted model should stop ticking without quitting")
	}
	if !hosted.Exited() || hosted.IsQuitting() {
		t.Errorf("hosted Exited/IsQuitting = %v/%v, expected true/false", hosted.Exited(), hosted.IsQuitting())
	}
}

func TestModelQuitKey(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testConfig())
	m, cmd := update(t, m, keyMsg("q"))
	if !isQuit(cmd) || !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestModelZoomKeys(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, testConfig())
	m, _ = update(t, m, keyMsg("x"))
	m, _ = update(t, m, keyMsg("x"))
	_, _ = update(t, m, keyMsg("z"))

	if game.zoom != -zoomStep {
		t.Errorf("zoom = %v, expected %v", game.zoom, -zoomStep)
	}
}

func TestRenderScreenPlain(t *testing.T) {
	screen := core.NewScreen(10, 2)
	screen.DrawTextColored(0, 0, "ab", core.ColorBrown)
	screen.DrawText(3, 1, "cd")

	// Without a color profile the styled output degrades to plain text
	out := RenderScreen(screen)
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() = %q, missing %q", out, want)
		}
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", strings.Count(out, "\n"))
	}
}
