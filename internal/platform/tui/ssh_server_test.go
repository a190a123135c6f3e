package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// sessionGame is the game the session test picks from the menu.
var sessionGame = &stubGame{}

func init() {
	registry.Register("stub", func() registry.Game {
		return sessionGame
	})
}

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected SessionModel", next)
	}
	return model, cmd
}

func TestSessionGameRoundTrip(t *testing.T) {
	m := NewSessionModel(nil, testConfig())

	m, cmd := updateSession(t, m, keyMsg("enter"))
	if m.gameModel == nil {
		t.Fatal("selecting a game should start it")
	}
	if isQuit(cmd) {
		t.Error("selecting a game should not end the session")
	}

	// The game leaves through its own menu
	sessionGame.state.Exit = true
	m, cmd = updateSession(t, m, TickMsg{})
	sessionGame.state.Exit = false

	if m.gameModel != nil {
		t.Error("an exited game should return to the picker")
	}
	if isQuit(cmd) {
		t.Error("an exited game should not end the session")
	}
	if m.View() == "" {
		t.Error("picker view should not be empty")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(nil, testConfig())

	m, _ = updateSession(t, m, keyMsg("tab"))
	if m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}

	m, cmd := updateSession(t, m, keyMsg("b"))
	if m.scoreboard != nil {
		t.Error("back should close the scoreboard")
	}
	if isQuit(cmd) {
		t.Error("closing the scoreboard should not end the session")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, testConfig())

	m, cmd := updateSession(t, m, keyMsg("q"))
	if !isQuit(cmd) {
		t.Error("q in the picker should end the session")
	}
	if m.View() != "" {
		t.Errorf("View() = %q, expected empty after quit", m.View())
	}
}

func TestSessionResizeReachesGame(t *testing.T) {
	m := NewSessionModel(nil, testConfig())

	m, _ = updateSession(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.config.ScreenW != 100 || m.config.ScreenH != 30 {
		t.Errorf("config size = %dx%d, expected 100x30", m.config.ScreenW, m.config.ScreenH)
	}

	m, _ = updateSession(t, m, keyMsg("enter"))
	if m.gameModel == nil {
		t.Fatal("selecting a game should start it")
	}
	if m.gameModel.config.ScreenW != 100 {
		t.Errorf("game width = %d, expected 100", m.gameModel.config.ScreenW)
	}
}
