package tui

import (
	"slices"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		key     string
		pressed []core.Action
		held    []core.Action
		quit    bool
	}{
		{"left", nil, []core.Action{core.ActionRotateLeft}, false},
		{"d", nil, []core.Action{core.ActionRotateRight}, false},
		{"up", nil, []core.Action{core.ActionThrust}, false},
		{"f", nil, []core.Action{core.ActionFire}, false},
		{" ", []core.Action{core.ActionStart, core.ActionContinue}, []core.Action{core.ActionFire}, false},
		{"enter", []core.Action{core.ActionStart, core.ActionContinue}, nil, false},
		{"esc", []core.Action{core.ActionExit}, nil, false},
		{"p", []core.Action{core.ActionPause}, nil, false},
		{"q", []core.Action{core.ActionQuit}, nil, true},
		{"ctrl+c", []core.Action{core.ActionQuit}, nil, true},
		{"y", nil, nil, false},
	}

	km := NewKeyMapper()
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			binding, quit := km.MapKey(keyMsg(tc.key))
			if quit != tc.quit {
				t.Errorf("isQuit = %v, expected %v", quit, tc.quit)
			}
			if !slices.Equal(binding.Pressed, tc.pressed) {
				t.Errorf("Pressed = %v, expected %v", binding.Pressed, tc.pressed)
			}
			if !slices.Equal(binding.Held, tc.held) {
				t.Errorf("Held = %v, expected %v", binding.Held, tc.held)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		key      string
		expected MenuAction
	}{
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{" ", MenuActionSelect},
		{"esc", MenuActionBack},
		{"tab", MenuActionScoreboard},
		{"q", MenuActionQuit},
		{"z", MenuActionNone},
	}

	km := NewKeyMapper()
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tc.key)); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.key, got, tc.expected)
		}
	}
}

func TestHoldTrackerWindow(t *testing.T) {
	// 100ms at 60 ticks per second is 6 ticks
	h := NewHoldTracker(100*time.Millisecond, 60)
	h.Press(core.ActionThrust)

	held := 0
	for range 20 {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if frame.IsHeld(core.ActionThrust) {
			held++
		}
		h.Advance()
	}
	if held != 6 {
		t.Errorf("action held for %d ticks, expected 6", held)
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	h := NewHoldTracker(100*time.Millisecond, 60)

	held := 0
	for tick := range 30 {
		// Auto-repeat every 4 ticks for the first 12 ticks
		if tick < 12 && tick%4 == 0 {
			h.Press(core.ActionRotateLeft)
		}
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if frame.IsHeld(core.ActionRotateLeft) {
			held++
		}
		h.Advance()
	}
	// Last press at tick 8 holds through tick 13
	if held != 14 {
		t.Errorf("action held for %d ticks, expected 14", held)
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	h := NewHoldTracker(DefaultHoldWindow, 60)
	h.Press(core.ActionFire)
	h.Release()

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.IsHeld(core.ActionFire) {
		t.Error("released action should not be held")
	}
}
