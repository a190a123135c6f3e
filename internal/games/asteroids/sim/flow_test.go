package sim

import (
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestFlowTransitions(t *testing.T) {
	tests := []struct {
		name     string
		from     State
		action   core.Action
		expected State
		exit     bool
	}{
		{"menu start", StateMenu, core.ActionStart, StateInGame, false},
		{"menu exit quits", StateMenu, core.ActionExit, StateMenu, true},
		{"menu ignores pause", StateMenu, core.ActionPause, StateMenu, false},
		{"game exit", StateInGame, core.ActionExit, StateMenu, false},
		{"game pause", StateInGame, core.ActionPause, StatePaused, false},
		{"game ignores start", StateInGame, core.ActionStart, StateInGame, false},
		{"paused resume", StatePaused, core.ActionPause, StateInGame, false},
		{"paused exit", StatePaused, core.ActionExit, StateMenu, false},
		{"game over continue", StateGameOver, core.ActionContinue, StateMenu, false},
		{"game over ignores exit", StateGameOver, core.ActionExit, StateGameOver, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := Flow{current: tc.from}
			exit := f.HandleInput(press(tc.action))
			if exit != tc.exit {
				t.Errorf("exit = %v, expected %v", exit, tc.exit)
			}

			// Transitions are deferred to the next Apply
			if f.Current() != tc.from {
				t.Errorf("Current() = %v before Apply, expected %v", f.Current(), tc.from)
			}
			f.Apply()
			if f.Current() != tc.expected {
				t.Errorf("Current() = %v, expected %v", f.Current(), tc.expected)
			}
		})
	}
}

func TestFlowLastRequestWins(t *testing.T) {
	f := NewFlow()
	f.Request(StateInGame)
	f.Request(StateGameOver)

	if next, ok := f.Pending(); !ok || next != StateGameOver {
		t.Errorf("Pending() = (%v, %v), expected (game_over, true)", next, ok)
	}
	from, to, changed := f.Apply()
	if !changed || from != StateMenu || to != StateGameOver {
		t.Errorf("Apply() = (%v, %v, %v), expected (menu, game_over, true)", from, to, changed)
	}
	if _, _, changed := f.Apply(); changed {
		t.Error("second Apply() should not change state")
	}
	if _, ok := f.Pending(); ok {
		t.Error("Pending() after Apply() should be empty")
	}
}

func TestFlowSameStateIsNoop(t *testing.T) {
	f := NewFlow()
	f.Request(StateMenu)
	if _, _, changed := f.Apply(); changed {
		t.Error("requesting the current state should not report a change")
	}
}
