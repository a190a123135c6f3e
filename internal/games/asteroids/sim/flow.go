package sim

import "github.com/vovakirdan/tui-asteroids/internal/core"

// State is the game flow state.
type State int

const (
	StateMenu State = iota
	StateInGame
	StatePaused
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateInGame:
		return "in_game"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// inRound reports whether the state belongs to a running round. Paused is
// part of the round, so InGame and Paused share the same entities.
func (s State) inRound() bool {
	return s == StateInGame || s == StatePaused
}

// Overlay texts.
const (
	MenuText     = "Asteroids\nPress Space to start"
	GameOverText = "Game Over\nPress Space to continue"
	PausedText   = "Paused\nPress P to resume"
)

// Flow holds the current state and the one requested for the next tick.
type Flow struct {
	current State
	next    State
	pending bool
}

// NewFlow starts in the menu.
func NewFlow() Flow {
	return Flow{current: StateMenu}
}

// Current returns the active state.
func (f *Flow) Current() State {
	return f.current
}

// Pending returns the requested state, if any.
func (f *Flow) Pending() (State, bool) {
	return f.next, f.pending
}

// Request schedules a transition for the next tick boundary. A later
// request in the same tick replaces an earlier one.
func (f *Flow) Request(s State) {
	f.next = s
	f.pending = true
}

// Apply makes the pending state current.
func (f *Flow) Apply() (from, to State, changed bool) {
	if !f.pending {
		return f.current, f.current, false
	}
	f.pending = false
	from, to = f.current, f.next
	if from == to {
		return from, to, false
	}
	f.current = to
	return from, to, true
}

// HandleInput requests the transition the input asks for. It returns true
// when the player asked to leave the application.
func (f *Flow) HandleInput(in core.InputFrame) (exit bool) {
	switch f.current {
	case StateMenu:
		if in.Has(core.ActionExit) {
			return true
		}
		if in.Has(core.ActionStart) {
			f.Request(StateInGame)
		}
	case StateInGame:
		if in.Has(core.ActionExit) {
			f.Request(StateMenu)
		} else if in.Has(core.ActionPause) {
			f.Request(StatePaused)
		}
	case StatePaused:
		if in.Has(core.ActionExit) {
			f.Request(StateMenu)
		} else if in.Has(core.ActionPause) {
			f.Request(StateInGame)
		}
	case StateGameOver:
		if in.Has(core.ActionContinue) {
			f.Request(StateMenu)
		}
	}
	return false
}

// transition runs the exit and enter hooks of a state change.
func (s *Simulation) transition(from, to State) {
	s.log.Info("state changed", "from", from, "to", to)

	// Leaving the round scope
	if from.inRound() && !to.inRound() {
		s.teardownRound()
	}

	switch to {
	case StateMenu:
		s.overlay = MenuText
	case StateGameOver:
		s.overlay = GameOverText
		s.gameOver = true
	case StatePaused:
		s.overlay = PausedText
	case StateInGame:
		s.overlay = ""
		if !from.inRound() {
			s.setupRound()
		}
	}
}
