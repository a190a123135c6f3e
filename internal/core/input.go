package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionRotateLeft         // Left arrow, A - turn counter-clockwise
	ActionRotateRight        // Right arrow, D - turn clockwise
	ActionThrust             // Up arrow, W - forward impulse
	ActionFire               // Space, F, J, Ctrl - shoot lasers
	ActionStart              // Space, Enter - leave the title screen
	ActionContinue           // Space, Enter - leave the game over screen
	ActionExit               // Esc - back to title (or quit from title)
	ActionPause              // P - pause/unpause
	ActionQuit               // Q, Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionThrust:
		return "Thrust"
	case ActionFire:
		return "Fire"
	case ActionStart:
		return "Start"
	case ActionContinue:
		return "Continue"
	case ActionExit:
		return "Exit"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// GamepadID identifies a connected gamepad.
type GamepadID int

// InputFrame represents the input state for one simulation tick.
//
// Actions holds edge-triggered ("just pressed") actions, Held holds
// level-triggered actions that are down during this tick, and StickX holds
// the left stick horizontal axis of every connected gamepad in [-1, 1].
// A just-pressed action is also considered held.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
	StickX  map[GamepadID]float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
		StickX:  make(map[GamepadID]float64),
	}
}

// Set marks an action as just pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// SetAxis records a gamepad's left stick horizontal value.
func (f *InputFrame) SetAxis(id GamepadID, x float64) {
	if f.StickX == nil {
		f.StickX = make(map[GamepadID]float64)
	}
	f.StickX[id] = x
}

// Has returns true if the given action was just pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// IsHeld returns true if the action is down this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a] || f.Has(a)
}

// Clear resets all actions and axes for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
	for k := range f.StickX {
		delete(f.StickX, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	for k, v := range f.StickX {
		clone.StickX[k] = v
	}
	return clone
}
