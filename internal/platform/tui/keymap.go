package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// KeyBinding is what one key press means to the game. Pressed actions are
// edge-triggered for the tick that follows. Held actions stay down while
// the key keeps repeating.
type KeyBinding struct {
	Pressed []core.Action
	Held    []core.Action
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a binding.
// Returns an empty binding for unbound keys and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (binding KeyBinding, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return KeyBinding{Pressed: []core.Action{core.ActionQuit}}, true
	}

	switch key {
	case "left", "a":
		binding.Held = []core.Action{core.ActionRotateLeft}
	case "right", "d":
		binding.Held = []core.Action{core.ActionRotateRight}
	case "up", "w":
		binding.Held = []core.Action{core.ActionThrust}
	case "f", "j":
		binding.Held = []core.Action{core.ActionFire}
	case " ":
		binding.Pressed = []core.Action{core.ActionStart, core.ActionContinue}
		binding.Held = []core.Action{core.ActionFire}
	case "enter":
		binding.Pressed = []core.Action{core.ActionStart, core.ActionContinue}
	case "esc":
		binding.Pressed = []core.Action{core.ActionExit}
	case "p":
		binding.Pressed = []core.Action{core.ActionPause}
	}

	return binding, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// DefaultHoldWindow is how long a key stays held after its last press.
// Terminals only report presses, so a held key shows up as a stream of
// auto-repeated presses.
const DefaultHoldWindow = 150 * time.Millisecond

// HoldTracker turns repeated key presses into held actions. Each press
// keeps its action held for a fixed number of ticks.
type HoldTracker struct {
	window int
	tick   uint64
	until  map[core.Action]uint64
}

// NewHoldTracker creates a tracker whose window covers the given duration
// at tickRate ticks per second.
func NewHoldTracker(window time.Duration, tickRate int) *HoldTracker {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticks := int(math.Ceil(window.Seconds() * float64(tickRate)))
	return &HoldTracker{
		window: max(ticks, 1),
		until:  make(map[core.Action]uint64),
	}
}

// Press marks an action held for the next window.
func (h *HoldTracker) Press(a core.Action) {
	h.until[a] = h.tick + uint64(h.window) //#nosec G115 -- window is positive
}

// Apply adds every still-held action to the frame.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for a, until := range h.until {
		if until > h.tick {
			frame.Hold(a)
		} else {
			delete(h.until, a)
		}
	}
}

// Advance moves the tracker to the next tick.
func (h *HoldTracker) Advance() {
	h.tick++
}

// Release drops every held action.
func (h *HoldTracker) Release() {
	clear(h.until)
}
