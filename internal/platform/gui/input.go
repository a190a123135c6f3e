package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// inputSource is the slice of ebiten's input API the frontend reads.
type inputSource interface {
	KeyHeld(k ebiten.Key) bool
	KeyJustPressed(k ebiten.Key) bool
	Gamepads() []ebiten.GamepadID
	StickX(id ebiten.GamepadID) float64
	ButtonHeld(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool
	ButtonJustPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool
}

// ebitenInput reads the live ebiten input state.
type ebitenInput struct {
	ids []ebiten.GamepadID
}

func (e *ebitenInput) KeyHeld(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

func (e *ebitenInput) KeyJustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

// Gamepads returns connected gamepads with a standard layout.
func (e *ebitenInput) Gamepads() []ebiten.GamepadID {
	e.ids = ebiten.AppendGamepadIDs(e.ids[:0])
	n := 0
	for _, id := range e.ids {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			e.ids[n] = id
			n++
		}
	}
	return e.ids[:n]
}

func (e *ebitenInput) StickX(id ebiten.GamepadID) float64 {
	return ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
}

func (e *ebitenInput) ButtonHeld(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, b)
}

func (e *ebitenInput) ButtonJustPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return inpututil.IsStandardGamepadButtonJustPressed(id, b)
}

var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionRotateLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRotateRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionThrust:      {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionFire:        {ebiten.KeySpace, ebiten.KeyF, ebiten.KeyJ, ebiten.KeyControlLeft, ebiten.KeyControlRight},
}

var pressedKeys = map[core.Action][]ebiten.Key{
	core.ActionStart:    {ebiten.KeySpace, ebiten.KeyEnter},
	core.ActionContinue: {ebiten.KeySpace, ebiten.KeyEnter},
	core.ActionExit:     {ebiten.KeyEscape},
	core.ActionPause:    {ebiten.KeyP},
}

// South is the bottom face button, East the right one.
const (
	buttonSouth = ebiten.StandardGamepadButtonRightBottom
	buttonEast  = ebiten.StandardGamepadButtonRightRight
)

// readInput builds one tick's input frame.
func readInput(src inputSource) core.InputFrame {
	frame := core.NewInputFrame()

	for a, keys := range heldKeys {
		for _, k := range keys {
			if src.KeyHeld(k) {
				frame.Hold(a)
				break
			}
		}
	}
	for a, keys := range pressedKeys {
		for _, k := range keys {
			if src.KeyJustPressed(k) {
				frame.Set(a)
				break
			}
		}
	}

	for _, id := range src.Gamepads() {
		frame.SetAxis(core.GamepadID(id), src.StickX(id))

		if src.ButtonHeld(id, buttonSouth) {
			frame.Hold(core.ActionThrust)
		}
		if src.ButtonJustPressed(id, buttonSouth) {
			frame.Set(core.ActionStart)
			frame.Set(core.ActionContinue)
		}
		if src.ButtonHeld(id, ebiten.StandardGamepadButtonFrontBottomRight) || src.ButtonHeld(id, buttonEast) {
			frame.Hold(core.ActionFire)
		}
		if src.ButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			frame.Set(core.ActionPause)
		}
		if src.ButtonJustPressed(id, ebiten.StandardGamepadButtonCenterLeft) {
			frame.Set(core.ActionExit)
		}
	}

	return frame
}

// zoomInput returns the camera scale change for this tick.
func zoomInput(src inputSource) float64 {
	var d float64
	if src.KeyHeld(ebiten.KeyZ) {
		d += zoomStep
	}
	if src.KeyHeld(ebiten.KeyX) {
		d -= zoomStep
	}
	return d
}
