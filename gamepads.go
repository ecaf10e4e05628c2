package input

import (
	"iter"

	"github.com/go-gl/mathgl/mgl32"
)

// getGamepad is the single route from a slot index to gamepad state. It returns
// nil for a disconnected gamepad and for an index that was never used.
func (ctx *Context) getGamepad(index int) *GamepadState {
	return ctx.pads.get(index)
}

func emptySequence[T any](_ func(T) bool) {}

// IsGamepadConnected returns true if the gamepad slot is occupied.
func (ctx *Context) IsGamepadConnected(index int) bool {
	return ctx.getGamepad(index) != nil
}

// GamepadName returns the name of the gamepad as reported by the platform.
// Returns false if the gamepad is not connected.
func (ctx *Context) GamepadName(index int) (string, bool) {
	pad := ctx.getGamepad(index)
	if pad == nil {
		return "", false
	}
	return ctx.platform.GamepadName(pad.platformID), true
}

// IsGamepadButtonDown returns true if the button is currently down.
//
// If the gamepad is disconnected, this will always return false.
func (ctx *Context) IsGamepadButtonDown(index int, b GamepadButton) bool {
	if pad := ctx.getGamepad(index); pad != nil {
		return pad.currentButtons.has(b)
	}
	return false
}

// IsGamepadButtonUp returns true if the button is currently up.
//
// If the gamepad is disconnected, this will always return true.
func (ctx *Context) IsGamepadButtonUp(index int, b GamepadButton) bool {
	if pad := ctx.getGamepad(index); pad != nil {
		return !pad.currentButtons.has(b)
	}
	return true
}

// IsGamepadButtonPressed returns true if the button went down this frame.
//
// If the gamepad is disconnected, this will always return false.
func (ctx *Context) IsGamepadButtonPressed(index int, b GamepadButton) bool {
	if pad := ctx.getGamepad(index); pad != nil {
		return !pad.previousButtons.has(b) && pad.currentButtons.has(b)
	}
	return false
}

// IsGamepadButtonReleased returns true if the button went up this frame.
//
// If the gamepad is disconnected, this will always return false.
func (ctx *Context) IsGamepadButtonReleased(index int, b GamepadButton) bool {
	if pad := ctx.getGamepad(index); pad != nil {
		return pad.previousButtons.has(b) && !pad.currentButtons.has(b)
	}
	return false
}

// GamepadButtonsDown returns a sequence of the buttons that are currently
// down. The order of the sequence should not be relied upon.
//
// If the gamepad is disconnected, the sequence is empty.
func (ctx *Context) GamepadButtonsDown(index int) iter.Seq[GamepadButton] {
	if pad := ctx.getGamepad(index); pad != nil {
		return pad.currentButtons.all()
	}
	return emptySequence[GamepadButton]
}

// GamepadButtonsPressed returns a sequence of the buttons that went down this
// frame. The order of the sequence should not be relied upon.
//
// If the gamepad is disconnected, the sequence is empty.
func (ctx *Context) GamepadButtonsPressed(index int) iter.Seq[GamepadButton] {
	if pad := ctx.getGamepad(index); pad != nil {
		return pad.currentButtons.difference(pad.previousButtons)
	}
	return emptySequence[GamepadButton]
}

// GamepadButtonsReleased returns a sequence of the buttons that went up this
// frame. The order of the sequence should not be relied upon.
//
// If the gamepad is disconnected, the sequence is empty.
func (ctx *Context) GamepadButtonsReleased(index int) iter.Seq[GamepadButton] {
	if pad := ctx.getGamepad(index); pad != nil {
		return pad.previousButtons.difference(pad.currentButtons)
	}
	return emptySequence[GamepadButton]
}

// GamepadAxisPosition returns the current position of the axis.
//
// If the gamepad is disconnected, this will always return 0.
func (ctx *Context) GamepadAxisPosition(index int, a GamepadAxis) float32 {
	if pad := ctx.getGamepad(index); pad != nil {
		return pad.axisPosition(a)
	}
	return 0.0
}

// GamepadStickPosition returns the position of the stick's horizontal and
// vertical axes. No deadzone or clamping is applied.
//
// If the gamepad is disconnected, this will always return (0, 0).
func (ctx *Context) GamepadStickPosition(index int, s GamepadStick) mgl32.Vec2 {
	x, y := s.Axes()
	return mgl32.Vec2{
		ctx.GamepadAxisPosition(index, x),
		ctx.GamepadAxisPosition(index, y),
	}
}

// IsGamepadVibrationSupported returns whether the gamepad supports vibration.
//
// If the gamepad is disconnected, this will always return false.
func (ctx *Context) IsGamepadVibrationSupported(index int) bool {
	if pad := ctx.getGamepad(index); pad != nil {
		return ctx.platform.IsGamepadVibrationSupported(pad.platformID)
	}
	return false
}

// SetGamepadVibration sets the gamepad's motors to vibrate indefinitely.
// Nothing happens if the gamepad is disconnected.
func (ctx *Context) SetGamepadVibration(index int, strength float32) {
	if pad := ctx.getGamepad(index); pad != nil {
		ctx.platform.SetGamepadVibration(pad.platformID, strength)
	}
}

// StartGamepadVibration sets the gamepad's motors to vibrate for a duration,
// specified in milliseconds. After this time has passed the platform stops the
// vibration. Nothing happens if the gamepad is disconnected.
func (ctx *Context) StartGamepadVibration(index int, strength float32, durationMS uint32) {
	if pad := ctx.getGamepad(index); pad != nil {
		ctx.platform.StartGamepadVibration(pad.platformID, strength, durationMS)
	}
}

// StopGamepadVibration stops the gamepad's motors from vibrating. Nothing
// happens if the gamepad is disconnected.
func (ctx *Context) StopGamepadVibration(index int) {
	if pad := ctx.getGamepad(index); pad != nil {
		ctx.platform.StopGamepadVibration(pad.platformID)
	}
}
