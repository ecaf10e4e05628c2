package input

import "fmt"

// GamepadButton is a button on a gamepad.
type GamepadButton uint8

// List of valid GamepadButton values.
const (
	GamepadButtonA GamepadButton = iota
	GamepadButtonB
	GamepadButtonX
	GamepadButtonY
	GamepadButtonUp
	GamepadButtonDown
	GamepadButtonLeft
	GamepadButtonRight
	GamepadButtonLeftShoulder
	GamepadButtonLeftTrigger
	GamepadButtonLeftStick
	GamepadButtonRightShoulder
	GamepadButtonRightTrigger
	GamepadButtonRightStick
	GamepadButtonStart
	GamepadButtonBack
	GamepadButtonGuide

	numGamepadButtons
)

var gamepadButtonNames = [numGamepadButtons]string{
	"A", "B", "X", "Y",
	"Up", "Down", "Left", "Right",
	"LeftShoulder", "LeftTrigger", "LeftStick",
	"RightShoulder", "RightTrigger", "RightStick",
	"Start", "Back", "Guide",
}

func (b GamepadButton) String() string {
	if b < numGamepadButtons {
		return gamepadButtonNames[b]
	}
	return fmt.Sprintf("GamepadButton(%d)", uint8(b))
}

// GamepadButtons returns every button in the vocabulary.
func GamepadButtons() []GamepadButton {
	l := make([]GamepadButton, numGamepadButtons)
	for i := range l {
		l[i] = GamepadButton(i)
	}
	return l
}

// ParseGamepadButton is the inverse of GamepadButton.String().
func ParseGamepadButton(s string) (GamepadButton, bool) {
	for i, n := range gamepadButtonNames {
		if n == s {
			return GamepadButton(i), true
		}
	}
	return 0, false
}

// GamepadAxis is an axis of movement on a gamepad.
type GamepadAxis uint8

// List of valid GamepadAxis values.
const (
	GamepadAxisLeftStickX GamepadAxis = iota
	GamepadAxisLeftStickY
	GamepadAxisLeftTrigger
	GamepadAxisRightStickX
	GamepadAxisRightStickY
	GamepadAxisRightTrigger

	numGamepadAxes
)

var gamepadAxisNames = [numGamepadAxes]string{
	"LeftStickX", "LeftStickY", "LeftTrigger",
	"RightStickX", "RightStickY", "RightTrigger",
}

func (a GamepadAxis) String() string {
	if a < numGamepadAxes {
		return gamepadAxisNames[a]
	}
	return fmt.Sprintf("GamepadAxis(%d)", uint8(a))
}

// GamepadAxes returns every axis in the vocabulary.
func GamepadAxes() []GamepadAxis {
	l := make([]GamepadAxis, numGamepadAxes)
	for i := range l {
		l[i] = GamepadAxis(i)
	}
	return l
}

// ParseGamepadAxis is the inverse of GamepadAxis.String().
func ParseGamepadAxis(s string) (GamepadAxis, bool) {
	for i, n := range gamepadAxisNames {
		if n == s {
			return GamepadAxis(i), true
		}
	}
	return 0, false
}

// GamepadStick is a control stick on a gamepad. A stick has no state of its
// own, it is a pairing of two axes.
type GamepadStick uint8

// List of valid GamepadStick values.
const (
	GamepadStickLeft GamepadStick = iota
	GamepadStickRight
)

func (s GamepadStick) String() string {
	switch s {
	case GamepadStickLeft:
		return "LeftStick"
	case GamepadStickRight:
		return "RightStick"
	}
	return fmt.Sprintf("GamepadStick(%d)", uint8(s))
}

// Axes returns the horizontal and vertical axes of the stick.
func (s GamepadStick) Axes() (x GamepadAxis, y GamepadAxis) {
	if s == GamepadStickRight {
		return GamepadAxisRightStickX, GamepadAxisRightStickY
	}
	return GamepadAxisLeftStickX, GamepadAxisLeftStickY
}
