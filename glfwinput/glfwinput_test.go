package glfwinput

import (
	"fmt"
	"testing"

	input "github.com/doingharm/go-input-bus"
	"github.com/doingharm/go-input-bus/internal/test"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyCallback(t *testing.T) {
	q := input.NewEventQueue()
	b := newBackend(DefaultConfig(), q)

	b.keyCallback(nil, glfw.KeyA, 0, glfw.Press, 0)
	b.keyCallback(nil, glfw.KeyA, 0, glfw.Repeat, 0)
	b.keyCallback(nil, glfw.KeyKPEnter, 0, glfw.Press, glfw.ModShift)
	b.keyCallback(nil, glfw.KeyA, 0, glfw.Release, 0)
	b.keyCallback(nil, glfw.KeyMenu, 0, glfw.Press, 0)
	b.keyCallback(nil, glfw.KeyUnknown, 0, glfw.Press, 0)

	test.ExpectEquality(t, fmt.Sprint(q.Drain()), "[KeyDown A KeyDown NumPadEnter KeyUp A]")
}

func TestConnection(t *testing.T) {
	q := input.NewEventQueue()
	b := newBackend(DefaultConfig(), q)

	b.connect(glfw.Joystick2, "Pad")
	b.connect(glfw.Joystick2, "Pad")
	test.ExpectEquality(t, b.GamepadName(input.PlatformID(glfw.Joystick2)), "Pad")
	test.ExpectEquality(t, b.GamepadName(input.PlatformID(glfw.Joystick3)), "")
	test.ExpectFailure(t, b.IsGamepadVibrationSupported(input.PlatformID(glfw.Joystick2)))

	b.disconnect(glfw.Joystick2)
	b.disconnect(glfw.Joystick2)
	test.ExpectEquality(t, b.GamepadName(input.PlatformID(glfw.Joystick2)), "")

	test.ExpectEquality(t, fmt.Sprint(q.Drain()), "[Connect #1 Disconnect #1]")
}

func TestStateChanges(t *testing.T) {
	q := input.NewEventQueue()
	b := newBackend(DefaultConfig(), q)
	b.connect(glfw.Joystick1, "Pad")
	q.Drain()

	g := b.gamepads[glfw.Joystick1]

	var s glfw.GamepadState
	s.Axes[glfw.AxisLeftTrigger] = -1
	s.Axes[glfw.AxisRightTrigger] = -1
	b.update(glfw.Joystick1, g, &s)
	test.ExpectEquality(t, fmt.Sprint(q.Drain()), "[Axis #0 LeftTrigger=0 Axis #0 RightTrigger=0]")

	// no change, no events
	b.update(glfw.Joystick1, g, &s)
	test.ExpectEquality(t, q.Len(), 0)

	s.Buttons[glfw.ButtonA] = glfw.Press
	s.Buttons[glfw.ButtonDpadLeft] = glfw.Press
	s.Axes[glfw.AxisLeftX] = -0.5
	s.Axes[glfw.AxisRightTrigger] = 1
	b.update(glfw.Joystick1, g, &s)
	test.ExpectEquality(t, fmt.Sprint(q.Drain()), "[ButtonDown #0 A ButtonDown #0 Left "+
		"Axis #0 LeftStickX=-0.5 ButtonDown #0 RightTrigger Axis #0 RightTrigger=1]")

	s.Buttons[glfw.ButtonA] = glfw.Release
	s.Axes[glfw.AxisRightTrigger] = -0.5
	b.update(glfw.Joystick1, g, &s)
	test.ExpectEquality(t, fmt.Sprint(q.Drain()), "[ButtonUp #0 A "+
		"ButtonUp #0 RightTrigger Axis #0 RightTrigger=0.25]")
}

func TestStateIntoContext(t *testing.T) {
	q := input.NewEventQueue()
	b := newBackend(DefaultConfig(), q)
	ctx := input.NewContext(input.WithQueue(q), input.WithPlatform(b))
	b.connect(glfw.Joystick4, "Pad")

	var s glfw.GamepadState
	s.Buttons[glfw.ButtonStart] = glfw.Press
	s.Axes[glfw.AxisRightY] = 0.75
	b.update(glfw.Joystick4, b.gamepads[glfw.Joystick4], &s)
	ctx.Update()

	test.ExpectSuccess(t, ctx.IsGamepadButtonPressed(0, input.GamepadButtonStart))
	test.ExpectEquality(t, ctx.GamepadStickPosition(0, input.GamepadStickRight).Y(), float32(0.75))

	name, _ := ctx.GamepadName(0)
	test.ExpectEquality(t, name, "Pad")
}

func TestTables(t *testing.T) {
	test.ExpectEquality(t, len(buttons), len(glfw.GamepadState{}.Buttons))
	test.ExpectEquality(t, len(axes), len(glfw.GamepadState{}.Axes))
}
