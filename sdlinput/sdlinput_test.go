package sdlinput

import (
	"fmt"
	"testing"

	input "github.com/doingharm/go-input-bus"
	"github.com/doingharm/go-input-bus/internal/test"
	"github.com/veandco/go-sdl2/sdl"
)

// the backend is created without starting any SDL subsystem. only events that
// do not need a device are used
func newTestBackend() (*Backend, *input.EventQueue) {
	q := input.NewEventQueue()
	b, _ := New(Config{Keyboard: true}, q)
	return b, q
}

func TestKeyboardEvents(t *testing.T) {
	b, q := newTestBackend()

	test.ExpectSuccess(t, b.HandleEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_A}}))
	test.ExpectSuccess(t, b.HandleEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_A}}))
	test.ExpectSuccess(t, b.HandleEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_RSHIFT}}))
	test.ExpectSuccess(t, b.HandleEvent(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_A}}))
	test.ExpectSuccess(t, b.HandleEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_KP_0}}))

	// no vocabulary key
	test.ExpectSuccess(t, b.HandleEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_APPLICATION}}))

	test.ExpectEquality(t, fmt.Sprint(q.Drain()), "[KeyDown A KeyDown RightShift KeyUp A KeyDown NumPad0]")

	// keyboard capture turned off
	b.cfg.Keyboard = false
	test.ExpectFailure(t, b.HandleEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_A}}))
	test.ExpectEquality(t, q.Len(), 0)
}

func TestControllerEvents(t *testing.T) {
	b, q := newTestBackend()

	b.HandleEvent(&sdl.ControllerButtonEvent{Which: 2, Button: sdl.CONTROLLER_BUTTON_A, State: sdl.PRESSED})
	b.HandleEvent(&sdl.ControllerButtonEvent{Which: 2, Button: sdl.CONTROLLER_BUTTON_DPAD_LEFT, State: sdl.PRESSED})
	b.HandleEvent(&sdl.ControllerButtonEvent{Which: 2, Button: sdl.CONTROLLER_BUTTON_A, State: sdl.RELEASED})
	b.HandleEvent(&sdl.ControllerAxisEvent{Which: 2, Axis: sdl.CONTROLLER_AXIS_LEFTX, Value: -32768})
	b.HandleEvent(&sdl.ControllerAxisEvent{Which: 2, Axis: sdl.CONTROLLER_AXIS_TRIGGERRIGHT, Value: 32767})
	b.HandleEvent(&sdl.ControllerAxisEvent{Which: 2, Axis: sdl.CONTROLLER_AXIS_RIGHTY, Value: 0})

	// out of range button and axis
	b.HandleEvent(&sdl.ControllerButtonEvent{Which: 2, Button: 200, State: sdl.PRESSED})
	b.HandleEvent(&sdl.ControllerAxisEvent{Which: 2, Axis: 200, Value: 1})

	test.ExpectEquality(t, fmt.Sprint(q.Drain()), "[ButtonDown #2 A ButtonDown #2 Left ButtonUp #2 A "+
		"Axis #2 LeftStickX=-1 Axis #2 RightTrigger=1 Axis #2 RightStickY=0]")

	// removal of an unknown controller does nothing
	b.HandleEvent(&sdl.ControllerDeviceEvent{Type: sdl.CONTROLLERDEVICEREMOVED, Which: 5})
	test.ExpectEquality(t, q.Len(), 0)

	// events for other subsystems are not handled
	test.ExpectFailure(t, b.HandleEvent(&sdl.MouseMotionEvent{}))
}

func TestTriggerButtons(t *testing.T) {
	q := input.NewEventQueue(input.GamepadEvents, func(e *input.Event) bool {
		return e.Type != input.AxisEventType
	})
	b, _ := New(Config{TriggerThreshold: 0.5}, q)

	for _, v := range []int16{1000, 20000, 32767, 16383, 0, 16384} {
		b.HandleEvent(&sdl.ControllerAxisEvent{Which: 1, Axis: sdl.CONTROLLER_AXIS_TRIGGERLEFT, Value: v})
	}
	b.HandleEvent(&sdl.ControllerAxisEvent{Which: 1, Axis: sdl.CONTROLLER_AXIS_TRIGGERRIGHT, Value: 32767})

	test.ExpectEquality(t, fmt.Sprint(q.Drain()), "[ButtonDown #1 LeftTrigger ButtonUp #1 LeftTrigger "+
		"ButtonDown #1 LeftTrigger ButtonDown #1 RightTrigger]")
}

func TestUnknownControllerPlatform(t *testing.T) {
	b, _ := newTestBackend()
	test.ExpectEquality(t, b.GamepadName(1), "")
	test.ExpectFailure(t, b.IsGamepadVibrationSupported(1))

	// nothing to vibrate and nothing to fail
	b.SetGamepadVibration(1, 1.0)
	b.StartGamepadVibration(1, 0.5, 100)
	b.StopGamepadVibration(1)
}

func TestTables(t *testing.T) {
	// every vocabulary button and axis is reachable from SDL. the trigger
	// buttons come from the trigger axes
	buttons := map[input.GamepadButton]bool{
		input.GamepadButtonLeftTrigger:  true,
		input.GamepadButtonRightTrigger: true,
	}
	for _, v := range controllerButtons {
		buttons[v] = true
	}
	for _, v := range input.GamepadButtons() {
		test.ExpectSuccess(t, buttons[v], v)
	}

	axes := make(map[input.GamepadAxis]bool)
	for _, v := range controllerAxes {
		axes[v] = true
	}
	for _, v := range input.GamepadAxes() {
		test.ExpectSuccess(t, axes[v], v)
	}

	// no two scancodes for the same key
	keys := make(map[input.Key]int)
	for sc, k := range scancodes {
		if prev, ok := keys[k]; ok {
			t.Errorf("%v mapped by scancodes %d and %d", k, prev, sc)
		}
		keys[k] = sc
	}
}
