// Package glfwinput captures the keyboard and gamepads of a GLFW window.
//
// Keys arrive through the window's key callback. GLFW reports gamepads as
// polled state so Poll() compares the state of each gamepad with the state
// seen on the previous call and pushes an event for every change. Poll() must
// be called on the main thread after glfw.PollEvents() and before
// input.Context.Update().
package glfwinput

import (
	"sync"

	input "github.com/doingharm/go-input-bus"
	"github.com/doingharm/go-input-bus/logger"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Config for the Backend.
type Config struct {
	// capture keyboard events as well as gamepad events
	Keyboard bool

	// GLFW reports the triggers only as axes. a trigger button event is
	// generated when the trigger axis crosses this value. zero or less
	// disables the trigger buttons
	TriggerThreshold float32
}

// DefaultConfig captures the keyboard and generates trigger buttons.
func DefaultConfig() Config {
	return Config{
		Keyboard:         true,
		TriggerThreshold: 0.5,
	}
}

type gamepad struct {
	name  string
	state glfw.GamepadState

	// trigger buttons that are down
	triggers [2]bool
}

// Backend translates GLFW input and pushes it to the queue.
type Backend struct {
	cfg   Config
	queue input.Pusher

	crit     sync.Mutex
	gamepads map[glfw.Joystick]*gamepad
}

// New installs the callbacks on the window and connects every gamepad that is
// already present. GLFW must have been initialised. A nil window captures
// gamepads only.
func New(win *glfw.Window, cfg Config, queue input.Pusher) *Backend {
	b := newBackend(cfg, queue)

	if win != nil && cfg.Keyboard {
		win.SetKeyCallback(b.keyCallback)
	}
	glfw.SetJoystickCallback(b.joystickCallback)

	for joy := glfw.Joystick1; joy <= glfw.JoystickLast; joy++ {
		if joy.Present() && joy.IsGamepad() {
			b.connect(joy, joy.GetGamepadName())
		}
	}

	return b
}

func newBackend(cfg Config, queue input.Pusher) *Backend {
	return &Backend{
		cfg:      cfg,
		queue:    queue,
		gamepads: make(map[glfw.Joystick]*gamepad),
	}
}

func (b *Backend) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k, ok := keys[key]
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		b.queue.Push(input.KeyDownEvent(k))
	case glfw.Release:
		b.queue.Push(input.KeyUpEvent(k))
	}
}

func (b *Backend) joystickCallback(joy glfw.Joystick, event glfw.PeripheralEvent) {
	switch event {
	case glfw.Connected:
		// joysticks without a gamepad mapping are not supported
		if joy.IsGamepad() {
			b.connect(joy, joy.GetGamepadName())
		} else {
			logger.Logf("glfwinput", "joystick %d has no gamepad mapping", joy)
		}
	case glfw.Disconnected:
		b.disconnect(joy)
	}
}

func (b *Backend) connect(joy glfw.Joystick, name string) {
	b.crit.Lock()
	defer b.crit.Unlock()

	if _, ok := b.gamepads[joy]; ok {
		return
	}
	b.gamepads[joy] = &gamepad{name: name}

	b.queue.Push(input.Connect(input.PlatformID(joy)))
	logger.Logf("glfwinput", "%s connected as #%d", name, joy)
}

func (b *Backend) disconnect(joy glfw.Joystick) {
	b.crit.Lock()
	defer b.crit.Unlock()

	g, ok := b.gamepads[joy]
	if !ok {
		return
	}
	delete(b.gamepads, joy)

	b.queue.Push(input.Disconnect(input.PlatformID(joy)))
	logger.Logf("glfwinput", "%s disconnected (#%d)", g.name, joy)
}

// Poll reads the state of every connected gamepad and pushes the changes
// since the previous call.
func (b *Backend) Poll() {
	b.crit.Lock()
	defer b.crit.Unlock()

	for joy, g := range b.gamepads {
		if s := joy.GetGamepadState(); s != nil {
			b.update(joy, g, s)
		}
	}
}

// update pushes the differences between the gamepad's stored state and the new
// state, and stores the new state.
func (b *Backend) update(joy glfw.Joystick, g *gamepad, s *glfw.GamepadState) {
	id := input.PlatformID(joy)

	for i, btn := range buttons {
		if s.Buttons[i] == g.state.Buttons[i] {
			continue
		}
		if s.Buttons[i] == glfw.Press {
			b.queue.Push(input.ButtonDown(id, btn))
		} else {
			b.queue.Push(input.ButtonUp(id, btn))
		}
	}

	for i, a := range axes {
		if s.Axes[i] == g.state.Axes[i] {
			continue
		}

		v := s.Axes[i]
		switch a {
		case input.GamepadAxisLeftTrigger:
			v = normaliseTrigger(v)
			b.triggerButton(id, g, 0, input.GamepadButtonLeftTrigger, v)
		case input.GamepadAxisRightTrigger:
			v = normaliseTrigger(v)
			b.triggerButton(id, g, 1, input.GamepadButtonRightTrigger, v)
		}
		b.queue.Push(input.Axis(id, a, v))
	}

	g.state = *s
}

// GLFW triggers rest at -1
func normaliseTrigger(v float32) float32 {
	return (v + 1) / 2
}

func (b *Backend) triggerButton(id input.PlatformID, g *gamepad, i int, btn input.GamepadButton, v float32) {
	if b.cfg.TriggerThreshold <= 0 {
		return
	}

	down := v >= b.cfg.TriggerThreshold
	if down == g.triggers[i] {
		return
	}
	g.triggers[i] = down

	if down {
		b.queue.Push(input.ButtonDown(id, btn))
	} else {
		b.queue.Push(input.ButtonUp(id, btn))
	}
}

// GamepadName implements the input.Platform interface.
func (b *Backend) GamepadName(id input.PlatformID) string {
	b.crit.Lock()
	defer b.crit.Unlock()
	if g, ok := b.gamepads[glfw.Joystick(id)]; ok {
		return g.name
	}
	return ""
}

// IsGamepadVibrationSupported implements the input.Platform interface. GLFW
// has no force feedback.
func (b *Backend) IsGamepadVibrationSupported(_ input.PlatformID) bool {
	return false
}

// SetGamepadVibration implements the input.Platform interface.
func (b *Backend) SetGamepadVibration(_ input.PlatformID, _ float32) {}

// StartGamepadVibration implements the input.Platform interface.
func (b *Backend) StartGamepadVibration(_ input.PlatformID, _ float32, _ uint32) {}

// StopGamepadVibration implements the input.Platform interface.
func (b *Backend) StopGamepadVibration(_ input.PlatformID) {}
