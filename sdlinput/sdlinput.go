// Package sdlinput captures the keyboard and game controllers through SDL2.
//
// SDL events must be handled on the goroutine that initialised SDL, which is
// usually the main thread. The frame loop calls Poll() once per frame, before
// input.Context.Update(), or passes each event to HandleEvent() if it already
// runs its own SDL event loop.
//
// The Backend implements input.Platform. Controllers with a rumble capable
// haptic device support vibration.
package sdlinput

import (
	"sync"

	input "github.com/doingharm/go-input-bus"
	"github.com/doingharm/go-input-bus/logger"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

// SDL_HAPTIC_INFINITY
const hapticInfinity uint32 = 4294967295

// Config for the Backend.
type Config struct {
	// SDL subsystems started by New() and stopped by Close(). Zero if the
	// program has started the subsystems itself.
	Subsystems uint32

	// capture keyboard events as well as controller events
	Keyboard bool

	// SDL reports the triggers only as axes. a trigger button event is
	// generated when the trigger axis crosses this value. zero or less
	// disables the trigger buttons
	TriggerThreshold float32
}

// DefaultConfig starts every subsystem the backend needs and captures the
// keyboard.
func DefaultConfig() Config {
	return Config{
		Subsystems:       sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER | sdl.INIT_HAPTIC,
		Keyboard:         true,
		TriggerThreshold: 0.5,
	}
}

type controller struct {
	gc     *sdl.GameController
	haptic *sdl.Haptic
	name   string
}

// Backend translates SDL events and pushes them to the queue.
type Backend struct {
	cfg   Config
	queue input.Pusher

	// the platform functions may be called from a different goroutine to the
	// one polling events
	crit        sync.Mutex
	controllers map[sdl.JoystickID]*controller

	// trigger buttons that are down. only used by the polling goroutine
	triggers map[sdl.JoystickID]*[2]bool
}

// New starts the SDL subsystems named in the Config. Controllers that are
// already connected are reported by SDL as added events on the first Poll().
func New(cfg Config, queue input.Pusher) (*Backend, error) {
	if cfg.Subsystems != 0 {
		if err := sdl.InitSubSystem(cfg.Subsystems); err != nil {
			return nil, errors.Wrap(err, "sdlinput")
		}
	}

	return &Backend{
		cfg:         cfg,
		queue:       queue,
		controllers: make(map[sdl.JoystickID]*controller),
		triggers:    make(map[sdl.JoystickID]*[2]bool),
	}, nil
}

// Close closes every open controller and stops the subsystems started by
// New().
func (b *Backend) Close() {
	b.crit.Lock()
	for id, c := range b.controllers {
		c.close()
		delete(b.controllers, id)
	}
	b.crit.Unlock()

	if b.cfg.Subsystems != 0 {
		sdl.QuitSubSystem(b.cfg.Subsystems)
	}
}

// Poll handles every pending SDL event. It returns false if SDL has been asked
// to quit.
func (b *Backend) Poll() bool {
	running := true
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if _, ok := ev.(*sdl.QuitEvent); ok {
			running = false
			continue
		}
		b.HandleEvent(ev)
	}
	return running
}

// HandleEvent translates a single SDL event. It returns true if the event was
// an input event handled by the backend.
func (b *Backend) HandleEvent(ev sdl.Event) bool {
	switch ev := ev.(type) {
	case *sdl.KeyboardEvent:
		if !b.cfg.Keyboard {
			return false
		}

		// the key is already down
		if ev.Repeat != 0 {
			return true
		}

		k, ok := scancodes[int(ev.Keysym.Scancode)]
		if !ok {
			return true
		}
		if ev.Type == sdl.KEYDOWN {
			b.queue.Push(input.KeyDownEvent(k))
		} else {
			b.queue.Push(input.KeyUpEvent(k))
		}

	case *sdl.ControllerDeviceEvent:
		switch ev.Type {
		case sdl.CONTROLLERDEVICEADDED:
			// Which is the device index for added events
			b.open(int(ev.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			// and the instance ID for removed events
			b.remove(ev.Which)
		}

	case *sdl.ControllerButtonEvent:
		btn, ok := controllerButtons[int(ev.Button)]
		if !ok {
			return true
		}
		if ev.State == sdl.PRESSED {
			b.queue.Push(input.ButtonDown(input.PlatformID(ev.Which), btn))
		} else {
			b.queue.Push(input.ButtonUp(input.PlatformID(ev.Which), btn))
		}

	case *sdl.ControllerAxisEvent:
		a, ok := controllerAxes[int(ev.Axis)]
		if !ok {
			return true
		}
		v := normaliseAxis(ev.Value)
		b.queue.Push(input.Axis(input.PlatformID(ev.Which), a, v))

		switch a {
		case input.GamepadAxisLeftTrigger:
			b.triggerButton(ev.Which, 0, input.GamepadButtonLeftTrigger, v)
		case input.GamepadAxisRightTrigger:
			b.triggerButton(ev.Which, 1, input.GamepadButtonRightTrigger, v)
		}

	default:
		return false
	}

	return true
}

func (b *Backend) triggerButton(id sdl.JoystickID, i int, btn input.GamepadButton, v float32) {
	if b.cfg.TriggerThreshold <= 0 {
		return
	}

	t, ok := b.triggers[id]
	if !ok {
		t = &[2]bool{}
		b.triggers[id] = t
	}

	down := v >= b.cfg.TriggerThreshold
	if down == t[i] {
		return
	}
	t[i] = down

	if down {
		b.queue.Push(input.ButtonDown(input.PlatformID(id), btn))
	} else {
		b.queue.Push(input.ButtonUp(input.PlatformID(id), btn))
	}
}

func (b *Backend) open(index int) {
	gc := sdl.GameControllerOpen(index)
	if gc == nil {
		logger.Logf("sdlinput", "cannot open controller %d: %v", index, sdl.GetError())
		return
	}
	id := gc.Joystick().InstanceID()

	c := &controller{
		gc:   gc,
		name: gc.Name(),
	}

	if h, err := sdl.HapticOpenFromJoystick(gc.Joystick()); err == nil {
		if ok, err := h.RumbleSupported(); ok && err == nil && h.RumbleInit() == nil {
			c.haptic = h
		} else {
			h.Close()
		}
	}

	b.crit.Lock()
	if old, ok := b.controllers[id]; ok {
		old.close()
	}
	b.controllers[id] = c
	b.crit.Unlock()

	b.queue.Push(input.Connect(input.PlatformID(id)))
	logger.Logf("sdlinput", "%s connected as #%d (rumble %v)", c.name, id, c.haptic != nil)
}

func (b *Backend) remove(id sdl.JoystickID) {
	b.crit.Lock()
	c, ok := b.controllers[id]
	if ok {
		delete(b.controllers, id)
	}
	b.crit.Unlock()

	if !ok {
		return
	}

	c.close()
	delete(b.triggers, id)
	b.queue.Push(input.Disconnect(input.PlatformID(id)))
	logger.Logf("sdlinput", "%s disconnected (#%d)", c.name, id)
}

func (c *controller) close() {
	if c.haptic != nil {
		c.haptic.Close()
		c.haptic = nil
	}
	if c.gc != nil {
		c.gc.Close()
		c.gc = nil
	}
}

func (b *Backend) haptic(id input.PlatformID) *sdl.Haptic {
	if c, ok := b.controllers[sdl.JoystickID(id)]; ok {
		return c.haptic
	}
	return nil
}

// GamepadName implements the input.Platform interface.
func (b *Backend) GamepadName(id input.PlatformID) string {
	b.crit.Lock()
	defer b.crit.Unlock()
	if c, ok := b.controllers[sdl.JoystickID(id)]; ok {
		return c.name
	}
	return ""
}

// IsGamepadVibrationSupported implements the input.Platform interface.
func (b *Backend) IsGamepadVibrationSupported(id input.PlatformID) bool {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.haptic(id) != nil
}

// SetGamepadVibration implements the input.Platform interface.
func (b *Backend) SetGamepadVibration(id input.PlatformID, strength float32) {
	b.rumble(id, strength, hapticInfinity)
}

// StartGamepadVibration implements the input.Platform interface. SDL stops
// the effect once the duration has passed.
func (b *Backend) StartGamepadVibration(id input.PlatformID, strength float32, durationMS uint32) {
	b.rumble(id, strength, durationMS)
}

// StopGamepadVibration implements the input.Platform interface.
func (b *Backend) StopGamepadVibration(id input.PlatformID) {
	b.crit.Lock()
	defer b.crit.Unlock()
	if h := b.haptic(id); h != nil {
		if err := h.RumbleStop(); err != nil {
			logger.Logf("sdlinput", "#%d: %v", id, err)
		}
	}
}

func (b *Backend) rumble(id input.PlatformID, strength float32, length uint32) {
	b.crit.Lock()
	defer b.crit.Unlock()
	if h := b.haptic(id); h != nil {
		if err := h.RumblePlay(strength, length); err != nil {
			logger.Logf("sdlinput", "#%d: %v", id, err)
		}
	}
}
