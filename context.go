package input

import (
	"github.com/doingharm/go-input-bus/logger"
)

// Context holds the keyboard and gamepad state of a program. It is owned by
// the frame loop and must not be used concurrently. The only concurrent entry
// point is the EventQueue returned by Queue().
//
// Once per frame the loop calls Update(), or BeginFrame() followed by
// DrainEvents(). The queries then see the same state for the rest of the
// frame.
type Context struct {
	queue    *EventQueue
	platform Platform

	pads     registry
	keyboard keyboardState

	// slot index of each connected platform device
	bindings map[PlatformID]int

	frame uint64
}

// Option configures a Context.
type Option func(ctx *Context)

// WithPlatform sets the Platform used for gamepad names and vibration. The
// default is NopPlatform.
func WithPlatform(p Platform) Option {
	return func(ctx *Context) {
		if p != nil {
			ctx.platform = p
		}
	}
}

// WithQueue sets the EventQueue drained by the context. By default a new,
// unfiltered, queue is created.
func WithQueue(q *EventQueue) Option {
	return func(ctx *Context) {
		if q != nil {
			ctx.queue = q
		}
	}
}

// NewContext is the preferred method of initialisation for the Context type.
func NewContext(opts ...Option) *Context {
	ctx := &Context{
		platform: NopPlatform{},
		bindings: make(map[PlatformID]int),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	if ctx.queue == nil {
		ctx.queue = NewEventQueue()
	}
	return ctx
}

// Queue returns the queue that backends should push events to.
func (ctx *Context) Queue() *EventQueue {
	return ctx.queue
}

// Platform returns the platform collaborator.
func (ctx *Context) Platform() Platform {
	return ctx.platform
}

// Frame returns the number of times BeginFrame() has been called.
func (ctx *Context) Frame() uint64 {
	return ctx.frame
}

// BeginFrame marks the boundary between two frames. The state at the end of
// the previous frame becomes the previous state for every connected gamepad
// and for the keyboard.
//
// BeginFrame must be called before the frame's events are drained. Swapping
// after the drain would report presses a frame late; swapping part way through
// the drain would split the frame's events across two frames.
func (ctx *Context) BeginFrame() {
	ctx.frame++
	ctx.keyboard.beginFrame()
	ctx.pads.connected(func(_ int, pad *GamepadState) {
		pad.beginFrame()
	})
}

// DrainEvents applies every event in the queue, in the order they were
// pushed. Events pushed while the drain is in progress are left for the next
// frame. Returns the number of events drained.
func (ctx *Context) DrainEvents() int {
	return ctx.queue.drain(ctx.apply)
}

// Update is BeginFrame() followed by DrainEvents().
func (ctx *Context) Update() int {
	ctx.BeginFrame()
	return ctx.DrainEvents()
}

// Apply applies a single event immediately, bypassing the queue. It is for
// tests and for programs that do their own queueing.
func (ctx *Context) Apply(e Event) {
	ctx.apply(e)
}

func (ctx *Context) apply(e Event) {
	switch e.Type {
	case KeyDownEventType:
		if k, ok := e.Data.(Key); ok {
			ctx.keyboard.setKeyDown(k)
		}

	case KeyUpEventType:
		if k, ok := e.Data.(Key); ok {
			ctx.keyboard.setKeyUp(k)
		}

	case ConnectEventType:
		idx := ctx.AddGamepad(e.ID)
		logger.Logf("input", "gamepad #%d connected to slot %d", e.ID, idx)

	case DisconnectEventType:
		if idx, ok := ctx.bindings[e.ID]; ok {
			ctx.RemoveGamepad(idx)
			logger.Logf("input", "gamepad #%d disconnected from slot %d", e.ID, idx)
		}

	case ButtonDownEventType, ButtonUpEventType, AxisEventType:
		pad := ctx.boundGamepad(e.ID)
		if pad == nil {
			logger.Logf("input", "dropped %s event for unbound gamepad #%d", e.Type, e.ID)
			return
		}

		switch d := e.Data.(type) {
		case GamepadButton:
			if e.Type == ButtonDownEventType {
				pad.setButtonDown(d)
			} else if e.Type == ButtonUpEventType {
				pad.setButtonUp(d)
			}
		case AxisMotion:
			if e.Type == AxisEventType {
				pad.setAxisPosition(d.Axis, d.Value)
			}
		}
	}
}

func (ctx *Context) boundGamepad(id PlatformID) *GamepadState {
	idx, ok := ctx.bindings[id]
	if !ok {
		return nil
	}
	return ctx.pads.get(idx)
}

// AddGamepad adds a gamepad to the lowest free slot and returns the slot
// index. The index stays the same until the gamepad is removed.
//
// Adding a platform ID that is already connected replaces the existing state
// in the same slot.
func (ctx *Context) AddGamepad(id PlatformID) int {
	if idx, ok := ctx.bindings[id]; ok && ctx.pads.get(idx) != nil {
		ctx.pads.slots[idx] = newGamepadState(id)
		return idx
	}
	idx := ctx.pads.add(id)
	ctx.bindings[id] = idx
	return idx
}

// RemoveGamepad empties the slot. Removing an empty slot is allowed and does
// nothing.
func (ctx *Context) RemoveGamepad(index int) {
	pad := ctx.pads.get(index)
	if pad == nil {
		return
	}
	if idx, ok := ctx.bindings[pad.platformID]; ok && idx == index {
		delete(ctx.bindings, pad.platformID)
	}
	ctx.pads.remove(index)
}

// GamepadIndex returns the slot of the connected gamepad with the platform ID.
func (ctx *Context) GamepadIndex(id PlatformID) (int, bool) {
	idx, ok := ctx.bindings[id]
	if !ok || ctx.pads.get(idx) == nil {
		return -1, false
	}
	return idx, true
}

// ConnectedGamepads returns the slot indexes of all connected gamepads in
// ascending order.
func (ctx *Context) ConnectedGamepads() []int {
	var l []int
	ctx.pads.connected(func(i int, _ *GamepadState) {
		l = append(l, i)
	})
	return l
}
