package input

import "iter"

// keyboardState has the same double buffering as GamepadState. There is only
// ever one keyboard and it is always connected.
type keyboardState struct {
	current  keySet
	previous keySet
}

func (kb *keyboardState) setKeyDown(k Key) {
	kb.current.insert(k)
}

func (kb *keyboardState) setKeyUp(k Key) {
	kb.current.remove(k)
}

func (kb *keyboardState) beginFrame() {
	kb.previous = kb.current
}

// IsKeyDown returns true if the key is currently down.
func (ctx *Context) IsKeyDown(k Key) bool {
	return ctx.keyboard.current.has(k)
}

// IsKeyUp returns true if the key is currently up.
func (ctx *Context) IsKeyUp(k Key) bool {
	return !ctx.keyboard.current.has(k)
}

// IsKeyPressed returns true if the key went down this frame.
func (ctx *Context) IsKeyPressed(k Key) bool {
	return !ctx.keyboard.previous.has(k) && ctx.keyboard.current.has(k)
}

// IsKeyReleased returns true if the key went up this frame.
func (ctx *Context) IsKeyReleased(k Key) bool {
	return ctx.keyboard.previous.has(k) && !ctx.keyboard.current.has(k)
}

// KeysDown returns a sequence of the keys that are currently down.
func (ctx *Context) KeysDown() iter.Seq[Key] {
	return ctx.keyboard.current.all()
}

// KeysPressed returns a sequence of the keys that went down this frame.
func (ctx *Context) KeysPressed() iter.Seq[Key] {
	return ctx.keyboard.current.difference(&ctx.keyboard.previous)
}

// KeysReleased returns a sequence of the keys that went up this frame.
func (ctx *Context) KeysReleased() iter.Seq[Key] {
	return ctx.keyboard.previous.difference(&ctx.keyboard.current)
}

// IsKeyModifierDown returns true if either of the modifier's keys is down.
func (ctx *Context) IsKeyModifierDown(m KeyModifier) bool {
	left, right := m.Keys()
	return ctx.IsKeyDown(left) || ctx.IsKeyDown(right)
}

// IsKeyModifierUp returns true if both of the modifier's keys are up.
func (ctx *Context) IsKeyModifierUp(m KeyModifier) bool {
	return !ctx.IsKeyModifierDown(m)
}
