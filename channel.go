package input

// Pusher is the append side of an event queue. Platform backends are handed a
// Pusher and never see the rest of the input state.
type Pusher interface {
	Push(e Event)
}

// FilterFunc is a function type used to filter events before they are queued.
// An event is queued only if every filter returns true.
type FilterFunc func(e *Event) bool

// KeyboardEvents accepts only key events.
func KeyboardEvents(e *Event) bool {
	return e.Type == KeyDownEventType || e.Type == KeyUpEventType
}

// GamepadEvents accepts only gamepad events, including connection changes.
func GamepadEvents(e *Event) bool {
	return !KeyboardEvents(e)
}

// AxisThreshold returns a filter that drops axis events whose magnitude is
// below the threshold. An axis returning to exactly zero is always queued so
// that the stored position is not left stuck off-centre.
func AxisThreshold(threshold float32) FilterFunc {
	return func(e *Event) bool {
		if e.Type != AxisEventType {
			return true
		}
		m, ok := e.Data.(AxisMotion)
		if !ok {
			return false
		}
		if m.Value == 0 {
			return true
		}
		return m.Value >= threshold || m.Value <= -threshold
	}
}
