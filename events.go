package input

import "fmt"

// PlatformID is the identifier a platform backend uses for a physical device.
// It is opaque: the core hands it back to the platform unchanged and never
// interprets it.
type PlatformID int32

// EventType identifies the kind of Event.
type EventType uint8

const (
	KeyDownEventType EventType = iota
	KeyUpEventType
	ButtonDownEventType
	ButtonUpEventType
	AxisEventType
	ConnectEventType
	DisconnectEventType
)

func (t EventType) String() string {
	switch t {
	case KeyDownEventType:
		return "KeyDown"
	case KeyUpEventType:
		return "KeyUp"
	case ButtonDownEventType:
		return "ButtonDown"
	case ButtonUpEventType:
		return "ButtonUp"
	case AxisEventType:
		return "Axis"
	case ConnectEventType:
		return "Connect"
	case DisconnectEventType:
		return "Disconnect"
	}
	return fmt.Sprintf("EventType(%d)", uint8(t))
}

// Event is a single change of state observed by a platform backend. Data is
// already translated into the package vocabulary:
//
//	KeyDownEventType, KeyUpEventType       Key
//	ButtonDownEventType, ButtonUpEventType GamepadButton
//	AxisEventType                          AxisMotion
//	ConnectEventType, DisconnectEventType  nil
//
// ID is the platform identifier of the gamepad and is ignored for keyboard
// events.
type Event struct {
	Type EventType
	ID   PlatformID
	Data any
}

func (e Event) String() string {
	switch e.Type {
	case KeyDownEventType, KeyUpEventType:
		return fmt.Sprintf("%s %v", e.Type, e.Data)
	case ConnectEventType, DisconnectEventType:
		return fmt.Sprintf("%s #%d", e.Type, e.ID)
	}
	return fmt.Sprintf("%s #%d %v", e.Type, e.ID, e.Data)
}

// AxisMotion is the payload of an AxisEventType event. Value is in whatever
// range the backend reports; the core does not normalise it.
type AxisMotion struct {
	Axis  GamepadAxis
	Value float32
}

func (m AxisMotion) String() string {
	return fmt.Sprintf("%s=%g", m.Axis, m.Value)
}

// KeyDownEvent returns a KeyDownEventType event.
func KeyDownEvent(k Key) Event {
	return Event{Type: KeyDownEventType, Data: k}
}

// KeyUpEvent returns a KeyUpEventType event.
func KeyUpEvent(k Key) Event {
	return Event{Type: KeyUpEventType, Data: k}
}

// ButtonDown returns a ButtonDownEventType event for the gamepad.
func ButtonDown(id PlatformID, b GamepadButton) Event {
	return Event{Type: ButtonDownEventType, ID: id, Data: b}
}

// ButtonUp returns a ButtonUpEventType event for the gamepad.
func ButtonUp(id PlatformID, b GamepadButton) Event {
	return Event{Type: ButtonUpEventType, ID: id, Data: b}
}

// Axis returns an AxisEventType event for the gamepad.
func Axis(id PlatformID, a GamepadAxis, v float32) Event {
	return Event{Type: AxisEventType, ID: id, Data: AxisMotion{Axis: a, Value: v}}
}

// Connect returns a ConnectEventType event for the gamepad.
func Connect(id PlatformID) Event {
	return Event{Type: ConnectEventType, ID: id}
}

// Disconnect returns a DisconnectEventType event for the gamepad.
func Disconnect(id PlatformID) Event {
	return Event{Type: DisconnectEventType, ID: id}
}
