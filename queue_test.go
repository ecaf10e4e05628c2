package input

import (
	"fmt"
	"testing"

	"github.com/doingharm/go-input-bus/internal/test"
)

func TestQueueOrder(t *testing.T) {
	q := NewEventQueue()
	q.Push(KeyDownEvent(KeyA))
	q.Push(Connect(1))
	q.Push(ButtonDown(1, GamepadButtonB))
	q.Push(KeyUpEvent(KeyA))
	test.ExpectEquality(t, q.Len(), 4)

	l := q.Drain()
	test.ExpectEquality(t, fmt.Sprint(l), "[KeyDown A Connect #1 ButtonDown #1 B KeyUp A]")
	test.ExpectEquality(t, q.Len(), 0)

	// an empty queue drains to nothing
	test.ExpectEquality(t, len(q.Drain()), 0)
}

func TestQueueDeferral(t *testing.T) {
	q := NewEventQueue()
	q.Push(KeyDownEvent(KeyA))
	q.Push(KeyDownEvent(KeyB))

	// events pushed while a drain is running belong to the next drain
	var first []Event
	n := q.drain(func(e Event) {
		first = append(first, e)
		q.Push(KeyUpEvent(e.Data.(Key)))
	})
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, fmt.Sprint(first), "[KeyDown A KeyDown B]")
	test.ExpectEquality(t, q.Len(), 2)

	second := q.Drain()
	test.ExpectEquality(t, fmt.Sprint(second), "[KeyUp A KeyUp B]")

	// buffers are reused across drains without leaking old events
	q.Push(KeyDownEvent(KeyC))
	test.ExpectEquality(t, fmt.Sprint(q.Drain()), "[KeyDown C]")
}

func TestQueueFilters(t *testing.T) {
	q := NewEventQueue(GamepadEvents, AxisThreshold(0.1))
	q.Push(KeyDownEvent(KeyA))
	q.Push(Connect(2))
	q.Push(Axis(2, GamepadAxisLeftStickX, 0.05))
	q.Push(Axis(2, GamepadAxisLeftStickX, -0.05))
	q.Push(Axis(2, GamepadAxisLeftStickX, 0.5))
	q.Push(Axis(2, GamepadAxisLeftStickX, -0.1))
	q.Push(Axis(2, GamepadAxisLeftStickX, 0))
	q.Push(ButtonDown(2, GamepadButtonA))

	test.ExpectEquality(t, fmt.Sprint(q.Drain()),
		"[Connect #2 Axis #2 LeftStickX=0.5 Axis #2 LeftStickX=-0.1 Axis #2 LeftStickX=0 ButtonDown #2 A]")

	k := NewEventQueue(KeyboardEvents)
	k.Push(KeyDownEvent(KeyA))
	k.Push(Disconnect(2))
	test.ExpectEquality(t, fmt.Sprint(k.Drain()), "[KeyDown A]")
}

func TestQueueAsPusher(t *testing.T) {
	var p Pusher = NewEventQueue()
	p.Push(Connect(1))
	test.ExpectEquality(t, p.(*EventQueue).Len(), 1)
}

func TestQueueArrowKeys(t *testing.T) {
	q := NewEventQueue()
	q.Push(KeyDownEvent(KeyDown))
	q.Push(KeyDownEvent(KeyUp))
	q.Push(KeyUpEvent(KeyDown))
	q.Push(KeyUpEvent(KeyUp))
	test.ExpectEquality(t, fmt.Sprint(q.Drain()), "[KeyDown Down KeyDown Up KeyUp Down KeyUp Up]")
}
