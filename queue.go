package input

import (
	"sync"
)

// EventQueue is a first-in-first-out queue of input events. It is the only part
// of the package that is safe for concurrent use: any number of backends may
// Push from any goroutine while the frame loop drains it.
//
// The queue is double buffered. A drain swaps the pending buffer out under the
// lock and then hands the events over with the lock released, so events that
// arrive during a drain wait for the next frame.
type EventQueue struct {
	crit    sync.Mutex
	pending []Event

	// the buffer handed out by the previous drain. reused as the next pending
	// buffer to avoid allocating every frame
	spare []Event

	filters []FilterFunc
}

// NewEventQueue creates a new EventQueue. Events rejected by any of the filters
// are dropped when they are pushed.
func NewEventQueue(filters ...FilterFunc) *EventQueue {
	return &EventQueue{
		filters: filters,
	}
}

// Push adds an event to the back of the queue. It never blocks on the
// consumer.
func (q *EventQueue) Push(e Event) {
	for _, filter := range q.filters {
		if !filter(&e) {
			return
		}
	}

	q.crit.Lock()
	defer q.crit.Unlock()
	q.pending = append(q.pending, e)
}

// Len returns the number of events waiting to be drained.
func (q *EventQueue) Len() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return len(q.pending)
}

// drain calls f with every event that was in the queue at the moment of the
// call, in the order they were pushed. only the frame loop should call drain.
func (q *EventQueue) drain(f func(Event)) int {
	q.crit.Lock()
	batch := q.pending
	q.pending = q.spare[:0]
	q.crit.Unlock()

	for i := range batch {
		f(batch[i])
	}

	// clear references held in Data before the buffer is reused
	clear(batch)
	q.spare = batch[:0]

	return len(batch)
}

// Drain removes every event in the queue and returns them in the order they
// were pushed. Events are usually consumed by Context.DrainEvents() and Drain()
// is for users that want the raw events, for example a recorder.
func (q *EventQueue) Drain() []Event {
	var l []Event
	q.drain(func(e Event) {
		l = append(l, e)
	})
	return l
}
