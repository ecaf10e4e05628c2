// Package tcellinput captures the keyboard of a terminal through tcell.
//
// Terminals report key presses, and repeats of held keys, but never report
// a key being released. The Backend pushes a key down event for the first
// press and treats the key as held until no press or repeat has been seen for
// the hold time. Expire() pushes the key up events for keys whose hold time
// has run out and should be called once per frame before
// input.Context.Update().
package tcellinput

import (
	"sync"
	"time"

	input "github.com/doingharm/go-input-bus"
	"github.com/gdamore/tcell/v2"
)

// Config for the Backend.
type Config struct {
	// how long a key is held after the last press or repeat. should be longer
	// than the terminal's key repeat delay or a held key will flicker
	HoldTime time.Duration
}

// DefaultConfig suits the common key repeat delay of 500ms.
func DefaultConfig() Config {
	return Config{
		HoldTime: 600 * time.Millisecond,
	}
}

// Backend translates terminal key events and pushes them to the queue.
type Backend struct {
	cfg   Config
	queue input.Pusher

	crit sync.Mutex

	// release deadline of each held key
	held map[input.Key]time.Time
}

// New is the preferred method of initialisation for the Backend type.
func New(cfg Config, queue input.Pusher) *Backend {
	return &Backend{
		cfg:   cfg,
		queue: queue,
		held:  make(map[input.Key]time.Time),
	}
}

// HandleEvent handles a single event returned by tcell.Screen.PollEvent(). It
// returns true if the event was a key event.
func (b *Backend) HandleEvent(ev tcell.Event) bool {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	b.press(translate(kev.Key(), kev.Rune(), kev.Modifiers()), kev.When())
	return true
}

func (b *Backend) press(keys []input.Key, now time.Time) {
	b.crit.Lock()
	defer b.crit.Unlock()

	deadline := now.Add(b.cfg.HoldTime)
	for _, k := range keys {
		if _, ok := b.held[k]; !ok {
			b.queue.Push(input.KeyDownEvent(k))
		}
		b.held[k] = deadline
	}
}

// Expire pushes a key up event for every key whose hold time has run out.
func (b *Backend) Expire(now time.Time) {
	b.crit.Lock()
	defer b.crit.Unlock()

	for _, k := range input.Keys() {
		deadline, ok := b.held[k]
		if ok && !now.Before(deadline) {
			delete(b.held, k)
			b.queue.Push(input.KeyUpEvent(k))
		}
	}
}

// ReleaseAll pushes a key up event for every held key.
func (b *Backend) ReleaseAll() {
	b.crit.Lock()
	defer b.crit.Unlock()

	for _, k := range input.Keys() {
		if _, ok := b.held[k]; ok {
			delete(b.held, k)
			b.queue.Push(input.KeyUpEvent(k))
		}
	}
}

// Held returns the number of keys currently considered held.
func (b *Backend) Held() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	return len(b.held)
}
