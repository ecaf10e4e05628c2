//go:build js && wasm

package web

import (
	"sync"
	"syscall/js"

	input "github.com/doingharm/go-input-bus"
	"github.com/doingharm/go-input-bus/logger"
)

// Capture listens for key events on the document and pushes them to the
// queue. Browsers offer no way of naming or vibrating a gamepad through key
// events so Capture implements input.Platform with input.NopPlatform.
type Capture struct {
	input.NopPlatform

	queue input.Pusher

	crit     sync.Mutex
	target   js.Value
	keydown  js.Func
	keyup    js.Func
	released bool
}

// NewCapture adds the keydown and keyup listeners to the document.
func NewCapture(queue input.Pusher) *Capture {
	c := &Capture{
		queue:  queue,
		target: js.Global().Get("document"),
	}

	c.keydown = js.FuncOf(func(_ js.Value, args []js.Value) any {
		c.handle(args, true)
		return nil
	})
	c.keyup = js.FuncOf(func(_ js.Value, args []js.Value) any {
		c.handle(args, false)
		return nil
	})

	c.target.Call("addEventListener", "keydown", c.keydown)
	c.target.Call("addEventListener", "keyup", c.keyup)

	return c
}

func (c *Capture) handle(args []js.Value, down bool) {
	if len(args) == 0 {
		return
	}
	ev := args[0]

	// the key is already down
	if down && ev.Get("repeat").Bool() {
		return
	}

	key := ev.Get("key").String()
	k, ok := TranslateKey(key, ev.Get("location").Int())
	if !ok {
		logger.Logf("web", "unmapped key %q", key)
		return
	}

	if down {
		c.queue.Push(input.KeyDownEvent(k))
	} else {
		c.queue.Push(input.KeyUpEvent(k))
	}
}

// Release removes the listeners from the document and frees the callbacks.
// It is safe to call more than once.
func (c *Capture) Release() {
	c.crit.Lock()
	defer c.crit.Unlock()

	if c.released {
		return
	}
	c.released = true

	c.target.Call("removeEventListener", "keydown", c.keydown)
	c.target.Call("removeEventListener", "keyup", c.keyup)
	c.keydown.Release()
	c.keyup.Release()
}
