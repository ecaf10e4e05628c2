package main

import (
	input "github.com/doingharm/go-input-bus"
	"github.com/doingharm/go-input-bus/joystick"
	"github.com/doingharm/go-input-bus/logger"
	"github.com/doingharm/go-input-bus/sdlinput"
	"github.com/pkg/errors"
)

// names of the gamepad backends that can be chosen on the command line.
const (
	backendLinux = "linux"
	backendSDL   = "sdl"
	backendNone  = "none"
)

// backend is the gamepad half of the viewer. the keyboard always comes from
// the terminal.
type backend struct {
	name     string
	platform input.Platform

	// poll is called once per frame before the context is updated. returns
	// false if the backend has been asked to quit
	poll func() bool

	close func() error
}

func newBackend(name string, queue input.Pusher) (*backend, error) {
	switch name {
	case backendLinux:
		bus, errCh, err := joystick.New(joystick.DefaultConfig(), queue)
		if err != nil {
			return nil, err
		}

		// errors from the bus arrive until the bus is closed
		go func() {
			for err := range errCh {
				logger.Log("joystick", err.Error())
			}
		}()

		return &backend{
			name:     name,
			platform: bus,
			poll:     func() bool { return true },
			close:    bus.Close,
		}, nil

	case backendSDL:
		cfg := sdlinput.DefaultConfig()

		// SDL only sees the keyboard of its own windows
		cfg.Keyboard = false

		b, err := sdlinput.New(cfg, queue)
		if err != nil {
			return nil, err
		}

		return &backend{
			name:     name,
			platform: b,
			poll:     b.Poll,
			close: func() error {
				b.Close()
				return nil
			},
		}, nil

	case backendNone:
		return &backend{
			name:     name,
			platform: input.NopPlatform{},
			poll:     func() bool { return true },
			close:    func() error { return nil },
		}, nil
	}

	return nil, errors.Errorf("unknown backend %q (use %s, %s or %s)", name, backendLinux, backendSDL, backendNone)
}
