package main

import (
	"fmt"
	"time"

	input "github.com/doingharm/go-input-bus"
	"github.com/doingharm/go-input-bus/logger"
	"github.com/doingharm/go-input-bus/recorder"
	"github.com/doingharm/go-input-bus/tcellinput"
	"github.com/gdamore/tcell/v2"
)

// vibration started by the vibrate key
const (
	vibrateStrength   = 0.75
	vibrateDurationMS = 250
)

type viewer struct {
	screen tcell.Screen
	ctx    *input.Context
	kb     *tcellinput.Backend
	back   *backend

	// update replaces ctx.Update() when recording or playing back
	update func() (int, error)

	// describes the recording or playback
	mode func() string
}

func (v *viewer) setRecorder(rec *recorder.Recorder) {
	v.update = func() (int, error) {
		return rec.Update(v.ctx)
	}
	v.mode = func() string {
		return fmt.Sprintf("recording %d", rec.Frames())
	}
}

func (v *viewer) setPlayback(plb *recorder.Playback) {
	v.update = func() (int, error) {
		return plb.Update(v.ctx), nil
	}
	v.mode = func() string {
		if plb.EndFrame() {
			return "playback ended"
		}
		return fmt.Sprintf("playback %s", plb)
	}
}

func (v *viewer) run(interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go v.screen.ChannelEvents(events, quit)
	defer close(quit)

	for {
		select {
		case ev, ok := <-events:
			if !ok || !v.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			running, err := v.frame(now)
			if err != nil || !running {
				return err
			}
		}
	}
}

// handleEvent returns false if the viewer should quit.
func (v *viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		// the quit keys never reach the context so that a playback can be
		// stopped
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		v.kb.HandleEvent(ev)

	case *tcell.EventResize:
		v.screen.Sync()
	}

	return true
}

// frame runs a single frame of the viewer. returns false if the viewer should
// quit.
func (v *viewer) frame(now time.Time) (bool, error) {
	v.kb.Expire(now)

	if !v.back.poll() {
		return false, nil
	}

	if v.update != nil {
		if _, err := v.update(); err != nil {
			return false, err
		}
	} else {
		v.ctx.Update()
	}

	if v.ctx.IsKeyPressed(input.KeyV) {
		v.vibrate()
	}

	status := fmt.Sprintf("backend %s", v.back.name)
	if v.mode != nil {
		status = fmt.Sprintf("%s  %s", status, v.mode())
	}
	draw(v.screen, v.ctx, status)

	return true, nil
}

func (v *viewer) vibrate() {
	for _, i := range v.ctx.ConnectedGamepads() {
		if !v.ctx.IsGamepadVibrationSupported(i) {
			logger.Logf("inputview", "gamepad #%d cannot vibrate", i)
			continue
		}
		v.ctx.StartGamepadVibration(i, vibrateStrength, vibrateDurationMS)
	}
}
