package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	input "github.com/doingharm/go-input-bus"
	"github.com/doingharm/go-input-bus/internal/test"
	"github.com/doingharm/go-input-bus/recorder"
	"github.com/doingharm/go-input-bus/tcellinput"
	"github.com/gdamore/tcell/v2"
)

func newTestViewer(t *testing.T) *viewer {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	test.DemandSuccess(t, screen.Init())
	screen.SetSize(80, 25)
	t.Cleanup(screen.Fini)

	queue := input.NewEventQueue()
	back, err := newBackend(backendNone, queue)
	test.DemandSuccess(t, err)

	return &viewer{
		screen: screen,
		ctx:    input.NewContext(input.WithQueue(queue), input.WithPlatform(back.platform)),
		kb:     tcellinput.New(tcellinput.DefaultConfig(), queue),
		back:   back,
	}
}

// row returns the text on a line of the screen without trailing spaces.
func row(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var s strings.Builder
	for x := range w {
		r, _, _, _ := screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		s.WriteRune(r)
	}
	return strings.TrimRight(s.String(), " ")
}

func TestFrame(t *testing.T) {
	v := newTestViewer(t)

	test.ExpectSuccess(t, v.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)))
	test.ExpectSuccess(t, v.handleEvent(tcell.NewEventResize(80, 25)))
	v.ctx.Queue().Push(input.Connect(4))
	v.ctx.Queue().Push(input.ButtonDown(4, input.GamepadButtonB))

	running, err := v.frame(time.Now())
	test.ExpectSuccess(t, running)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, row(v.screen, 0), "inputview  frame 1  backend none")
	test.ExpectEquality(t, row(v.screen, 2), "keys     A")
	test.ExpectEquality(t, row(v.screen, 3), "pressed  A")
	test.ExpectEquality(t, row(v.screen, 6), "#0 unnamed gamepad")
	test.ExpectEquality(t, row(v.screen, 7), "  buttons  B")
	test.ExpectEquality(t, row(v.screen, 8), "  pressed  B")
	test.ExpectEquality(t, row(v.screen, 24), help)

	// the key is still held on the next frame but no longer pressed
	_, err = v.frame(time.Now())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, row(v.screen, 2), "keys     A")
	test.ExpectEquality(t, row(v.screen, 3), "pressed")

	// vibration is not supported by the backend
	test.ExpectSuccess(t, v.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'v', tcell.ModNone)))
	_, err = v.frame(time.Now())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, row(v.screen, 23), "inputview: gamepad #0 cannot vibrate")

	test.ExpectFailure(t, v.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	test.ExpectFailure(t, v.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
}

func TestFrameNoGamepads(t *testing.T) {
	v := newTestViewer(t)

	_, err := v.frame(time.Now())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, row(v.screen, 6), "no gamepads")
}

func TestFrameRecording(t *testing.T) {
	v := newTestViewer(t)

	var out bytes.Buffer
	rec, err := recorder.NewRecorder(&out)
	test.DemandSuccess(t, err)
	v.setRecorder(rec)

	v.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	_, err = v.frame(time.Now())
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, row(v.screen, 0), "inputview  frame 1  backend none  recording 1")
	test.ExpectEquality(t, row(v.screen, 2), "keys     Q")
	test.ExpectSuccess(t, strings.HasSuffix(out.String(), "\n1, KeyDown, 0, Q, -\n"))
}

func TestFramePlayback(t *testing.T) {
	v := newTestViewer(t)

	const transcript = "# go-input-bus transcript\n# version 1\n2, KeyDown, 0, W, -\n"
	plb, err := recorder.NewPlayback(strings.NewReader(transcript))
	test.DemandSuccess(t, err)
	v.setPlayback(plb)

	// live keys are ignored during playback
	v.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))

	_, err = v.frame(time.Now())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, row(v.screen, 0), "inputview  frame 1  backend none  playback 1/2 (50.0%)")
	test.ExpectEquality(t, row(v.screen, 2), "keys")

	_, err = v.frame(time.Now())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, row(v.screen, 0), "inputview  frame 2  backend none  playback ended")
	test.ExpectEquality(t, row(v.screen, 2), "keys     W")
}

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs(nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, opts.backend, backendLinux)
	test.ExpectEquality(t, opts.fps, 60)

	opts, err = parseArgs([]string{"-backend", "none", "-fps", "30", "-record", "out.txt"})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, opts.backend, backendNone)
	test.ExpectEquality(t, opts.fps, 30)
	test.ExpectEquality(t, opts.record, "out.txt")

	_, err = parseArgs([]string{"-fps", "0"})
	test.ExpectFailure(t, err)
	_, err = parseArgs([]string{"-record", "a", "-playback", "b"})
	test.ExpectFailure(t, err)
	_, err = parseArgs([]string{"extra"})
	test.ExpectFailure(t, err)
}

func TestUnknownBackend(t *testing.T) {
	_, err := newBackend("xinput", input.NewEventQueue())
	if test.ExpectFailure(t, err) {
		test.ExpectEquality(t, err.Error(), `unknown backend "xinput" (use linux, sdl or none)`)
	}
}
