package recorder_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	input "github.com/doingharm/go-input-bus"
	"github.com/doingharm/go-input-bus/internal/test"
	"github.com/doingharm/go-input-bus/recorder"
)

const transcript = `# go-input-bus transcript
# version 1
1, Connect, 7, -, -
1, KeyDown, 0, A, -
2, ButtonDown, 7, A, -
2, Axis, 7, LeftStickX, 0.25
4, KeyUp, 0, A, -
`

// frames of events recorded by the tests. the third frame is empty
var frames = [][]input.Event{
	{input.Connect(7), input.KeyDownEvent(input.KeyA)},
	{input.ButtonDown(7, input.GamepadButtonA), input.Axis(7, input.GamepadAxisLeftStickX, 0.25)},
	{},
	{input.KeyUpEvent(input.KeyA)},
}

func TestRecord(t *testing.T) {
	var out bytes.Buffer
	rec, err := recorder.NewRecorder(&out)
	test.DemandSuccess(t, err)

	ctx := input.NewContext()
	for _, events := range frames {
		for _, e := range events {
			ctx.Queue().Push(e)
		}
		n, err := rec.Update(ctx)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, n, len(events))
	}

	test.ExpectEquality(t, out.String(), transcript)
	test.ExpectEquality(t, rec.Frames(), 4)

	// the recorder applies the events as it records them
	test.ExpectSuccess(t, ctx.IsKeyReleased(input.KeyA))
	test.ExpectSuccess(t, ctx.IsGamepadButtonDown(0, input.GamepadButtonA))

	rec.End()
	test.ExpectFailure(t, rec.Record(nil))
}

func TestPlayback(t *testing.T) {
	plb, err := recorder.NewPlayback(strings.NewReader(transcript))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.Len(), 5)

	ctx := input.NewContext()

	// live events are ignored during playback
	ctx.Queue().Push(input.KeyDownEvent(input.KeyB))

	test.ExpectEquality(t, plb.Update(ctx), 2)
	test.ExpectSuccess(t, ctx.IsGamepadConnected(0))
	test.ExpectSuccess(t, ctx.IsKeyPressed(input.KeyA))
	test.ExpectFailure(t, ctx.IsKeyDown(input.KeyB))
	test.ExpectFailure(t, plb.EndFrame())

	test.ExpectEquality(t, plb.Update(ctx), 2)
	test.ExpectSuccess(t, ctx.IsGamepadButtonPressed(0, input.GamepadButtonA))
	test.ExpectEquality(t, ctx.GamepadAxisPosition(0, input.GamepadAxisLeftStickX), 0.25)
	test.ExpectEquality(t, plb.String(), "2/4 (50.0%)")

	test.ExpectEquality(t, plb.Update(ctx), 0)
	test.ExpectSuccess(t, ctx.IsKeyDown(input.KeyA))
	test.ExpectFailure(t, ctx.IsKeyPressed(input.KeyA))

	test.ExpectEquality(t, plb.Update(ctx), 1)
	test.ExpectSuccess(t, ctx.IsKeyReleased(input.KeyA))
	test.ExpectSuccess(t, plb.EndFrame())

	test.ExpectEquality(t, plb.Update(ctx), 0)
	test.ExpectSuccess(t, ctx.IsGamepadButtonDown(0, input.GamepadButtonA))
}

// a transcript played back through a recorder produces the same transcript
func TestRecordPlayback(t *testing.T) {
	plb, err := recorder.NewPlayback(strings.NewReader(transcript))
	test.DemandSuccess(t, err)

	var out bytes.Buffer
	rec, err := recorder.NewRecorder(&out)
	test.DemandSuccess(t, err)

	for !plb.EndFrame() {
		test.ExpectSuccess(t, rec.Record(plb.Next()))
	}

	test.ExpectEquality(t, out.String(), transcript)
}

func TestLoadPlayback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript")
	test.DemandSuccess(t, os.WriteFile(path, []byte(strings.ReplaceAll(transcript, "\n", "\r\n")), 0o600))

	plb, err := recorder.LoadPlayback(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.Len(), 5)

	_, err = recorder.LoadPlayback(filepath.Join(t.TempDir(), "missing"))
	test.ExpectFailure(t, err)
}

func TestPlaybackErrors(t *testing.T) {
	const header = "# go-input-bus transcript\n# version 1\n"

	tests := []struct {
		name       string
		transcript string
		expected   string
	}{
		{"empty", "", "playback: not a transcript"},
		{"not a transcript", "hello\nworld\n", "playback: not a transcript"},
		{"version", "# go-input-bus transcript\n# version 2\n", "playback: unsupported transcript version 2"},
		{"field count", header + "1, KeyDown, 0, A\n", "playback: expected 5 fields at line 3"},
		{"frame", header + "x, KeyDown, 0, A, -\n", "playback: bad frame field at line 3, col 1"},
		{"zero frame", header + "0, KeyDown, 0, A, -\n", "playback: bad frame field at line 3, col 1"},
		{"event", header + "1, KeyPress, 0, A, -\n", "playback: bad event field at line 3, col 4"},
		{"id", header + "1, Connect, x, -, -\n", "playback: bad id field at line 3, col 13"},
		{"key", header + "1, KeyDown, 0, Meta, -\n", "playback: bad key field at line 3, col 16"},
		{"button", header + "1, ButtonUp, 3, C, -\n", "playback: bad button field at line 3, col 17"},
		{"axis", header + "1, Axis, 3, Wheel, 0\n", "playback: bad axis field at line 3, col 13"},
		{"value", header + "1, Axis, 3, LeftStickY, -\n", "playback: bad value field at line 3, col 25"},
		{"order", header + "2, KeyDown, 0, A, -\n1, KeyUp, 0, A, -\n", "playback: frame 1 follows frame 2 at line 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := recorder.NewPlayback(strings.NewReader(tt.transcript))
			if test.ExpectFailure(t, err) {
				test.ExpectEquality(t, err.Error(), tt.expected)
			}
		})
	}
}
