// Package recorder writes the input events of every frame to a transcript and
// plays transcripts back.
//
// A Recorder and a Playback each replace the call to input.Context.Update()
// in the frame loop. The Recorder drains the context's queue, writes the
// events to the transcript and applies them. The Playback drains and discards
// the live events and applies the events recorded for the frame instead.
// Frames are counted from the first call to Update() so a transcript can be
// played back into any context.
//
// Platform IDs are written as they are. Gamepad names and vibration during
// playback are looked up with whatever platform the context has.
package recorder

import (
	"io"

	input "github.com/doingharm/go-input-bus"
	"github.com/pkg/errors"
)

// Recorder writes a transcript of input events.
type Recorder struct {
	output io.Writer

	// number of frames recorded
	frame int

	ended bool
}

// NewRecorder writes the transcript header to output. Closing output is the
// responsibility of the caller.
func NewRecorder(output io.Writer) (*Recorder, error) {
	if err := writeHeader(output); err != nil {
		return nil, err
	}
	return &Recorder{output: output}, nil
}

// Update starts a new frame in the context and applies and records every
// event in the queue. It returns the number of events.
func (rec *Recorder) Update(ctx *input.Context) (int, error) {
	ctx.BeginFrame()

	events := ctx.Queue().Drain()
	for _, e := range events {
		ctx.Apply(e)
	}

	return len(events), rec.Record(events)
}

// Record writes the events as the next frame of the transcript. Frames without
// events add nothing to the transcript but are still counted.
func (rec *Recorder) Record(events []input.Event) error {
	if rec.ended {
		return errors.Errorf(ErrRecorderEnded)
	}

	rec.frame++

	for _, e := range events {
		line := formatEntry(rec.frame, e) + "\n"
		n, err := io.WriteString(rec.output, line)
		if err != nil {
			rec.ended = true
			return errors.Wrap(err, ErrRecording)
		}
		if n != len(line) {
			rec.ended = true
			return errors.Errorf(ErrRecordingTruncated)
		}
	}

	return nil
}

// Frames returns the number of frames recorded.
func (rec *Recorder) Frames() int {
	return rec.frame
}

// End stops the recording. Calls to Record() after End() fail.
func (rec *Recorder) End() {
	rec.ended = true
}
