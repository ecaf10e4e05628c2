package recorder

import (
	"fmt"
	"io"
	"os"
	"strings"

	input "github.com/doingharm/go-input-bus"
	"github.com/pkg/errors"
)

type playbackEntry struct {
	frame int
	event input.Event

	// the line in the transcript the entry appears
	line int
}

// Playback applies the events of a previously recorded transcript.
type Playback struct {
	sequence []playbackEntry
	seqCt    int

	// number of frames played
	frame int

	// the last frame where an event occurs
	endFrame int
}

func (plb Playback) String() string {
	if plb.endFrame == 0 {
		return fmt.Sprintf("%d/0", plb.frame)
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", plb.frame, plb.endFrame, 100*(float64(plb.frame)/float64(plb.endFrame)))
}

// LoadPlayback reads the transcript in the named file.
func LoadPlayback(transcript string) (*Playback, error) {
	f, err := os.Open(transcript)
	if err != nil {
		return nil, errors.Wrap(err, ErrPlayback)
	}
	defer f.Close()
	return NewPlayback(f)
}

// NewPlayback is the preferred method of initialisation for the Playback type.
// The whole transcript is read and checked before NewPlayback returns.
func NewPlayback(transcript io.Reader) (*Playback, error) {
	buffer, err := io.ReadAll(transcript)
	if err != nil {
		return nil, errors.Wrap(err, ErrPlayback)
	}

	// convert file contents to an array of lines
	lines := strings.Split(strings.ReplaceAll(string(buffer), "\r\n", "\n"), "\n")

	if err := readHeader(lines); err != nil {
		return nil, err
	}

	plb := &Playback{}

	for i := numHeaderLines; i < len(lines); i++ {
		// blank lines, including the one following the final newline, are
		// ignored
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}

		frame, e, err := parseEntry(lines[i], i+1)
		if err != nil {
			return nil, err
		}

		// entries must be in frame order
		if frame < plb.endFrame {
			return nil, errors.Errorf(ErrFrameOrder, frame, plb.endFrame, i+1)
		}
		plb.endFrame = frame

		plb.sequence = append(plb.sequence, playbackEntry{
			frame: frame,
			event: e,
			line:  i + 1,
		})
	}

	return plb, nil
}

// Update starts a new frame in the context and applies the events recorded
// for the frame. Events pushed to the context's queue since the previous
// frame are discarded. It returns the number of events applied.
func (plb *Playback) Update(ctx *input.Context) int {
	ctx.BeginFrame()
	ctx.Queue().Drain()

	events := plb.Next()
	for _, e := range events {
		ctx.Apply(e)
	}
	return len(events)
}

// Next advances the playback by one frame and returns the events recorded for
// that frame.
func (plb *Playback) Next() []input.Event {
	plb.frame++

	var events []input.Event
	for plb.seqCt < len(plb.sequence) && plb.sequence[plb.seqCt].frame <= plb.frame {
		events = append(events, plb.sequence[plb.seqCt].event)
		plb.seqCt++
	}
	return events
}

// EndFrame returns true once the playback has reached the last frame with
// events.
func (plb *Playback) EndFrame() bool {
	return plb.frame >= plb.endFrame
}

// Len returns the number of events in the transcript.
func (plb *Playback) Len() int {
	return len(plb.sequence)
}
