package recorder

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	input "github.com/doingharm/go-input-bus"
	"github.com/pkg/errors"
)

// transcript entry format
// -----------------------
//
// <frame>, <event type>, <platform id>, <data>, <value>
//
// data is the key, button or axis name and value is the axis value. fields
// that do not apply to the event type are "-". the platform id of keyboard
// events is always zero.
const (
	fieldFrame int = iota
	fieldEvent
	fieldID
	fieldData
	fieldValue
	numFields
)

const fieldSep = ", "

const noData = "-"

// transcript header format
// ------------------------
//
// # go-input-bus transcript
// # version <n>

const (
	lineMagic int = iota
	lineVersion
	numHeaderLines
)

const (
	headerPrefix = "# "
	magic        = "go-input-bus transcript"
	version      = 1
)

func writeHeader(output io.Writer) error {
	lines := make([]string, numHeaderLines)
	lines[lineMagic] = headerPrefix + magic
	lines[lineVersion] = fmt.Sprintf("%sversion %d", headerPrefix, version)

	line := strings.Join(lines, "\n") + "\n"
	n, err := io.WriteString(output, line)
	if err != nil {
		return errors.Wrap(err, ErrRecording)
	}
	if n != len(line) {
		return errors.Errorf(ErrRecordingTruncated)
	}
	return nil
}

func readHeader(lines []string) error {
	if len(lines) < numHeaderLines {
		return errors.Errorf(ErrHeader)
	}
	if lines[lineMagic] != headerPrefix+magic {
		return errors.Errorf(ErrHeader)
	}

	var v int
	if _, err := fmt.Sscanf(lines[lineVersion], headerPrefix+"version %d", &v); err != nil {
		return errors.Errorf(ErrHeader)
	}
	if v != version {
		return errors.Errorf(ErrVersion, v)
	}
	return nil
}

func formatEntry(frame int, e input.Event) string {
	fields := make([]string, numFields)
	fields[fieldFrame] = strconv.Itoa(frame)
	fields[fieldEvent] = e.Type.String()
	fields[fieldID] = strconv.Itoa(int(e.ID))
	fields[fieldData] = noData
	fields[fieldValue] = noData

	switch d := e.Data.(type) {
	case input.Key:
		fields[fieldData] = d.String()
	case input.GamepadButton:
		fields[fieldData] = d.String()
	case input.AxisMotion:
		fields[fieldData] = d.Axis.String()
		fields[fieldValue] = strconv.FormatFloat(float64(d.Value), 'g', -1, 32)
	}

	return strings.Join(fields, fieldSep)
}

var eventTypes = map[string]input.EventType{}

func init() {
	for t := input.KeyDownEventType; t <= input.DisconnectEventType; t++ {
		eventTypes[t.String()] = t
	}
}

// parseEntry returns the frame and event of a single transcript line. the
// line number is used for error messages only.
func parseEntry(line string, lineNum int) (int, input.Event, error) {
	toks := strings.Split(line, fieldSep)
	if len(toks) != numFields {
		return 0, input.Event{}, errors.Errorf(ErrFieldCount, numFields, lineNum)
	}

	// column at which a field starts. for error messages
	col := func(field int) int {
		if field == 0 {
			return 1
		}
		return len(strings.Join(toks[:field], fieldSep)) + len(fieldSep) + 1
	}

	frame, err := strconv.Atoi(toks[fieldFrame])
	if err != nil || frame < 1 {
		return 0, input.Event{}, errors.Errorf(ErrField, "frame", lineNum, col(fieldFrame))
	}

	var e input.Event

	t, ok := eventTypes[toks[fieldEvent]]
	if !ok {
		return 0, input.Event{}, errors.Errorf(ErrField, "event", lineNum, col(fieldEvent))
	}
	e.Type = t

	id, err := strconv.ParseInt(toks[fieldID], 10, 32)
	if err != nil {
		return 0, input.Event{}, errors.Errorf(ErrField, "id", lineNum, col(fieldID))
	}
	e.ID = input.PlatformID(id)

	data := toks[fieldData]
	switch e.Type {
	case input.KeyDownEventType, input.KeyUpEventType:
		k, ok := input.ParseKey(data)
		if !ok {
			return 0, input.Event{}, errors.Errorf(ErrField, "key", lineNum, col(fieldData))
		}
		e.Data = k

	case input.ButtonDownEventType, input.ButtonUpEventType:
		b, ok := input.ParseGamepadButton(data)
		if !ok {
			return 0, input.Event{}, errors.Errorf(ErrField, "button", lineNum, col(fieldData))
		}
		e.Data = b

	case input.AxisEventType:
		a, ok := input.ParseGamepadAxis(data)
		if !ok {
			return 0, input.Event{}, errors.Errorf(ErrField, "axis", lineNum, col(fieldData))
		}
		v, err := strconv.ParseFloat(toks[fieldValue], 32)
		if err != nil {
			return 0, input.Event{}, errors.Errorf(ErrField, "value", lineNum, col(fieldValue))
		}
		e.Data = input.AxisMotion{Axis: a, Value: float32(v)}
	}

	return frame, e, nil
}
