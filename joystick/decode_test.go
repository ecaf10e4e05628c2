package joystick

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"testing"

	input "github.com/doingharm/go-input-bus"
	"github.com/doingharm/go-input-bus/internal/test"
)

// the mapping of a typical xpad device
var (
	testButtonsMap = []uint16{btnSouth, btnEast, btnNorth, btnWest, btnTL, btnTR, btnSelect, btnStart, btnMode, btnThumbL, btnThumbR}
	testAxesMap    = []uint8{absX, absY, absZ, absRX, absRY, absRZ, absHat0X, absHat0Y}
)

func decodeAll(d *decoder, events ...jsEvent) string {
	var l []input.Event
	for _, e := range events {
		d.decode(e, func(ev input.Event) {
			l = append(l, ev)
		})
	}
	return fmt.Sprint(l)
}

func TestReadEvent(t *testing.T) {
	raw := []byte{
		// timestamp 10000
		0x10, 0x27, 0x00, 0x00,

		// value -32767, axis type, index 3
		0x01, 0x80, 0x02, 0x03,
	}
	e, err := readEvent(bytes.NewReader(raw))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, e.Timestamp, uint32(10000))
	test.ExpectEquality(t, e.Value, int16(-32767))
	test.ExpectEquality(t, e.Type, jsEventAxis)
	test.ExpectEquality(t, e.Index, uint8(3))

	_, err = readEvent(bytes.NewReader(raw[:5]))
	test.ExpectSuccess(t, err == io.ErrUnexpectedEOF)

	_, err = readEvent(bytes.NewReader(nil))
	test.ExpectSuccess(t, err == io.EOF)
}

func TestDecodeButtons(t *testing.T) {
	d := newDecoder(4, testButtonsMap, testAxesMap)

	s := decodeAll(d,
		jsEvent{Type: jsEventButton, Index: 0, Value: 1},
		jsEvent{Type: jsEventButton, Index: 7, Value: 1},
		jsEvent{Type: jsEventButton, Index: 0, Value: 0},
		jsEvent{Type: jsEventButton | jsEventInit, Index: 8, Value: 0},
	)
	test.ExpectEquality(t, s, "[ButtonDown #4 A ButtonDown #4 Start ButtonUp #4 A ButtonUp #4 Guide]")

	// indexes the device does not have and codes with no vocabulary button
	d = newDecoder(4, []uint16{btnSouth, 0x120}, nil)
	s = decodeAll(d,
		jsEvent{Type: jsEventButton, Index: 1, Value: 1},
		jsEvent{Type: jsEventButton, Index: 2, Value: 1},
		jsEvent{Type: jsEventAxis, Index: 0, Value: 1},
		jsEvent{Type: 0x04, Index: 0, Value: 1},
	)
	test.ExpectEquality(t, s, "[]")
}

func TestDecodeAxes(t *testing.T) {
	d := newDecoder(1, testButtonsMap, testAxesMap)

	s := decodeAll(d,
		jsEvent{Type: jsEventAxis, Index: 0, Value: 32767},
		jsEvent{Type: jsEventAxis, Index: 1, Value: -32768},
		jsEvent{Type: jsEventAxis, Index: 3, Value: 0},
		jsEvent{Type: jsEventAxis, Index: 2, Value: -32767},
		jsEvent{Type: jsEventAxis, Index: 5, Value: 32767},
	)
	test.ExpectEquality(t, s, "[Axis #1 LeftStickX=1 Axis #1 LeftStickY=-1 Axis #1 RightStickX=0 Axis #1 LeftTrigger=0 Axis #1 RightTrigger=1]")

	test.ExpectEquality(t, normaliseStick(-32768), float32(-1))
	test.ExpectEquality(t, normaliseTrigger(-32768), float32(0))
	test.ExpectEquality(t, normaliseTrigger(0), float32(0.5))
}

func TestDecodeHat(t *testing.T) {
	d := newDecoder(2, testButtonsMap, testAxesMap)

	s := decodeAll(d,
		// left, held, then straight to right
		jsEvent{Type: jsEventAxis, Index: 6, Value: -32767},
		jsEvent{Type: jsEventAxis, Index: 6, Value: -32767},
		jsEvent{Type: jsEventAxis, Index: 6, Value: 32767},
		jsEvent{Type: jsEventAxis, Index: 6, Value: 0},

		// the vertical axis is independent of the horizontal
		jsEvent{Type: jsEventAxis, Index: 7, Value: -1},
		jsEvent{Type: jsEventAxis, Index: 6, Value: 1},
		jsEvent{Type: jsEventAxis, Index: 7, Value: 0},
	)
	test.ExpectEquality(t, s, "[ButtonDown #2 Left ButtonUp #2 Left ButtonDown #2 Right ButtonUp #2 Right "+
		"ButtonDown #2 Up ButtonDown #2 Right ButtonUp #2 Up]")

	// centred at open produces nothing
	d = newDecoder(2, testButtonsMap, testAxesMap)
	s = decodeAll(d, jsEvent{Type: jsEventAxis | jsEventInit, Index: 7, Value: 0})
	test.ExpectEquality(t, s, "[]")
}

// the decoded events drive the input context as any other backend does
func TestDecodeIntoContext(t *testing.T) {
	ctx := input.NewContext()
	ctx.Apply(input.Connect(9))

	d := newDecoder(9, testButtonsMap, testAxesMap)
	var buf bytes.Buffer
	for _, e := range []jsEvent{
		{Type: jsEventButton | jsEventInit, Index: 1, Value: 1},
		{Type: jsEventAxis, Index: 4, Value: 16384},
		{Type: jsEventAxis, Index: 7, Value: 32767},
	} {
		test.DemandSuccess(t, binary.Write(&buf, binary.LittleEndian, e))
	}

	for {
		e, err := readEvent(&buf)
		if err != nil {
			break
		}
		d.decode(e, ctx.Queue().Push)
	}
	ctx.Update()

	test.ExpectSuccess(t, ctx.IsGamepadButtonPressed(0, input.GamepadButtonB))
	test.ExpectSuccess(t, ctx.IsGamepadButtonDown(0, input.GamepadButtonDown))
	test.ExpectSuccess(t, ctx.GamepadStickPosition(0, input.GamepadStickRight).Y() > 0.49)
}
