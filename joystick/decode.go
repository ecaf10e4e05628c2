package joystick

import (
	"encoding/binary"
	"io"

	input "github.com/doingharm/go-input-bus"
	"github.com/doingharm/go-input-bus/logger"
)

// js_event types from linux/joystick.h
const (
	jsEventButton uint8 = 0x01
	jsEventAxis   uint8 = 0x02

	// set on the synthetic events the driver sends when the device is opened,
	// describing the initial state of every control
	jsEventInit uint8 = 0x80
)

// jsEvent is the layout of struct js_event.
type jsEvent struct {
	Timestamp uint32
	Value     int16
	Type      uint8
	Index     uint8
}

// readEvent reads a single js_event. The driver writes whole events so a short
// read is an error.
func readEvent(r io.Reader) (jsEvent, error) {
	var e jsEvent
	err := binary.Read(r, binary.LittleEndian, &e)
	return e, err
}

// button codes from linux/input-event-codes.h
const (
	btnSouth         = 0x130
	btnEast          = 0x131
	btnNorth         = 0x133
	btnWest          = 0x134
	btnTL            = 0x136
	btnTR            = 0x137
	btnTL2           = 0x138
	btnTR2           = 0x139
	btnSelect        = 0x13a
	btnStart         = 0x13b
	btnMode          = 0x13c
	btnThumbL        = 0x13d
	btnThumbR        = 0x13e
	btnDpadUp        = 0x220
	btnDpadDown      = 0x221
	btnDpadLeft      = 0x222
	btnDpadRight     = 0x223
	btnTriggerHappy1 = 0x2c0
	btnTriggerHappy2 = 0x2c1
	btnTriggerHappy3 = 0x2c2
	btnTriggerHappy4 = 0x2c3
)

var buttonCodes = map[uint16]input.GamepadButton{
	btnSouth:         input.GamepadButtonA,
	btnEast:          input.GamepadButtonB,
	btnNorth:         input.GamepadButtonX,
	btnWest:          input.GamepadButtonY,
	btnTL:            input.GamepadButtonLeftShoulder,
	btnTR:            input.GamepadButtonRightShoulder,
	btnTL2:           input.GamepadButtonLeftTrigger,
	btnTR2:           input.GamepadButtonRightTrigger,
	btnSelect:        input.GamepadButtonBack,
	btnStart:         input.GamepadButtonStart,
	btnMode:          input.GamepadButtonGuide,
	btnThumbL:        input.GamepadButtonLeftStick,
	btnThumbR:        input.GamepadButtonRightStick,
	btnDpadUp:        input.GamepadButtonUp,
	btnDpadDown:      input.GamepadButtonDown,
	btnDpadLeft:      input.GamepadButtonLeft,
	btnDpadRight:     input.GamepadButtonRight,
	btnTriggerHappy1: input.GamepadButtonLeft,
	btnTriggerHappy2: input.GamepadButtonRight,
	btnTriggerHappy3: input.GamepadButtonUp,
	btnTriggerHappy4: input.GamepadButtonDown,
}

// axis codes from linux/input-event-codes.h
const (
	absX     = 0x00
	absY     = 0x01
	absZ     = 0x02
	absRX    = 0x03
	absRY    = 0x04
	absRZ    = 0x05
	absGas   = 0x09
	absBrake = 0x0a
	absHat0X = 0x10
	absHat0Y = 0x11
)

var axisCodes = map[uint8]input.GamepadAxis{
	absX:     input.GamepadAxisLeftStickX,
	absY:     input.GamepadAxisLeftStickY,
	absZ:     input.GamepadAxisLeftTrigger,
	absRX:    input.GamepadAxisRightStickX,
	absRY:    input.GamepadAxisRightStickY,
	absRZ:    input.GamepadAxisRightTrigger,
	absBrake: input.GamepadAxisLeftTrigger,
	absGas:   input.GamepadAxisRightTrigger,
}

const axisMax = 32767

// normaliseStick maps the driver range to [-1, 1]. The driver can report
// -32768 so the result is clamped.
func normaliseStick(v int16) float32 {
	f := float32(v) / axisMax
	if f < -1 {
		return -1
	}
	return f
}

// normaliseTrigger maps the driver range to [0, 1], where the trigger at rest
// reports the minimum value.
func normaliseTrigger(v int16) float32 {
	f := (float32(v) + axisMax) / (2 * axisMax)
	if f < 0 {
		return 0
	}
	return f
}

// decoder translates the events of one device into input events. It is owned
// by the goroutine reading the device.
type decoder struct {
	id         input.PlatformID
	buttonsMap []uint16
	axesMap    []uint8

	// the d-pad of many devices is reported as a hat. the direction of each
	// hat axis is remembered so that changes of direction can be reported as
	// button releases
	hat [2]int8
}

func newDecoder(id input.PlatformID, buttonsMap []uint16, axesMap []uint8) *decoder {
	return &decoder{
		id:         id,
		buttonsMap: buttonsMap,
		axesMap:    axesMap,
	}
}

// decode translates the event and calls push for every resulting input event.
// Controls with no place in the vocabulary are dropped.
func (d *decoder) decode(e jsEvent, push func(input.Event)) {
	switch e.Type &^ jsEventInit {
	case jsEventButton:
		if int(e.Index) >= len(d.buttonsMap) {
			return
		}
		code := d.buttonsMap[e.Index]
		b, ok := buttonCodes[code]
		if !ok {
			logger.Logf("joystick", "#%d: unmapped button code %#x", d.id, code)
			return
		}
		if e.Value != 0 {
			push(input.ButtonDown(d.id, b))
		} else {
			push(input.ButtonUp(d.id, b))
		}

	case jsEventAxis:
		if int(e.Index) >= len(d.axesMap) {
			return
		}
		code := d.axesMap[e.Index]
		switch code {
		case absHat0X:
			d.hatMotion(0, e.Value, push)
			return
		case absHat0Y:
			d.hatMotion(1, e.Value, push)
			return
		}

		a, ok := axisCodes[code]
		if !ok {
			logger.Logf("joystick", "#%d: unmapped axis code %#x", d.id, code)
			return
		}
		switch a {
		case input.GamepadAxisLeftTrigger, input.GamepadAxisRightTrigger:
			push(input.Axis(d.id, a, normaliseTrigger(e.Value)))
		default:
			push(input.Axis(d.id, a, normaliseStick(e.Value)))
		}
	}
}

var hatButtons = [2][2]input.GamepadButton{
	{input.GamepadButtonLeft, input.GamepadButtonRight},
	{input.GamepadButtonUp, input.GamepadButtonDown},
}

func (d *decoder) hatMotion(h int, v int16, push func(input.Event)) {
	var dir int8
	if v < 0 {
		dir = -1
	} else if v > 0 {
		dir = 1
	}

	prev := d.hat[h]
	if prev == dir {
		return
	}
	d.hat[h] = dir

	if prev != 0 {
		push(input.ButtonUp(d.id, hatButton(h, prev)))
	}
	if dir != 0 {
		push(input.ButtonDown(d.id, hatButton(h, dir)))
	}
}

func hatButton(h int, dir int8) input.GamepadButton {
	if dir < 0 {
		return hatButtons[h][0]
	}
	return hatButtons[h][1]
}
