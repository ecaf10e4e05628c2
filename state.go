package input

import (
	"iter"
	"math/bits"
)

// buttonSet is a set of gamepad buttons. The vocabulary is small enough to fit
// in a single word so copying the set between frames is a plain assignment.
type buttonSet uint32

func (s buttonSet) has(b GamepadButton) bool {
	return b < numGamepadButtons && s&(1<<b) != 0
}

func (s *buttonSet) insert(b GamepadButton) {
	if b < numGamepadButtons {
		*s |= 1 << b
	}
}

func (s *buttonSet) remove(b GamepadButton) {
	if b < numGamepadButtons {
		*s &^= 1 << b
	}
}

// all yields the members of the set. Iteration order is not part of the
// contract.
func (s buttonSet) all() iter.Seq[GamepadButton] {
	return func(yield func(GamepadButton) bool) {
		for w := uint32(s); w != 0; w &= w - 1 {
			if !yield(GamepadButton(bits.TrailingZeros32(w))) {
				return
			}
		}
	}
}

// difference yields the members of s that are not in o. nothing is
// materialised, the difference is computed as the sequence is consumed.
func (s buttonSet) difference(o buttonSet) iter.Seq[GamepadButton] {
	return (s &^ o).all()
}

func (s buttonSet) len() int {
	return bits.OnesCount32(uint32(s))
}

// keySet is a set of keyboard keys.
type keySet [(numKeys + 63) / 64]uint64

func (s *keySet) has(k Key) bool {
	return k < numKeys && s[k/64]&(1<<(k%64)) != 0
}

func (s *keySet) insert(k Key) {
	if k < numKeys {
		s[k/64] |= 1 << (k % 64)
	}
}

func (s *keySet) remove(k Key) {
	if k < numKeys {
		s[k/64] &^= 1 << (k % 64)
	}
}

func (s *keySet) difference(o *keySet) iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for i := range s {
			for w := s[i] &^ o[i]; w != 0; w &= w - 1 {
				if !yield(Key(i*64 + bits.TrailingZeros64(w))) {
					return
				}
			}
		}
	}
}

func (s *keySet) all() iter.Seq[Key] {
	return s.difference(&keySet{})
}

// GamepadState is the double-buffered state of a single connected gamepad.
//
// The previous buttons are always the current buttons as they were at the end
// of the last frame's event drain. They are never updated mid-frame.
type GamepadState struct {
	platformID PlatformID

	currentButtons  buttonSet
	previousButtons buttonSet

	// axes that have never been reported are zero, which is the neutral
	// position for every axis
	currentAxes [numGamepadAxes]float32
}

func newGamepadState(id PlatformID) *GamepadState {
	return &GamepadState{platformID: id}
}

// PlatformID returns the identifier the platform layer uses for the device.
func (pad *GamepadState) PlatformID() PlatformID {
	return pad.platformID
}

func (pad *GamepadState) setButtonDown(b GamepadButton) {
	pad.currentButtons.insert(b)
}

func (pad *GamepadState) setButtonUp(b GamepadButton) {
	pad.currentButtons.remove(b)
}

func (pad *GamepadState) setAxisPosition(a GamepadAxis, v float32) {
	if a < numGamepadAxes {
		pad.currentAxes[a] = v
	}
}

func (pad *GamepadState) axisPosition(a GamepadAxis) float32 {
	if a < numGamepadAxes {
		return pad.currentAxes[a]
	}
	return 0.0
}

// beginFrame must be called once per frame, before any of the frame's events
// are applied.
func (pad *GamepadState) beginFrame() {
	pad.previousButtons = pad.currentButtons
}
