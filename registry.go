package input

// registry is a growable table of gamepad slots. A slot index is stable for the
// lifetime of the gamepad occupying it: removing a gamepad empties its slot
// but never shifts the slots after it.
type registry struct {
	slots []*GamepadState
}

// add places a new gamepad in the lowest empty slot, appending a new slot if
// there are none. The returned index is the gamepad's index until it is
// removed.
func (r *registry) add(id PlatformID) int {
	for i, s := range r.slots {
		if s == nil {
			r.slots[i] = newGamepadState(id)
			return i
		}
	}

	// there wasn't an existing free slot
	r.slots = append(r.slots, newGamepadState(id))
	return len(r.slots) - 1
}

// remove empties the slot. removing an empty slot or an index outside of the
// table is allowed and does nothing.
func (r *registry) remove(index int) {
	if index < 0 || index >= len(r.slots) {
		return
	}
	r.slots[index] = nil
}

// get returns the gamepad in the slot or nil if the slot is empty or does not
// exist. every query goes through get so that a disconnected gamepad has one
// representation.
func (r *registry) get(index int) *GamepadState {
	if index < 0 || index >= len(r.slots) {
		return nil
	}
	return r.slots[index]
}

// connected yields the index and state of every occupied slot.
func (r *registry) connected(f func(int, *GamepadState)) {
	for i, s := range r.slots {
		if s != nil {
			f(i, s)
		}
	}
}
