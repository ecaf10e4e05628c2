// Package input buffers keyboard and gamepad events delivered at arbitrary
// times by platform backends and presents them to a fixed-rate frame loop as a
// stable, per-frame state.
//
// Backends push events to an EventQueue from any goroutine. Once per frame the
// loop calls Context.Update(), which marks the frame boundary and then drains
// the queue. For the rest of the frame the Context answers queries about which
// keys and buttons are down, which went down or up this frame, and where each
// analog axis sits.
//
// Gamepads are identified by a slot index. A gamepad keeps its slot for as long
// as it is connected and a new gamepad takes the lowest free slot. Queries
// about a slot with no gamepad in it return neutral values rather than errors.
package input
