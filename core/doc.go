// Package core is the clock-face time picker.
//
// Allowed here:
// - face geometry, the nearest-tick resolver and the drag/throttle state machines
// - the field switch tween, picker value and message contracts, key registry
// - the Picker bubbletea component and its replaceable render slots
//
// Not allowed here:
// - host layout, focus between pickers, CLI or config loading
// - low-level drawing primitives (see package widgets)
package core
