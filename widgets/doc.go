// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (cell canvas, colour fading, pane chrome, stacks, popup overlay)
// - theme colours and per-instance lipgloss styles
//
// Not allowed here:
// - key handling, picker state transitions, or focus policy
package widgets
