// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, sidebar, cards, charts, popup overlay)
//
// Not allowed here:
// - key handling, panel state, route resolution, or page policy
package widgets
