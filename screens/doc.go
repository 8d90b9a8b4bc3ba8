// Package screens contains overlay flows rendered on top of pages.
//
// Allowed here:
// - screen implementations that satisfy core.Screen (command palette)
// - modal-specific presentation and interaction wiring
//
// Not allowed here:
// - panel state, routing tables and key registry ownership
// - low-level widget/layout primitives
package screens
