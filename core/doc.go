// Package core is the application shell: it owns the sidebar panel state
// and the current path, routes messages, and composes the frame.
//
// Allowed here:
// - model routing, message contracts, command and key registries
// - panel state transitions and active-entry resolution
//
// Not allowed here:
// - concrete page or screen rendering
// - low-level widget rendering primitives
package core
