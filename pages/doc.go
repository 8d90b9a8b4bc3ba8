// Package pages contains the routed page implementations.
//
// Allowed here:
// - page composition from the loaded snapshot (cards, charts, tables)
// - page-local interaction state such as a table cursor
//
// Not allowed here:
// - panel state or route changes other than by returning core messages
package pages
