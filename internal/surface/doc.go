// Package surface defines the contract between the editing core and the
// host text surface that owns the document tree.
//
// The core never holds the document. It reads the live selection, mutates
// content through range operations, and queries resolved styling, all
// through the Surface interface. The Adapter wrapper enforces the policy
// that selection-scoped commands silently no-op when focus has left the
// document (toolbar clicks routinely arrive after focus loss).
package surface
