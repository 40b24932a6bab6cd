// Package palette owns the fixed-capacity ordered color sequence used for
// foreground-color application.
//
// Slot identity is positional: reordering moves values between positions,
// editing replaces a value in place, and the sequence length never changes.
// The active index (the last slot explicitly applied) is a UI highlight
// back-reference that deliberately survives reorders unchanged, so it can
// point at a different color after a drag.
package palette
