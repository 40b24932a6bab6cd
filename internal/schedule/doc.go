// Package schedule provides the cooperative run queue the editing core uses
// to defer work to the next turn of the event loop.
//
// A deferred task is zero-duration: it runs after the current synchronous
// work and any pending document mutation settle, not after a real-time
// delay. Tests drive turns explicitly with RunTurn or Flush, so deferred
// behavior is deterministic without timers.
package schedule
