// Package dispatcher routes named actions to their handlers.
//
// Handlers register under action names ("format.toggleBold",
// "palette.apply"); Dispatch looks up the handler and runs it on the
// caller's goroutine. An unknown action is reported in the Result, not an
// error, since shortcut surfaces routinely fire chords nothing is bound to.
package dispatcher
