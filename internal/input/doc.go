// Package input defines the shared action types that flow from input
// routing (keyboard shortcuts, palette gestures) into the dispatcher.
package input
