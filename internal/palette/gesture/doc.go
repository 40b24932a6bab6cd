// Package gesture classifies pointer interactions on palette entries into
// click, long-press-edit, and drag-reorder.
//
// A press starts a hold timer; releasing or leaving before the timer fires
// cancels it and lets the host's native click apply the color. The timer
// firing while still pressed, with no drag started, opens edit mode. A
// native drag start cancels the timer and moves the machine into dragging,
// where drop-target tracking and the final reorder commit happen.
//
// The clock is injectable so tests can simulate held-versus-released timing
// without wall-clock delays.
package gesture
