package gesture

// DragProxy is the lightweight visual stand-in for a dragged palette entry.
// It exists only for the duration of the drag and carries what the host
// needs to render it.
type DragProxy struct {
	// Index is the drag source slot.
	Index int

	// Color is the value being dragged, in "#rrggbb" form.
	Color string
}
