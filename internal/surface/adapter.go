package surface

// Adapter wraps a Surface and applies the no-selection policy: every
// selection-scoped command becomes a silent no-op when the document has no
// live selection. Commands arrive from toolbar clicks after focus has moved
// away from the document, so a missing selection is an idle state, not a
// fault.
type Adapter struct {
	surf Surface
}

// NewAdapter creates an adapter over the given surface.
func NewAdapter(surf Surface) *Adapter {
	return &Adapter{surf: surf}
}

// Surface returns the wrapped surface.
func (a *Adapter) Surface() Surface {
	return a.surf
}

// Selection returns the live selection, or false when none exists.
func (a *Adapter) Selection() (Selection, bool) {
	return a.surf.Selection()
}

// WithSelection runs fn with the live selection. Returns false, without
// calling fn, when no selection exists.
func (a *Adapter) WithSelection(fn func(sel Selection)) bool {
	sel, ok := a.surf.Selection()
	if !ok {
		return false
	}
	fn(sel)
	return true
}

// WithRange runs fn with the live selection only when it is non-collapsed.
// Returns false, without calling fn, when no selection exists or the
// selection is just a caret.
func (a *Adapter) WithRange(fn func(sel Selection)) bool {
	sel, ok := a.surf.Selection()
	if !ok || sel.Collapsed() {
		return false
	}
	fn(sel)
	return true
}
