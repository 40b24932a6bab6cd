package surface

// Surface is the host text surface owning the document tree. All document
// reads and mutations flow through it; the core holds no document state.
//
// Implementations are expected to run on the single UI goroutine; methods
// are never called concurrently.
type Surface interface {
	// Selection returns the live selection, or false when the document has
	// no selection (focus is elsewhere).
	Selection() (Selection, bool)

	// SetSelection replaces the live selection.
	SetSelection(sel Selection)

	// ToggleInline flips the given attribute across the current selection.
	// On a collapsed selection it establishes typing state so subsequently
	// typed text carries the attribute.
	ToggleInline(attr Attr)

	// SetBlock replaces the block wrapper of every block touched by the
	// current selection.
	SetBlock(kind BlockKind)

	// ApplyForeground sets the foreground color of the current selection,
	// or the typing state when collapsed. The color is a "#rrggbb" string.
	ApplyForeground(color string)

	// IsInlineActive reports whether the attribute is active at the current
	// selection. The answer may lag a mutation by one scheduling turn.
	IsInlineActive(attr Attr) bool

	// IsBlockActive reports whether every block touched by the current
	// selection has the given kind.
	IsBlockActive(kind BlockKind) bool

	// ResolvedFontSizePx returns the effective rendered font size, in
	// pixels, at the current selection. Inherited styling counts.
	ResolvedFontSizePx() (float64, bool)

	// ExtractSelection removes and returns the current selection's
	// contents, leaving a collapsed caret at the removal point.
	ExtractSelection() Fragment

	// InsertFragment inserts content at the caret, replacing any current
	// selection, and returns a selection exactly covering the insertion.
	InsertFragment(frag Fragment) Selection

	// CollapseAfter collapses the selection immediately after its end.
	CollapseAfter()

	// InsertLineBreak splits the current block at the caret, replacing any
	// current selection.
	InsertLineBreak()

	// BlockText returns the plain text of the given block, or "" when the
	// index is out of range.
	BlockText(block int) string
}
