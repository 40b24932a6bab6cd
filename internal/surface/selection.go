package surface

// Position is a location in the document: a block index plus a grapheme
// offset within that block's text.
type Position struct {
	Block  int
	Offset int
}

// Before returns true if p orders strictly before other.
func (p Position) Before(other Position) bool {
	if p.Block != other.Block {
		return p.Block < other.Block
	}
	return p.Offset < other.Offset
}

// Equal returns true if two positions are the same location.
func (p Position) Equal(other Position) bool {
	return p.Block == other.Block && p.Offset == other.Offset
}

// Selection represents the live (anchor, focus) pair. Anchor is where the
// selection started; Focus is where the caret sits now. When Anchor == Focus
// the selection is collapsed and represents just the caret.
// Selection is an immutable value type.
type Selection struct {
	Anchor Position
	Focus  Position
}

// NewSelection creates a selection from anchor to focus.
func NewSelection(anchor, focus Position) Selection {
	return Selection{Anchor: anchor, Focus: focus}
}

// Caret creates a collapsed selection at the given position.
func Caret(pos Position) Selection {
	return Selection{Anchor: pos, Focus: pos}
}

// Collapsed returns true if the selection has no extent.
func (s Selection) Collapsed() bool {
	return s.Anchor.Equal(s.Focus)
}

// Start returns the lower bound of the selection.
func (s Selection) Start() Position {
	if s.Focus.Before(s.Anchor) {
		return s.Focus
	}
	return s.Anchor
}

// End returns the upper bound of the selection.
func (s Selection) End() Position {
	if s.Focus.Before(s.Anchor) {
		return s.Anchor
	}
	return s.Focus
}

// Forward returns an equivalent selection with Anchor <= Focus.
func (s Selection) Forward() Selection {
	return Selection{Anchor: s.Start(), Focus: s.End()}
}

// CollapseToEnd returns a caret at the selection's upper bound.
func (s Selection) CollapseToEnd() Selection {
	return Caret(s.End())
}
