package format

import "github.com/dshills/inkwell/internal/surface"

// State reports which formats are active at the current caret or selection.
// It is recomputed wholesale after every mutating or cursor-moving
// interaction, never patched incrementally.
type State struct {
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	BulletList    bool
	NumberList    bool
}

// InlineActive returns the active state of a single inline attribute.
func (s State) InlineActive(attr surface.Attr) bool {
	switch attr {
	case surface.AttrBold:
		return s.Bold
	case surface.AttrItalic:
		return s.Italic
	case surface.AttrUnderline:
		return s.Underline
	case surface.AttrStrikethrough:
		return s.Strikethrough
	default:
		return false
	}
}

// readState recomputes the full state from the surface.
func readState(surf surface.Surface) State {
	return State{
		Bold:          surf.IsInlineActive(surface.AttrBold),
		Italic:        surf.IsInlineActive(surface.AttrItalic),
		Underline:     surf.IsInlineActive(surface.AttrUnderline),
		Strikethrough: surf.IsInlineActive(surface.AttrStrikethrough),
		BulletList:    surf.IsBlockActive(surface.BlockBulletItem),
		NumberList:    surf.IsBlockActive(surface.BlockNumberItem),
	}
}
