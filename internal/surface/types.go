package surface

// Attr represents inline text attributes (bold, italic, etc.).
type Attr uint8

// Inline attribute flags.
const (
	AttrNone          Attr = 0
	AttrBold          Attr = 1 << iota
	AttrItalic             // Italic text
	AttrUnderline          // Underlined text
	AttrStrikethrough      // Strikethrough text
)

// Has returns true if the attribute set contains the given attribute.
func (a Attr) Has(attr Attr) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attr) With(attr Attr) Attr {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attr) Without(attr Attr) Attr {
	return a &^ attr
}

// Toggle returns a new attribute set with the given attribute flipped.
func (a Attr) Toggle(attr Attr) Attr {
	return a ^ attr
}

// String returns a string representation of the attribute set.
func (a Attr) String() string {
	switch a {
	case AttrBold:
		return "bold"
	case AttrItalic:
		return "italic"
	case AttrUnderline:
		return "underline"
	case AttrStrikethrough:
		return "strikethrough"
	case AttrNone:
		return "none"
	}

	out := ""
	for _, f := range []Attr{AttrBold, AttrItalic, AttrUnderline, AttrStrikethrough} {
		if a.Has(f) {
			if out != "" {
				out += "+"
			}
			out += f.String()
		}
	}
	return out
}

// BlockKind identifies the block-level wrapper of a document block.
type BlockKind uint8

const (
	// BlockParagraph is an unstyled paragraph (the "clear formatting" kind).
	BlockParagraph BlockKind = iota
	// BlockHeading1 is a top-level heading.
	BlockHeading1
	// BlockHeading2 is a second-level heading.
	BlockHeading2
	// BlockHeading3 is a third-level heading.
	BlockHeading3
	// BlockBulletItem is an unordered-list item.
	BlockBulletItem
	// BlockNumberItem is an ordered-list item.
	BlockNumberItem
)

// String returns a string representation of the block kind.
func (b BlockKind) String() string {
	switch b {
	case BlockParagraph:
		return "paragraph"
	case BlockHeading1:
		return "h1"
	case BlockHeading2:
		return "h2"
	case BlockHeading3:
		return "h3"
	case BlockBulletItem:
		return "bullet-item"
	case BlockNumberItem:
		return "number-item"
	default:
		return "unknown"
	}
}

// HeadingLevel returns the heading level (1-3) or 0 for non-headings.
// Level 0 doubles as the paragraph sentinel.
func (b BlockKind) HeadingLevel() int {
	switch b {
	case BlockHeading1:
		return 1
	case BlockHeading2:
		return 2
	case BlockHeading3:
		return 3
	default:
		return 0
	}
}

// BlockFromHeadingLevel converts a heading level to a block kind.
// Level 0 maps to paragraph.
func BlockFromHeadingLevel(level int) BlockKind {
	switch level {
	case 1:
		return BlockHeading1
	case 2:
		return BlockHeading2
	case 3:
		return BlockHeading3
	default:
		return BlockParagraph
	}
}

// IsList returns true for the two list-item kinds.
func (b BlockKind) IsList() bool {
	return b == BlockBulletItem || b == BlockNumberItem
}

// Style carries the resolved inline styling of a text run.
// A zero Style is the unstyled default and is also used as the explicit
// formatting-reset marker.
type Style struct {
	// Attrs are the inline attributes applied to the run.
	Attrs Attr

	// SizePx is the font size in pixels. Zero means inherit.
	SizePx float64

	// Foreground is the text color as a "#rrggbb" string. Empty means inherit.
	Foreground string
}

// IsZero returns true if the style carries no explicit formatting.
func (s Style) IsZero() bool {
	return s.Attrs == AttrNone && s.SizePx == 0 && s.Foreground == ""
}

// Run is a styled run of inline text. A "\n" inside Text marks a block
// boundary when a Run travels inside an extracted Fragment.
type Run struct {
	Text  string
	Style Style
}

// Fragment is detached document content: an ordered slice of runs.
type Fragment []Run

// Text returns the concatenated text of all runs.
func (f Fragment) Text() string {
	out := ""
	for _, r := range f {
		out += r.Text
	}
	return out
}

// Restyled returns a copy of the fragment with fn applied to each run's style.
func (f Fragment) Restyled(fn func(Style) Style) Fragment {
	out := make(Fragment, len(f))
	for i, r := range f {
		out[i] = Run{Text: r.Text, Style: fn(r.Style)}
	}
	return out
}
