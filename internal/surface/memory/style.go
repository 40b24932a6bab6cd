package memory

import "github.com/dshills/inkwell/internal/surface"

// ToggleInline flips an inline attribute. On a range the attribute is
// removed when every touched grapheme already carries it, added otherwise.
// On a collapsed caret it flips the typing state instead.
func (d *Doc) ToggleInline(attr surface.Attr) {
	if !d.hasSel {
		return
	}

	if d.sel.Collapsed() {
		st := d.typingStyle()
		st.Attrs = st.Attrs.Toggle(attr)
		d.typing = &st
		return
	}

	active := d.IsInlineActive(attr)
	d.forEachTouched(d.sel, func(bi, from, to int) {
		d.blocks[bi].restyleRange(from, to, func(st surface.Style) surface.Style {
			if active {
				st.Attrs = st.Attrs.Without(attr)
			} else {
				st.Attrs = st.Attrs.With(attr)
			}
			return st
		})
	})
}

// ApplyForeground sets the foreground color across the selection, or the
// typing state when collapsed.
func (d *Doc) ApplyForeground(color string) {
	if !d.hasSel {
		return
	}

	if d.sel.Collapsed() {
		st := d.typingStyle()
		st.Foreground = color
		d.typing = &st
		return
	}

	d.forEachTouched(d.sel, func(bi, from, to int) {
		d.blocks[bi].restyleRange(from, to, func(st surface.Style) surface.Style {
			st.Foreground = color
			return st
		})
	})
}

// SetBlock replaces the wrapper kind of every touched block.
func (d *Doc) SetBlock(kind surface.BlockKind) {
	if !d.hasSel {
		return
	}
	d.forEachTouched(d.sel, func(bi, _, _ int) {
		d.blocks[bi].kind = kind
	})
}

// IsInlineActive reports whether the attribute covers the whole selection,
// or is pending in the typing state at a collapsed caret.
func (d *Doc) IsInlineActive(attr surface.Attr) bool {
	if !d.hasSel {
		return false
	}

	if d.sel.Collapsed() {
		return d.typingStyle().Attrs.Has(attr)
	}

	active := true
	seen := false
	d.forEachTouched(d.sel, func(bi, from, to int) {
		for _, r := range d.blocks[bi].runsInRange(from, to) {
			seen = true
			if !r.Style.Attrs.Has(attr) {
				active = false
			}
		}
	})
	return seen && active
}

// IsBlockActive reports whether every touched block has the given kind.
func (d *Doc) IsBlockActive(kind surface.BlockKind) bool {
	if !d.hasSel {
		return false
	}
	all := true
	d.forEachTouched(d.sel, func(bi, _, _ int) {
		if d.blocks[bi].kind != kind {
			all = false
		}
	})
	return all
}

// ResolvedFontSizePx returns the effective font size at the selection.
// Unstyled text inherits the document base size.
func (d *Doc) ResolvedFontSizePx() (float64, bool) {
	if !d.hasSel {
		return 0, false
	}

	var st surface.Style
	if d.sel.Collapsed() {
		st = d.typingStyle()
	} else {
		start, end := d.sel.Start(), d.sel.End()
		to := end.Offset
		if start.Block != end.Block {
			to = d.blocks[start.Block].length()
		}
		runs := d.blocks[start.Block].runsInRange(start.Offset, to)
		if len(runs) > 0 {
			st = runs[0].Style
		}
	}

	if st.SizePx == 0 {
		return d.baseSizePx, true
	}
	return st.SizePx, true
}

// typingStyle returns the pending typing style, falling back to the
// resolved style at the caret.
func (d *Doc) typingStyle() surface.Style {
	if d.typing != nil {
		return *d.typing
	}
	return d.resolvedStyleAt(d.sel.Start())
}

// resolvedStyleAt returns the style of the grapheme before the position, or
// of the first grapheme when the position is at block start.
func (d *Doc) resolvedStyleAt(p surface.Position) surface.Style {
	if p.Block < 0 || p.Block >= len(d.blocks) {
		return surface.Style{}
	}
	b := d.blocks[p.Block]

	from, to := p.Offset-1, p.Offset
	if p.Offset == 0 {
		from, to = 0, 1
	}
	runs := b.runsInRange(from, to)
	if len(runs) == 0 {
		return surface.Style{}
	}
	return runs[0].Style
}
