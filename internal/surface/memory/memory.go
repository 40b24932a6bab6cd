package memory

import (
	"strings"

	"github.com/dshills/inkwell/internal/surface"
)

// DefaultFontPx is the inherited font size of unstyled text.
const DefaultFontPx = 16.0

// Doc is the in-memory document and surface implementation.
type Doc struct {
	blocks []block
	sel    surface.Selection
	hasSel bool

	// typing is the pending style for text typed at a collapsed caret,
	// established by toggling formats with no selection extent. Cleared
	// whenever the selection moves.
	typing *surface.Style

	baseSizePx float64
}

// New creates a document with a single empty paragraph and a live caret at
// its start.
func New() *Doc {
	return &Doc{
		blocks:     []block{{kind: surface.BlockParagraph}},
		sel:        surface.Caret(surface.Position{}),
		hasSel:     true,
		baseSizePx: DefaultFontPx,
	}
}

// Selection returns the live selection, or false after Blur.
func (d *Doc) Selection() (surface.Selection, bool) {
	if !d.hasSel {
		return surface.Selection{}, false
	}
	return d.sel, true
}

// SetSelection replaces the live selection and drops any typing state.
func (d *Doc) SetSelection(sel surface.Selection) {
	d.sel = d.clamp(sel)
	d.hasSel = true
	d.typing = nil
}

// Blur drops the selection, simulating focus moving out of the document.
func (d *Doc) Blur() {
	d.hasSel = false
	d.typing = nil
}

// CollapseAfter collapses the selection immediately after its end.
func (d *Doc) CollapseAfter() {
	if d.hasSel {
		d.sel = d.sel.CollapseToEnd()
	}
}

// BlockCount returns the number of blocks.
func (d *Doc) BlockCount() int {
	return len(d.blocks)
}

// BlockText returns the plain text of the given block.
func (d *Doc) BlockText(i int) string {
	if i < 0 || i >= len(d.blocks) {
		return ""
	}
	return d.blocks[i].text()
}

// BlockKindAt returns the kind of the given block.
func (d *Doc) BlockKindAt(i int) surface.BlockKind {
	if i < 0 || i >= len(d.blocks) {
		return surface.BlockParagraph
	}
	return d.blocks[i].kind
}

// RunsAt returns a copy of the given block's styled runs.
func (d *Doc) RunsAt(i int) []surface.Run {
	if i < 0 || i >= len(d.blocks) {
		return nil
	}
	out := make([]surface.Run, len(d.blocks[i].runs))
	copy(out, d.blocks[i].runs)
	return out
}

// String renders the document as plain text, one block per line.
func (d *Doc) String() string {
	var b strings.Builder
	for i, blk := range d.blocks {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(blk.text())
	}
	return b.String()
}

// clamp bounds a selection to the document.
func (d *Doc) clamp(sel surface.Selection) surface.Selection {
	return surface.Selection{
		Anchor: d.clampPos(sel.Anchor),
		Focus:  d.clampPos(sel.Focus),
	}
}

func (d *Doc) clampPos(p surface.Position) surface.Position {
	if p.Block < 0 {
		return surface.Position{}
	}
	if p.Block >= len(d.blocks) {
		last := len(d.blocks) - 1
		return surface.Position{Block: last, Offset: d.blocks[last].length()}
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	if max := d.blocks[p.Block].length(); p.Offset > max {
		p.Offset = max
	}
	return p
}

// forEachTouched walks the blocks covered by the selection, passing each
// block index plus the grapheme sub-range touched within it.
func (d *Doc) forEachTouched(sel surface.Selection, fn func(bi, from, to int)) {
	start, end := sel.Start(), sel.End()
	for bi := start.Block; bi <= end.Block && bi < len(d.blocks); bi++ {
		from := 0
		to := d.blocks[bi].length()
		if bi == start.Block {
			from = start.Offset
		}
		if bi == end.Block {
			to = end.Offset
		}
		fn(bi, from, to)
	}
}
