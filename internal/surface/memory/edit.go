package memory

import (
	"strings"

	"github.com/dshills/inkwell/internal/surface"
)

// ExtractSelection removes and returns the selection's contents, leaving a
// collapsed caret at the removal point. Block boundaries inside the range
// travel as "\n" runs in the fragment.
func (d *Doc) ExtractSelection() surface.Fragment {
	if !d.hasSel || d.sel.Collapsed() {
		return nil
	}

	start, end := d.sel.Start(), d.sel.End()
	var frag surface.Fragment

	if start.Block == end.Block {
		b := &d.blocks[start.Block]
		frag = b.runsInRange(start.Offset, end.Offset)
		left, rest := splitRuns(b.runs, start.Offset)
		_, right := splitRuns(rest, end.Offset-start.Offset)
		b.runs = mergeRuns(append(left, right...))
	} else {
		startBlk := &d.blocks[start.Block]
		endBlk := d.blocks[end.Block]

		frag = append(frag, startBlk.runsInRange(start.Offset, startBlk.length())...)
		for bi := start.Block + 1; bi < end.Block; bi++ {
			frag = append(frag, surface.Run{Text: "\n"})
			frag = append(frag, d.blocks[bi].runs...)
		}
		frag = append(frag, surface.Run{Text: "\n"})
		frag = append(frag, endBlk.runsInRange(0, end.Offset)...)

		// Join the start block's prefix with the end block's suffix.
		left, _ := splitRuns(startBlk.runs, start.Offset)
		_, right := splitRuns(endBlk.runs, end.Offset)
		startBlk.runs = mergeRuns(append(left, right...))
		d.blocks = append(d.blocks[:start.Block+1], d.blocks[end.Block+1:]...)
	}

	d.sel = surface.Caret(start)
	return frag
}

// InsertFragment inserts content at the caret, replacing any current
// selection, and returns a selection exactly covering the insertion. "\n"
// in run text splits blocks; the new blocks inherit the caret block's kind.
//
// A fragment carrying no text (the formatting-reset placeholder) inserts
// nothing but replaces the typing state with the placeholder's style.
func (d *Doc) InsertFragment(frag surface.Fragment) surface.Selection {
	if !d.hasSel {
		return surface.Selection{}
	}
	if !d.sel.Collapsed() {
		d.ExtractSelection()
	}

	caret := d.sel.Start()
	start := caret

	if frag.Text() == "" {
		if len(frag) > 0 {
			st := frag[len(frag)-1].Style
			d.typing = &st
		}
		d.sel = surface.Caret(caret)
		return d.sel
	}

	for _, r := range frag {
		segs := strings.Split(r.Text, "\n")
		for si, seg := range segs {
			if si > 0 {
				caret = d.splitBlockAt(caret)
			}
			if seg == "" {
				continue
			}
			caret = d.insertRunAt(caret, surface.Run{Text: seg, Style: r.Style})
		}
	}

	d.sel = surface.NewSelection(start, caret)
	return d.sel
}

// InsertLineBreak splits the caret's block, replacing any selection.
func (d *Doc) InsertLineBreak() {
	if !d.hasSel {
		return
	}
	if !d.sel.Collapsed() {
		d.ExtractSelection()
	}
	caret := d.splitBlockAt(d.sel.Start())
	d.sel = surface.Caret(caret)
}

// InsertText types text at the caret in the pending typing style (or the
// resolved caret style), replacing any selection. Test and demo helper.
func (d *Doc) InsertText(text string) {
	if !d.hasSel || text == "" {
		return
	}
	st := d.typingStyle()
	d.InsertFragment(surface.Fragment{{Text: text, Style: st}})
	d.CollapseAfter()
}

// splitBlockAt splits the block at the position, returning the caret at the
// start of the new block. The new block inherits the old block's kind.
func (d *Doc) splitBlockAt(p surface.Position) surface.Position {
	b := &d.blocks[p.Block]
	left, right := splitRuns(b.runs, p.Offset)
	kind := b.kind
	b.runs = mergeRuns(left)

	newBlk := block{kind: kind, runs: mergeRuns(right)}
	d.blocks = append(d.blocks, block{})
	copy(d.blocks[p.Block+2:], d.blocks[p.Block+1:])
	d.blocks[p.Block+1] = newBlk

	return surface.Position{Block: p.Block + 1, Offset: 0}
}

// insertRunAt inserts a run inside a block at the position, returning the
// caret after the inserted text.
func (d *Doc) insertRunAt(p surface.Position, r surface.Run) surface.Position {
	b := &d.blocks[p.Block]
	left, right := splitRuns(b.runs, p.Offset)
	merged := append(left, r)
	merged = append(merged, right...)
	b.runs = mergeRuns(merged)

	return surface.Position{Block: p.Block, Offset: p.Offset + graphemeLen(r.Text)}
}
