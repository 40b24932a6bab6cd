package memory

import "github.com/dshills/inkwell/internal/surface"

// block is one block-level node: a wrapper kind plus styled runs.
type block struct {
	kind surface.BlockKind
	runs []surface.Run
}

func (b block) text() string {
	out := ""
	for _, r := range b.runs {
		out += r.Text
	}
	return out
}

func (b block) length() int {
	n := 0
	for _, r := range b.runs {
		n += graphemeLen(r.Text)
	}
	return n
}

// splitRuns splits runs at grapheme offset g into left and right halves.
func splitRuns(runs []surface.Run, g int) (left, right []surface.Run) {
	for _, r := range runs {
		n := graphemeLen(r.Text)
		switch {
		case g >= n:
			left = append(left, r)
			g -= n
		case g <= 0:
			right = append(right, r)
		default:
			at := byteAt(r.Text, g)
			left = append(left, surface.Run{Text: r.Text[:at], Style: r.Style})
			right = append(right, surface.Run{Text: r.Text[at:], Style: r.Style})
			g = 0
		}
	}
	return left, right
}

// mergeRuns drops empty runs and coalesces adjacent runs with equal style.
func mergeRuns(runs []surface.Run) []surface.Run {
	out := runs[:0]
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		if len(out) > 0 && out[len(out)-1].Style == r.Style {
			out[len(out)-1].Text += r.Text
			continue
		}
		out = append(out, r)
	}
	return out
}

// restyleRange applies fn to the styles of grapheme range [from, to) in the
// block's runs.
func (b *block) restyleRange(from, to int, fn func(surface.Style) surface.Style) {
	if to <= from {
		return
	}
	left, rest := splitRuns(b.runs, from)
	mid, right := splitRuns(rest, to-from)
	for i := range mid {
		mid[i].Style = fn(mid[i].Style)
	}
	merged := append(left, append(mid, right...)...)
	b.runs = mergeRuns(merged)
}

// runsInRange returns the runs covering grapheme range [from, to).
func (b block) runsInRange(from, to int) []surface.Run {
	if to <= from {
		return nil
	}
	_, rest := splitRuns(b.runs, from)
	mid, _ := splitRuns(rest, to-from)
	return mergeRuns(mid)
}
