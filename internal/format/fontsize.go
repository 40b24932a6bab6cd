package format

import "github.com/dshills/inkwell/internal/surface"

// Font size bounds in points. Deltas that would cross a bound saturate at
// the bound rather than being rejected.
const (
	MinFontPt = 8.0
	MaxFontPt = 72.0
)

// PxPerPt converts point units to pixels (1pt = 4/3 px).
const PxPerPt = 4.0 / 3.0

// Adjuster steps the font size of a non-empty selection. The caret alone is
// never resized; a collapsed selection is a no-op.
type Adjuster struct {
	surf *surface.Adapter
}

// NewAdjuster creates a font-size adjuster over the given surface adapter.
func NewAdjuster(surf *surface.Adapter) *Adjuster {
	return &Adjuster{surf: surf}
}

// ChangeFontSizeBy grows or shrinks the selection's font size by deltaPts
// points, clamped to [MinFontPt, MaxFontPt]. The selection is restored to
// exactly cover the resized content, so successive deltas compose: +1 then
// +1 behaves like +2, modulo clamping.
//
// Returns false when no selection exists or the selection is collapsed.
func (a *Adjuster) ChangeFontSizeBy(deltaPts float64) bool {
	return a.surf.WithRange(func(surface.Selection) {
		s := a.surf.Surface()

		px, ok := s.ResolvedFontSizePx()
		if !ok {
			return
		}

		pt := clampPt(px/PxPerPt + deltaPts)
		newPx := pt * PxPerPt

		frag := s.ExtractSelection()
		frag = frag.Restyled(func(st surface.Style) surface.Style {
			st.SizePx = newPx
			return st
		})

		inserted := s.InsertFragment(frag)
		s.SetSelection(inserted)
	})
}

func clampPt(pt float64) float64 {
	if pt < MinFontPt {
		return MinFontPt
	}
	if pt > MaxFontPt {
		return MaxFontPt
	}
	return pt
}
