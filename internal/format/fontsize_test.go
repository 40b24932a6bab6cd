package format

import (
	"math"
	"testing"

	"github.com/dshills/inkwell/internal/surface"
	"github.com/dshills/inkwell/internal/surface/memory"
)

func sizeOf(doc *memory.Doc) float64 {
	px, _ := doc.ResolvedFontSizePx()
	return px / PxPerPt
}

func newSized(text string) (*Adjuster, *memory.Doc) {
	doc := memory.New()
	doc.InsertText(text)
	doc.SetSelection(surface.NewSelection(
		surface.Position{Block: 0, Offset: 0},
		surface.Position{Block: 0, Offset: len(text)},
	))
	return NewAdjuster(surface.NewAdapter(doc)), doc
}

func TestChangeFontSizeBy(t *testing.T) {
	a, doc := newSized("resize me")

	// Base size is 16px = 12pt.
	if !a.ChangeFontSizeBy(2) {
		t.Fatal("adjust should apply to a non-empty selection")
	}
	if got := sizeOf(doc); math.Abs(got-14) > 1e-9 {
		t.Errorf("size = %vpt, want 14pt", got)
	}
}

func TestChangeFontSizeComposes(t *testing.T) {
	a1, doc1 := newSized("text")
	a1.ChangeFontSizeBy(1)
	a1.ChangeFontSizeBy(1)

	a2, doc2 := newSized("text")
	a2.ChangeFontSizeBy(2)

	if s1, s2 := sizeOf(doc1), sizeOf(doc2); math.Abs(s1-s2) > 1e-9 {
		t.Errorf("+1 +1 gives %vpt but +2 gives %vpt", s1, s2)
	}
}

func TestChangeFontSizeClamps(t *testing.T) {
	a, doc := newSized("tiny")
	a.ChangeFontSizeBy(-100)
	if got := sizeOf(doc); got != MinFontPt {
		t.Errorf("size = %vpt, want clamp at %v", got, MinFontPt)
	}

	a, doc = newSized("huge")
	a.ChangeFontSizeBy(1000)
	if got := sizeOf(doc); got != MaxFontPt {
		t.Errorf("size = %vpt, want clamp at %v", got, MaxFontPt)
	}

	// Saturated at the boundary, further steps hold.
	a.ChangeFontSizeBy(5)
	if got := sizeOf(doc); got != MaxFontPt {
		t.Errorf("size after extra step = %vpt, want %v", got, MaxFontPt)
	}
}

func TestChangeFontSizeSelectionRestored(t *testing.T) {
	a, doc := newSized("cover")
	a.ChangeFontSizeBy(3)

	sel, ok := doc.Selection()
	if !ok || sel.Collapsed() {
		t.Fatal("selection should be restored over the resized span")
	}
	if sel.Start().Offset != 0 || sel.End().Offset != 5 {
		t.Errorf("selection = %+v, want cover of %q", sel, "cover")
	}
}

func TestChangeFontSizeCollapsedNoOp(t *testing.T) {
	doc := memory.New()
	doc.InsertText("text")
	a := NewAdjuster(surface.NewAdapter(doc))

	// Caret only: stepping applies to highlighted spans, never the caret.
	if a.ChangeFontSizeBy(1) {
		t.Error("collapsed selection must be a no-op")
	}

	doc.Blur()
	if a.ChangeFontSizeBy(1) {
		t.Error("missing selection must be a no-op")
	}
}
