package format

import (
	"testing"

	"github.com/dshills/inkwell/internal/schedule"
	"github.com/dshills/inkwell/internal/surface"
	"github.com/dshills/inkwell/internal/surface/memory"
)

func newFixture() (*Dispatcher, *memory.Doc, *schedule.Queue) {
	doc := memory.New()
	q := schedule.NewQueue()
	return NewDispatcher(surface.NewAdapter(doc), q), doc, q
}

func selectAll(doc *memory.Doc, block, length int) {
	doc.SetSelection(surface.NewSelection(
		surface.Position{Block: block, Offset: 0},
		surface.Position{Block: block, Offset: length},
	))
}

func TestToggleInlineTwiceRestoresState(t *testing.T) {
	attrs := []surface.Attr{
		surface.AttrBold,
		surface.AttrItalic,
		surface.AttrUnderline,
		surface.AttrStrikethrough,
	}

	for _, attr := range attrs {
		t.Run(attr.String(), func(t *testing.T) {
			d, doc, q := newFixture()
			doc.InsertText("sample")
			selectAll(doc, 0, 6)
			before := d.RefreshNow()

			d.ToggleInline(attr)
			q.RunTurn()
			if !d.QueryActiveFormats().InlineActive(attr) {
				t.Fatalf("%s should be active after one toggle", attr)
			}

			d.ToggleInline(attr)
			q.RunTurn()
			if d.QueryActiveFormats() != before {
				t.Errorf("state after double toggle = %+v, want %+v",
					d.QueryActiveFormats(), before)
			}
		})
	}
}

func TestQueryIsDeferredOneTurn(t *testing.T) {
	d, doc, q := newFixture()
	doc.InsertText("sample")
	selectAll(doc, 0, 6)
	d.RefreshNow()

	d.ToggleInline(surface.AttrBold)

	// Before the turn runs the reported state is still the pre-mutation
	// one; the refresh lands on the next cooperative turn.
	if d.QueryActiveFormats().Bold {
		t.Error("state must not change before the deferred refresh runs")
	}
	q.RunTurn()
	if !d.QueryActiveFormats().Bold {
		t.Error("state should reflect the mutation after the turn")
	}
}

func TestToggleInlineNoSelection(t *testing.T) {
	d, doc, q := newFixture()
	doc.Blur()

	tok := d.ToggleInline(surface.AttrBold)
	if !tok.Zero() {
		t.Error("toggle without selection should return the zero token")
	}
	if q.Len() != 0 {
		t.Error("no refresh should be queued for a no-op")
	}
}

func TestSetBlockLevels(t *testing.T) {
	tests := []struct {
		level    int
		expected surface.BlockKind
	}{
		{1, surface.BlockHeading1},
		{2, surface.BlockHeading2},
		{3, surface.BlockHeading3},
		{0, surface.BlockParagraph},
	}

	d, doc, q := newFixture()
	doc.InsertText("heading")
	selectAll(doc, 0, 7)

	for _, tt := range tests {
		d.SetBlock(tt.level)
		q.RunTurn()
		if got := doc.BlockKindAt(0); got != tt.expected {
			t.Errorf("SetBlock(%d): kind = %s, want %s", tt.level, got, tt.expected)
		}
	}
}

func TestToggleList(t *testing.T) {
	d, doc, q := newFixture()
	doc.InsertText("item")
	selectAll(doc, 0, 4)

	d.ToggleList(surface.BlockBulletItem)
	q.RunTurn()
	if !d.QueryActiveFormats().BulletList {
		t.Fatal("bullet list should be active")
	}

	// Toggling again clears back to paragraph.
	d.ToggleList(surface.BlockBulletItem)
	q.RunTurn()
	if d.QueryActiveFormats().BulletList {
		t.Error("bullet list should be cleared")
	}
	if doc.BlockKindAt(0) != surface.BlockParagraph {
		t.Error("block should be a paragraph again")
	}

	// Non-list kinds are rejected.
	if !d.ToggleList(surface.BlockHeading1).Zero() {
		t.Error("ToggleList with a heading must be a no-op")
	}
}

func TestApplyForeground(t *testing.T) {
	d, doc, q := newFixture()
	doc.InsertText("colored")
	selectAll(doc, 0, 7)

	d.ApplyForeground("#ff0000")
	q.RunTurn()

	runs := doc.RunsAt(0)
	if len(runs) != 1 || runs[0].Style.Foreground != "#ff0000" {
		t.Errorf("runs = %+v", runs)
	}
}

func TestSelectionChangedRefreshes(t *testing.T) {
	d, doc, q := newFixture()
	doc.InsertText("ab")
	selectAll(doc, 0, 2)
	doc.ToggleInline(surface.AttrBold)

	d.SelectionChanged()
	q.RunTurn()
	if !d.QueryActiveFormats().Bold {
		t.Error("SelectionChanged should schedule a refresh")
	}
}
