package editor

import (
	"github.com/dshills/inkwell/internal/dispatcher"
	"github.com/dshills/inkwell/internal/input"
	"github.com/dshills/inkwell/internal/snippet"
	"github.com/dshills/inkwell/internal/surface"
)

// registerHandlers installs the named action handlers.
func (e *Editor) registerHandlers() {
	toggle := func(attr surface.Attr) dispatcher.HandlerFunc {
		return func(input.Action) dispatcher.Result {
			if e.formats.ToggleInline(attr).Zero() {
				return dispatcher.NoOp
			}
			return dispatcher.Handled
		}
	}
	e.disp.Register("format.toggleBold", toggle(surface.AttrBold))
	e.disp.Register("format.toggleItalic", toggle(surface.AttrItalic))
	e.disp.Register("format.toggleUnderline", toggle(surface.AttrUnderline))
	e.disp.Register("format.toggleStrikethrough", toggle(surface.AttrStrikethrough))

	e.disp.Register("format.setBlock", func(a input.Action) dispatcher.Result {
		if e.formats.SetBlock(a.Args.Level).Zero() {
			return dispatcher.NoOp
		}
		return dispatcher.Handled
	})
	e.disp.Register("format.toggleBulletList", func(input.Action) dispatcher.Result {
		if e.formats.ToggleList(surface.BlockBulletItem).Zero() {
			return dispatcher.NoOp
		}
		return dispatcher.Handled
	})
	e.disp.Register("format.toggleNumberList", func(input.Action) dispatcher.Result {
		if e.formats.ToggleList(surface.BlockNumberItem).Zero() {
			return dispatcher.NoOp
		}
		return dispatcher.Handled
	})

	e.disp.Register("font.step", func(a input.Action) dispatcher.Result {
		if !e.fonts.ChangeFontSizeBy(a.Args.Delta) {
			return dispatcher.NoOp
		}
		e.formats.SelectionChanged()
		return dispatcher.Handled
	})

	e.disp.Register("snippet.insert", func(a input.Action) dispatcher.Result {
		if !e.snippets.Insert(a.Args.Text) {
			return dispatcher.NoOp
		}
		e.formats.SelectionChanged()
		return dispatcher.Handled
	})
	e.disp.Register("snippet.verse", e.numberedHandler(snippet.FamilyVerse))
	e.disp.Register("snippet.chorus", e.numberedHandler(snippet.FamilyChorus))
	e.disp.Register("snippet.tabBreak", func(input.Action) dispatcher.Result {
		// Tab is always consumed as a document edit, never focus
		// navigation, even when the surface had no selection to edit.
		e.snippets.InsertTabBreak()
		e.formats.SelectionChanged()
		return dispatcher.Handled
	})

	e.disp.Register("palette.apply", func(a input.Action) dispatcher.Result {
		if !e.colors.Apply(a.Args.Index) {
			return dispatcher.NoOp
		}
		return dispatcher.Handled
	})

	e.disp.Register("view.zoomIn", func(input.Action) dispatcher.Result {
		e.zoom.In()
		return dispatcher.Handled
	})
	e.disp.Register("view.zoomOut", func(input.Action) dispatcher.Result {
		e.zoom.Out()
		return dispatcher.Handled
	})
	e.disp.Register("view.zoomReset", func(input.Action) dispatcher.Result {
		e.zoom.Reset()
		return dispatcher.Handled
	})
}

func (e *Editor) numberedHandler(f snippet.Family) dispatcher.HandlerFunc {
	return func(input.Action) dispatcher.Result {
		if !e.snippets.InsertNumbered(f) {
			return dispatcher.NoOp
		}
		e.formats.SelectionChanged()
		return dispatcher.Handled
	}
}
