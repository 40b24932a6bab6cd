package keymap

// DefaultBindings returns the built-in shortcut surface. "C-" chords match
// both Ctrl and Cmd.
func DefaultBindings() []Binding {
	return []Binding{
		NewBinding("C-b", "format.toggleBold").WithDescription("Toggle bold"),
		NewBinding("C-i", "format.toggleItalic").WithDescription("Toggle italic"),
		NewBinding("C-u", "format.toggleUnderline").WithDescription("Toggle underline"),

		NewBinding("C-=", "view.zoomIn").WithDescription("Zoom in"),
		NewBinding("C--", "view.zoomOut").WithDescription("Zoom out"),
		NewBinding("C-0", "view.zoomReset").WithDescription("Reset zoom"),

		NewBinding("C-S-,", "font.step").WithDelta(-1).WithDescription("Shrink selection font"),
		NewBinding("C-S-.", "font.step").WithDelta(1).WithDescription("Grow selection font"),

		NewBinding("C-S-j", "palette.apply").WithIndex(0).WithDescription("Apply palette color 1"),
		NewBinding("C-S-k", "palette.apply").WithIndex(1).WithDescription("Apply palette color 2"),

		NewBinding("tab", "snippet.tabBreak").WithDescription("Line break with formatting reset"),
	}
}
