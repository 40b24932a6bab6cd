package keymap

import "github.com/dshills/inkwell/internal/input"

// Binding represents a single chord-to-action mapping.
type Binding struct {
	// Chord is the key chord that triggers this binding.
	// Formats: "C-b", "C-S-.", "tab", "Ctrl+Shift+K".
	Chord string

	// Action is the command to execute, e.g. "format.toggleBold".
	Action string

	// Args are fixed arguments for the action.
	Args input.ActionArgs

	// Description provides documentation for the binding.
	Description string
}

// NewBinding creates a binding for the given chord and action.
func NewBinding(chord, action string) Binding {
	return Binding{Chord: chord, Action: action}
}

// WithIndex sets a palette index argument.
func (b Binding) WithIndex(index int) Binding {
	b.Args.Index = index
	return b
}

// WithDelta sets a font-size delta argument.
func (b Binding) WithDelta(delta float64) Binding {
	b.Args.Delta = delta
	return b
}

// WithLevel sets a heading level argument.
func (b Binding) WithLevel(level int) Binding {
	b.Args.Level = level
	return b
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}
