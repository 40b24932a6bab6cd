package input

// ActionSource indicates the origin of an action.
type ActionSource uint8

const (
	// SourceKeyboard indicates the action originated from a keyboard shortcut.
	SourceKeyboard ActionSource = iota
	// SourcePointer indicates the action originated from a pointer gesture.
	SourcePointer
	// SourceToolbar indicates the action originated from a toolbar control.
	SourceToolbar
	// SourceAPI indicates the action originated from an API call.
	SourceAPI
)

// String returns a string representation of the action source.
func (s ActionSource) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourcePointer:
		return "pointer"
	case SourceToolbar:
		return "toolbar"
	case SourceAPI:
		return "api"
	default:
		return "unknown"
	}
}

// ActionArgs holds arguments for an action.
type ActionArgs struct {
	// Index is a palette slot index.
	Index int

	// Delta is a font-size step in points.
	Delta float64

	// Level is a heading level (0 = paragraph).
	Level int

	// Text is literal text for insert operations.
	Text string

	// Extra holds additional key-value pairs for extensibility.
	Extra map[string]any
}

// GetString retrieves a string value from Extra.
func (a ActionArgs) GetString(key string) string {
	if v, ok := a.Extra[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetInt retrieves an int value from Extra.
func (a ActionArgs) GetInt(key string) int {
	if v, ok := a.Extra[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return 0
}

// Action represents a command to be executed by the dispatcher.
type Action struct {
	// Name is the command identifier (e.g. "format.toggleBold",
	// "palette.apply").
	Name string

	// Args contains command-specific arguments.
	Args ActionArgs

	// Source indicates where this action originated.
	Source ActionSource
}

// WithIndex returns a copy of the action with the palette index set.
func (a Action) WithIndex(index int) Action {
	a.Args.Index = index
	return a
}

// WithDelta returns a copy of the action with the font-size delta set.
func (a Action) WithDelta(delta float64) Action {
	a.Args.Delta = delta
	return a
}
