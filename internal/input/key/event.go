package key

import "strings"

// Event is a normalized key press: a lowercase key name plus modifiers.
// Printable keys use their literal character ("b", "=", "."); named keys
// use their lowercase name ("tab", "escape").
type Event struct {
	Name string
	Mods Modifier
}

// NewEvent creates an event with a normalized key name.
func NewEvent(name string, mods Modifier) Event {
	return Event{Name: strings.ToLower(name), Mods: mods}
}

// Chord returns the event in canonical chord form, e.g. "C-S-b" or "tab".
// Meta is folded into Ctrl so platform variants compare equal.
func (e Event) Chord() string {
	mods := e.Mods.Normalize()

	var b strings.Builder
	if mods.HasCtrl() {
		b.WriteString("C-")
	}
	if mods.HasAlt() {
		b.WriteString("A-")
	}
	if mods.HasShift() {
		b.WriteString("S-")
	}
	b.WriteString(e.Name)
	return b.String()
}

// Matches reports whether two events describe the same chord.
func (e Event) Matches(other Event) bool {
	return e.Chord() == other.Chord()
}
