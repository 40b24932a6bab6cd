package key

import (
	"fmt"
	"strings"
)

// Parse parses a chord specification into an Event. Two notations are
// accepted:
//
//	dash form:  "C-b", "C-S-.", "A-tab"
//	plus form:  "Ctrl+B", "Ctrl+Shift+.", "Cmd+Shift+K"
//
// Modifier names are case-insensitive; the trailing token is the key name.
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, fmt.Errorf("empty chord spec")
	}

	sep := "-"
	if strings.Contains(spec, "+") {
		sep = "+"
	}

	parts := strings.Split(spec, sep)

	// A chord ending in the separator ("C--", "Ctrl++") means the key is
	// the separator character itself; drop the empty split tokens.
	name := parts[len(parts)-1]
	if name == "" {
		name = sep
		for len(parts) > 0 && parts[len(parts)-1] == "" {
			parts = parts[:len(parts)-1]
		}
		parts = append(parts, name)
	}
	mods, err := parseMods(parts[:len(parts)-1], spec)
	if err != nil {
		return Event{}, err
	}
	return NewEvent(name, mods), nil
}

// MustParse parses a chord spec known to be valid, panicking otherwise.
// Intended for static binding tables.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return ev
}

func parseMods(tokens []string, spec string) (Modifier, error) {
	mods := ModNone
	for _, tok := range tokens {
		switch strings.ToLower(tok) {
		case "c", "ctrl", "control":
			mods = mods.With(ModCtrl)
		case "s", "shift":
			mods = mods.With(ModShift)
		case "a", "alt", "opt", "option":
			mods = mods.With(ModAlt)
		case "m", "meta", "cmd", "command", "win":
			mods = mods.With(ModMeta)
		default:
			return ModNone, fmt.Errorf("unknown modifier %q in chord %q", tok, spec)
		}
	}
	return mods, nil
}
