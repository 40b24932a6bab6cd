// Package key models keyboard chords for the shortcut surface: modifier
// bitflags, normalized key events, and a parser for the chord notations
// used in keymap files ("C-b", "Ctrl+Shift+.").
package key
