// Package keymap maps keyboard chords to editor actions. The default map
// covers the built-in shortcut surface; user overrides load from a JSON
// bindings document and shadow the defaults.
package keymap
