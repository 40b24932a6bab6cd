// Package editor assembles the editing core: the surface adapter, the
// formatting dispatcher, the snippet inserter, the palette with its gesture
// machine, and the keyboard shortcut routing, all owned by a single Editor
// instance and driven by the UI's one logical thread.
package editor
