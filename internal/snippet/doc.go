// Package snippet inserts styled, prefixed tokens at the caret.
//
// A snippet always starts a fresh line: when the caret's block already has
// non-whitespace text a line break goes in first. Numbered snippet families
// each carry an independent monotonic counter that starts at 1 and only
// advances on successful insertion.
package snippet
