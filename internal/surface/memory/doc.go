// Package memory is an in-memory reference implementation of the host
// surface contract. It backs the package tests and the demo binary.
//
// The document is a flat list of blocks, each holding styled runs.
// Positions count grapheme clusters, not bytes, so multi-rune clusters
// (emoji, combining marks) move as single units. Everything runs on the
// single UI goroutine; the type is not safe for concurrent use.
package memory
