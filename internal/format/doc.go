// Package format applies and queries inline and block formatting against
// the live selection.
//
// Mutations are two-phase: a command mutates the document synchronously,
// then defers the FormatState re-query to the next cooperative turn,
// because the host surface's state reporting may lag the mutation by one
// scheduling tick. Querying synchronously after a mutation returns stale
// data; the deferral is required ordering, not an optimization.
package format
