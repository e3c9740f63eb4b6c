// Package votes keeps the per-instance record of which replica voted for
// which (primary, ledger state) pair during a view change. Votes are
// insert-once per voter per view; the whole ledger is wiped when a new
// view begins.
package votes
