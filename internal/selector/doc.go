// Package selector decides on one primary per replica group after a view
// change. Each node computes the expected primary round-robin from the
// view number, broadcasts its vote, and accumulates peer votes until a
// strong quorum of identical votes (including one from the prospective
// primary itself) confirms the expectation.
//
// All state here is view-local: the vote ledger is wiped when a new view
// begins, and every validation failure is a logged discard, never an
// error. The selector assumes externally serialized delivery of votes and
// view-change events; it performs no locking of its own.
package selector
