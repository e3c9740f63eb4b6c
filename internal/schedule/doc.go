// Package schedule computes the deterministic round-robin primary
// assignment for a view. Every correct node derives the same expected
// primary from the same view number, instance id and node-rank table;
// votes are verified against this expectation, never the reverse.
package schedule
