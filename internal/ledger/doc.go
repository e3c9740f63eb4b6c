// Package ledger provides compact ledger state summaries and the ordered
// registry of ledgers a node tracks. Votes carry the full ordered summary
// list so peers can confirm they agree on the state the new primary will
// lead from.
package ledger
