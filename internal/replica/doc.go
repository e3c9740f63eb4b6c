// Package replica provides replica naming and the per-instance primary
// state a node keeps for each of its replica groups.
package replica
