// Package quorum computes Byzantine quorum sizes from the fault-tolerance
// bound f. With n >= 3f+1 nodes, any two strong quorums intersect in at
// least one correct node.
package quorum
