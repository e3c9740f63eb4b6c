package schedule

import (
	"fmt"

	"viewchange/internal/replica"
)

// Rank returns the node rank expected to hold the primary role for the
// given view and instance: (viewNo + instanceID) mod totalNodes.
// totalNodes must be positive.
func Rank(viewNo uint64, instanceID uint32, totalNodes int) int {
	return int((viewNo + uint64(instanceID)) % uint64(totalNodes))
}

// ExpectedPrimary returns the replica name of the node expected to become
// primary for the given view and instance, using nameByRank to resolve the
// rank table.
func ExpectedPrimary(viewNo uint64, instanceID uint32, totalNodes int, nameByRank func(rank int) (string, error)) (string, error) {
	if totalNodes <= 0 {
		return "", fmt.Errorf("total nodes must be positive, got %d", totalNodes)
	}
	rank := Rank(viewNo, instanceID, totalNodes)
	nodeName, err := nameByRank(rank)
	if err != nil {
		return "", fmt.Errorf("no node at rank %d: %w", rank, err)
	}
	return replica.GenerateName(nodeName, instanceID), nil
}
