package replica

import (
	"fmt"
	"strconv"
	"strings"
)

// Replica names have the form "<node>:<instance>", e.g. "Alpha:0".
const nameSeparator = ":"

// GenerateName builds the replica name for a node and instance id.
func GenerateName(nodeName string, instanceID uint32) string {
	return nodeName + nameSeparator + strconv.FormatUint(uint64(instanceID), 10)
}

// NodeNameOf returns the node part of a replica name. If the name carries
// no instance suffix it is returned unchanged.
func NodeNameOf(replicaName string) string {
	if idx := strings.LastIndex(replicaName, nameSeparator); idx >= 0 {
		return replicaName[:idx]
	}
	return replicaName
}

// ParseName splits a replica name into its node name and instance id.
func ParseName(replicaName string) (string, uint32, error) {
	idx := strings.LastIndex(replicaName, nameSeparator)
	if idx < 0 {
		return "", 0, fmt.Errorf("replica name %q has no instance suffix", replicaName)
	}
	instID, err := strconv.ParseUint(replicaName[idx+1:], 10, 32)
	if err != nil {
		return "", 0, fmt.Errorf("replica name %q has invalid instance suffix: %w", replicaName, err)
	}
	return replicaName[:idx], uint32(instID), nil
}
