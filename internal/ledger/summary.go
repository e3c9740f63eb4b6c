package ledger

import (
	"fmt"
	"strings"
)

// Summary is a compact description of one ledger's state.
type Summary struct {
	LedgerID uint32
	Size     uint64
	Root     string
}

// Info is an ordered sequence of summaries, one per tracked ledger, in the
// node's fixed ledger registration order. Order is significant: two Infos
// listing the same summaries in different orders are not equal.
type Info []Summary

// Equal reports whether two Infos describe the same state in the same order.
func (in Info) Equal(other Info) bool {
	if len(in) != len(other) {
		return false
	}
	for i := range in {
		if in[i] != other[i] {
			return false
		}
	}
	return true
}

// Key returns a deterministic serialization of the Info, usable as a map
// key. Two Infos have the same key iff they are Equal. Root comes off the
// wire, so it is quoted: a root embedding the separators must not collide
// with a differently structured Info.
func (in Info) Key() string {
	parts := make([]string, len(in))
	for i, s := range in {
		parts[i] = fmt.Sprintf("%d:%d:%q", s.LedgerID, s.Size, s.Root)
	}
	return strings.Join(parts, "|")
}

// Copy returns an independent copy of the Info.
func (in Info) Copy() Info {
	if in == nil {
		return nil
	}
	out := make(Info, len(in))
	copy(out, in)
	return out
}
