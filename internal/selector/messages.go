package selector

import (
	"viewchange/internal/ledger"
)

// ViewChangeDone is one node's declaration that it completed the view
// change for an instance: who it believes the new primary is and the
// ledger state that primary is expected to lead from.
type ViewChangeDone struct {
	// PrimaryName is the replica name of the claimed new primary.
	PrimaryName string
	// InstanceID identifies the replica group the vote is for.
	InstanceID uint32
	// ViewNo is the view the vote belongs to.
	ViewNo uint64
	// Ledger is the sender's ordered ledger summary list.
	Ledger ledger.Info
}

// Decider is the capability the node layer consumes to run primary
// selection. Selector is the round-robin implementation.
type Decider interface {
	// StartSelection votes for and optimistically adopts the expected
	// primary of every instance that has none. Invoked once per view.
	StartSelection()
	// ProcessViewChangeDone handles one inbound vote from the named
	// sender node and reports whether it completed a quorum decision.
	ProcessViewChangeDone(msg ViewChangeDone, sender string) bool
	// CatchUpMessages reconstructs this node's own votes of the current
	// view for replay to a lagging peer.
	CatchUpMessages() []ViewChangeDone
	// ViewChangeStarted advances to a strictly higher view and clears all
	// accumulated votes. Reports whether the view actually advanced.
	ViewChangeStarted(viewNo uint64) bool
}
