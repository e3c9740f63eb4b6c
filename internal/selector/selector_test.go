package selector

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viewchange/internal/ledger"
	"viewchange/internal/replica"
)

type fakeNode struct {
	name         string
	roster       []string
	primaryFound int
}

func (n *fakeNode) Name() string    { return n.name }
func (n *fakeNode) TotalNodes() int { return len(n.roster) }
func (n *fakeNode) PrimaryFound()   { n.primaryFound++ }
func (n *fakeNode) NameByRank(rank int) (string, error) {
	if rank < 0 || rank >= len(n.roster) {
		return "", fmt.Errorf("rank %d out of range", rank)
	}
	return n.roster[rank], nil
}

type fakeSender struct {
	sent []ViewChangeDone
	err  error
}

func (s *fakeSender) Broadcast(msg ViewChangeDone) error {
	s.sent = append(s.sent, msg)
	return s.err
}

type fakeLedgers struct {
	info ledger.Info
}

func (l *fakeLedgers) Summaries() ledger.Info { return l.info.Copy() }

type fixture struct {
	sel      *Selector
	node     *fakeNode
	sender   *fakeSender
	ledgers  *fakeLedgers
	replicas []*replica.Replica
}

// newFixture builds a selector for a 4-node roster with f=1 and two
// replica groups, seen from the given node's perspective.
func newFixture(t *testing.T, self string) *fixture {
	t.Helper()

	node := &fakeNode{name: self, roster: []string{"n1", "n2", "n3", "n4"}}
	sender := &fakeSender{}
	ledgers := &fakeLedgers{info: ledger.Info{
		{LedgerID: 0, Size: 10, Root: "root-0"},
		{LedgerID: 1, Size: 3, Root: "root-1"},
	}}

	replicas := []*replica.Replica{
		replica.New(self, 0),
		replica.New(self, 1),
	}
	ifaces := make([]Replica, len(replicas))
	for i, r := range replicas {
		ifaces[i] = r
	}

	sel := New(zerolog.Nop(), node, ifaces, ledgers, sender, 1)
	return &fixture{sel: sel, node: node, sender: sender, ledgers: ledgers, replicas: replicas}
}

// vote builds a peer's vote for the master instance at view 1 carrying the
// fixture's ledger info.
func (f *fixture) vote(primary string) ViewChangeDone {
	return ViewChangeDone{
		PrimaryName: primary,
		InstanceID:  0,
		ViewNo:      1,
		Ledger:      f.ledgers.info.Copy(),
	}
}

func TestViewChangeStarted(t *testing.T) {
	f := newFixture(t, "n1")

	require.True(t, f.sel.ViewChangeStarted(1))
	assert.Equal(t, uint64(1), f.sel.ViewNo())

	assert.False(t, f.sel.ViewChangeStarted(1), "repeating the current view must be rejected")
	assert.False(t, f.sel.ViewChangeStarted(0), "going back must be rejected")
	assert.Equal(t, uint64(1), f.sel.ViewNo())

	require.True(t, f.sel.ViewChangeStarted(5), "skipping ahead is allowed")
	assert.Equal(t, uint64(5), f.sel.ViewNo())
}

func TestStartSelection_AdoptsAndBroadcasts(t *testing.T) {
	f := newFixture(t, "n1")
	f.sel.SetPreviousMasterPrimary("n1")

	require.True(t, f.sel.ViewChangeStarted(1))
	f.sel.StartSelection()

	// One vote per instance went out, each naming the scheduled primary.
	require.Len(t, f.sender.sent, 2)
	assert.Equal(t, "n2:0", f.sender.sent[0].PrimaryName)
	assert.Equal(t, "n3:1", f.sender.sent[1].PrimaryName)
	for _, msg := range f.sender.sent {
		assert.Equal(t, uint64(1), msg.ViewNo)
		assert.True(t, msg.Ledger.Equal(f.ledgers.info))
	}

	// Both replicas adopted their expected primary without quorum.
	assert.Equal(t, "n2:0", f.replicas[0].PrimaryName())
	assert.Equal(t, "n3:1", f.replicas[1].PrimaryName())
	assert.False(t, f.replicas[0].HasConfirmedPrimary())
	assert.False(t, f.replicas[1].HasConfirmedPrimary())
	assert.Equal(t, 2, f.node.primaryFound)

	// Adopting a master primary lifts the re-election block.
	assert.Empty(t, f.sel.PreviousMasterPrimary())
}

func TestStartSelection_SkipsReplicasWithPrimary(t *testing.T) {
	f := newFixture(t, "n1")
	require.True(t, f.sel.ViewChangeStarted(1))

	f.replicas[0].AdoptPrimary("n2:0")
	f.sel.StartSelection()

	require.Len(t, f.sender.sent, 1, "only the undecided instance should vote")
	assert.Equal(t, uint32(1), f.sender.sent[0].InstanceID)
}

func TestStartSelection_BroadcastFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, "n1")
	f.sender.err = fmt.Errorf("peer unreachable")

	require.True(t, f.sel.ViewChangeStarted(1))
	f.sel.StartSelection()

	// The local vote and adoption still happen; peers recover via catch-up.
	assert.Equal(t, "n2:0", f.replicas[0].PrimaryName())
	assert.Len(t, f.sel.CatchUpMessages(), 2)
}

func TestProcessViewChangeDone_DecidesOnQuorum(t *testing.T) {
	f := newFixture(t, "n1")
	require.True(t, f.sel.ViewChangeStarted(1))
	f.sel.StartSelection() // records n1's own vote

	// Second matching vote, from the expected primary itself: 2 < 2f+1.
	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n2"))
	assert.False(t, f.replicas[0].HasConfirmedPrimary())

	// Third matching vote completes the quorum.
	assert.True(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n3"))
	assert.True(t, f.replicas[0].HasConfirmedPrimary())
	assert.Equal(t, "n2:0", f.replicas[0].PrimaryName())
}

func TestProcessViewChangeDone_RequiresVoteFromExpectedPrimary(t *testing.T) {
	f := newFixture(t, "n1")
	require.True(t, f.sel.ViewChangeStarted(1))
	f.sel.StartSelection()

	// Three voters agree (n1 itself, n3, n4) but n2, the scheduled
	// primary, never voted. Quorum alone must not decide.
	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n3"))
	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n4"))
	assert.False(t, f.replicas[0].HasConfirmedPrimary())
}

func TestProcessViewChangeDone_SplitVotesDoNotDecide(t *testing.T) {
	f := newFixture(t, "n1")
	require.True(t, f.sel.ViewChangeStarted(1))

	other := f.vote("n2:0")
	other.Ledger = ledger.Info{{LedgerID: 0, Size: 999, Root: "diverged"}}

	// 2/2 split on ledger info: four voters, no pair reaches 2f+1.
	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n1"))
	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n2"))
	assert.False(t, f.sel.ProcessViewChangeDone(other, "n3"))
	assert.False(t, f.sel.ProcessViewChangeDone(other, "n4"))
	assert.False(t, f.replicas[0].HasConfirmedPrimary())
}

func TestProcessViewChangeDone_LedgerDivergenceHealedByFourthVote(t *testing.T) {
	f := newFixture(t, "n1")
	require.True(t, f.sel.ViewChangeStarted(1))

	diverged := f.vote("n2:0")
	diverged.Ledger = ledger.Info{{LedgerID: 0, Size: 999, Root: "diverged"}}

	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n2"))
	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n3"))
	assert.False(t, f.sel.ProcessViewChangeDone(diverged, "n4"), "3 voters but only 2 identical pairs")

	assert.True(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n1"), "third identical pair decides")
	assert.True(t, f.replicas[0].HasConfirmedPrimary())
}

func TestProcessViewChangeDone_WrongViewDiscarded(t *testing.T) {
	f := newFixture(t, "n1")
	require.True(t, f.sel.ViewChangeStarted(1))

	stale := f.vote("n2:0")
	stale.ViewNo = 0
	assert.False(t, f.sel.ProcessViewChangeDone(stale, "n2"))

	future := f.vote("n2:0")
	future.ViewNo = 2
	assert.False(t, f.sel.ProcessViewChangeDone(future, "n2"))

	// Neither discard consumed n2's right to vote in the current view.
	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n2"))
	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n3"))
	assert.True(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n4"))
}

func TestProcessViewChangeDone_UnknownInstanceDiscarded(t *testing.T) {
	f := newFixture(t, "n1")
	require.True(t, f.sel.ViewChangeStarted(1))

	msg := f.vote("n2:5")
	msg.InstanceID = 5
	assert.False(t, f.sel.ProcessViewChangeDone(msg, "n2"))
}

func TestProcessViewChangeDone_DuplicateVoterDiscarded(t *testing.T) {
	f := newFixture(t, "n1")
	require.True(t, f.sel.ViewChangeStarted(1))

	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n2"))
	// Identical repeat and conflicting repeat are both duplicates.
	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n2"))
	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n3:0"), "n2"))

	// n2 still counts exactly once: two more voters are needed.
	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n3"))
	assert.True(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n4"))
}

func TestProcessViewChangeDone_PreviousMasterPrimaryBlocked(t *testing.T) {
	f := newFixture(t, "n1")
	require.True(t, f.sel.ViewChangeStarted(1))
	f.sel.SetPreviousMasterPrimary("n2")

	// n2 is both the demoted master primary and the scheduled primary for
	// view 1, so every vote proposing it is discarded and no quorum forms.
	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n2"))
	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n3"))
	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n4"))
	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n1"))
	assert.False(t, f.replicas[0].HasConfirmedPrimary())
}

func TestProcessViewChangeDone_PreviousMasterPrimaryOnlyBlocksMaster(t *testing.T) {
	f := newFixture(t, "n1")
	require.True(t, f.sel.ViewChangeStarted(1))
	f.sel.SetPreviousMasterPrimary("n3")

	// n3 is blocked from the master instance but remains electable for
	// the backup group, where the schedule puts it at view 1.
	backup := ViewChangeDone{PrimaryName: "n3:1", InstanceID: 1, ViewNo: 1, Ledger: f.ledgers.info.Copy()}
	assert.False(t, f.sel.ProcessViewChangeDone(backup, "n2"))
	assert.False(t, f.sel.ProcessViewChangeDone(backup, "n3"))
	assert.True(t, f.sel.ProcessViewChangeDone(backup, "n4"))
	assert.True(t, f.replicas[1].HasConfirmedPrimary())
	assert.Equal(t, "n3:1", f.replicas[1].PrimaryName())

	// The block itself stays in place until a new master primary is in.
	assert.Equal(t, "n3", f.sel.PreviousMasterPrimary())
}

func TestProcessViewChangeDone_MajorityAgainstSchedule(t *testing.T) {
	f := newFixture(t, "n1")
	require.True(t, f.sel.ViewChangeStarted(1))

	// All peers, the scheduled primary included, push a primary the
	// round-robin schedule does not name for view 1.
	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n3:0"), "n2"))
	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n3:0"), "n3"))
	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n3:0"), "n4"))
	assert.False(t, f.replicas[0].HasConfirmedPrimary())
	assert.False(t, f.replicas[0].HasPrimary())
}

func TestProcessViewChangeDone_AlreadyDecidedInstance(t *testing.T) {
	f := newFixture(t, "n1")
	require.True(t, f.sel.ViewChangeStarted(1))

	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n2"))
	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n3"))
	assert.True(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n4"))

	// A late straggler vote never reports a second decision.
	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n1"))
	assert.Equal(t, "n2:0", f.replicas[0].PrimaryName())
}

func TestProcessViewChangeDone_FreshVotesAfterViewReset(t *testing.T) {
	f := newFixture(t, "n1")
	require.True(t, f.sel.ViewChangeStarted(1))
	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n2"))
	assert.False(t, f.sel.ProcessViewChangeDone(f.vote("n2:0"), "n3"))

	require.True(t, f.sel.ViewChangeStarted(2))
	f.replicas[0].ClearPrimary()

	// View 2 schedules n3 as master primary; the same voters are fresh.
	v2 := ViewChangeDone{PrimaryName: "n3:0", InstanceID: 0, ViewNo: 2, Ledger: f.ledgers.info.Copy()}
	assert.False(t, f.sel.ProcessViewChangeDone(v2, "n2"))
	assert.False(t, f.sel.ProcessViewChangeDone(v2, "n3"))
	assert.True(t, f.sel.ProcessViewChangeDone(v2, "n4"))
	assert.Equal(t, "n3:0", f.replicas[0].PrimaryName())
}

func TestCatchUpMessages(t *testing.T) {
	f := newFixture(t, "n1")

	assert.Empty(t, f.sel.CatchUpMessages(), "nothing to replay before the first selection")

	require.True(t, f.sel.ViewChangeStarted(1))
	f.sel.StartSelection()

	msgs := f.sel.CatchUpMessages()
	require.Len(t, msgs, 2)
	assert.Equal(t, uint32(0), msgs[0].InstanceID)
	assert.Equal(t, "n2:0", msgs[0].PrimaryName)
	assert.Equal(t, uint32(1), msgs[1].InstanceID)
	assert.Equal(t, "n3:1", msgs[1].PrimaryName)
	for _, msg := range msgs {
		assert.Equal(t, uint64(1), msg.ViewNo)
		assert.True(t, msg.Ledger.Equal(f.ledgers.info))
	}
}

// A lagging node that missed every broadcast still reaches the same
// decision from replayed catch-up votes.
func TestCatchUp_ReconstructsDecision(t *testing.T) {
	peers := map[string]*fixture{
		"n1": newFixture(t, "n1"),
		"n2": newFixture(t, "n2"),
		"n3": newFixture(t, "n3"),
	}
	for _, p := range peers {
		require.True(t, p.sel.ViewChangeStarted(1))
		p.sel.StartSelection()
	}

	lagged := newFixture(t, "n4")
	require.True(t, lagged.sel.ViewChangeStarted(1))
	lagged.sel.StartSelection()

	decided := false
	for _, name := range []string{"n1", "n2", "n3"} {
		for _, msg := range peers[name].sel.CatchUpMessages() {
			if lagged.sel.ProcessViewChangeDone(msg, name) {
				decided = true
			}
		}
	}
	assert.True(t, decided)
	assert.True(t, lagged.replicas[0].HasConfirmedPrimary())
	assert.True(t, lagged.replicas[1].HasConfirmedPrimary())
	assert.Equal(t, "n2:0", lagged.replicas[0].PrimaryName())
	assert.Equal(t, "n3:1", lagged.replicas[1].PrimaryName())
}
