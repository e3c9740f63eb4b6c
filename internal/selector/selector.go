package selector

import (
	"github.com/rs/zerolog"

	"viewchange/internal/ledger"
	"viewchange/internal/quorum"
	"viewchange/internal/replica"
	"viewchange/internal/schedule"
	"viewchange/internal/votes"
)

// Node is the roster and notification surface the selector consumes.
type Node interface {
	// Name returns this node's own name.
	Name() string
	// TotalNodes returns the roster size.
	TotalNodes() int
	// NameByRank resolves a rank to a node name.
	NameByRank(rank int) (string, error)
	// PrimaryFound is invoked whenever an instance gains a primary.
	PrimaryFound()
}

// Replica is the per-instance primary state the selector drives.
type Replica interface {
	Name() string
	PrimaryName() string
	HasPrimary() bool
	HasConfirmedPrimary() bool
	AdoptPrimary(name string)
	ConfirmPrimary(name string)
}

// LedgerManager supplies the ordered ledger summaries for outbound votes.
type LedgerManager interface {
	Summaries() ledger.Info
}

// Sender broadcasts a vote to all peer nodes.
type Sender interface {
	Broadcast(msg ViewChangeDone) error
}

// Selector implements round-robin primary selection. It assumes all nodes
// of the roster are up; liveness across crashed prospective primaries is
// the view-change trigger's problem, not this component's.
type Selector struct {
	log      zerolog.Logger
	node     Node
	replicas []Replica
	ledgers  LedgerManager
	sender   Sender
	f        int

	viewNo                uint64
	previousMasterPrimary string
	votes                 *votes.Ledger
}

var _ Decider = (*Selector)(nil)

// New creates a selector over the given collaborators. The replicas slice
// is indexed by instance id; index 0 is the master group. f is the
// fault-tolerance bound supplied by the node's configuration.
func New(log zerolog.Logger, node Node, replicas []Replica, ledgers LedgerManager, sender Sender, f int) *Selector {
	return &Selector{
		log:      log.With().Str("component", "primary-selector").Logger(),
		node:     node,
		replicas: replicas,
		ledgers:  ledgers,
		sender:   sender,
		f:        f,
		votes:    votes.NewLedger(),
	}
}

// ViewNo returns the current view number.
func (s *Selector) ViewNo() uint64 {
	return s.viewNo
}

// PreviousMasterPrimary returns the node name of the master primary of the
// preceding view, or "" once a new master primary is in place.
func (s *Selector) PreviousMasterPrimary() string {
	return s.previousMasterPrimary
}

// SetPreviousMasterPrimary records the demoted master primary's node name
// so it cannot be immediately re-elected for the master instance.
func (s *Selector) SetPreviousMasterPrimary(nodeName string) {
	s.previousMasterPrimary = nodeName
}

// ViewChangeStarted advances to viewNo and wipes all accumulated votes.
// Only strictly increasing views are accepted. The caller must invoke this
// before delivering any vote belonging to the new view.
func (s *Selector) ViewChangeStarted(viewNo uint64) bool {
	if viewNo <= s.viewNo {
		s.log.Warn().
			Uint64("requested_view", viewNo).
			Uint64("current_view", s.viewNo).
			Msg("ignoring view change request for non-increasing view")
		return false
	}
	s.viewNo = viewNo
	s.votes.ResetAll()
	s.log.Info().Uint64("view", viewNo).Msg("view change started")
	return true
}

// StartSelection votes for the expected primary of every instance that has
// no working primary yet: the vote is broadcast, self-recorded, and the
// expected primary adopted locally without waiting for quorum. Selection
// always runs for all instances at once; per-instance selection is not
// supported.
func (s *Selector) StartSelection() {
	s.log.Debug().Uint64("view", s.viewNo).Msg("starting primary selection")

	for instID, rep := range s.replicas {
		instanceID := uint32(instID)
		if rep.HasPrimary() {
			s.log.Debug().
				Str("replica", rep.Name()).
				Str("primary", rep.PrimaryName()).
				Msg("replica already has a primary")
			continue
		}

		expected, err := s.expectedPrimary(instanceID)
		if err != nil {
			s.log.Warn().Err(err).
				Uint32("instance", instanceID).
				Msg("cannot compute expected primary")
			continue
		}

		info := s.ledgers.Summaries()
		msg := ViewChangeDone{
			PrimaryName: expected,
			InstanceID:  instanceID,
			ViewNo:      s.viewNo,
			Ledger:      info,
		}
		if err := s.sender.Broadcast(msg); err != nil {
			// A partial broadcast is recoverable: peers fetch missed
			// votes through catch-up.
			s.log.Warn().Err(err).
				Uint32("instance", instanceID).
				Msg("view change done broadcast incomplete")
		}
		selfVoter := replica.GenerateName(s.node.Name(), instanceID)
		s.votes.Record(instanceID, selfVoter, votes.Record{Primary: expected, Ledger: info})

		rep.AdoptPrimary(expected)
		s.node.PrimaryFound()

		if isMasterInstance(instanceID) {
			s.previousMasterPrimary = ""
		}

		s.log.Info().
			Str("replica", rep.Name()).
			Str("primary", expected).
			Uint32("instance", instanceID).
			Uint64("view", s.viewNo).
			Msg("selected primary")
	}
}

// ProcessViewChangeDone handles one inbound vote. Every validation failure
// is a discard, not an error: the vote is logged with a reason and false
// is returned. True is returned only when this vote completed a quorum
// decision for its instance, in which case the majority primary has been
// confirmed on the replica.
func (s *Selector) ProcessViewChangeDone(msg ViewChangeDone, sender string) bool {
	log := s.log.With().
		Str("sender", sender).
		Uint32("instance", msg.InstanceID).
		Str("claimed_primary", msg.PrimaryName).
		Logger()
	log.Debug().Uint64("view", msg.ViewNo).Msg("processing view change done")

	if msg.ViewNo != s.viewNo {
		log.Info().
			Uint64("msg_view", msg.ViewNo).
			Uint64("current_view", s.viewNo).
			Msg("discarding vote for wrong view")
		return false
	}

	if int(msg.InstanceID) >= len(s.replicas) {
		log.Warn().Msg("discarding vote for unknown instance")
		return false
	}

	if isMasterInstance(msg.InstanceID) &&
		s.previousMasterPrimary != "" &&
		replica.NodeNameOf(msg.PrimaryName) == s.previousMasterPrimary {
		log.Warn().Msg("discarding vote for node that was master primary in previous view")
		return false
	}

	voter := replica.GenerateName(sender, msg.InstanceID)
	rec := votes.Record{Primary: msg.PrimaryName, Ledger: msg.Ledger}
	if !s.votes.Record(msg.InstanceID, voter, rec) {
		log.Info().Str("voter", voter).Msg("discarding duplicate vote")
		return false
	}

	rep := s.replicas[msg.InstanceID]
	if rep.HasConfirmedPrimary() {
		log.Debug().
			Str("primary", rep.PrimaryName()).
			Msg("instance already decided its primary")
		return false
	}

	required := quorum.Strong(s.f)
	voters := s.votes.VoterCount(msg.InstanceID)
	if voters < required {
		log.Debug().
			Int("have", voters).
			Int("need", required).
			Msg("no view change quorum yet")
		return false
	}

	expected, err := s.expectedPrimary(msg.InstanceID)
	if err != nil {
		log.Warn().Err(err).Msg("cannot compute expected primary")
		return false
	}
	if !s.votes.HasVoteFrom(msg.InstanceID, expected) {
		log.Debug().
			Str("next_primary", expected).
			Msg("no vote from the next primary yet")
		return false
	}

	majority, count := s.votes.MostCommon(msg.InstanceID)
	if count < required {
		log.Debug().
			Int("have", count).
			Int("need", required).
			Msg("no acceptable primary: votes do not agree")
		return false
	}

	if majority.Primary != expected {
		// Peers are not converging on the deterministic schedule. This
		// points at a faulty or malicious peer set; state stays intact
		// and the instance remains undecided.
		log.Error().
			Str("expected_primary", expected).
			Str("majority_primary", majority.Primary).
			Uint64("view", s.viewNo).
			Msg("majority declared a primary that contradicts the round-robin schedule")
		return false
	}

	rep.ConfirmPrimary(majority.Primary)
	s.node.PrimaryFound()
	if isMasterInstance(msg.InstanceID) {
		s.previousMasterPrimary = ""
	}
	log.Info().
		Str("primary", majority.Primary).
		Int("votes", count).
		Uint64("view", s.viewNo).
		Msg("confirmed primary by quorum")
	return true
}

// CatchUpMessages returns, for every instance this node has voted on in
// the current view, a ViewChangeDone rebuilt from the recorded self-vote,
// for replay to a lagging or newly joined peer. Before the first view
// change there is nothing to replay.
func (s *Selector) CatchUpMessages() []ViewChangeDone {
	var msgs []ViewChangeDone
	for instID := range s.replicas {
		instanceID := uint32(instID)
		selfVoter := replica.GenerateName(s.node.Name(), instanceID)
		rec, ok := s.votes.Get(instanceID, selfVoter)
		if !ok {
			continue
		}
		msgs = append(msgs, ViewChangeDone{
			PrimaryName: rec.Primary,
			InstanceID:  instanceID,
			ViewNo:      s.viewNo,
			Ledger:      rec.Ledger,
		})
	}
	return msgs
}

func (s *Selector) expectedPrimary(instanceID uint32) (string, error) {
	return schedule.ExpectedPrimary(s.viewNo, instanceID, s.node.TotalNodes(), s.node.NameByRank)
}

func isMasterInstance(instanceID uint32) bool {
	return instanceID == replica.MasterInstance
}
