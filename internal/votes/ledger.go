package votes

import (
	"strconv"

	"viewchange/internal/ledger"
)

// Record is the content of one vote: the claimed new primary and the
// ledger state the voter expects it to lead from.
type Record struct {
	Primary string
	Ledger  ledger.Info
}

// Key returns a deterministic serialization of the record. Records bucket
// together under the same key iff primary and ledger info are identical.
// The primary name is quoted so an untrusted name cannot shift the
// boundary between the two fields.
func (r Record) Key() string {
	return strconv.Quote(r.Primary) + "#" + r.Ledger.Key()
}

// Ledger maps instance id -> voter replica name -> vote record.
type Ledger struct {
	byInstance map[uint32]map[string]Record
}

// NewLedger creates an empty vote ledger.
func NewLedger() *Ledger {
	return &Ledger{
		byInstance: make(map[uint32]map[string]Record),
	}
}

// Record inserts the voter's vote for an instance. Returns false if the
// voter already has a vote recorded for this instance; the existing vote
// is never overwritten.
func (l *Ledger) Record(instanceID uint32, voter string, rec Record) bool {
	byVoter, ok := l.byInstance[instanceID]
	if !ok {
		byVoter = make(map[string]Record)
		l.byInstance[instanceID] = byVoter
	} else if _, dup := byVoter[voter]; dup {
		return false
	}
	byVoter[voter] = rec
	return true
}

// HasVoteFrom reports whether the voter has a vote recorded for the instance.
func (l *Ledger) HasVoteFrom(instanceID uint32, voter string) bool {
	_, ok := l.byInstance[instanceID][voter]
	return ok
}

// Get returns the voter's recorded vote for the instance, if any.
func (l *Ledger) Get(instanceID uint32, voter string) (Record, bool) {
	rec, ok := l.byInstance[instanceID][voter]
	return rec, ok
}

// VotesFor returns a snapshot of all votes recorded for the instance.
func (l *Ledger) VotesFor(instanceID uint32) []Record {
	byVoter := l.byInstance[instanceID]
	out := make([]Record, 0, len(byVoter))
	for _, rec := range byVoter {
		out = append(out, rec)
	}
	return out
}

// VoterCount returns the number of distinct voters for the instance.
func (l *Ledger) VoterCount(instanceID uint32) int {
	return len(l.byInstance[instanceID])
}

// MostCommon returns the most frequent (primary, ledger) pair among the
// instance's votes and its count. When two pairs tie, the one with the
// lexicographically smallest Key wins, so every node breaks ties the same
// way. Returns a zero Record and 0 if no votes are recorded.
func (l *Ledger) MostCommon(instanceID uint32) (Record, int) {
	counts := make(map[string]int)
	recs := make(map[string]Record)
	for _, rec := range l.byInstance[instanceID] {
		k := rec.Key()
		counts[k]++
		recs[k] = rec
	}

	var bestKey string
	best := 0
	for k, n := range counts {
		if n > best || (n == best && k < bestKey) {
			bestKey = k
			best = n
		}
	}
	if best == 0 {
		return Record{}, 0
	}
	return recs[bestKey], best
}

// ResetAll clears every instance's votes. Invoked once per view-change
// start, strictly before any vote of the new view is recorded.
func (l *Ledger) ResetAll() {
	l.byInstance = make(map[uint32]map[string]Record)
}
