package replica

// MasterInstance is the instance id of the master replica group.
const MasterInstance uint32 = 0

// Replica holds one instance's primary assignment on this node.
//
// A primary can be held in two states: adopted (this node's own
// deterministic expectation, taken on optimistically when selection
// starts) and confirmed (a strong quorum of peers agreed on the same
// primary). Vote processing stops for an instance once its primary is
// confirmed; an adopted-only primary still accepts votes.
type Replica struct {
	nodeName   string
	instanceID uint32
	primary    string
	confirmed  bool
}

// New creates the replica state for one instance of the given node.
func New(nodeName string, instanceID uint32) *Replica {
	return &Replica{
		nodeName:   nodeName,
		instanceID: instanceID,
	}
}

// Name returns this replica's own name, e.g. "Alpha:0".
func (r *Replica) Name() string {
	return GenerateName(r.nodeName, r.instanceID)
}

// InstanceID returns the instance this replica belongs to.
func (r *Replica) InstanceID() uint32 {
	return r.instanceID
}

// IsMaster reports whether this replica belongs to the master group.
func (r *Replica) IsMaster() bool {
	return r.instanceID == MasterInstance
}

// PrimaryName returns the current working primary, or "" if none.
func (r *Replica) PrimaryName() string {
	return r.primary
}

// HasPrimary reports whether a working primary is set, adopted or confirmed.
func (r *Replica) HasPrimary() bool {
	return r.primary != ""
}

// HasConfirmedPrimary reports whether the primary was confirmed by quorum.
func (r *Replica) HasConfirmedPrimary() bool {
	return r.confirmed
}

// AdoptPrimary sets the working primary without quorum confirmation.
func (r *Replica) AdoptPrimary(name string) {
	r.primary = name
	r.confirmed = false
}

// ConfirmPrimary sets the primary as agreed by a strong quorum.
func (r *Replica) ConfirmPrimary(name string) {
	r.primary = name
	r.confirmed = true
}

// ClearPrimary removes the primary assignment. Called when a view change
// starts, before a new selection round.
func (r *Replica) ClearPrimary() {
	r.primary = ""
	r.confirmed = false
}
