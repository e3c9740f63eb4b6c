package node

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"viewchange/internal/config"
	viewchangepb "viewchange/internal/gen/api"
	"viewchange/internal/ledger"
	"viewchange/internal/replica"
	"viewchange/internal/selector"
)

const (
	// broadcastTimeout bounds each per-peer vote delivery.
	broadcastTimeout = 2 * time.Second
)

// Node wires one consensus node's primary selection together: the ordered
// peer roster (rank table), one replica per instance, the ledger registry,
// the selector, and the gRPC transport. The selector's single-threaded
// processing model is preserved by funnelling every protocol event -
// inbound votes, view-change triggers, catch-up reads - through one mutex.
type Node struct {
	name       string
	listenAddr string
	log        zerolog.Logger

	peers     []config.Peer
	rankOf    map[string]int
	clientMgr *ClientManager

	grpcServer *grpc.Server

	mu       sync.Mutex
	replicas []*replica.Replica
	ledgers  *ledger.Manager
	selector *selector.Selector
	// outbound queues votes the selector emits under mu; StartViewChange
	// flushes it once the mutex is released.
	outbound []selector.ViewChangeDone

	// viewNo mirrors the selector's view for lock-free observability.
	viewNo atomic.Uint64
}

// NewNode creates a node from its configuration. The config must have
// defaults applied and validate cleanly.
func NewNode(cfg *config.Config, log zerolog.Logger) (*Node, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	n := &Node{
		name:       cfg.NodeName,
		listenAddr: cfg.ListenAddr,
		log:        log.With().Str("node", cfg.NodeName).Logger(),
		peers:      cfg.Peers,
		rankOf:     make(map[string]int, len(cfg.Peers)),
		clientMgr:  NewClientManager(),
		ledgers:    ledger.NewManager(),
	}
	for i, p := range cfg.Peers {
		n.rankOf[p.Name] = i
	}

	n.replicas = make([]*replica.Replica, cfg.Instances)
	reps := make([]selector.Replica, cfg.Instances)
	for i := range n.replicas {
		r := replica.New(cfg.NodeName, uint32(i))
		n.replicas[i] = r
		reps[i] = r
	}

	n.selector = selector.New(n.log, n, reps, n.ledgers, n, cfg.F)
	return n, nil
}

// RegisterLedger adds a ledger to the node's registry. Must be called
// before Start; the registration order is fixed for the node's lifetime.
func (n *Node) RegisterLedger(s ledger.Summary) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.ledgers.Register(s)
}

// UpdateLedger replaces a registered ledger's summary.
func (n *Node) UpdateLedger(s ledger.Summary) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.ledgers.UpdateSummary(s)
}

// Start listens on the configured address and serves the Election service.
// It blocks until the server stops.
func (n *Node) Start() error {
	lis, err := net.Listen("tcp", n.listenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", n.listenAddr, err)
	}
	return n.Serve(lis)
}

// Serve runs the gRPC server on an existing listener.
func (n *Node) Serve(lis net.Listener) error {
	n.grpcServer = grpc.NewServer()
	viewchangepb.RegisterElectionServer(n.grpcServer, NewElectionServer(n, n.log))

	// Enable gRPC reflection for grpcurl
	reflection.Register(n.grpcServer)

	n.log.Info().Str("addr", lis.Addr().String()).Msg("starting node")

	if err := n.grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Stop gracefully stops the node.
func (n *Node) Stop() {
	if n.grpcServer != nil {
		n.log.Info().Msg("stopping node")
		n.grpcServer.GracefulStop()
	}
	n.clientMgr.Close()
}

// StartViewChange moves the node into the given view and runs primary
// selection for all instances. The current master primary, if any, is
// demoted into the selector's anti-flap state and every replica's primary
// is cleared before the view advances. The selector's outbound votes are
// sent only after the node mutex is released, so concurrently triggered
// peers never wait on each other's mutex through the vote handlers.
func (n *Node) StartViewChange(viewNo uint64) error {
	n.mu.Lock()

	if mp := n.replicas[replica.MasterInstance].PrimaryName(); mp != "" {
		n.selector.SetPreviousMasterPrimary(replica.NodeNameOf(mp))
	}
	for _, r := range n.replicas {
		r.ClearPrimary()
	}

	if !n.selector.ViewChangeStarted(viewNo) {
		cur := n.selector.ViewNo()
		n.mu.Unlock()
		return fmt.Errorf("view change to %d rejected at view %d", viewNo, cur)
	}
	n.viewNo.Store(viewNo)
	n.selector.StartSelection()
	outbound := n.outbound
	n.outbound = nil
	n.mu.Unlock()

	for _, msg := range outbound {
		if err := n.fanOut(msg); err != nil {
			// A partial broadcast is recoverable: peers fetch missed
			// votes through catch-up.
			n.log.Warn().Err(err).
				Uint32("instance", msg.InstanceID).
				Msg("view change done broadcast incomplete")
		}
	}
	return nil
}

// SubmitViewChangeDone delivers one inbound vote to the selector.
func (n *Node) SubmitViewChangeDone(msg selector.ViewChangeDone, sender string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.selector.ProcessViewChangeDone(msg, sender)
}

// CatchUpMessages returns this node's own votes of the current view.
func (n *Node) CatchUpMessages() []selector.ViewChangeDone {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.selector.CatchUpMessages()
}

// ViewNo returns the node's current view number.
func (n *Node) ViewNo() uint64 {
	return n.viewNo.Load()
}

// ConfirmedPrimary returns the quorum-confirmed primary of an instance.
func (n *Node) ConfirmedPrimary(instanceID uint32) (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if int(instanceID) >= len(n.replicas) {
		return "", false
	}
	r := n.replicas[instanceID]
	if !r.HasConfirmedPrimary() {
		return "", false
	}
	return r.PrimaryName(), true
}

// WorkingPrimary returns the adopted-or-confirmed primary of an instance.
func (n *Node) WorkingPrimary(instanceID uint32) (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if int(instanceID) >= len(n.replicas) {
		return "", false
	}
	r := n.replicas[instanceID]
	if !r.HasPrimary() {
		return "", false
	}
	return r.PrimaryName(), true
}

// Name implements selector.Node.
func (n *Node) Name() string {
	return n.name
}

// TotalNodes implements selector.Node.
func (n *Node) TotalNodes() int {
	return len(n.peers)
}

// NameByRank implements selector.Node.
func (n *Node) NameByRank(rank int) (string, error) {
	if rank < 0 || rank >= len(n.peers) {
		return "", fmt.Errorf("rank %d outside roster of %d nodes", rank, len(n.peers))
	}
	return n.peers[rank].Name, nil
}

// PrimaryFound implements selector.Node.
func (n *Node) PrimaryFound() {
	n.log.Debug().Msg("an instance gained a primary")
}

// Broadcast implements selector.Sender. The selector invokes it while the
// node mutex is held, so the vote is only queued; StartViewChange flushes
// the queue after unlocking.
func (n *Node) Broadcast(msg selector.ViewChangeDone) error {
	n.outbound = append(n.outbound, msg)
	return nil
}

// fanOut delivers one vote to every peer except this node. Per-peer
// failures are collected and reported together.
func (n *Node) fanOut(msg selector.ViewChangeDone) error {
	req := viewChangeDoneToProto(msg, n.name)

	var result *multierror.Error
	for _, p := range n.peers {
		if p.Name == n.name {
			continue
		}
		client, err := n.clientMgr.GetClient(p.Addr)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("peer %s: %w", p.Name, err))
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), broadcastTimeout)
		_, err = client.SubmitViewChangeDone(ctx, req)
		cancel()
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("peer %s: %w", p.Name, err))
		}
	}
	return result.ErrorOrNil()
}
