package it

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"viewchange/internal/config"
	viewchangepb "viewchange/internal/gen/api"
	"viewchange/internal/ledger"
	"viewchange/internal/node"
	"viewchange/internal/selector"
)

const dialTimeout = 5 * time.Second

// Cluster is an in-process test cluster: every node runs its real gRPC
// server on a loopback listener, so votes travel over the wire exactly as
// they would in production.
type Cluster struct {
	Nodes []*TestNode
}

// TestNode is one cluster member plus a test-side client into its
// Election service.
type TestNode struct {
	Name string
	Addr string
	Node *node.Node

	conn   *grpc.ClientConn
	client viewchangepb.ElectionClient
}

// testLedgers is the ledger set every node registers. All nodes carry
// identical summaries so their votes bucket together.
var testLedgers = []ledger.Summary{
	{LedgerID: 0, Size: 10, Root: "pool-root"},
	{LedgerID: 1, Size: 3, Root: "config-root"},
}

// NewCluster starts size nodes named n1..nN on ephemeral loopback ports.
// Listeners are opened before any node starts so the full roster is known
// up front. The cluster is torn down via t.Cleanup.
func NewCluster(t *testing.T, size, f, instances int) *Cluster {
	t.Helper()

	listeners := make([]net.Listener, size)
	peers := make([]config.Peer, size)
	for i := 0; i < size; i++ {
		lis, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("failed to open listener: %v", err)
		}
		listeners[i] = lis
		peers[i] = config.Peer{
			Name: fmt.Sprintf("n%d", i+1),
			Addr: lis.Addr().String(),
		}
	}

	c := &Cluster{}
	for i := 0; i < size; i++ {
		cfg := &config.Config{
			NodeName:   peers[i].Name,
			ListenAddr: peers[i].Addr,
			Peers:      peers,
			F:          f,
			Instances:  instances,
		}
		n, err := node.NewNode(cfg, zerolog.Nop())
		if err != nil {
			t.Fatalf("failed to create node %s: %v", cfg.NodeName, err)
		}
		for _, s := range testLedgers {
			if err := n.RegisterLedger(s); err != nil {
				t.Fatalf("failed to register ledger on %s: %v", cfg.NodeName, err)
			}
		}

		lis := listeners[i]
		go func() {
			_ = n.Serve(lis)
		}()

		c.Nodes = append(c.Nodes, &TestNode{
			Name: peers[i].Name,
			Addr: peers[i].Addr,
			Node: n,
		})
	}

	for _, tn := range c.Nodes {
		ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
		conn, err := grpc.DialContext(ctx, tn.Addr,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithBlock(),
		)
		cancel()
		if err != nil {
			t.Fatalf("failed to dial node %s: %v", tn.Name, err)
		}
		tn.conn = conn
		tn.client = viewchangepb.NewElectionClient(conn)
	}

	t.Cleanup(func() {
		for _, tn := range c.Nodes {
			if tn.conn != nil {
				tn.conn.Close()
			}
			tn.Node.Stop()
		}
	})
	return c
}

// Client returns the test-side Election client of a node.
func (tn *TestNode) Client() viewchangepb.ElectionClient {
	return tn.client
}

// StartViewChange triggers the view change on every node in roster order.
func (c *Cluster) StartViewChange(t *testing.T, viewNo uint64) {
	t.Helper()
	for _, tn := range c.Nodes {
		if err := tn.Node.StartViewChange(viewNo); err != nil {
			t.Fatalf("view change on %s failed: %v", tn.Name, err)
		}
	}
}

// CatchUpAll makes every node pull every peer's votes over the CatchUp
// RPC and deliver them locally, healing any broadcast each node missed
// because it had not advanced its view yet.
func (c *Cluster) CatchUpAll(t *testing.T) {
	t.Helper()
	for _, tn := range c.Nodes {
		for _, peer := range c.Nodes {
			if peer.Name == tn.Name {
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
			resp, err := peer.client.CatchUp(ctx, &viewchangepb.CatchUpRequest{SenderName: tn.Name})
			cancel()
			if err != nil {
				t.Fatalf("catch-up from %s to %s failed: %v", peer.Name, tn.Name, err)
			}
			for _, m := range resp.GetMessages() {
				tn.Node.SubmitViewChangeDone(fromProto(m), peer.Name)
			}
		}
	}
}

func fromProto(m *viewchangepb.ViewChangeDoneMessage) selector.ViewChangeDone {
	info := make(ledger.Info, 0, len(m.GetLedgerInfo()))
	for _, s := range m.GetLedgerInfo() {
		info = append(info, ledger.Summary{
			LedgerID: s.GetLedgerId(),
			Size:     s.GetSize(),
			Root:     s.GetRoot(),
		})
	}
	return selector.ViewChangeDone{
		PrimaryName: m.GetNewPrimaryName(),
		InstanceID:  m.GetInstanceId(),
		ViewNo:      m.GetViewNo(),
		Ledger:      info,
	}
}
