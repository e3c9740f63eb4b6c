package node

import (
	"context"

	"github.com/rs/zerolog"

	viewchangepb "viewchange/internal/gen/api"
)

// ElectionServer implements the Election gRPC service. It is a thin
// routing layer: sender identity and message are unpacked and handed to
// the node, which serializes delivery into the selector.
type ElectionServer struct {
	viewchangepb.UnimplementedElectionServer
	node *Node
	log  zerolog.Logger
}

// NewElectionServer creates the Election service bound to a node.
func NewElectionServer(n *Node, log zerolog.Logger) *ElectionServer {
	return &ElectionServer{
		node: n,
		log:  log.With().Str("component", "election-server").Logger(),
	}
}

// SubmitViewChangeDone handles one inbound vote from a peer.
func (s *ElectionServer) SubmitViewChangeDone(ctx context.Context, req *viewchangepb.ViewChangeDoneRequest) (*viewchangepb.ViewChangeDoneResponse, error) {
	if req.GetSenderName() == "" || req.GetMessage() == nil {
		s.log.Warn().Msg("dropping malformed view change done request")
		return &viewchangepb.ViewChangeDoneResponse{Accepted: false}, nil
	}

	msg := protoToViewChangeDone(req.GetMessage())
	accepted := s.node.SubmitViewChangeDone(msg, req.GetSenderName())
	return &viewchangepb.ViewChangeDoneResponse{Accepted: accepted}, nil
}

// CatchUp replays this node's own votes of the current view to a lagging
// or newly joined peer.
func (s *ElectionServer) CatchUp(ctx context.Context, req *viewchangepb.CatchUpRequest) (*viewchangepb.CatchUpResponse, error) {
	msgs := s.node.CatchUpMessages()
	s.log.Debug().
		Str("peer", req.GetSenderName()).
		Int("messages", len(msgs)).
		Msg("serving catch-up request")

	resp := &viewchangepb.CatchUpResponse{
		Messages: make([]*viewchangepb.ViewChangeDoneMessage, 0, len(msgs)),
	}
	for _, m := range msgs {
		resp.Messages = append(resp.Messages, viewChangeDoneMessageToProto(m))
	}
	return resp, nil
}
