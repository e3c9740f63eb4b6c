package node

import (
	viewchangepb "viewchange/internal/gen/api"
	"viewchange/internal/ledger"
	"viewchange/internal/selector"
)

func ledgerInfoToProto(info ledger.Info) []*viewchangepb.LedgerSummary {
	out := make([]*viewchangepb.LedgerSummary, 0, len(info))
	for _, s := range info {
		out = append(out, &viewchangepb.LedgerSummary{
			LedgerId: s.LedgerID,
			Size:     s.Size,
			Root:     s.Root,
		})
	}
	return out
}

func protoToLedgerInfo(summaries []*viewchangepb.LedgerSummary) ledger.Info {
	if len(summaries) == 0 {
		return nil
	}
	out := make(ledger.Info, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, ledger.Summary{
			LedgerID: s.GetLedgerId(),
			Size:     s.GetSize(),
			Root:     s.GetRoot(),
		})
	}
	return out
}

func viewChangeDoneMessageToProto(msg selector.ViewChangeDone) *viewchangepb.ViewChangeDoneMessage {
	return &viewchangepb.ViewChangeDoneMessage{
		NewPrimaryName: msg.PrimaryName,
		InstanceId:     msg.InstanceID,
		ViewNo:         msg.ViewNo,
		LedgerInfo:     ledgerInfoToProto(msg.Ledger),
	}
}

func viewChangeDoneToProto(msg selector.ViewChangeDone, sender string) *viewchangepb.ViewChangeDoneRequest {
	return &viewchangepb.ViewChangeDoneRequest{
		SenderName: sender,
		Message:    viewChangeDoneMessageToProto(msg),
	}
}

func protoToViewChangeDone(m *viewchangepb.ViewChangeDoneMessage) selector.ViewChangeDone {
	return selector.ViewChangeDone{
		PrimaryName: m.GetNewPrimaryName(),
		InstanceID:  m.GetInstanceId(),
		ViewNo:      m.GetViewNo(),
		Ledger:      protoToLedgerInfo(m.GetLedgerInfo()),
	}
}
