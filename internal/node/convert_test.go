package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	viewchangepb "viewchange/internal/gen/api"
	"viewchange/internal/ledger"
	"viewchange/internal/selector"
)

func TestLedgerInfoConversion(t *testing.T) {
	info := ledger.Info{
		{LedgerID: 0, Size: 10, Root: "root-0"},
		{LedgerID: 2, Size: 7, Root: "root-2"},
	}

	got := protoToLedgerInfo(ledgerInfoToProto(info))
	assert.True(t, got.Equal(info), "conversion must preserve order and content")

	assert.Nil(t, protoToLedgerInfo(nil))
	assert.Nil(t, protoToLedgerInfo([]*viewchangepb.LedgerSummary{}))
}

func TestViewChangeDoneConversion(t *testing.T) {
	msg := selector.ViewChangeDone{
		PrimaryName: "n2:0",
		InstanceID:  0,
		ViewNo:      3,
		Ledger:      ledger.Info{{LedgerID: 0, Size: 10, Root: "root-0"}},
	}

	req := viewChangeDoneToProto(msg, "n1")
	assert.Equal(t, "n1", req.GetSenderName())
	require.NotNil(t, req.GetMessage())

	got := protoToViewChangeDone(req.GetMessage())
	assert.Equal(t, msg.PrimaryName, got.PrimaryName)
	assert.Equal(t, msg.InstanceID, got.InstanceID)
	assert.Equal(t, msg.ViewNo, got.ViewNo)
	assert.True(t, got.Ledger.Equal(msg.Ledger))
}
