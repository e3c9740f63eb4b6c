package ledger

import "fmt"

// Manager tracks the node's ledgers in registration order. Registration
// happens once at startup; the order never changes afterwards, so every
// Summaries snapshot lists ledgers in the same positions.
type Manager struct {
	order     []uint32
	summaries map[uint32]Summary
}

// NewManager creates an empty ledger registry.
func NewManager() *Manager {
	return &Manager{
		summaries: make(map[uint32]Summary),
	}
}

// Register adds a ledger with its initial summary. Registering the same
// ledger id twice is an error.
func (m *Manager) Register(s Summary) error {
	if _, exists := m.summaries[s.LedgerID]; exists {
		return fmt.Errorf("ledger %d already registered", s.LedgerID)
	}
	m.order = append(m.order, s.LedgerID)
	m.summaries[s.LedgerID] = s
	return nil
}

// UpdateSummary replaces the summary of a registered ledger.
func (m *Manager) UpdateSummary(s Summary) error {
	if _, exists := m.summaries[s.LedgerID]; !exists {
		return fmt.Errorf("ledger %d not registered", s.LedgerID)
	}
	m.summaries[s.LedgerID] = s
	return nil
}

// Summaries returns the current summaries in registration order.
func (m *Manager) Summaries() Info {
	out := make(Info, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.summaries[id])
	}
	return out
}
