package fintrack

import (
	"fmt"
	"sync"
)

// Ledger owns the ordered sequence of monthly budget entries.
//
// Duplicate month labels are permitted: the month is a display label, the
// position is the identity. A mutex enforces the single-writer discipline;
// persistence is a whole-file overwrite with no finer isolation.
type Ledger struct {
	mu      sync.Mutex
	entries []BudgetEntry
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make([]BudgetEntry, 0)}
}

// Append adds an entry at the end of the sequence.
func (l *Ledger) Append(e BudgetEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
}

// DeleteAt removes the entry at the given position.
func (l *Ledger) DeleteAt(i int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i < 0 || i >= len(l.entries) {
		return fmt.Errorf("no entry at position %d (ledger has %d)", i, len(l.entries))
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return nil
}

// Entries returns a copy of the entry sequence in order.
func (l *Ledger) Entries() []BudgetEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]BudgetEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// InvestedSeries returns the invested amount of each entry in order, the
// input series for a growth projection.
func (l *Ledger) InvestedSeries() []Money {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Money, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e.Invested)
	}
	return out
}
