package memory

import (
	"context"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/iho/tradedesk/internal/domain"
)

// Ledger implements domain.Ledger in memory. A single mutex serializes
// appends and reads; entries are immutable once appended so no reader/writer
// split is needed.
type Ledger struct {
	mu      sync.Mutex
	records []domain.HistoricalRecord
}

// NewLedger creates an empty in-memory ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Append adds a record at the end of the ledger, assigning its ID. Call
// order is ledger order; nothing is reordered or deduplicated.
func (l *Ledger) Append(_ context.Context, record domain.HistoricalRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	record.ID = ulid.Make().String()
	l.records = append(l.records, record)
	return nil
}

// Count returns the number of entries appended since the last clear.
func (l *Ledger) Count(_ context.Context) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records), nil
}

// Get returns a copy of the entry at index, or nil past the end.
func (l *Ledger) Get(_ context.Context, index int) (*domain.HistoricalRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.records) {
		return nil, nil
	}
	record := l.records[index]
	return &record, nil
}

// Clear empties the ledger. Intended for test isolation.
func (l *Ledger) Clear(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = nil
	return nil
}
