package domain

import (
	"context"
	"time"
)

// HistoricalRecord is one entry in the audit history of trade transitions.
// Records are created by the ledger on append and never mutated afterwards.
type HistoricalRecord struct {
	ID          string
	Timestamp   time.Time
	Action      Action
	ActorID     string
	StateBefore string
	StateAfter  string
	Diff        *TradeDiff
}

// Ledger is the append-only, ordered history of all transitions. Entries are
// indexed from 0 and indices never change once assigned. Implementations
// must serialize concurrent appends and reads.
type Ledger interface {
	// Append adds a record at the end of the ledger, assigning its ID.
	Append(ctx context.Context, record HistoricalRecord) error

	// Count returns the total number of entries appended since the last clear.
	Count(ctx context.Context) (int, error)

	// Get returns the entry at index, or nil when index is past the end.
	Get(ctx context.Context, index int) (*HistoricalRecord, error)

	// Clear empties the ledger. Intended for test isolation only.
	Clear(ctx context.Context) error
}
