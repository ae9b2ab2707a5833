package memory

import (
	"context"
	"sync"

	"github.com/iho/tradedesk/internal/domain"
)

// TradeDirectory implements usecase.TradeDirectory with an in-process map.
// Reads run under a shared lock; create holds the exclusive lock for the
// whole check-then-insert so an identifier collision cannot race.
type TradeDirectory struct {
	mu     sync.RWMutex
	trades map[string]*domain.TradeRecord
}

// NewTradeDirectory creates an empty in-memory directory.
func NewTradeDirectory() *TradeDirectory {
	return &TradeDirectory{trades: make(map[string]*domain.TradeRecord)}
}

// Create stores a new trade under id. Returns domain.ErrDuplicateID when the
// identifier already exists.
func (d *TradeDirectory) Create(_ context.Context, id string, record *domain.TradeRecord) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.trades[id]; exists {
		return domain.ErrDuplicateID
	}
	d.trades[id] = record.Clone()
	return nil
}

// Get returns a copy of the current record for id, or domain.ErrTradeNotFound.
func (d *TradeDirectory) Get(_ context.Context, id string) (*domain.TradeRecord, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	record, ok := d.trades[id]
	if !ok {
		return nil, domain.ErrTradeNotFound
	}
	return record.Clone(), nil
}

// Update replaces the current record for id. Returns domain.ErrTradeNotFound
// when the identifier is unknown.
func (d *TradeDirectory) Update(_ context.Context, id string, record *domain.TradeRecord) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.trades[id]; !ok {
		return domain.ErrTradeNotFound
	}
	d.trades[id] = record.Clone()
	return nil
}
