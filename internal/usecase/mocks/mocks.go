package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/iho/tradedesk/internal/domain"
)

// MockTradeDirectory is a mock implementation of TradeDirectory. Without
// overrides it behaves as an in-memory directory.
type MockTradeDirectory struct {
	mu     sync.RWMutex
	trades map[string]*domain.TradeRecord

	CreateFunc func(ctx context.Context, id string, record *domain.TradeRecord) error
	GetFunc    func(ctx context.Context, id string) (*domain.TradeRecord, error)
	UpdateFunc func(ctx context.Context, id string, record *domain.TradeRecord) error
}

func NewMockTradeDirectory() *MockTradeDirectory {
	return &MockTradeDirectory{
		trades: make(map[string]*domain.TradeRecord),
	}
}

func (m *MockTradeDirectory) Create(ctx context.Context, id string, record *domain.TradeRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, id, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.trades[id]; ok {
		return domain.ErrDuplicateID
	}
	m.trades[id] = record.Clone()
	return nil
}

func (m *MockTradeDirectory) Get(ctx context.Context, id string) (*domain.TradeRecord, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if trade, ok := m.trades[id]; ok {
		return trade.Clone(), nil
	}
	return nil, domain.ErrTradeNotFound
}

func (m *MockTradeDirectory) Update(ctx context.Context, id string, record *domain.TradeRecord) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.trades[id]; !ok {
		return domain.ErrTradeNotFound
	}
	m.trades[id] = record.Clone()
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator producing a
// deterministic sequence.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmt.Sprintf("trade-%d", m.next)
}

// MockLedger is a mock implementation of domain.Ledger backed by a slice.
type MockLedger struct {
	mu      sync.Mutex
	records []domain.HistoricalRecord

	AppendFunc func(ctx context.Context, record domain.HistoricalRecord) error
	CountFunc  func(ctx context.Context) (int, error)
	GetFunc    func(ctx context.Context, index int) (*domain.HistoricalRecord, error)
	ClearFunc  func(ctx context.Context) error
}

func NewMockLedger() *MockLedger {
	return &MockLedger{}
}

func (m *MockLedger) Append(ctx context.Context, record domain.HistoricalRecord) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return nil
}

func (m *MockLedger) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records), nil
}

func (m *MockLedger) Get(ctx context.Context, index int) (*domain.HistoricalRecord, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, index)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.records) {
		return nil, nil
	}
	record := m.records[index]
	return &record, nil
}

func (m *MockLedger) Clear(ctx context.Context) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
	return nil
}

// Records returns a copy of everything appended so far.
func (m *MockLedger) Records() []domain.HistoricalRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.HistoricalRecord, len(m.records))
	copy(out, m.records)
	return out
}
