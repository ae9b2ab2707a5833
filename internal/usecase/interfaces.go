package usecase

import (
	"context"
	"time"

	"github.com/iho/tradedesk/internal/domain"
)

// TradeDirectory defines data access for the map of trade identifier to the
// single current lifecycle record of that trade.
type TradeDirectory interface {
	Create(ctx context.Context, id string, record *domain.TradeRecord) error
	Get(ctx context.Context, id string) (*domain.TradeRecord, error)
	Update(ctx context.Context, id string, record *domain.TradeRecord) error
}

// IDGenerator generates unique trade identifiers.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage for the HTTP boundary.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
