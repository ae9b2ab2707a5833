package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"

	"github.com/iho/tradedesk/internal/domain"
)

// Ledger implements domain.Ledger on PostgreSQL. Ledger order is the serial
// position column; indices handed to callers are positional offsets into
// that order, so they stay stable under the append-only discipline.
type Ledger struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewLedger creates a new Ledger.
func NewLedger(pool *pgxpool.Pool) *Ledger {
	return &Ledger{
		pool:    pool,
		retrier: NewRetrier(),
	}
}

// Append adds a record at the end of the ledger, assigning its ID.
func (l *Ledger) Append(ctx context.Context, record domain.HistoricalRecord) error {
	var diffJSON []byte
	if record.Diff != nil {
		data, err := json.Marshal(record.Diff)
		if err != nil {
			return fmt.Errorf("failed to marshal diff: %w", err)
		}
		diffJSON = data
	}

	query := `
		INSERT INTO trade_history (
			id, ts, action, actor_id, state_before, state_after, diff
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	return l.retrier.Retry(ctx, func() error {
		_, err := l.pool.Exec(ctx, query,
			ulid.Make().String(),
			record.Timestamp,
			record.Action.String(),
			record.ActorID,
			record.StateBefore,
			record.StateAfter,
			diffJSON,
		)
		return err
	})
}

// Count returns the total number of entries.
func (l *Ledger) Count(ctx context.Context) (int, error) {
	var count int
	err := l.pool.QueryRow(ctx, `SELECT COUNT(*) FROM trade_history`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Get returns the entry at index in ledger order, or nil past the end.
func (l *Ledger) Get(ctx context.Context, index int) (*domain.HistoricalRecord, error) {
	if index < 0 {
		return nil, nil
	}

	query := `
		SELECT id, ts, action, actor_id, state_before, state_after, diff
		FROM trade_history
		ORDER BY position ASC
		OFFSET $1 LIMIT 1
	`

	var (
		record     domain.HistoricalRecord
		actionName string
		diffJSON   []byte
	)

	err := l.pool.QueryRow(ctx, query, index).Scan(
		&record.ID,
		&record.Timestamp,
		&actionName,
		&record.ActorID,
		&record.StateBefore,
		&record.StateAfter,
		&diffJSON,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	action, ok := domain.ActionFromName(actionName)
	if !ok {
		return nil, fmt.Errorf("history record %s has unknown action %q", record.ID, actionName)
	}
	record.Action = action

	if len(diffJSON) > 0 {
		record.Diff = &domain.TradeDiff{}
		if err := json.Unmarshal(diffJSON, record.Diff); err != nil {
			return nil, fmt.Errorf("failed to unmarshal diff: %w", err)
		}
	}

	return &record, nil
}

// Clear empties the ledger. Intended for test isolation.
func (l *Ledger) Clear(ctx context.Context) error {
	_, err := l.pool.Exec(ctx, `TRUNCATE trade_history RESTART IDENTITY`)
	return err
}
