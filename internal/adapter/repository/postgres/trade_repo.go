package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/tradedesk/internal/currency"
	"github.com/iho/tradedesk/internal/domain"
)

const pgErrUniqueViolation = "23505"

// TradeDirectory implements usecase.TradeDirectory on PostgreSQL. Each trade
// occupies exactly one row holding its current lifecycle record; transitions
// replace the row in place.
type TradeDirectory struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewTradeDirectory creates a new TradeDirectory.
func NewTradeDirectory(pool *pgxpool.Pool) *TradeDirectory {
	return &TradeDirectory{
		pool:    pool,
		retrier: NewRetrier(),
	}
}

// Create stores a new trade under id. A unique violation on the primary key
// maps to domain.ErrDuplicateID.
func (d *TradeDirectory) Create(ctx context.Context, id string, record *domain.TradeRecord) error {
	query := `
		INSERT INTO trades (
			id, trading_entity_id, counterparty, direction, style,
			notional_currency, notional_amount, underlying,
			value_date, delivery_date, trade_date, strike, state, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	amount, err := amountParam("notional_amount", record.Fields.NotionalAmount)
	if err != nil {
		return err
	}
	strike, err := strikeParam(record.Strike)
	if err != nil {
		return err
	}

	_, err = d.pool.Exec(ctx, query,
		id,
		record.TradingEntity.ID,
		record.Fields.Counterparty,
		string(record.Fields.Direction),
		record.Fields.Style,
		string(record.Fields.NotionalCurrency),
		amount,
		currencyCodes(record.Fields.Underlying),
		record.Fields.ValueDate,
		record.Fields.DeliveryDate,
		record.TradeDate,
		strike,
		record.State.String(),
		time.Now().UTC(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrDuplicateID
		}
		return err
	}

	return nil
}

// Get returns the current record for id.
func (d *TradeDirectory) Get(ctx context.Context, id string) (*domain.TradeRecord, error) {
	query := `
		SELECT trading_entity_id, counterparty, direction, style,
		       notional_currency, notional_amount, underlying,
		       value_date, delivery_date, trade_date, strike, state
		FROM trades
		WHERE id = $1
	`

	var (
		entityID     string
		fields       domain.MutableTradeFields
		direction    string
		notionalCcy  string
		amount       int64
		underlying   []string
		tradeDate    time.Time
		strike       *int64
		stateName    string
	)

	err := d.pool.QueryRow(ctx, query, id).Scan(
		&entityID,
		&fields.Counterparty,
		&direction,
		&fields.Style,
		&notionalCcy,
		&amount,
		&underlying,
		&fields.ValueDate,
		&fields.DeliveryDate,
		&tradeDate,
		&strike,
		&stateName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTradeNotFound
		}
		return nil, err
	}

	state, ok := domain.StateFromName(stateName)
	if !ok {
		return nil, fmt.Errorf("trade %s has unknown state %q", id, stateName)
	}

	fields.Direction = domain.Direction(direction)
	fields.NotionalCurrency = currency.Currency(notionalCcy)
	fields.NotionalAmount = uint64(amount)
	fields.Underlying = currenciesFromCodes(underlying)

	record := &domain.TradeRecord{
		TradingEntity: domain.NewRequester(entityID),
		Fields:        fields,
		TradeDate:     tradeDate,
		State:         state,
	}
	if strike != nil {
		value := uint64(*strike)
		record.Strike = &value
	}

	return record, nil
}

// Update replaces the current record for id. Transient serialization
// failures are retried with backoff.
func (d *TradeDirectory) Update(ctx context.Context, id string, record *domain.TradeRecord) error {
	query := `
		UPDATE trades SET
			counterparty = $2, direction = $3, style = $4,
			notional_currency = $5, notional_amount = $6, underlying = $7,
			value_date = $8, delivery_date = $9, strike = $10, state = $11,
			updated_at = $12
		WHERE id = $1
	`

	amount, err := amountParam("notional_amount", record.Fields.NotionalAmount)
	if err != nil {
		return err
	}
	strike, err := strikeParam(record.Strike)
	if err != nil {
		return err
	}

	return d.retrier.Retry(ctx, func() error {
		tag, err := d.pool.Exec(ctx, query,
			id,
			record.Fields.Counterparty,
			string(record.Fields.Direction),
			record.Fields.Style,
			string(record.Fields.NotionalCurrency),
			amount,
			currencyCodes(record.Fields.Underlying),
			record.Fields.ValueDate,
			record.Fields.DeliveryDate,
			strike,
			record.State.String(),
			time.Now().UTC(),
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrTradeNotFound
		}
		return nil
	})
}

func currencyCodes(set []currency.Currency) []string {
	codes := make([]string, len(set))
	for i, c := range set {
		codes[i] = string(c)
	}
	return codes
}

func currenciesFromCodes(codes []string) []currency.Currency {
	set := make([]currency.Currency, len(codes))
	for i, code := range codes {
		set[i] = currency.Currency(code)
	}
	return set
}

// amountParam converts a monetary amount to its signed column type. Values
// beyond the signed range would silently wrap, so they are rejected here
// instead of tripping the schema constraint.
func amountParam(column string, amount uint64) (int64, error) {
	if amount > math.MaxInt64 {
		return 0, fmt.Errorf("%s %d exceeds storable range", column, amount)
	}
	return int64(amount), nil
}

func strikeParam(strike *uint64) (*int64, error) {
	if strike == nil {
		return nil, nil
	}
	value, err := amountParam("strike", *strike)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
