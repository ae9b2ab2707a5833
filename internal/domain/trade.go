package domain

import (
	"fmt"
	"time"

	"github.com/iho/tradedesk/internal/currency"
)

// Direction of a trade.
type Direction string

const (
	DirectionBuy  Direction = "BUY"
	DirectionSell Direction = "SELL"
)

// IsValid checks if the direction is BUY or SELL.
func (d Direction) IsValid() bool {
	return d == DirectionBuy || d == DirectionSell
}

// MutableTradeFields holds every trade field that can change on an update.
type MutableTradeFields struct {
	// Counterparty is the entity on the other side of the trade.
	Counterparty string

	// Direction of the trade, buy or sell.
	Direction Direction

	// Style labels the contract type, e.g. a forward contract.
	Style string

	// NotionalCurrency is the currency of the notional amount.
	NotionalCurrency currency.Currency

	// NotionalAmount is the size of the trade in the notional currency,
	// expressed as a whole number free of minor units.
	NotionalAmount uint64

	// Underlying is the set of eligible notional currencies. The notional
	// currency must be a member.
	Underlying []currency.Currency

	// ValueDate is when the trade value is realised.
	ValueDate time.Time

	// DeliveryDate is when the trade assets are delivered.
	DeliveryDate time.Time
}

// Equal reports structural equality over all eight fields.
func (f MutableTradeFields) Equal(other MutableTradeFields) bool {
	if f.Counterparty != other.Counterparty ||
		f.Direction != other.Direction ||
		f.Style != other.Style ||
		f.NotionalCurrency != other.NotionalCurrency ||
		f.NotionalAmount != other.NotionalAmount ||
		!f.ValueDate.Equal(other.ValueDate) ||
		!f.DeliveryDate.Equal(other.DeliveryDate) {
		return false
	}
	if len(f.Underlying) != len(other.Underlying) {
		return false
	}
	for i := range f.Underlying {
		if f.Underlying[i] != other.Underlying[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (f MutableTradeFields) Clone() MutableTradeFields {
	out := f
	out.Underlying = make([]currency.Currency, len(f.Underlying))
	copy(out.Underlying, f.Underlying)
	return out
}

// TradeRecord is a trade proposal tagged with its current lifecycle state.
// TradingEntity and TradeDate never change once the record exists; only the
// mutable fields, the strike and the state tag do.
type TradeRecord struct {
	// TradingEntity is the requester that created the trade.
	TradingEntity Identity

	// Fields holds everything an update may replace.
	Fields MutableTradeFields

	// TradeDate is when the trade was initiated.
	TradeDate time.Time

	// Strike is the agreed rate, set once when the trade is booked.
	Strike *uint64

	// State is the current lifecycle state.
	State LifecycleState
}

// NewDraft creates a trade in Draft state owned by user. The trade date is
// stamped from the wall clock and the fields are validated against it.
func NewDraft(user Identity, fields MutableTradeFields) (*TradeRecord, error) {
	if user.Capability != CapabilityRequester {
		return nil, &InvalidCapabilityError{Capability: user.Capability, Action: ActionSubmit}
	}

	record := &TradeRecord{
		TradingEntity: user,
		Fields:        fields.Clone(),
		TradeDate:     time.Now().UTC(),
		State:         StateDraft,
	}

	if err := ValidateFields(record.TradeDate, record.Fields); err != nil {
		return nil, err
	}

	return record, nil
}

// ValidateFields runs the invariant checks shared by every mutation, in
// order: value date against trade date, delivery date against trade date,
// delivery date against value date, then currency membership.
func ValidateFields(tradeDate time.Time, fields MutableTradeFields) error {
	if fields.ValueDate.Before(tradeDate) {
		return &InvalidDetailsError{Issue: "value date precedes the trade date"}
	}
	if fields.DeliveryDate.Before(tradeDate) {
		return &InvalidDetailsError{Issue: "delivery date precedes the trade date"}
	}
	if fields.DeliveryDate.Before(fields.ValueDate) {
		return &InvalidDetailsError{Issue: "delivery date precedes the value date"}
	}
	if !currency.Contains(fields.Underlying, fields.NotionalCurrency) {
		return &InvalidDetailsError{Issue: fmt.Sprintf(
			"currency %s not listed in the underlying %s",
			fields.NotionalCurrency, currency.Join(fields.Underlying),
		)}
	}
	return nil
}

// Clone returns a deep copy of the record.
func (t *TradeRecord) Clone() *TradeRecord {
	out := &TradeRecord{
		TradingEntity: t.TradingEntity,
		Fields:        t.Fields.Clone(),
		TradeDate:     t.TradeDate,
		State:         t.State,
	}
	if t.Strike != nil {
		strike := *t.Strike
		out.Strike = &strike
	}
	return out
}
