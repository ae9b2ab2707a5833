package domain

import (
	"time"

	"github.com/iho/tradedesk/internal/currency"
)

// Change is a before/after pair for one mutable field.
type Change[T any] struct {
	Before T `json:"before"`
	After  T `json:"after"`
}

// TradeDiff is the field-level delta between two trade snapshots. A field is
// present only when it changed. Strike carries the post-transition strike
// value when one is set.
type TradeDiff struct {
	Counterparty     *Change[string]              `json:"counterparty,omitempty"`
	Direction        *Change[Direction]           `json:"direction,omitempty"`
	Style            *Change[string]              `json:"style,omitempty"`
	NotionalCurrency *Change[currency.Currency]   `json:"notional_currency,omitempty"`
	NotionalAmount   *Change[uint64]              `json:"notional_amount,omitempty"`
	Underlying       *Change[[]currency.Currency] `json:"underlying,omitempty"`
	ValueDate        *Change[time.Time]           `json:"value_date,omitempty"`
	DeliveryDate     *Change[time.Time]           `json:"delivery_date,omitempty"`
	Strike           *uint64                      `json:"strike,omitempty"`
}

// ComputeDiff compares two field snapshots pairwise. It returns nil when all
// eight fields are equal and strike is unset: a no-op mutation leaves no
// history payload, but a strike assignment always produces a diff.
func ComputeDiff(before, after MutableTradeFields, strike *uint64) *TradeDiff {
	diff := &TradeDiff{}
	changed := false

	if before.Counterparty != after.Counterparty {
		diff.Counterparty = &Change[string]{Before: before.Counterparty, After: after.Counterparty}
		changed = true
	}
	if before.Direction != after.Direction {
		diff.Direction = &Change[Direction]{Before: before.Direction, After: after.Direction}
		changed = true
	}
	if before.Style != after.Style {
		diff.Style = &Change[string]{Before: before.Style, After: after.Style}
		changed = true
	}
	if before.NotionalCurrency != after.NotionalCurrency {
		diff.NotionalCurrency = &Change[currency.Currency]{Before: before.NotionalCurrency, After: after.NotionalCurrency}
		changed = true
	}
	if before.NotionalAmount != after.NotionalAmount {
		diff.NotionalAmount = &Change[uint64]{Before: before.NotionalAmount, After: after.NotionalAmount}
		changed = true
	}
	if !sameCurrencies(before.Underlying, after.Underlying) {
		diff.Underlying = &Change[[]currency.Currency]{
			Before: append([]currency.Currency(nil), before.Underlying...),
			After:  append([]currency.Currency(nil), after.Underlying...),
		}
		changed = true
	}
	if !before.ValueDate.Equal(after.ValueDate) {
		diff.ValueDate = &Change[time.Time]{Before: before.ValueDate, After: after.ValueDate}
		changed = true
	}
	if !before.DeliveryDate.Equal(after.DeliveryDate) {
		diff.DeliveryDate = &Change[time.Time]{Before: before.DeliveryDate, After: after.DeliveryDate}
		changed = true
	}

	if strike != nil {
		value := *strike
		diff.Strike = &value
		changed = true
	}

	if !changed {
		return nil
	}
	return diff
}

func sameCurrencies(a, b []currency.Currency) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
