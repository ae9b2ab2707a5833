package dto

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/iho/tradedesk/internal/currency"
	"github.com/iho/tradedesk/internal/domain"
)

// ErrMalformedInput marks request decoding failures so the boundary can map
// them apart from domain validation failures.
var ErrMalformedInput = errors.New("malformed input")

// maxStoredAmount is the largest monetary amount the storage layer can hold;
// trades are persisted in signed 64-bit columns.
const maxStoredAmount = math.MaxInt64

// TradeFieldsRequest carries the eight mutable trade fields on the wire.
// Currencies are ISO 4217 alphabetic codes, dates RFC3339.
type TradeFieldsRequest struct {
	Counterparty     string   `json:"counterparty"`
	Direction        string   `json:"direction"`
	Style            string   `json:"style"`
	NotionalCurrency string   `json:"notional_currency"`
	NotionalAmount   uint64   `json:"notional_amount"`
	Underlying       []string `json:"underlying"`
	ValueDate        string   `json:"value_date"`
	DeliveryDate     string   `json:"delivery_date"`
}

// ToDomain parses and validates the wire representation. Every failure here
// is malformed input, not a domain validation failure.
func (r *TradeFieldsRequest) ToDomain() (domain.MutableTradeFields, error) {
	var fields domain.MutableTradeFields

	direction := domain.Direction(r.Direction)
	if !direction.IsValid() {
		return fields, fmt.Errorf("%w: direction must be BUY or SELL, got %q", ErrMalformedInput, r.Direction)
	}

	if r.NotionalAmount > maxStoredAmount {
		return fields, fmt.Errorf("%w: notional_amount exceeds %d", ErrMalformedInput, uint64(maxStoredAmount))
	}

	notional, err := currency.FromCode(r.NotionalCurrency)
	if err != nil {
		return fields, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	underlying := make([]currency.Currency, len(r.Underlying))
	for i, code := range r.Underlying {
		c, err := currency.FromCode(code)
		if err != nil {
			return fields, fmt.Errorf("%w: underlying: %v", ErrMalformedInput, err)
		}
		underlying[i] = c
	}

	valueDate, err := time.Parse(time.RFC3339, r.ValueDate)
	if err != nil {
		return fields, fmt.Errorf("%w: value_date: %v", ErrMalformedInput, err)
	}

	deliveryDate, err := time.Parse(time.RFC3339, r.DeliveryDate)
	if err != nil {
		return fields, fmt.Errorf("%w: delivery_date: %v", ErrMalformedInput, err)
	}

	fields = domain.MutableTradeFields{
		Counterparty:     r.Counterparty,
		Direction:        direction,
		Style:            r.Style,
		NotionalCurrency: notional,
		NotionalAmount:   r.NotionalAmount,
		Underlying:       underlying,
		ValueDate:        valueDate,
		DeliveryDate:     deliveryDate,
	}
	return fields, nil
}

// SubmitTradeRequest represents a request to create and submit a trade.
type SubmitTradeRequest struct {
	UserID string             `json:"user_id"`
	Fields TradeFieldsRequest `json:"fields"`
}

// ActorRequest identifies the acting user on transitions whose capability is
// fixed by the route.
type ActorRequest struct {
	UserID string `json:"user_id"`
}

// UpdateTradeRequest replaces the mutable fields of a pending trade.
type UpdateTradeRequest struct {
	UserID string             `json:"user_id"`
	Fields TradeFieldsRequest `json:"fields"`
}

// IdentityRequest identifies the acting user on transitions open to either
// capability.
type IdentityRequest struct {
	UserID     string `json:"user_id"`
	Capability string `json:"capability"`
}

// ToDomain parses the identity; an unknown capability is malformed input.
func (r *IdentityRequest) ToDomain() (domain.Identity, error) {
	capability := domain.Capability(r.Capability)
	if !capability.IsValid() {
		return domain.Identity{}, fmt.Errorf("%w: capability must be requester or approver, got %q", ErrMalformedInput, r.Capability)
	}
	return domain.Identity{ID: r.UserID, Capability: capability}, nil
}

// BookTradeRequest books a routed trade at the agreed strike.
type BookTradeRequest struct {
	IdentityRequest
	Strike uint64 `json:"strike"`
}

// ToDomain parses the identity and checks the strike fits the storage range.
func (r *BookTradeRequest) ToDomain() (domain.Identity, error) {
	if r.Strike > maxStoredAmount {
		return domain.Identity{}, fmt.Errorf("%w: strike exceeds %d", ErrMalformedInput, uint64(maxStoredAmount))
	}
	return r.IdentityRequest.ToDomain()
}
