package dto

import (
	"time"

	"github.com/iho/tradedesk/internal/currency"
	"github.com/iho/tradedesk/internal/domain"
)

// TradeFieldsResponse is the wire snapshot of the mutable trade fields.
type TradeFieldsResponse struct {
	Counterparty     string   `json:"counterparty"`
	Direction        string   `json:"direction"`
	Style            string   `json:"style"`
	NotionalCurrency string   `json:"notional_currency"`
	NotionalAmount   uint64   `json:"notional_amount"`
	Underlying       []string `json:"underlying"`
	ValueDate        string   `json:"value_date"`
	DeliveryDate     string   `json:"delivery_date"`
}

// TradeResponse represents a trade in API responses.
type TradeResponse struct {
	ID            string              `json:"id,omitempty"`
	TradingEntity string              `json:"trading_entity"`
	State         string              `json:"state"`
	Fields        TradeFieldsResponse `json:"fields"`
	TradeDate     string              `json:"trade_date"`
	Strike        *uint64             `json:"strike,omitempty"`
}

// TradeFromDomain converts a domain record to a response.
func TradeFromDomain(id string, t *domain.TradeRecord) *TradeResponse {
	return &TradeResponse{
		ID:            id,
		TradingEntity: t.TradingEntity.ID,
		State:         t.State.String(),
		Fields: TradeFieldsResponse{
			Counterparty:     t.Fields.Counterparty,
			Direction:        string(t.Fields.Direction),
			Style:            t.Fields.Style,
			NotionalCurrency: string(t.Fields.NotionalCurrency),
			NotionalAmount:   t.Fields.NotionalAmount,
			Underlying:       codesFromCurrencies(t.Fields.Underlying),
			ValueDate:        t.Fields.ValueDate.Format(time.RFC3339),
			DeliveryDate:     t.Fields.DeliveryDate.Format(time.RFC3339),
		},
		TradeDate: t.TradeDate.Format(time.RFC3339),
		Strike:    t.Strike,
	}
}

// SubmitTradeResponse carries the identifier of a newly submitted trade.
type SubmitTradeResponse struct {
	ID    string         `json:"id"`
	Trade *TradeResponse `json:"trade"`
}

// FieldChange is a before/after pair in history responses.
type FieldChange struct {
	Before any `json:"before"`
	After  any `json:"after"`
}

// DiffResponse is the wire form of a trade diff. Only changed fields appear.
type DiffResponse struct {
	Counterparty     *FieldChange `json:"counterparty,omitempty"`
	Direction        *FieldChange `json:"direction,omitempty"`
	Style            *FieldChange `json:"style,omitempty"`
	NotionalCurrency *FieldChange `json:"notional_currency,omitempty"`
	NotionalAmount   *FieldChange `json:"notional_amount,omitempty"`
	Underlying       *FieldChange `json:"underlying,omitempty"`
	ValueDate        *FieldChange `json:"value_date,omitempty"`
	DeliveryDate     *FieldChange `json:"delivery_date,omitempty"`
	Strike           *uint64      `json:"strike,omitempty"`
}

// DiffFromDomain converts a domain diff to a response. Nil in, nil out.
func DiffFromDomain(d *domain.TradeDiff) *DiffResponse {
	if d == nil {
		return nil
	}

	out := &DiffResponse{Strike: d.Strike}
	if d.Counterparty != nil {
		out.Counterparty = &FieldChange{Before: d.Counterparty.Before, After: d.Counterparty.After}
	}
	if d.Direction != nil {
		out.Direction = &FieldChange{Before: string(d.Direction.Before), After: string(d.Direction.After)}
	}
	if d.Style != nil {
		out.Style = &FieldChange{Before: d.Style.Before, After: d.Style.After}
	}
	if d.NotionalCurrency != nil {
		out.NotionalCurrency = &FieldChange{Before: string(d.NotionalCurrency.Before), After: string(d.NotionalCurrency.After)}
	}
	if d.NotionalAmount != nil {
		out.NotionalAmount = &FieldChange{Before: d.NotionalAmount.Before, After: d.NotionalAmount.After}
	}
	if d.Underlying != nil {
		out.Underlying = &FieldChange{
			Before: codesFromCurrencies(d.Underlying.Before),
			After:  codesFromCurrencies(d.Underlying.After),
		}
	}
	if d.ValueDate != nil {
		out.ValueDate = &FieldChange{
			Before: d.ValueDate.Before.Format(time.RFC3339),
			After:  d.ValueDate.After.Format(time.RFC3339),
		}
	}
	if d.DeliveryDate != nil {
		out.DeliveryDate = &FieldChange{
			Before: d.DeliveryDate.Before.Format(time.RFC3339),
			After:  d.DeliveryDate.After.Format(time.RFC3339),
		}
	}
	return out
}

// HistoryRecordResponse represents one history entry in API responses.
type HistoryRecordResponse struct {
	ID          string        `json:"id"`
	Timestamp   string        `json:"timestamp"`
	Action      string        `json:"action"`
	ActorID     string        `json:"actor_id"`
	StateBefore string        `json:"state_before"`
	StateAfter  string        `json:"state_after"`
	Diff        *DiffResponse `json:"diff,omitempty"`
}

// HistoryRecordFromDomain converts a domain history record to a response.
func HistoryRecordFromDomain(r *domain.HistoricalRecord) *HistoryRecordResponse {
	return &HistoryRecordResponse{
		ID:          r.ID,
		Timestamp:   r.Timestamp.Format(time.RFC3339Nano),
		Action:      r.Action.String(),
		ActorID:     r.ActorID,
		StateBefore: r.StateBefore,
		StateAfter:  r.StateAfter,
		Diff:        DiffFromDomain(r.Diff),
	}
}

// HistoryCountResponse carries the total ledger entry count.
type HistoryCountResponse struct {
	Count int `json:"count"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func codesFromCurrencies(set []currency.Currency) []string {
	codes := make([]string, len(set))
	for i, c := range set {
		codes[i] = string(c)
	}
	return codes
}
