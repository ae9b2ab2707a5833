package domain

import (
	"context"
	"time"
)

// Engine applies lifecycle transitions to trade records and writes one
// history entry per successful transition to its ledger.
//
// The engine never mutates its inputs: every transition returns a fresh
// record retagged with the target state. On any failure it returns a nil
// record, no ledger entry is written and the caller's copy is untouched.
type Engine struct {
	ledger Ledger
	now    func() time.Time
}

// NewEngine creates an Engine writing history to ledger.
func NewEngine(ledger Ledger) *Engine {
	return &Engine{ledger: ledger, now: time.Now}
}

// Submit moves a Draft to PendingApproval. Only the owning requester may
// submit.
func (e *Engine) Submit(ctx context.Context, actor Identity, trade *TradeRecord) (*TradeRecord, error) {
	if err := requireState(trade, StateDraft, ActionSubmit); err != nil {
		return nil, err
	}
	if err := requireCapability(actor, ActionSubmit, CapabilityRequester); err != nil {
		return nil, err
	}
	return e.transition(ctx, actor, trade, StatePendingApproval, ActionSubmit, nil)
}

// Accept moves a PendingApproval trade to Approved. Approvers are not
// subject to an ownership check: any approver may accept any trade.
func (e *Engine) Accept(ctx context.Context, actor Identity, trade *TradeRecord) (*TradeRecord, error) {
	if err := requireState(trade, StatePendingApproval, ActionAccept); err != nil {
		return nil, err
	}
	if err := requireCapability(actor, ActionAccept, CapabilityApprover); err != nil {
		return nil, err
	}
	return e.transition(ctx, actor, trade, StateApproved, ActionAccept, nil)
}

// Update replaces the mutable fields of a PendingApproval trade and moves it
// to NeedsReapproval so the owner can re-approve. The new fields are
// validated against the trade date before any side effect.
func (e *Engine) Update(ctx context.Context, actor Identity, trade *TradeRecord, fields MutableTradeFields) (*TradeRecord, error) {
	if err := requireState(trade, StatePendingApproval, ActionUpdate); err != nil {
		return nil, err
	}
	if err := requireCapability(actor, ActionUpdate, CapabilityApprover); err != nil {
		return nil, err
	}
	if err := ValidateFields(trade.TradeDate, fields); err != nil {
		return nil, err
	}
	return e.transition(ctx, actor, trade, StateNeedsReapproval, ActionUpdate, func(t *TradeRecord) {
		t.Fields = fields.Clone()
	})
}

// Approve moves a NeedsReapproval trade back to Approved. Only the owning
// requester may approve the changes made on its behalf.
func (e *Engine) Approve(ctx context.Context, actor Identity, trade *TradeRecord) (*TradeRecord, error) {
	if err := requireState(trade, StateNeedsReapproval, ActionApprove); err != nil {
		return nil, err
	}
	if err := requireCapability(actor, ActionApprove, CapabilityRequester); err != nil {
		return nil, err
	}
	return e.transition(ctx, actor, trade, StateApproved, ActionApprove, nil)
}

// SendToExecute routes an Approved trade to the counterparty.
func (e *Engine) SendToExecute(ctx context.Context, actor Identity, trade *TradeRecord) (*TradeRecord, error) {
	if err := requireState(trade, StateApproved, ActionSendToExecute); err != nil {
		return nil, err
	}
	if err := requireCapability(actor, ActionSendToExecute, CapabilityApprover); err != nil {
		return nil, err
	}
	return e.transition(ctx, actor, trade, StateSentToCounterparty, ActionSendToExecute, nil)
}

// Book executes a SentToCounterparty trade at the agreed strike. Either
// capability may book; a requester must be the owner.
func (e *Engine) Book(ctx context.Context, actor Identity, trade *TradeRecord, strike uint64) (*TradeRecord, error) {
	if err := requireState(trade, StateSentToCounterparty, ActionBook); err != nil {
		return nil, err
	}
	if err := requireCapability(actor, ActionBook, CapabilityRequester, CapabilityApprover); err != nil {
		return nil, err
	}
	return e.transition(ctx, actor, trade, StateExecuted, ActionBook, func(t *TradeRecord) {
		t.Strike = &strike
	})
}

// Cancel moves a trade in any cancellable state to Cancelled. Either
// capability may cancel; a requester must be the owner.
func (e *Engine) Cancel(ctx context.Context, actor Identity, trade *TradeRecord) (*TradeRecord, error) {
	if !trade.State.Cancellable() {
		return nil, &InvalidTransitionError{State: trade.State, Action: ActionCancel}
	}
	if err := requireCapability(actor, ActionCancel, CapabilityRequester, CapabilityApprover); err != nil {
		return nil, err
	}
	return e.transition(ctx, actor, trade, StateCancelled, ActionCancel, nil)
}

// transition is the capability-polymorphic primitive behind every operation.
// A requester actor always undergoes the ownership check against the trade's
// trading entity; an approver never does. The mutation runs on a clone, the
// diff is computed against the pre-mutation snapshot, and the history entry
// is appended before the retagged record is returned.
func (e *Engine) transition(ctx context.Context, actor Identity, trade *TradeRecord, to LifecycleState, action Action, mutate func(*TradeRecord)) (*TradeRecord, error) {
	if actor.Capability == CapabilityRequester && !actor.Equal(trade.TradingEntity) {
		return nil, &UnauthorisedRequesterError{
			RequesterID: actor.ID,
			Action:      action,
			State:       trade.State,
		}
	}

	next := trade.Clone()
	if mutate != nil {
		mutate(next)
	}
	next.State = to

	record := HistoricalRecord{
		Timestamp:   e.now().UTC(),
		Action:      action,
		ActorID:     actor.ID,
		StateBefore: trade.State.String(),
		StateAfter:  to.String(),
		Diff:        ComputeDiff(trade.Fields, next.Fields, next.Strike),
	}

	// No rollback path: a failed append is fatal for the call.
	if err := e.ledger.Append(ctx, record); err != nil {
		return nil, err
	}

	return next, nil
}

func requireState(trade *TradeRecord, want LifecycleState, action Action) error {
	if trade.State != want {
		return &InvalidTransitionError{State: trade.State, Action: action}
	}
	return nil
}

func requireCapability(actor Identity, action Action, allowed ...Capability) error {
	for _, capability := range allowed {
		if actor.Capability == capability {
			return nil
		}
	}
	return &InvalidCapabilityError{Capability: actor.Capability, Action: action}
}
