package usecase

import (
	"context"
	"sync"

	"github.com/iho/tradedesk/internal/domain"
	"github.com/iho/tradedesk/internal/infrastructure/metrics"
)

// TradeUseCase handles trade lifecycle business logic. Transitions on the
// same trade are serialized through a per-identifier lock held across the
// whole load, transition and store sequence, so two racing callers can
// never both read the same state and both commit.
type TradeUseCase struct {
	directory TradeDirectory
	ledger    domain.Ledger
	engine    *domain.Engine
	idGen     IDGenerator
	metrics   *metrics.Metrics

	tradeLocks sync.Map // trade id -> *sync.Mutex
}

// NewTradeUseCase creates a new TradeUseCase. metrics may be nil.
func NewTradeUseCase(directory TradeDirectory, ledger domain.Ledger, idGen IDGenerator, m *metrics.Metrics) *TradeUseCase {
	return &TradeUseCase{
		directory: directory,
		ledger:    ledger,
		engine:    domain.NewEngine(ledger),
		idGen:     idGen,
		metrics:   m,
	}
}

// SubmitTradeInput represents input for submitting a new trade.
type SubmitTradeInput struct {
	UserID string
	Fields domain.MutableTradeFields
}

// SubmitTrade creates a draft owned by the requesting user, submits it for
// approval and stores it under a freshly generated identifier. The directory
// slot is reserved with the draft before the engine runs, so an identifier
// collision cannot leave an orphan history entry.
func (uc *TradeUseCase) SubmitTrade(ctx context.Context, input SubmitTradeInput) (string, *domain.TradeRecord, error) {
	requester := domain.NewRequester(input.UserID)

	draft, err := domain.NewDraft(requester, input.Fields)
	if err != nil {
		uc.countTransition(domain.ActionSubmit, err)
		return "", nil, err
	}

	id := uc.idGen.Generate()
	unlock := uc.lockTrade(id)
	defer unlock()

	if err := uc.directory.Create(ctx, id, draft); err != nil {
		return "", nil, err
	}

	pending, err := uc.engine.Submit(ctx, requester, draft)
	if err != nil {
		uc.countTransition(domain.ActionSubmit, err)
		return "", nil, err
	}

	if err := uc.directory.Update(ctx, id, pending); err != nil {
		return "", nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TradesSubmitted.Inc()
		uc.metrics.DirectoryOperations.WithLabelValues("create").Inc()
	}
	uc.countTransition(domain.ActionSubmit, nil)
	uc.gaugeHistory(ctx)
	return id, pending, nil
}

// GetTrade retrieves the current lifecycle record for a trade.
func (uc *TradeUseCase) GetTrade(ctx context.Context, id string) (*domain.TradeRecord, error) {
	if uc.metrics != nil {
		uc.metrics.DirectoryOperations.WithLabelValues("get").Inc()
	}
	return uc.directory.Get(ctx, id)
}

// AcceptTrade approves a pending trade on behalf of an approver.
func (uc *TradeUseCase) AcceptTrade(ctx context.Context, id, approverID string) (*domain.TradeRecord, error) {
	approver := domain.NewApprover(approverID)
	return uc.applyTransition(ctx, id, domain.ActionAccept, func(t *domain.TradeRecord) (*domain.TradeRecord, error) {
		return uc.engine.Accept(ctx, approver, t)
	})
}

// UpdateTrade replaces the mutable fields of a pending trade, pushing it
// back to the owner for re-approval.
func (uc *TradeUseCase) UpdateTrade(ctx context.Context, id, approverID string, fields domain.MutableTradeFields) (*domain.TradeRecord, error) {
	approver := domain.NewApprover(approverID)
	return uc.applyTransition(ctx, id, domain.ActionUpdate, func(t *domain.TradeRecord) (*domain.TradeRecord, error) {
		return uc.engine.Update(ctx, approver, t, fields)
	})
}

// ApproveTrade re-approves an updated trade as its owning requester.
func (uc *TradeUseCase) ApproveTrade(ctx context.Context, id, requesterID string) (*domain.TradeRecord, error) {
	requester := domain.NewRequester(requesterID)
	return uc.applyTransition(ctx, id, domain.ActionApprove, func(t *domain.TradeRecord) (*domain.TradeRecord, error) {
		return uc.engine.Approve(ctx, requester, t)
	})
}

// SendToExecute routes an approved trade to the counterparty.
func (uc *TradeUseCase) SendToExecute(ctx context.Context, id, approverID string) (*domain.TradeRecord, error) {
	approver := domain.NewApprover(approverID)
	return uc.applyTransition(ctx, id, domain.ActionSendToExecute, func(t *domain.TradeRecord) (*domain.TradeRecord, error) {
		return uc.engine.SendToExecute(ctx, approver, t)
	})
}

// BookTrade executes a routed trade at the agreed strike.
func (uc *TradeUseCase) BookTrade(ctx context.Context, id string, actor domain.Identity, strike uint64) (*domain.TradeRecord, error) {
	return uc.applyTransition(ctx, id, domain.ActionBook, func(t *domain.TradeRecord) (*domain.TradeRecord, error) {
		return uc.engine.Book(ctx, actor, t, strike)
	})
}

// CancelTrade cancels a trade in any cancellable state.
func (uc *TradeUseCase) CancelTrade(ctx context.Context, id string, actor domain.Identity) (*domain.TradeRecord, error) {
	return uc.applyTransition(ctx, id, domain.ActionCancel, func(t *domain.TradeRecord) (*domain.TradeRecord, error) {
		return uc.engine.Cancel(ctx, actor, t)
	})
}

// HistoryCount returns the total number of history entries.
func (uc *TradeUseCase) HistoryCount(ctx context.Context) (int, error) {
	return uc.ledger.Count(ctx)
}

// HistoryAt returns the history entry at index, or domain.ErrHistoryNotFound
// when the index is past the end of the ledger.
func (uc *TradeUseCase) HistoryAt(ctx context.Context, index int) (*domain.HistoricalRecord, error) {
	record, err := uc.ledger.Get(ctx, index)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrHistoryNotFound
	}
	return record, nil
}

// applyTransition loads the current record, runs one engine operation and
// stores the result back under the same identifier. The per-trade lock
// spans the whole sequence: without it a racing pair of transitions could
// both load the same state and both commit, letting a cancelled trade end
// up transitioned out of Cancelled.
func (uc *TradeUseCase) applyTransition(ctx context.Context, id string, action domain.Action, op func(*domain.TradeRecord) (*domain.TradeRecord, error)) (*domain.TradeRecord, error) {
	unlock := uc.lockTrade(id)
	defer unlock()

	trade, err := uc.directory.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := op(trade)
	if err != nil {
		uc.countTransition(action, err)
		return nil, err
	}

	if err := uc.directory.Update(ctx, id, next); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.DirectoryOperations.WithLabelValues("update").Inc()
	}
	uc.countTransition(action, nil)
	uc.gaugeHistory(ctx)
	return next, nil
}

// lockTrade acquires the mutex for one trade identifier, creating it on
// first use. Lock entries live for the process lifetime; identifiers are
// never recycled so the map only grows with the trade population.
func (uc *TradeUseCase) lockTrade(id string) func() {
	v, _ := uc.tradeLocks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (uc *TradeUseCase) countTransition(action domain.Action, err error) {
	if uc.metrics == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "failure"
	}
	uc.metrics.Transitions.WithLabelValues(action.String(), status).Inc()
}

func (uc *TradeUseCase) gaugeHistory(ctx context.Context) {
	if uc.metrics == nil {
		return
	}
	if count, err := uc.ledger.Count(ctx); err == nil {
		uc.metrics.HistoryRecords.Set(float64(count))
	}
}
