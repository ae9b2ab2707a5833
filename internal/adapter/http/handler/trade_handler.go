package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/tradedesk/internal/adapter/http/dto"
	"github.com/iho/tradedesk/internal/domain"
	"github.com/iho/tradedesk/internal/usecase"
)

// TradeService defines the behavior needed by TradeHandler.
type TradeService interface {
	SubmitTrade(ctx context.Context, input usecase.SubmitTradeInput) (string, *domain.TradeRecord, error)
	GetTrade(ctx context.Context, id string) (*domain.TradeRecord, error)
	AcceptTrade(ctx context.Context, id, approverID string) (*domain.TradeRecord, error)
	UpdateTrade(ctx context.Context, id, approverID string, fields domain.MutableTradeFields) (*domain.TradeRecord, error)
	ApproveTrade(ctx context.Context, id, requesterID string) (*domain.TradeRecord, error)
	SendToExecute(ctx context.Context, id, approverID string) (*domain.TradeRecord, error)
	BookTrade(ctx context.Context, id string, actor domain.Identity, strike uint64) (*domain.TradeRecord, error)
	CancelTrade(ctx context.Context, id string, actor domain.Identity) (*domain.TradeRecord, error)
}

// TradeHandler handles trade lifecycle HTTP requests.
type TradeHandler struct {
	tradeUC TradeService
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(tradeUC TradeService) *TradeHandler {
	return &TradeHandler{tradeUC: tradeUC}
}

// Submit creates a draft and submits it for approval.
func (h *TradeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitTradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "missing user id", "")
		return
	}

	fields, err := req.Fields.ToDomain()
	if err != nil {
		writeError(w, mapDomainError(err), "invalid trade fields", err.Error())
		return
	}

	id, trade, err := h.tradeUC.SubmitTrade(r.Context(), usecase.SubmitTradeInput{
		UserID: req.UserID,
		Fields: fields,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to submit trade", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SubmitTradeResponse{
		ID:    id,
		Trade: dto.TradeFromDomain(id, trade),
	})
}

// Get retrieves the current lifecycle record of a trade.
func (h *TradeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing trade ID", "")
		return
	}

	trade, err := h.tradeUC.GetTrade(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get trade", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TradeFromDomain(id, trade))
}

// Accept approves a pending trade.
func (h *TradeHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.actorTransition(w, r, h.tradeUC.AcceptTrade)
}

// Approve re-approves an updated trade as its owner.
func (h *TradeHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.actorTransition(w, r, h.tradeUC.ApproveTrade)
}

// Execute routes an approved trade to the counterparty.
func (h *TradeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	h.actorTransition(w, r, h.tradeUC.SendToExecute)
}

// Update replaces the mutable fields of a pending trade.
func (h *TradeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateTradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "missing user id", "")
		return
	}

	fields, err := req.Fields.ToDomain()
	if err != nil {
		writeError(w, mapDomainError(err), "invalid trade fields", err.Error())
		return
	}

	trade, err := h.tradeUC.UpdateTrade(r.Context(), id, req.UserID, fields)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update trade", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TradeFromDomain(id, trade))
}

// Book executes a routed trade at the agreed strike.
func (h *TradeHandler) Book(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.BookTradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	actor, err := req.ToDomain()
	if err != nil {
		writeError(w, mapDomainError(err), "invalid identity", err.Error())
		return
	}

	trade, err := h.tradeUC.BookTrade(r.Context(), id, actor, req.Strike)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to book trade", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TradeFromDomain(id, trade))
}

// Cancel cancels a trade in any cancellable state.
func (h *TradeHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.IdentityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	actor, err := req.ToDomain()
	if err != nil {
		writeError(w, mapDomainError(err), "invalid identity", err.Error())
		return
	}

	trade, err := h.tradeUC.CancelTrade(r.Context(), id, actor)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to cancel trade", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TradeFromDomain(id, trade))
}

// actorTransition handles the transitions that only need a trade id and an
// acting user id.
func (h *TradeHandler) actorTransition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id, userID string) (*domain.TradeRecord, error)) {
	id := chi.URLParam(r, "id")

	var req dto.ActorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "missing user id", "")
		return
	}

	trade, err := op(r.Context(), id, req.UserID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to transition trade", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TradeFromDomain(id, trade))
}
