package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/iho/tradedesk/internal/adapter/http/dto"
	"github.com/iho/tradedesk/internal/domain"
)

// HistoryService defines the behavior needed by HistoryHandler. Retrieval is
// positional only; there is no query language over the ledger.
type HistoryService interface {
	HistoryCount(ctx context.Context) (int, error)
	HistoryAt(ctx context.Context, index int) (*domain.HistoricalRecord, error)
}

// HistoryHandler handles history ledger HTTP requests.
type HistoryHandler struct {
	historyUC HistoryService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyUC HistoryService) *HistoryHandler {
	return &HistoryHandler{historyUC: historyUC}
}

// Count returns the total number of ledger entries.
func (h *HistoryHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.historyUC.HistoryCount(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to count history", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.HistoryCountResponse{Count: count})
}

// Get returns the ledger entry at a positional index.
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		writeError(w, http.StatusBadRequest, "invalid history index", raw)
		return
	}

	record, err := h.historyUC.HistoryAt(r.Context(), index)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get history record", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.HistoryRecordFromDomain(record))
}
