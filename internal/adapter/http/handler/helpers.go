package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/tradedesk/internal/adapter/http/dto"
	"github.com/iho/tradedesk/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes. Every error
// category of the lifecycle core stays externally distinguishable:
// malformed input 400, invalid details 422, authorization 403, invalid
// transition 409, not found 404, identifier collision 500.
func mapDomainError(err error) int {
	var (
		invalidDetails    *domain.InvalidDetailsError
		unauthorised      *domain.UnauthorisedRequesterError
		invalidTransition *domain.InvalidTransitionError
		invalidCapability *domain.InvalidCapabilityError
	)

	switch {
	case errors.Is(err, dto.ErrMalformedInput):
		return http.StatusBadRequest
	case errors.As(err, &invalidDetails):
		return http.StatusUnprocessableEntity
	case errors.As(err, &unauthorised):
		return http.StatusForbidden
	case errors.As(err, &invalidCapability):
		return http.StatusForbidden
	case errors.As(err, &invalidTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrTradeNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrHistoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateID):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
