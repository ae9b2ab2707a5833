package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adaptershttp "github.com/iho/tradedesk/internal/adapter/http"
	"github.com/iho/tradedesk/internal/adapter/http/dto"
	"github.com/iho/tradedesk/internal/adapter/http/handler"
	"github.com/iho/tradedesk/internal/adapter/repository/memory"
	"github.com/iho/tradedesk/internal/usecase"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	directory := memory.NewTradeDirectory()
	ledger := memory.NewLedger()
	tradeUC := usecase.NewTradeUseCase(directory, ledger, memory.NewUUIDGenerator(), nil)

	return adaptershttp.NewRouter(adaptershttp.RouterConfig{
		TradeHandler:   handler.NewTradeHandler(tradeUC),
		HistoryHandler: handler.NewHistoryHandler(tradeUC),
		HealthHandler:  handler.NewHealthHandler(nil),
		Logger:         zerolog.Nop(),
	})
}

func doJSON(t *testing.T, router http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	r := httptest.NewRequest(method, path, &body)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func tradeFields(amount uint64) dto.TradeFieldsRequest {
	return dto.TradeFieldsRequest{
		Counterparty:     "big bank",
		Direction:        "BUY",
		Style:            "forward",
		NotionalCurrency: "USD",
		NotionalAmount:   amount,
		Underlying:       []string{"USD", "EUR"},
		ValueDate:        "2027-04-01T00:00:00Z",
		DeliveryDate:     "2027-05-01T00:00:00Z",
	}
}

func historyCount(t *testing.T, router http.Handler) int {
	t.Helper()

	w := doJSON(t, router, http.MethodGet, "/api/v1/history/count", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.HistoryCountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Count
}

// TestTradeLifecycle walks one trade from submission through an update,
// re-approval and booking, checking the audit trail at each step.
func TestTradeLifecycle(t *testing.T) {
	router := newTestServer(t)

	// Bob submits a trade for approval.
	w := doJSON(t, router, http.MethodPost, "/api/v1/trades", dto.SubmitTradeRequest{
		UserID: "bob",
		Fields: tradeFields(1),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var submitted dto.SubmitTradeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &submitted))
	require.NotEmpty(t, submitted.ID)
	assert.Equal(t, "PendingApproval", submitted.Trade.State)
	assert.Equal(t, 1, historyCount(t, router))

	tradeURL := "/api/v1/trades/" + submitted.ID

	// Maggie amends the amount, pushing the trade back to Bob.
	w = doJSON(t, router, http.MethodPost, tradeURL+"/update", dto.UpdateTradeRequest{
		UserID: "maggie",
		Fields: tradeFields(1000),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated dto.TradeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "NeedsReapproval", updated.State)
	assert.Equal(t, uint64(1000), updated.Fields.NotionalAmount)
	assert.Equal(t, 2, historyCount(t, router))

	// The update entry records the amount change.
	w = doJSON(t, router, http.MethodGet, "/api/v1/history/1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var entry dto.HistoryRecordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	assert.Equal(t, "update", entry.Action)
	assert.Equal(t, "maggie", entry.ActorID)
	require.NotNil(t, entry.Diff)
	require.NotNil(t, entry.Diff.NotionalAmount)
	assert.EqualValues(t, 1, entry.Diff.NotionalAmount.Before)
	assert.EqualValues(t, 1000, entry.Diff.NotionalAmount.After)

	// Ellie cannot approve a trade she does not own.
	w = doJSON(t, router, http.MethodPost, tradeURL+"/approve", dto.ActorRequest{UserID: "ellie"})
	require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	assert.Equal(t, 2, historyCount(t, router))

	// Bob signs off on the amended trade.
	w = doJSON(t, router, http.MethodPost, tradeURL+"/approve", dto.ActorRequest{UserID: "bob"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 3, historyCount(t, router))

	// Maggie routes it to the counterparty, then books it at 900.
	w = doJSON(t, router, http.MethodPost, tradeURL+"/execute", dto.ActorRequest{UserID: "maggie"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, tradeURL+"/book", dto.BookTradeRequest{
		IdentityRequest: dto.IdentityRequest{UserID: "maggie", Capability: "approver"},
		Strike:          900,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var booked dto.TradeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booked))
	assert.Equal(t, "Executed", booked.State)
	require.NotNil(t, booked.Strike)
	assert.Equal(t, uint64(900), *booked.Strike)
	assert.Equal(t, 5, historyCount(t, router))

	// The directory reflects the final record.
	w = doJSON(t, router, http.MethodGet, tradeURL, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var final dto.TradeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &final))
	assert.Equal(t, "Executed", final.State)
	assert.Equal(t, uint64(1000), final.Fields.NotionalAmount)
}

func TestTradeLifecycle_Cancellation(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/trades", dto.SubmitTradeRequest{
		UserID: "bob",
		Fields: tradeFields(1),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var submitted dto.SubmitTradeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &submitted))
	tradeURL := "/api/v1/trades/" + submitted.ID

	// A foreign requester cannot cancel someone else's trade.
	w = doJSON(t, router, http.MethodPost, tradeURL+"/cancel", dto.IdentityRequest{
		UserID: "ellie", Capability: "requester",
	})
	require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	// Any approver can.
	w = doJSON(t, router, http.MethodPost, tradeURL+"/cancel", dto.IdentityRequest{
		UserID: "maggie", Capability: "approver",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var cancelled dto.TradeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cancelled))
	assert.Equal(t, "Cancelled", cancelled.State)

	// Cancelled is terminal; further transitions conflict.
	w = doJSON(t, router, http.MethodPost, tradeURL+"/accept", dto.ActorRequest{UserID: "maggie"})
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestTradeLifecycle_ValidationAndErrors(t *testing.T) {
	router := newTestServer(t)

	// Dates behind the trade date are rejected with a 422.
	fields := tradeFields(1)
	fields.ValueDate = "2000-01-01T00:00:00Z"
	fields.DeliveryDate = "2000-02-01T00:00:00Z"
	w := doJSON(t, router, http.MethodPost, "/api/v1/trades", dto.SubmitTradeRequest{
		UserID: "bob",
		Fields: fields,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

	// Unknown currencies never reach the domain.
	fields = tradeFields(1)
	fields.NotionalCurrency = "XXX"
	w = doJSON(t, router, http.MethodPost, "/api/v1/trades", dto.SubmitTradeRequest{
		UserID: "bob",
		Fields: fields,
	})
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	// Unknown trades 404.
	w = doJSON(t, router, http.MethodGet, "/api/v1/trades/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

	// History past the end 404s, bad indices 400.
	w = doJSON(t, router, http.MethodGet, "/api/v1/history/0", nil)
	require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/v1/history/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}
