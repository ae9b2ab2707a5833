package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type idempotencyStoreStub struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newIdempotencyStoreStub() *idempotencyStoreStub {
	return &idempotencyStoreStub{values: make(map[string][]byte)}
}

func (s *idempotencyStoreStub) CheckAndSet(_ context.Context, key string, response []byte, _ time.Duration) (bool, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.values[key]; ok {
		return true, existing, nil
	}
	s.values[key] = []byte("processing")
	return false, nil, nil
}

func (s *idempotencyStoreStub) Update(_ context.Context, key string, response []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = response
	return nil
}

func TestIdempotencyMiddleware_ReplaysCachedResponse(t *testing.T) {
	store := newIdempotencyStoreStub()
	mw := NewIdempotencyMiddleware(store, time.Minute)

	calls := 0
	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"id":"t1"}`))
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/trades", nil)
		req.Header.Set(IdempotencyKeyHeader, "key-1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Body.String() != `{"id":"t1"}` {
			t.Fatalf("attempt %d body = %q", i, rec.Body.String())
		}
		if i == 1 && rec.Header().Get("X-Idempotency-Replay") != "true" {
			t.Error("expected replay header on second attempt")
		}
	}

	if calls != 1 {
		t.Errorf("handler calls = %d, want 1", calls)
	}
}

func TestIdempotencyMiddleware_SkipsWithoutKey(t *testing.T) {
	store := newIdempotencyStoreStub()
	mw := NewIdempotencyMiddleware(store, time.Minute)

	calls := 0
	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/trades", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
	}

	if calls != 2 {
		t.Errorf("handler calls = %d, want 2", calls)
	}
}

func TestIdempotencyMiddleware_SkipsReads(t *testing.T) {
	store := newIdempotencyStoreStub()
	mw := NewIdempotencyMiddleware(store, time.Minute)

	calls := 0
	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	req := httptest.NewRequest(http.MethodGet, "/trades/t1", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if calls != 1 {
		t.Errorf("handler calls = %d, want 1", calls)
	}
	if len(store.values) != 0 {
		t.Error("reads must not touch the store")
	}
}

func TestIdempotencyMiddleware_DoesNotCacheFailures(t *testing.T) {
	store := newIdempotencyStoreStub()
	mw := NewIdempotencyMiddleware(store, time.Minute)

	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"invalid transition"}`))
	}))

	req := httptest.NewRequest(http.MethodPost, "/trades/t1/accept", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if string(store.values["key-1"]) != "processing" {
		t.Errorf("failed response must not be cached, stored %q", store.values["key-1"])
	}
}
