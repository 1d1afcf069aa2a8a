package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type fakeIdempotencyStore struct {
	responses map[string][]byte
	updates   int
}

func newFakeIdempotencyStore() *fakeIdempotencyStore {
	return &fakeIdempotencyStore{responses: make(map[string][]byte)}
}

func (s *fakeIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if cached, ok := s.responses[key]; ok {
		return true, cached, nil
	}
	s.responses[key] = []byte("processing")
	return false, nil, nil
}

func (s *fakeIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	s.responses[key] = response
	s.updates++
	return nil
}

func TestIdempotencyMiddlewareReplaysStoredResponse(t *testing.T) {
	store := newFakeIdempotencyStore()
	store.responses["seen-key"] = []byte(`{"id":"stored"}`)

	handler := NewIdempotencyMiddleware(store, time.Hour).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a replayed key")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/expenses", strings.NewReader(`{}`))
	req.Header.Set(IdempotencyKeyHeader, "seen-key")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Header().Get("X-Idempotency-Replay") != "true" {
		t.Error("expected the replay marker header")
	}
	if rec.Body.String() != `{"id":"stored"}` {
		t.Errorf("body = %s, want stored response", rec.Body)
	}
}

func TestIdempotencyMiddlewareStoresSuccessfulResponse(t *testing.T) {
	store := newFakeIdempotencyStore()

	handler := NewIdempotencyMiddleware(store, time.Hour).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"fresh"}`))
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/expenses", strings.NewReader(`{}`))
	req.Header.Set(IdempotencyKeyHeader, "new-key")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if store.updates != 1 {
		t.Fatalf("updates = %d, want 1", store.updates)
	}
	if string(store.responses["new-key"]) != `{"id":"fresh"}` {
		t.Errorf("stored = %s, want fresh response", store.responses["new-key"])
	}
}

func TestIdempotencyMiddlewareSkipsFailures(t *testing.T) {
	store := newFakeIdempotencyStore()

	handler := NewIdempotencyMiddleware(store, time.Hour).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"name":"InvalidParam"}`))
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/expenses", strings.NewReader(`{}`))
	req.Header.Set(IdempotencyKeyHeader, "failing-key")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if store.updates != 0 {
		t.Errorf("updates = %d, failed responses must not be stored", store.updates)
	}
}

func TestIdempotencyMiddlewareIgnoresReadsAndMissingKeys(t *testing.T) {
	store := newFakeIdempotencyStore()

	calls := 0
	handler := NewIdempotencyMiddleware(store, time.Hour).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))

	get := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	get.Header.Set(IdempotencyKeyHeader, "read-key")
	handler.ServeHTTP(httptest.NewRecorder(), get)

	post := httptest.NewRequest(http.MethodPost, "/api/expenses", strings.NewReader(`{}`))
	handler.ServeHTTP(httptest.NewRecorder(), post)

	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if len(store.responses) != 0 {
		t.Errorf("store touched for requests outside the contract: %v", store.responses)
	}
}
