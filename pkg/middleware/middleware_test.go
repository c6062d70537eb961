package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type flakySchema struct {
	failures int
	calls    int
}

func (s *flakySchema) Ensure(ctx context.Context) error {
	s.calls++
	if s.calls <= s.failures {
		return errors.New("database unavailable")
	}
	return nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestEnsureSchema_RetriesUntilSuccess(t *testing.T) {
	schema := &flakySchema{failures: 2}
	handler := EnsureSchema(schema, zap.NewNop())(okHandler())

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}

	assert.Equal(t, 3, schema.calls)
}

func TestRecover(t *testing.T) {
	handler := Recover(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth-otp", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestRecover_RepanicsAbort(t *testing.T) {
	handler := Recover(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestLogger_PassesThrough(t *testing.T) {
	handler := Logger(zap.NewNop())(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestLogger_OmitsQueryValues(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := Logger(zap.New(core))(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users?email=ann@example.com&id=tel:%2B15550102000", nil))

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "/api/users", fields["path"])
	assert.Equal(t, []interface{}{"email", "id"}, fields["query_keys"])
	for _, v := range fields {
		s, ok := v.(string)
		if !ok {
			continue
		}
		assert.NotContains(t, s, "ann@example.com")
		assert.NotContains(t, s, "15550102000")
	}
}

func TestCORS_Preflight(t *testing.T) {
	handler := CORS([]string{"https://cinerank.app"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/auth-otp", nil)
	req.Header.Set("Origin", "https://cinerank.app")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "https://cinerank.app", rec.Header().Get("Access-Control-Allow-Origin"))
}
