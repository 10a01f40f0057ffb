package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/packlist/backend/internal/middleware"
)

func requestFrom(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/packing-lists", nil)
	req.RemoteAddr = addr
	return req
}

// TestRateLimiter_BurstThen429 verifies that a client may spend its burst and
// is then rejected with 429, Retry-After, and the JSON error body.
func TestRateLimiter_BurstThen429(t *testing.T) {
	// One token every ~17 minutes: nothing refills during the test.
	h := middleware.NewRateLimiter(0.001, 2).Handler(trivialHandler)

	for i := range 2 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestFrom("10.0.0.1:5000"))
		require.Equal(t, http.StatusOK, rec.Code, "request %d within burst", i)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, requestFrom("10.0.0.1:5001"))

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":{"code":"rate_limited","message":"too many requests"}}`, rec.Body.String())
}

// TestRateLimiter_PerClient verifies that buckets are keyed by host, so one
// client exhausting its budget does not affect another.
func TestRateLimiter_PerClient(t *testing.T) {
	rl := middleware.NewRateLimiter(0.001, 1)
	h := rl.Handler(trivialHandler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, requestFrom("10.0.0.1:5000"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, requestFrom("10.0.0.1:5000"))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, requestFrom("10.0.0.2:5000"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, rl.Len())
}

// TestRateLimiter_RejectedRequestDoesNotReachHandler verifies that the next
// handler is not invoked once the limit is hit.
func TestRateLimiter_RejectedRequestDoesNotReachHandler(t *testing.T) {
	calls := 0
	h := middleware.NewRateLimiter(0.001, 1).Handler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))

	for range 3 {
		h.ServeHTTP(httptest.NewRecorder(), requestFrom("192.0.2.7:1234"))
	}

	assert.Equal(t, 1, calls)
}
