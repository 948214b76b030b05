package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wanderwise/backend/internal/middleware"
)

func postFrom(h http.Handler, addr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/destinations/burnham/comments", nil)
	req.RemoteAddr = addr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// TestRateLimiter_BurstThenReject verifies that a client may spend its burst
// and is then refused with 429 and a Retry-After header.
func TestRateLimiter_BurstThenReject(t *testing.T) {
	limited := 0
	rl := middleware.NewRateLimiter(0.001, 2, func(*http.Request) { limited++ })
	h := rl.Handler(trivialHandler)

	require.Equal(t, http.StatusOK, postFrom(h, "10.0.0.1:1234").Code)
	require.Equal(t, http.StatusOK, postFrom(h, "10.0.0.1:1235").Code)

	rec := postFrom(h, "10.0.0.1:1236")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":{"code":"rate_limited","message":"too many requests"}}`, rec.Body.String())
	assert.Equal(t, 1, limited)
}

// TestRateLimiter_PerClient verifies that one client's budget does not
// affect another's.
func TestRateLimiter_PerClient(t *testing.T) {
	rl := middleware.NewRateLimiter(0.001, 1, nil)
	h := rl.Handler(trivialHandler)

	require.Equal(t, http.StatusOK, postFrom(h, "10.0.0.1:1").Code)
	require.Equal(t, http.StatusTooManyRequests, postFrom(h, "10.0.0.1:2").Code)
	assert.Equal(t, http.StatusOK, postFrom(h, "10.0.0.2:1").Code)
}

// TestRateLimiter_Prune verifies idle clients are forgotten and start over
// with a full bucket.
func TestRateLimiter_Prune(t *testing.T) {
	rl := middleware.NewRateLimiter(0.001, 1, nil)
	h := rl.Handler(trivialHandler)

	require.Equal(t, http.StatusOK, postFrom(h, "10.0.0.1:1").Code)
	require.Equal(t, http.StatusTooManyRequests, postFrom(h, "10.0.0.1:1").Code)

	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 1, rl.Prune(time.Millisecond))
	assert.Equal(t, http.StatusOK, postFrom(h, "10.0.0.1:1").Code)
}
