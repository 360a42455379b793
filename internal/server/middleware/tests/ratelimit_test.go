package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/middleware"
)

func TestRateLimiter_BurstThenReject(t *testing.T) {
	rl := middleware.NewRateLimiter(0.001, 2)

	require.True(t, rl.Allow("1.1.1.1"))
	require.True(t, rl.Allow("1.1.1.1"))
	require.False(t, rl.Allow("1.1.1.1"))

	// другой IP — свой бакет
	require.True(t, rl.Allow("2.2.2.2"))
}

func TestRateLimiter_Middleware_Returns429(t *testing.T) {
	rl := middleware.NewRateLimiter(0.001, 1)
	handler := rl.Middleware()(testHandler(http.StatusOK, "ok"))

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	require.Equal(t, http.StatusOK, do().Code)

	rr := do()
	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	require.JSONEq(t, `{"error":"too many requests"}`, rr.Body.String())
	require.Equal(t, "1", rr.Header().Get("Retry-After"))
}
