package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clnass/creator-service/internal/config"
	"github.com/clnass/creator-service/internal/utils/jwt"
)

const secret = "test-secret"

func echoUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		json.NewEncoder(w).Encode(map[string]uint{"user_id": userID})
	})
}

func token(t *testing.T, userID uint) string {
	t.Helper()
	tok, err := jwt.CreateToken(userID, secret, time.Hour)
	require.NoError(t, err)
	return tok
}

func TestAuthMiddleware(t *testing.T) {
	handler := AuthMiddleware(secret)(echoUser())
	tok := token(t, 5)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"raw token", tok, http.StatusOK},
		{"bearer token", "Bearer " + tok, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"invalid", "Bearer nope", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/creator/1/first", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"user_id":5}`, rec.Body.String())
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	rlc := NewRateLimitConfig(client, config.RateLimit{Capacity: 2, RefillPerMinute: 2})
	handler := Chain(echoUser(), AuthMiddleware(secret), rlc.RateLimitMiddleware(ActionCreator))
	tok := token(t, 8)

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/creator/1/first", nil)
		req.Header.Set("Authorization", tok)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	first := do()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, do().Code)

	limited := do()
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "0", limited.Header().Get("X-RateLimit-Remaining"))
	assert.JSONEq(t, `{"message":"RATE_LIMIT_EXCEEDED"}`, limited.Body.String())
}

func TestRateLimitMiddleware_RequiresUser(t *testing.T) {
	rlc := &RateLimitConfig{}
	rec := httptest.NewRecorder()
	rlc.RateLimitedHandler(ActionCreator, echoUser()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
