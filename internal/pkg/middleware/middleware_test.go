package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain"
	apperror "backoffice/internal/errors"
	"backoffice/internal/pkg/logger"
	"backoffice/internal/pkg/middleware"
	"backoffice/internal/pkg/token"
)

// --- Authorize ---

func TestAuthorize(t *testing.T) {
	tokens := token.NewService("segredo")
	principal := domain.Principal{ID: "a1", Username: "admin", Email: "admin@example.com", Role: domain.RoleSuperAdmin}
	valid, err := tokens.IssueToken(principal)
	require.NoError(t, err)

	expiredIssuer := token.NewService("segredo").WithClock(func() time.Time { return time.Now().Add(-48 * time.Hour) })
	expired, err := expiredIssuer.IssueToken(principal)
	require.NoError(t, err)

	authz := middleware.NewAuthorizer(tokens)

	tests := []struct {
		name         string
		header       string
		wantCategory string
	}{
		{"sem header", "", apperror.CategoryMissingToken},
		{"esquema errado", "Basic " + valid, apperror.CategoryMissingToken},
		{"bearer minúsculo", "bearer " + valid, apperror.CategoryMissingToken},
		{"bearer vazio", "Bearer ", apperror.CategoryMissingToken},
		{"token lixo", "Bearer lixo", apperror.CategoryInvalidToken},
		{"token expirado", "Bearer " + expired, apperror.CategoryInvalidToken},
		{"token válido", "Bearer " + valid, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/sellers", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			got, err := authz.Authorize(req)
			if tt.wantCategory == "" {
				require.NoError(t, err)
				assert.Equal(t, principal, got)
				return
			}

			require.Error(t, err)
			status, category, _ := apperror.MapToHTTPStatus(err)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, tt.wantCategory, category)
			assert.Equal(t, domain.Principal{}, got)
		})
	}
}

func TestPrincipalContext(t *testing.T) {
	_, ok := middleware.PrincipalFromContext(context.Background())
	assert.False(t, ok)

	p := domain.Principal{ID: "a1", Role: domain.RoleAdmin}
	got, ok := middleware.PrincipalFromContext(middleware.WithPrincipal(context.Background(), p))
	require.True(t, ok)
	assert.Equal(t, p, got)
}

// --- RateLimiter ---

type fakeCache struct {
	mu       sync.Mutex
	counters map[string]int64
	expires  map[string]time.Duration
	failIncr bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{counters: map[string]int64{}, expires: map[string]time.Duration{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) { return "", errors.New("n/a") }
func (f *fakeCache) Set(ctx context.Context, key string, v interface{}, exp time.Duration) error {
	return nil
}
func (f *fakeCache) Delete(ctx context.Context, key string) error { return nil }
func (f *fakeCache) Ping(ctx context.Context) error               { return nil }
func (f *fakeCache) Incr(ctx context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIncr {
		return 0, errors.New("redis fora do ar")
	}
	f.counters[key]++
	return f.counters[key], nil
}
func (f *fakeCache) Expire(ctx context.Context, key string, exp time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expires[key] = exp
	return nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	c := newFakeCache()
	h := middleware.RateLimiter(c, logger.NewLogger("error"), 2, time.Minute)(okHandler())

	codes := []int{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/sellers", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{200, 200, 429}, codes)
	assert.Equal(t, time.Minute, c.expires["rate-limit:10.0.0.1"])
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	c := newFakeCache()
	c.failIncr = true
	h := middleware.RateLimiter(c, logger.NewLogger("error"), 1, time.Minute)(okHandler())

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sellers", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestLocalRateLimiter(t *testing.T) {
	l := middleware.NewLocalRateLimiter(2, time.Hour)
	h := l.Middleware(okHandler())

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/sellers", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:2"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:3"))
	// Outro IP tem seu próprio bucket.
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1"))
}
