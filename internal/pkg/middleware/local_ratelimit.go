package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"backoffice/internal/domain"
)

// LocalRateLimiter é o limitador em memória usado quando não há Redis configurado.
// Token-bucket por IP; buckets ociosos são descartados na próxima requisição após o ttl.
type LocalRateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*localBucket
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	now     func() time.Time
}

type localBucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// NewLocalRateLimiter permite `limit` requisições por `window` e por IP.
func NewLocalRateLimiter(limit int, window time.Duration) *LocalRateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &LocalRateLimiter{
		buckets: make(map[string]*localBucket),
		limit:   rate.Limit(float64(limit) / window.Seconds()),
		burst:   limit,
		ttl:     5 * window,
		now:     time.Now,
	}
}

// Allow indica se o IP ainda tem crédito.
func (l *LocalRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for k, b := range l.buckets {
		if now.Sub(b.seen) > l.ttl {
			delete(l.buckets, k)
		}
	}

	b, ok := l.buckets[ip]
	if !ok {
		b = &localBucket{lim: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[ip] = b
	}
	b.seen = now
	return b.lim.AllowN(now, 1)
}

// Middleware devolve o limitador como middleware HTTP.
func (l *LocalRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.burst <= 0 {
			next.ServeHTTP(w, r)
			return
		}
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !l.Allow(ip) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(domain.ErrorResponse{Error: "Rate limit exceeded", Category: "RATE_LIMITED"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// MaxBodyBytes limita o tamanho do corpo da requisição.
func MaxBodyBytes(next http.Handler, maxBytes int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		next.ServeHTTP(w, r)
	})
}
