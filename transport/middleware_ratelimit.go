package transport

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/buildestate/backend/constant"
	"github.com/buildestate/backend/utils/errors"
)

// Credential endpoints get a per-IP token bucket; everything else passes
// through untouched.
const (
	loginRateLimit = rate.Limit(1) // tokens per second
	loginRateBurst = 5
)

var rateLimitedPaths = map[string]bool{
	"/api/users/login":    true,
	"/api/users/register": true,
	"/api/users/admin":    true,
	"/api/users/forgot":   true,
}

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiterPool struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiter
}

func newRateLimiterPool() *rateLimiterPool {
	p := &rateLimiterPool{limiters: make(map[string]*ipLimiter)}
	go p.cleanup()
	return p
}

func (p *rateLimiterPool) get(ip string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry, ok := p.limiters[ip]
	if !ok {
		entry = &ipLimiter{limiter: rate.NewLimiter(loginRateLimit, loginRateBurst)}
		p.limiters[ip] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

// cleanup drops limiters idle for over ten minutes so the pool does not
// grow without bound.
func (p *rateLimiterPool) cleanup() {
	for range time.Tick(time.Minute) {
		p.mu.Lock()
		for ip, entry := range p.limiters {
			if time.Since(entry.lastSeen) > 10*time.Minute {
				delete(p.limiters, ip)
			}
		}
		p.mu.Unlock()
	}
}

// RateLimitMiddleware throttles credential endpoints per client IP.
func RateLimitMiddleware() mux.MiddlewareFunc {
	pool := newRateLimiterPool()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rateLimitedPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			if !pool.get(ip).Allow() {
				writeError(w, errors.SetCustomError(constant.ErrTooManyRequests))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
