package middleware

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimiter throttles clients per IP. With a Redis client it uses a
// fixed INCR/EXPIRE window shared across replicas and bans clients that
// keep hammering a saturated window; without one it falls back to an
// in-process token bucket. Redis failures fail open: a broken limiter
// must not take the API down with it.
type RateLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
	ban    time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// NewRateLimiter creates a limiter allowing max requests per window for
// each client IP. client may be nil for the in-process fallback.
func NewRateLimiter(client *redis.Client, max int, window, ban time.Duration, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		client:  client,
		max:     max,
		window:  window,
		ban:     ban,
		logger:  logger,
		buckets: make(map[string]*rate.Limiter),
	}
}

// Middleware wraps next with the rate limit check.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		if l.client != nil {
			if !l.allowRedis(w, r, ip) {
				return
			}
		} else if !l.allowLocal(ip) {
			writeTooManyRequests(w, l.window)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) allowRedis(w http.ResponseWriter, r *http.Request, ip string) bool {
	ctx := r.Context()

	banned, err := l.client.Exists(ctx, banKey(ip)).Result()
	if err != nil {
		l.logger.Warn("rate limiter unavailable, failing open", "error", err)
		return true
	}
	if banned > 0 {
		writeBanned(w, l.ban)
		return false
	}

	key := windowKey(ip)
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		l.logger.Warn("rate limiter unavailable, failing open", "error", err)
		return true
	}
	if count == 1 {
		l.client.Expire(ctx, key, l.window)
	}

	if count > int64(2*l.max) {
		// Sustained abuse well past the limit: ban the client for a while.
		l.client.Set(ctx, banKey(ip), 1, l.ban)
		l.logger.Warn("client banned by rate limiter", "ip", ip)
		writeBanned(w, l.ban)
		return false
	}
	if count > int64(l.max) {
		writeTooManyRequests(w, l.window)
		return false
	}
	return true
}

func (l *RateLimiter) allowLocal(ip string) bool {
	l.mu.Lock()
	bucket, ok := l.buckets[ip]
	if !ok {
		bucket = rate.NewLimiter(rate.Limit(float64(l.max)/l.window.Seconds()), l.max)
		l.buckets[ip] = bucket
	}
	l.mu.Unlock()
	return bucket.Allow()
}

func windowKey(ip string) string { return "ratelimit:" + ip }
func banKey(ip string) string    { return "ratelimit:ban:" + ip }

// clientIP prefers the first X-Forwarded-For hop, falling back to the
// connection's remote address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		for i := 0; i < len(fwd); i++ {
			if fwd[i] == ',' {
				return fwd[:i]
			}
		}
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeTooManyRequests(w http.ResponseWriter, retryAfter time.Duration) {
	w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
	http.Error(w, "rate limit exceeded, try again later", http.StatusTooManyRequests)
}

func writeBanned(w http.ResponseWriter, ban time.Duration) {
	http.Error(w, fmt.Sprintf("your IP is banned for %s, try again later", ban), http.StatusTooManyRequests)
}
