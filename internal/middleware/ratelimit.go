package middleware

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// visitorLimiter tracks one token-bucket limiter per client IP and
// evicts buckets that have gone quiet.
type visitorLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newVisitorLimiter(r rate.Limit, burst int) *visitorLimiter {
	vl := &visitorLimiter{
		visitors: make(map[string]*visitor),
		rate:     r,
		burst:    burst,
	}
	go vl.evictLoop()
	return vl
}

func (vl *visitorLimiter) get(ip string) *rate.Limiter {
	vl.mu.Lock()
	defer vl.mu.Unlock()

	v, ok := vl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(vl.rate, vl.burst)}
		vl.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

// evictLoop drops IPs idle for more than 10 minutes so a long-running
// server doesn't accumulate buckets forever.
func (vl *visitorLimiter) evictLoop() {
	for {
		time.Sleep(5 * time.Minute)
		vl.mu.Lock()
		for ip, v := range vl.visitors {
			if time.Since(v.lastSeen) > 10*time.Minute {
				delete(vl.visitors, ip)
			}
		}
		vl.mu.Unlock()
	}
}

// RateLimit limits requests per client IP. r is requests per second,
// burst the bucket size. Badge readers retry aggressively on flaky
// Wi-Fi, so ingestion routes get a generous burst while login stays
// tight: RateLimit(rate.Every(12*time.Second), 5) ≈ 5 attempts/minute.
func RateLimit(r rate.Limit, burst int) func(http.Handler) http.Handler {
	vl := newVisitorLimiter(r, burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !vl.get(clientIP(req)).Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "60")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Too many requests. Please try again later.",
				})
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

// clientIP returns the originating IP, honoring X-Forwarded-For when a
// reverse proxy is in front.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for i := 0; i < len(xff); i++ {
			if xff[i] == ',' {
				return xff[:i]
			}
		}
		return xff
	}
	return r.RemoteAddr
}
