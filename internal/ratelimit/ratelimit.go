package ratelimit

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// PerIP keeps one token bucket per client address.
type PerIP struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

func New(rps float64, burst int) *PerIP {
	if burst < 1 {
		burst = 1
	}
	return &PerIP{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
	}
}

// Allow reports whether key may make a request now.
func (p *PerIP) Allow(key string) bool {
	p.mu.Lock()
	v, ok := p.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(p.limit, p.burst)}
		p.visitors[key] = v
	}
	v.lastSeen = p.now()
	p.mu.Unlock()
	return v.limiter.AllowN(v.lastSeen, 1)
}

// Sweep drops visitors idle for longer than idle.
func (p *PerIP) Sweep(idle time.Duration) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for k, v := range p.visitors {
		if p.now().Sub(v.lastSeen) > idle {
			delete(p.visitors, k)
			n++
		}
	}
	return n
}

// Run sweeps idle visitors every minute until ctx is done.
func (p *PerIP) Run(ctx context.Context, idle time.Duration) {
	t := time.NewTicker(time.Minute)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.Sweep(idle)
		}
	}
}

// Middleware answers 429 once a client exhausts its bucket. RemoteAddr
// is expected to be rewritten by middleware.RealIP upstream.
func (p *PerIP) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.RemoteAddr
		if host, _, err := net.SplitHostPort(key); err == nil {
			key = host
		}
		if !p.Allow(key) {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
