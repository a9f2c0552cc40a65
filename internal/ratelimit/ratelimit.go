package ratelimit

import (
	"strings"
	"sync"
	"time"

	"github.com/dropbox/godropbox/time2"
	"golang.org/x/time/rate"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
)

// idleTTL is how long an unused key keeps its limiter.
const idleTTL = 10 * time.Minute

// KeyedLimiter holds one token bucket per key, e.g. per user address.
type KeyedLimiter struct {
	limit rate.Limit
	burst int
	clock time2.Clock

	mu       sync.Mutex
	visitors map[string]*visitor
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// New returns a limiter refilling perMinute tokens per minute. A zero rate disables limiting.
func New(perMinute int, burst int, clock time2.Clock) *KeyedLimiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Limit(float64(perMinute) / time.Minute.Seconds())
	}
	if burst < 1 {
		burst = 1
	}

	return &KeyedLimiter{
		limit:    limit,
		burst:    burst,
		clock:    clock,
		visitors: make(map[string]*visitor),
	}
}

func NewFromConfig(cfg config.Signature, clock time2.Clock) *KeyedLimiter {
	return New(cfg.RatePerMinute, cfg.Burst, clock)
}

// Allow consumes a token for key. Keys are case-insensitive.
func (l *KeyedLimiter) Allow(key string) bool {
	now := l.clock.Now()
	key = strings.ToLower(key)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.pruneLocked(now)

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// Len is the number of tracked keys.
func (l *KeyedLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.visitors)
}

func (l *KeyedLimiter) pruneLocked(now time.Time) {
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > idleTTL {
			delete(l.visitors, key)
		}
	}
}
