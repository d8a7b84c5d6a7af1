package serverutils

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// LoginLimiter counts failed sign-in attempts per client IP in an expiring
// in-memory cache. Once the limit is hit, the IP stays blocked until its
// window expires.
type LoginLimiter struct {
	attempts *cache.Cache
	max      int
}

func NewLoginLimiter(max int, window time.Duration) *LoginLimiter {
	if max <= 0 {
		max = 5
	}
	return &LoginLimiter{
		attempts: cache.New(window, 2*window),
		max:      max,
	}
}

func (l *LoginLimiter) Blocked(ip string) bool {
	if n, found := l.attempts.Get(ip); found {
		return n.(int) >= l.max
	}
	return false
}

func (l *LoginLimiter) Fail(ip string) {
	if n, found := l.attempts.Get(ip); found {
		l.attempts.Set(ip, n.(int)+1, cache.DefaultExpiration)
		return
	}
	l.attempts.Set(ip, 1, cache.DefaultExpiration)
}

func (l *LoginLimiter) Reset(ip string) {
	l.attempts.Delete(ip)
}
