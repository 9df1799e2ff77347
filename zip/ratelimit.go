package zip

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// HostLimiter spaces out downloads that target the same host. Hosts are
// limited independently, each with a burst of one.
type HostLimiter struct {
	mu    sync.Mutex
	hosts map[string]*rate.Limiter
	limit rate.Limit
}

// NewHostLimiter returns a limiter allowing rps downloads per second per host.
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		hosts: make(map[string]*rate.Limiter),
		limit: rate.Limit(rps),
	}
}

// Wait blocks until a download of rawURL may start. URLs without a host
// are not limited.
func (l *HostLimiter) Wait(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil
	}
	return l.limiter(strings.ToLower(u.Host)).Wait(ctx)
}

func (l *HostLimiter) limiter(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.hosts[host]
	if !ok {
		lim = rate.NewLimiter(l.limit, 1)
		l.hosts[host] = lim
	}
	return lim
}
