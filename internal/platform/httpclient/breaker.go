package httpclient

import (
	"sync"
	"time"
)

const (
	breakerFailureThreshold = 5
	breakerCooldown         = 30 * time.Second
)

// hostBreaker tracks consecutive transport failures per host. External legal
// data sources go down independently; once a host has failed enough times in
// a row, requests to it are refused until a cooldown elapses, then a single
// probe decides whether it recovered.
type hostBreaker struct {
	mu       sync.Mutex
	failures int
	openedAt time.Time
}

// allow reports whether a request to the host may proceed. An open breaker
// admits one probe per cooldown window.
func (b *hostBreaker) allow(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failures < breakerFailureThreshold {
		return true
	}
	if now.Sub(b.openedAt) < breakerCooldown {
		return false
	}
	// Probe window: push the open timestamp forward so concurrent callers
	// do not all probe at once.
	b.openedAt = now
	return true
}

func (b *hostBreaker) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = 0
}

func (b *hostBreaker) recordFailure(now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures++
	if b.failures == breakerFailureThreshold {
		b.openedAt = now
	}
}

type breakerSet struct {
	mu    sync.Mutex
	hosts map[string]*hostBreaker
}

func newBreakerSet() *breakerSet {
	return &breakerSet{hosts: make(map[string]*hostBreaker)}
}

func (s *breakerSet) forHost(host string) *hostBreaker {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.hosts[host]
	if !ok {
		b = &hostBreaker{}
		s.hosts[host] = b
	}
	return b
}
