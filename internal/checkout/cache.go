package checkout

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/northshoreshop/storefront/internal/domain"
)

// sessionCache holds checkout sessions that reached a terminal status. Open
// sessions are never cached since their status changes once the customer pays.
type sessionCache struct {
	lru *expirable.LRU[string, *domain.CheckoutSession]
}

func newSessionCache(size int, ttl time.Duration) *sessionCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &sessionCache{
		lru: expirable.NewLRU[string, *domain.CheckoutSession](size, nil, ttl),
	}
}

func (c *sessionCache) Get(sessionID string) (*domain.CheckoutSession, bool) {
	return c.lru.Get(sessionID)
}

// Set stores the session if its status is terminal and reports whether it did
func (c *sessionCache) Set(session *domain.CheckoutSession) bool {
	if !isTerminal(session.Status) {
		return false
	}
	c.lru.Add(session.ID, session)
	return true
}

func (c *sessionCache) Len() int {
	return c.lru.Len()
}

func isTerminal(status string) bool {
	return status == domain.CheckoutStatusComplete || status == domain.CheckoutStatusExpired
}
