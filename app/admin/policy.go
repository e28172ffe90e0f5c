package admin

import (
	"context"
	"strings"
	"sync"
	"time"
)

// dbPolicy is the database-backed resolution policy. The allow-list is
// cached for a short TTL so the hot path does not hit the database on every
// request while edits still take effect without a restart.
type dbPolicy struct {
	repo Repository
	ttl  time.Duration

	mu        sync.RWMutex
	allowed   map[string]struct{}
	fetchedAt time.Time
}

// NewPolicy creates a reloadable resolution policy over the repository.
func NewPolicy(repo Repository, ttl time.Duration) Policy {
	return &dbPolicy{
		repo: repo,
		ttl:  ttl,
	}
}

// IsResolver reports whether address is on the active allow-list.
// Addresses compare case-insensitively.
func (p *dbPolicy) IsResolver(ctx context.Context, address string) (bool, error) {
	if address == "" {
		return false, nil
	}

	allowed, err := p.snapshot(ctx)
	if err != nil {
		return false, err
	}

	_, ok := allowed[strings.ToLower(address)]
	return ok, nil
}

// Invalidate drops the cached allow-list.
func (p *dbPolicy) Invalidate() {
	p.mu.Lock()
	p.allowed = nil
	p.mu.Unlock()
}

func (p *dbPolicy) snapshot(ctx context.Context) (map[string]struct{}, error) {
	p.mu.RLock()
	if p.allowed != nil && time.Since(p.fetchedAt) < p.ttl {
		allowed := p.allowed
		p.mu.RUnlock()
		return allowed, nil
	}
	p.mu.RUnlock()

	resolvers, err := p.repo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	allowed := make(map[string]struct{}, len(resolvers))
	for i := range resolvers {
		allowed[strings.ToLower(resolvers[i].Address)] = struct{}{}
	}

	p.mu.Lock()
	p.allowed = allowed
	p.fetchedAt = time.Now()
	p.mu.Unlock()

	return allowed, nil
}
