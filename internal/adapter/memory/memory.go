// Package memory implements the in-process profile cache.
package memory

import (
	"sync"
	"time"

	"turnosweb/internal/domain"
)

// FreshFor is the profile freshness window. Within it the dashboard does not
// re-fetch /usuarios/me.
const FreshFor = 5 * time.Minute

type entry struct {
	user    *domain.Usuario
	fetched time.Time
}

// ProfileCache caches user profiles per credential with a freshness window.
type ProfileCache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

var _ domain.ProfileCache = (*ProfileCache)(nil)

// NewProfileCache creates an empty cache.
func NewProfileCache() *ProfileCache {
	return &ProfileCache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached profile for the credential, missing when absent or
// older than the freshness window.
func (c *ProfileCache) Get(token string) (*domain.Usuario, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[token]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.fetched) > FreshFor {
		delete(c.entries, token)
		return nil, false
	}
	return e.user, true
}

// Put stores a freshly fetched profile.
func (c *ProfileCache) Put(token string, u *domain.Usuario) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[token] = entry{user: u, fetched: c.now()}
}

// Clear evicts the profile for the credential. Called on logout and on any
// authentication failure.
func (c *ProfileCache) Clear(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, token)
}
