package cache

import (
	"sync"
	"time"

	"inboxzero/internal/models"
)

// DefaultTTL bounds how long preferences are served without hitting the
// database. Preference edits invalidate their entry immediately, so the TTL
// only matters for out-of-band writes.
const DefaultTTL = 5 * time.Minute

type entry struct {
	prefs     models.UserPreferences
	expiresAt time.Time
}

// Preferences is an in-memory per-user preferences cache. Every inbox
// processing run reads preferences, so they are kept hot between runs.
type Preferences struct {
	entries map[string]entry
	ttl     time.Duration
	mutex   sync.RWMutex
}

// NewPreferences creates a preferences cache. A non-positive ttl falls back
// to DefaultTTL.
func NewPreferences(ttl time.Duration) *Preferences {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Preferences{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// Get returns the cached preferences for a user, if present and fresh.
func (c *Preferences) Get(userID string) (models.UserPreferences, bool) {
	c.mutex.RLock()
	e, exists := c.entries[userID]
	c.mutex.RUnlock()

	if !exists {
		return models.UserPreferences{}, false
	}
	if time.Now().After(e.expiresAt) {
		c.mutex.Lock()
		delete(c.entries, userID)
		c.mutex.Unlock()
		return models.UserPreferences{}, false
	}
	return e.prefs, true
}

// Set stores a user's preferences.
func (c *Preferences) Set(userID string, prefs models.UserPreferences) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries[userID] = entry{
		prefs:     prefs,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Invalidate drops a user's cached preferences after an update.
func (c *Preferences) Invalidate(userID string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.entries, userID)
}
