package client

import (
	"sync"
	"time"

	"logbook/internal/timeclock"
)

// resyncSuppression is how long after a local deletion a full resync is
// skipped, so the deleted entry is not resurrected before the deletion has
// propagated to the server.
const resyncSuppression = 5 * time.Second

// Cache is the client's local mirror of the shared entry list. It may be
// stale or diverge after concurrent edits from other devices; a full resync
// is the only reconciliation mechanism ("last sync wins").
type Cache struct {
	mu         sync.Mutex
	entries    []timeclock.Entry
	lastDelete time.Time
}

func NewCache() *Cache {
	return &Cache{}
}

// Entries returns a copy of the cached entries, newest first.
func (c *Cache) Entries() []timeclock.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]timeclock.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Put prepends a new entry, keeping newest-first order.
func (c *Cache) Put(e timeclock.Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append([]timeclock.Entry{e}, c.entries...)
}

// Remove deletes the entry with the given id and reports whether it existed.
func (c *Cache) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, e := range c.entries {
		if e.ID == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceID swaps a temporary id for the server-assigned one, so a later
// deletion by id still finds the entry.
func (c *Cache) ReplaceID(tempID, serverID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.entries {
		if c.entries[i].ID == tempID {
			c.entries[i].ID = serverID
			return true
		}
	}
	return false
}

// SetSync updates the sync state of the entry with the given id.
func (c *Cache) SetSync(id string, s timeclock.SyncState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.entries {
		if c.entries[i].ID == id {
			c.entries[i].Sync = s
			return
		}
	}
}

// MarkDeleted records the instant of a local deletion; resyncs within the
// suppression window are skipped.
func (c *Cache) MarkDeleted(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastDelete = now
}

// Resync replaces the cache with the server's entry list and reports whether
// the replacement was applied. It is suppressed inside the post-delete window.
func (c *Cache) Resync(entries []timeclock.Entry, now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.lastDelete.IsZero() && now.Sub(c.lastDelete) < resyncSuppression {
		return false
	}
	c.entries = make([]timeclock.Entry, len(entries))
	copy(c.entries, entries)
	return true
}
