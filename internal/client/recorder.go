package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"logbook/internal/models"
	"logbook/internal/timeclock"
)

var (
	ErrNotSignedIn     = errors.New("please sign in again")
	ErrInvalidAction   = errors.New("invalid action")
	ErrSessionID       = errors.New("session missing identifier")
	ErrAlreadyTimedIn  = errors.New("you have already timed in today")
	ErrAlreadyTimedOut = errors.New("you have already timed out today")
)

// AddEntryRequest is the payload for the shared store's add_entry operation.
type AddEntryRequest struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	LogAction string    `json:"logAction"`
	Timestamp time.Time `json:"timestamp"`
}

// Remote is the shared entry store as seen from a client.
type Remote interface {
	AddEntry(ctx context.Context, req AddEntryRequest) (timeclock.Entry, error)
	ListEntries(ctx context.Context) ([]timeclock.Entry, error)
	DeleteEntry(ctx context.Context, entryID, userID string) error
}

// Recorder validates and appends clock entries for one signed-in user. Writes
// are two-phase: the entry lands in the local cache immediately (pending),
// then goes to the shared store; on acknowledgment the temporary id is swapped
// for the server-assigned one and the entry is marked synced. A failed remote
// write leaves the local copy in place, marked failed.
type Recorder struct {
	session Session
	cache   *Cache
	remote  Remote
	now     func() time.Time
}

func NewRecorder(session Session, cache *Cache, remote Remote) *Recorder {
	return &Recorder{session: session, cache: cache, remote: remote, now: time.Now}
}

// Record appends one time_in/time_out entry for today. At most one entry per
// action per canonical day is allowed; a duplicate is rejected before anything
// is written.
func (r *Recorder) Record(ctx context.Context, action string) (timeclock.Entry, error) {
	name := strings.TrimSpace(r.session.Name)
	if name == "" {
		return timeclock.Entry{}, ErrNotSignedIn
	}
	if !models.ValidAction(action) {
		return timeclock.Entry{}, ErrInvalidAction
	}

	now := r.now()
	today := timeclock.NewDayKey(now)
	for _, e := range r.cache.Entries() {
		if e.Name != name || e.Action != action || e.Day() != today {
			continue
		}
		if action == models.ActionTimeIn {
			return timeclock.Entry{}, ErrAlreadyTimedIn
		}
		return timeclock.Entry{}, ErrAlreadyTimedOut
	}

	entry := timeclock.Entry{
		ID:        tempID(now),
		UserID:    r.session.ID,
		Name:      name,
		Action:    action,
		Timestamp: now,
		Date:      now.Format("2006-01-02"),
		Time:      now.Format("15:04:05"),
		Sync:      timeclock.SyncPending,
	}
	r.cache.Put(entry)

	// The shared store needs a persisted session id. Without one the local
	// copy still exists, but the save never reaches the server.
	if r.session.ID == "" {
		r.cache.SetSync(entry.ID, timeclock.SyncFailed)
		entry.Sync = timeclock.SyncFailed
		return entry, ErrSessionID
	}

	saved, err := r.remote.AddEntry(ctx, AddEntryRequest{
		UserID:    r.session.ID,
		Name:      entry.Name,
		LogAction: entry.Action,
		Timestamp: entry.Timestamp,
	})
	if err != nil {
		r.cache.SetSync(entry.ID, timeclock.SyncFailed)
		entry.Sync = timeclock.SyncFailed
		return entry, err
	}

	r.cache.ReplaceID(entry.ID, saved.ID)
	r.cache.SetSync(saved.ID, timeclock.SyncSynced)
	entry.ID = saved.ID
	entry.Sync = timeclock.SyncSynced
	return entry, nil
}

// Delete removes an entry from the shared store, then from the cache, and
// starts the resync suppression window.
func (r *Recorder) Delete(ctx context.Context, entryID string) error {
	if r.session.ID == "" {
		return ErrSessionID
	}
	if err := r.remote.DeleteEntry(ctx, entryID, r.session.ID); err != nil {
		return err
	}
	r.cache.MarkDeleted(r.now())
	r.cache.Remove(entryID)
	return nil
}

// Resync replaces the cache with the server's entry list. On a connectivity
// failure the cache is left as-is and stays usable in a degraded mode.
func (r *Recorder) Resync(ctx context.Context) error {
	entries, err := r.remote.ListEntries(ctx)
	if err != nil {
		return err
	}
	r.cache.Resync(entries, r.now())
	return nil
}

func tempID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}
