package timeclock

import "time"

// SyncState tracks where a locally created entry stands relative to the shared
// store. Entries fetched from the server carry an empty state.
type SyncState string

const (
	SyncPending SyncState = "pending"
	SyncSynced  SyncState = "synced"
	SyncFailed  SyncState = "failed"
)

// Entry is the wire-level clock record shared by the client cache, the log
// browser and the hours engine. The ID is server-assigned once persisted;
// before that the client uses a temporary "<unixmillis>-<rand>" id.
type Entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId,omitempty"`
	Name      string    `json:"name"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Sync      SyncState `json:"syncState,omitempty"`
}

// Day returns the entry's canonical day, preferring the full timestamp over
// the formatted date string, same as the comparison path in the log browser.
func (e Entry) Day() DayKey {
	if !e.Timestamp.IsZero() {
		return NewDayKey(e.Timestamp)
	}
	key, err := ParseDayKey(e.Date)
	if err != nil {
		return ""
	}
	return key
}

// Clock12 renders the entry's wall-clock time in 12-hour form for display and
// export ("3:04:05 PM").
func (e Entry) Clock12() string {
	if !e.Timestamp.IsZero() {
		return e.Timestamp.Format("3:04:05 PM")
	}
	if t, err := ParseClock(e.Time); err == nil {
		return t.Format("3:04:05 PM")
	}
	return e.Time
}

// ActionLabel maps the stored action to its display label.
func ActionLabel(action string) string {
	if action == "time_in" {
		return "Time In"
	}
	return "Time Out"
}
