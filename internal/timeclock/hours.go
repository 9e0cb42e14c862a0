package timeclock

import (
	"math"
	"time"

	"logbook/internal/models"
)

// HoursCompleted sums the hours a user actually worked. Entries are grouped by
// canonical day; within a day the earliest time_in is paired with the latest
// time_out, which keeps duplicate or out-of-order backfills from inflating the
// total. A day with only one side of the pair, or a time_out at or before its
// time_in, contributes zero.
func HoursCompleted(entries []Entry, userName string) float64 {
	type daySpan struct {
		in  time.Time
		out time.Time
	}
	days := make(map[DayKey]*daySpan)
	for _, e := range entries {
		if e.Name != userName || e.Timestamp.IsZero() {
			continue
		}
		key := e.Day()
		if key == "" {
			continue
		}
		span := days[key]
		if span == nil {
			span = &daySpan{}
			days[key] = span
		}
		switch e.Action {
		case models.ActionTimeIn:
			if span.in.IsZero() || e.Timestamp.Before(span.in) {
				span.in = e.Timestamp
			}
		case models.ActionTimeOut:
			if span.out.IsZero() || e.Timestamp.After(span.out) {
				span.out = e.Timestamp
			}
		}
	}

	var total time.Duration
	for _, span := range days {
		if span.in.IsZero() || span.out.IsZero() {
			continue
		}
		if span.out.After(span.in) {
			total += span.out.Sub(span.in)
		}
	}
	return total.Hours()
}

// Progress is the derived OJT completion state shown on the profile page.
type Progress struct {
	CompletedHours float64 `json:"completedHours"`
	RemainingHours float64 `json:"remainingHours"`
	RemainingDays  int     `json:"remainingDays"`
	Percent        int     `json:"percent"`
}

// ComputeProgress projects completed hours against the user's OJT target.
// Percent is clamped to [0, 100]; RemainingDays is zero when no per-day rate
// is configured.
func ComputeProgress(completed float64, requiredHours, hoursPerDay int) Progress {
	p := Progress{CompletedHours: completed}
	p.RemainingHours = math.Max(0, float64(requiredHours)-completed)
	if hoursPerDay > 0 {
		p.RemainingDays = int(math.Ceil(p.RemainingHours / float64(hoursPerDay)))
	}
	if requiredHours > 0 {
		pct := int(math.Round(completed / float64(requiredHours) * 100))
		if pct > 100 {
			pct = 100
		}
		p.Percent = pct
	}
	return p
}

// UserProgress computes a user's full progress from their entries and schedule.
func UserProgress(entries []Entry, u models.User) Progress {
	completed := HoursCompleted(entries, u.Name)
	return ComputeProgress(completed, u.OJTTotalHoursRequired, u.OJTHoursPerDay)
}
