package timeclock

import (
	"math"
	"testing"
	"time"

	"logbook/internal/models"
)

func entryAt(name, action string, ts time.Time) Entry {
	return Entry{
		Name:      name,
		Action:    action,
		Timestamp: ts,
		Date:      ts.Format("2006-01-02"),
		Time:      ts.Format("15:04:05"),
	}
}

func TestHoursCompleted_FullDay(t *testing.T) {
	entries := []Entry{
		entryAt("Ana", models.ActionTimeIn, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)),
		entryAt("Ana", models.ActionTimeOut, time.Date(2024, 6, 1, 17, 0, 0, 0, time.UTC)),
	}
	if got := HoursCompleted(entries, "Ana"); got != 9.0 {
		t.Fatalf("HoursCompleted = %v, want 9.0", got)
	}
}

func TestHoursCompleted_OrderIndependent(t *testing.T) {
	a := entryAt("Ana", models.ActionTimeIn, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	b := entryAt("Ana", models.ActionTimeOut, time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC))
	c := entryAt("Ana", models.ActionTimeIn, time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC))
	d := entryAt("Ana", models.ActionTimeOut, time.Date(2024, 6, 2, 18, 0, 0, 0, time.UTC))

	want := 4.5 + 9.0
	orders := [][]Entry{
		{a, b, c, d},
		{d, c, b, a},
		{b, d, a, c},
	}
	for i, entries := range orders {
		if got := HoursCompleted(entries, "Ana"); got != want {
			t.Fatalf("order %d: HoursCompleted = %v, want %v", i, got, want)
		}
	}
}

func TestHoursCompleted_DuplicatesUseEarliestInLatestOut(t *testing.T) {
	// A backfilled duplicate time_in later in the day must not shrink the
	// total; the earliest in and latest out win.
	entries := []Entry{
		entryAt("Ana", models.ActionTimeIn, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)),
		entryAt("Ana", models.ActionTimeIn, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)),
		entryAt("Ana", models.ActionTimeOut, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)),
		entryAt("Ana", models.ActionTimeOut, time.Date(2024, 6, 1, 17, 0, 0, 0, time.UTC)),
	}
	if got := HoursCompleted(entries, "Ana"); got != 9.0 {
		t.Fatalf("HoursCompleted = %v, want 9.0", got)
	}
}

func TestHoursCompleted_OpenAndInvertedDaysContributeZero(t *testing.T) {
	entries := []Entry{
		// still clocked in, no time_out yet
		entryAt("Ana", models.ActionTimeIn, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)),
		// clock skew: out before in
		entryAt("Ana", models.ActionTimeIn, time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)),
		entryAt("Ana", models.ActionTimeOut, time.Date(2024, 6, 2, 7, 0, 0, 0, time.UTC)),
		// only a time_out
		entryAt("Ana", models.ActionTimeOut, time.Date(2024, 6, 3, 17, 0, 0, 0, time.UTC)),
	}
	if got := HoursCompleted(entries, "Ana"); got != 0 {
		t.Fatalf("HoursCompleted = %v, want 0", got)
	}
}

func TestHoursCompleted_OtherUsersIgnored(t *testing.T) {
	entries := []Entry{
		entryAt("Ben", models.ActionTimeIn, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)),
		entryAt("Ben", models.ActionTimeOut, time.Date(2024, 6, 1, 17, 0, 0, 0, time.UTC)),
	}
	if got := HoursCompleted(entries, "Ana"); got != 0 {
		t.Fatalf("HoursCompleted = %v, want 0", got)
	}
	if got := HoursCompleted(nil, "Ana"); got != 0 {
		t.Fatalf("HoursCompleted(nil) = %v, want 0", got)
	}
}

func TestComputeProgress(t *testing.T) {
	cases := []struct {
		name      string
		completed float64
		required  int
		perDay    int
		want      Progress
	}{
		{"halfway", 150, 300, 8, Progress{CompletedHours: 150, RemainingHours: 150, RemainingDays: 19, Percent: 50}},
		{"overshoot clamps", 320, 300, 8, Progress{CompletedHours: 320, RemainingHours: 0, RemainingDays: 0, Percent: 100}},
		{"no requirement", 10, 0, 8, Progress{CompletedHours: 10, RemainingHours: 0, RemainingDays: 0, Percent: 0}},
		{"no per-day rate", 10, 100, 0, Progress{CompletedHours: 10, RemainingHours: 90, RemainingDays: 0, Percent: 10}},
		{"nothing done", 0, 300, 8, Progress{CompletedHours: 0, RemainingHours: 300, RemainingDays: 38, Percent: 0}},
	}
	for _, c := range cases {
		got := ComputeProgress(c.completed, c.required, c.perDay)
		if got != c.want {
			t.Fatalf("%s: ComputeProgress = %+v, want %+v", c.name, got, c.want)
		}
	}
}

func TestProgressInvariants(t *testing.T) {
	for required := 0; required <= 40; required += 10 {
		for completed := 0.0; completed <= 50; completed += 7.5 {
			p := ComputeProgress(completed, required, 8)
			if p.RemainingHours != math.Max(0, float64(required)-completed) {
				t.Fatalf("remaining mismatch: required=%d completed=%v got=%v", required, completed, p.RemainingHours)
			}
			if p.Percent < 0 || p.Percent > 100 {
				t.Fatalf("percent out of range: %d", p.Percent)
			}
		}
	}
}
