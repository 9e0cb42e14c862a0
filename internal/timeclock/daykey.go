package timeclock

import (
	"fmt"
	"strings"
	"time"
)

// DayKey is a canonical calendar day ("2006-01-02"). Entries arrive with dates
// in several shapes (RFC3339 timestamps, bare ISO dates, day-first locale
// strings), so every date comparison happens on a DayKey, never on raw strings.
type DayKey string

func NewDayKey(t time.Time) DayKey {
	return DayKey(t.Format("2006-01-02"))
}

var timestampFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2/1/2006",
}

// ParseTimestamp parses any of the timestamp/date shapes the system emits.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse timestamp: %s", s)
}

// ParseDayKey normalizes a date string of any supported shape into a DayKey.
func ParseDayKey(s string) (DayKey, error) {
	t, err := ParseTimestamp(s)
	if err != nil {
		return "", err
	}
	return NewDayKey(t), nil
}

// ParseClock parses a wall-clock time ("15:04" or "15:04:05").
func ParseClock(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, format := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse time: %s", s)
}
