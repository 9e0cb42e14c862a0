package timeclock

import (
	"sort"
	"time"

	"logbook/internal/models"
)

type DateScope string

const (
	ScopeAll       DateScope = "all"
	ScopeToday     DateScope = "today"
	ScopeYesterday DateScope = "yesterday"
	ScopeCustom    DateScope = "custom"
)

// Criteria selects entries for the log browser. All set criteria must pass.
// An OJT-role viewer is always restricted to their own name, whatever Name
// says; the name filter is an admin-only control.
type Criteria struct {
	Scope  DateScope
	From   DayKey // custom range lower bound, inclusive; empty = open
	To     DayKey // custom range upper bound, inclusive; empty = open
	Name   string // exact match; "" = any
	Action string // "all" or "" = any
	Viewer ViewerContext

	// Now anchors "today"/"yesterday"; zero means time.Now().
	Now time.Time
}

// ViewerContext carries who is looking at the log.
type ViewerContext struct {
	Name string
	Role string
}

func (c Criteria) now() time.Time {
	if c.Now.IsZero() {
		return time.Now()
	}
	return c.Now
}

// Filter returns the entries matching c, preserving input order.
func Filter(entries []Entry, c Criteria) []Entry {
	name := c.Name
	if c.Viewer.Role == models.RoleOJT {
		name = c.Viewer.Name
	}

	todayKey := NewDayKey(c.now())
	yesterdayKey := NewDayKey(c.now().AddDate(0, 0, -1))

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if name != "" && e.Name != name {
			continue
		}
		if c.Action != "" && c.Action != "all" && e.Action != c.Action {
			continue
		}
		switch c.Scope {
		case ScopeToday:
			if e.Day() != todayKey {
				continue
			}
		case ScopeYesterday:
			if e.Day() != yesterdayKey {
				continue
			}
		case ScopeCustom:
			key := e.Day()
			if c.From != "" && key < c.From {
				continue
			}
			if c.To != "" && key > c.To {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// UniqueNames returns the distinct non-blank entry owners, sorted.
func UniqueNames(entries []Entry) []string {
	seen := make(map[string]bool)
	var names []string
	for _, e := range entries {
		n := e.Name
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
