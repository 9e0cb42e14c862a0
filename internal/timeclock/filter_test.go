package timeclock

import (
	"reflect"
	"testing"
	"time"

	"logbook/internal/models"
)

var filterNow = time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC)

func filterFixture() []Entry {
	return []Entry{
		entryAt("Ana", models.ActionTimeIn, time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC)),
		entryAt("Ana", models.ActionTimeOut, time.Date(2024, 6, 1, 17, 0, 0, 0, time.UTC)),
		entryAt("Ben", models.ActionTimeIn, time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)),
		entryAt("Ben", models.ActionTimeIn, time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)),
	}
}

func TestFilter_TodayAndYesterdayAreDisjoint(t *testing.T) {
	entries := filterFixture()
	today := Filter(entries, Criteria{Scope: ScopeToday, Now: filterNow})
	yesterday := Filter(entries, Criteria{Scope: ScopeYesterday, Now: filterNow})

	if len(today) != 1 || today[0].Name != "Ana" {
		t.Fatalf("today = %+v", today)
	}
	if len(yesterday) != 2 {
		t.Fatalf("yesterday = %+v", yesterday)
	}
	for _, te := range today {
		for _, ye := range yesterday {
			if te.Day() == ye.Day() && te.Name == ye.Name && te.Action == ye.Action {
				t.Fatalf("today and yesterday overlap on %+v", te)
			}
		}
	}
}

func TestFilter_CustomRangeInclusive(t *testing.T) {
	entries := filterFixture()
	got := Filter(entries, Criteria{Scope: ScopeCustom, From: "2024-06-01", To: "2024-06-02", Now: filterNow})
	if len(got) != 3 {
		t.Fatalf("custom range: got %d entries, want 3", len(got))
	}
	// open lower bound
	got = Filter(entries, Criteria{Scope: ScopeCustom, To: "2024-05-31", Now: filterNow})
	if len(got) != 1 || got[0].Day() != "2024-05-20" {
		t.Fatalf("open-from range = %+v", got)
	}
}

func TestFilter_ActionAndName(t *testing.T) {
	entries := filterFixture()
	got := Filter(entries, Criteria{Scope: ScopeAll, Name: "Ben", Action: models.ActionTimeIn, Now: filterNow})
	if len(got) != 2 {
		t.Fatalf("name+action filter: got %d, want 2", len(got))
	}
	got = Filter(entries, Criteria{Scope: ScopeAll, Action: models.ActionTimeOut, Now: filterNow})
	if len(got) != 1 || got[0].Name != "Ana" {
		t.Fatalf("action filter = %+v", got)
	}
}

func TestFilter_OJTViewerRestrictedToOwnName(t *testing.T) {
	entries := filterFixture()
	// The name criterion is ignored for an OJT viewer; they only ever see
	// themselves.
	got := Filter(entries, Criteria{
		Scope:  ScopeAll,
		Name:   "Ben",
		Viewer: ViewerContext{Name: "Ana", Role: models.RoleOJT},
		Now:    filterNow,
	})
	for _, e := range got {
		if e.Name != "Ana" {
			t.Fatalf("OJT viewer saw entry for %q", e.Name)
		}
	}
	if len(got) != 2 {
		t.Fatalf("OJT viewer: got %d entries, want 2", len(got))
	}
}

func TestUniqueNames(t *testing.T) {
	entries := filterFixture()
	entries = append(entries, Entry{Name: ""})
	got := UniqueNames(entries)
	if !reflect.DeepEqual(got, []string{"Ana", "Ben"}) {
		t.Fatalf("UniqueNames = %v", got)
	}
}
