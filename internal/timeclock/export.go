package timeclock

import (
	"regexp"
	"strings"
	"time"
)

// ExportCSV renders entries as the downloadable record: a Date,Time,Name,Action
// header then one row per entry. Every field is double-quote enclosed with
// embedded quotes doubled, so the document survives names like O'Brien "Jun".
// encoding/csv quotes only when it must, which would break that contract.
func ExportCSV(entries []Entry) []byte {
	var b strings.Builder
	writeRow(&b, []string{"Date", "Time", "Name", "Action"})
	for _, e := range entries {
		writeRow(&b, []string{string(e.Day()), e.Clock12(), e.Name, ActionLabel(e.Action)})
	}
	return []byte(b.String())
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

var (
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugDisallow = regexp.MustCompile(`[^a-zA-Z0-9-]`)
)

// Slug turns a display name into a filename-safe token: whitespace collapses
// to hyphens, everything outside [a-zA-Z0-9-] is stripped.
func Slug(name string) string {
	s := slugSpaces.ReplaceAllString(strings.TrimSpace(name), "-")
	return slugDisallow.ReplaceAllString(s, "")
}

// ExportFilename names the whole-log download for the given day.
func ExportFilename(now time.Time) string {
	return "logbook-" + now.Format("2006-01-02") + ".csv"
}

// PersonFilename names a single person's record download.
func PersonFilename(name string) string {
	slug := Slug(name)
	if slug == "" {
		slug = "record"
	}
	return "LogBook-" + slug + ".csv"
}
