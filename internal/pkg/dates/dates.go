// Package dates holds the calendar conventions shared by the record
// collections: day stamps, minute stamps, month keys and the
// consecutive-day streak walk.
package dates

import "time"

const (
	DayLayout   = "2006-01-02"
	StampLayout = "2006-01-02 15:04"
	monthLayout = "2006-01"
)

// Day formats t as a calendar day stamp.
func Day(t time.Time) string { return t.Format(DayLayout) }

// Stamp formats t as a minute-resolution timestamp.
func Stamp(t time.Time) string { return t.Format(StampLayout) }

// Month formats t as a year-month key.
func Month(t time.Time) string { return t.Format(monthLayout) }

// ParseDay reads the leading day stamp of a stored date string. Stamps
// carry optional trailing time-of-day which is ignored here.
func ParseDay(s string) (time.Time, bool) {
	if len(s) < len(DayLayout) {
		return time.Time{}, false
	}
	t, err := time.Parse(DayLayout, s[:len(DayLayout)])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// MonthKey extracts the year-month key of a stored date string, or ""
// when the date is unreadable.
func MonthKey(s string) string {
	t, ok := ParseDay(s)
	if !ok {
		return ""
	}
	return Month(t)
}

// Streak counts consecutive calendar days with at least one entry,
// walking backward from the anchor day. The anchor is today when today
// has an entry, otherwise yesterday; no entry on either means no
// streak. A gap of more than one day ends the count.
func Streak(days []string, today time.Time) int {
	seen := make(map[string]struct{}, len(days))
	for _, d := range days {
		if t, ok := ParseDay(d); ok {
			seen[Day(t)] = struct{}{}
		}
	}

	anchor := today
	if _, ok := seen[Day(anchor)]; !ok {
		anchor = today.AddDate(0, 0, -1)
		if _, ok := seen[Day(anchor)]; !ok {
			return 0
		}
	}

	n := 0
	for {
		if _, ok := seen[Day(anchor)]; !ok {
			return n
		}
		n++
		anchor = anchor.AddDate(0, 0, -1)
	}
}
