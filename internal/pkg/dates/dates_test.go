package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		ok    bool
		day   string
	}{
		{name: "plain day", in: "2026-02-19", ok: true, day: "2026-02-19"},
		{name: "day with time of day", in: "2026-02-19 12:30", ok: true, day: "2026-02-19"},
		{name: "empty", in: "", ok: false},
		{name: "too short", in: "2026-02", ok: false},
		{name: "garbage", in: "not-a-date", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := ParseDay(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.day, Day(parsed))
			}
		})
	}
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2026-02", MonthKey("2026-02-19"))
	assert.Equal(t, "2026-02", MonthKey("2026-02-19 04:00"))
	assert.Equal(t, "", MonthKey("bogus"))
}

func TestStreak(t *testing.T) {
	today := time.Date(2026, 2, 19, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		days []string
		want int
	}{
		{name: "no entries", days: nil, want: 0},
		{name: "single entry today", days: []string{"2026-02-19"}, want: 1},
		{name: "anchored at yesterday", days: []string{"2026-02-18"}, want: 1},
		{name: "run through today", days: []string{"2026-02-19", "2026-02-18", "2026-02-17"}, want: 3},
		{name: "run ends before gap", days: []string{"2026-02-19", "2026-02-18", "2026-02-16"}, want: 2},
		{name: "entry two days ago only", days: []string{"2026-02-17"}, want: 0},
		{name: "duplicate days count once", days: []string{"2026-02-19", "2026-02-19", "2026-02-18"}, want: 2},
		{name: "unreadable dates ignored", days: []string{"garbage", "2026-02-19"}, want: 1},
		{name: "month boundary", days: []string{"2026-02-19", "2026-02-18"}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Streak(tt.days, today))
		})
	}
}

func TestStreak_CrossesMonthBoundary(t *testing.T) {
	today := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	days := []string{"2026-03-01", "2026-02-28", "2026-02-27"}
	assert.Equal(t, 3, Streak(days, today))
}
