package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return parsed
}

func TestCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	local := time.Date(2025, 1, 16, 3, 0, 0, 0, loc) // 2025-01-15T18:00Z

	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), CalendarDay(local))
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), CalendarDay(ts(t, "2025-01-15T23:59:59Z")))
}

func TestCalculateStreak(t *testing.T) {
	tests := []struct {
		name        string
		completions []string
		want        int
	}{
		{name: "no completions", want: 0},
		{name: "single completion", completions: []string{"2025-01-15T10:00:00Z"}, want: 1},
		{
			name:        "near midnight counts as two days",
			completions: []string{"2025-01-15T23:59:00Z", "2025-01-16T00:01:00Z"},
			want:        2,
		},
		{
			name:        "three consecutive days at different times",
			completions: []string{"2025-01-13T00:00:00Z", "2025-01-14T23:59:59Z", "2025-01-15T12:00:00Z"},
			want:        3,
		},
		{
			name:        "unsorted input",
			completions: []string{"2025-01-15T12:00:00Z", "2025-01-13T12:00:00Z", "2025-01-14T12:00:00Z"},
			want:        3,
		},
		{
			name:        "same day duplicates collapse",
			completions: []string{"2025-01-15T01:00:00Z", "2025-01-15T22:00:00Z", "2025-01-14T05:00:00Z"},
			want:        2,
		},
		{
			name:        "gap stops the count at the most recent run",
			completions: []string{"2025-01-10T12:00:00Z", "2025-01-11T12:00:00Z", "2025-01-13T12:00:00Z", "2025-01-14T12:00:00Z"},
			want:        2,
		},
		{
			name:        "gap right before the latest day",
			completions: []string{"2025-01-12T12:00:00Z", "2025-01-13T12:00:00Z", "2025-01-15T12:00:00Z"},
			want:        1,
		},
		{
			name:        "month and year boundaries",
			completions: []string{"2024-12-31T23:00:00Z", "2025-01-01T01:00:00Z", "2025-01-02T00:30:00Z"},
			want:        3,
		},
		{
			name:        "leap day",
			completions: []string{"2024-02-28T10:00:00Z", "2024-02-29T10:00:00Z", "2024-03-01T10:00:00Z"},
			want:        3,
		},
		{
			name:        "23 hours apart on the same day",
			completions: []string{"2025-01-15T00:30:00Z", "2025-01-15T23:30:00Z"},
			want:        1,
		},
		{
			name:        "25 hours apart skips a calendar day",
			completions: []string{"2025-01-14T23:00:00Z", "2025-01-16T00:00:00Z"},
			want:        1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var completions []time.Time
			for _, c := range tt.completions {
				completions = append(completions, ts(t, c))
			}
			assert.Equal(t, tt.want, CalculateStreak(completions))
		})
	}
}

func TestCalculateStreakNormalizesOffsets(t *testing.T) {
	east := time.FixedZone("UTC+14", 14*60*60)
	west := time.FixedZone("UTC-12", -12*60*60)

	completions := []time.Time{
		time.Date(2025, 1, 16, 13, 0, 0, 0, east), // 2025-01-15T23:00Z
		time.Date(2025, 1, 15, 13, 0, 0, 0, west), // 2025-01-16T01:00Z
	}
	assert.Equal(t, 2, CalculateStreak(completions))
}
