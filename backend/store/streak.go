package store

import (
	"sort"
	"time"
)

// CalendarDay truncates t to midnight of its UTC date.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// distinctDays returns the unique UTC calendar days in completions, most recent first.
func distinctDays(completions []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(completions))
	days := make([]time.Time, 0, len(completions))
	for _, c := range completions {
		day := CalendarDay(c)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}

// CalculateStreak counts consecutive calendar days ending at the most recent completion.
// Days are compared with date arithmetic, never by elapsed duration.
func CalculateStreak(completions []time.Time) int {
	days := distinctDays(completions)
	if len(days) == 0 {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if !days[i].Equal(days[i-1].AddDate(0, 0, -1)) {
			break
		}
		streak++
	}
	return streak
}
