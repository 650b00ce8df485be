package models

import (
	"encoding/json"
	"errors"
	"time"
)

// PointsPerDay is awarded once for every distinct calendar day a habit is completed.
const PointsPerDay = 10

// TimestampLayout matches the ISO-8601 form browsers produce with Date.toISOString().
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	ErrValidation = errors.New("Habit name is required")
	ErrNotFound   = errors.New("Habit not found")
)

type Habit struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Completions []time.Time `json:"completions"`
	Points      int         `json:"points"`
	Streak      int         `json:"streak"`
}

// MarshalJSON renders completions as UTC ISO-8601 strings and never as null.
func (h Habit) MarshalJSON() ([]byte, error) {
	type alias Habit
	completions := make([]string, 0, len(h.Completions))
	for _, c := range h.Completions {
		completions = append(completions, c.UTC().Format(TimestampLayout))
	}
	return json.Marshal(struct {
		alias
		Completions []string `json:"completions"`
	}{alias: alias(h), Completions: completions})
}

// Clone returns a deep copy so callers never share the completions slice with the store.
func (h *Habit) Clone() Habit {
	out := *h
	out.Completions = append([]time.Time(nil), h.Completions...)
	if out.Completions == nil {
		out.Completions = []time.Time{}
	}
	return out
}

// CreateHabitRequest keeps Name untyped so a non-string name can be rejected as a validation error.
type CreateHabitRequest struct {
	Name interface{} `json:"name"`
}

type Stats struct {
	Habits         int `json:"habits"`
	TotalPoints    int `json:"total_points"`
	LongestStreak  int `json:"longest_streak"`
	CompletedToday int `json:"completed_today"`
}
