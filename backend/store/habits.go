package store

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"habit-tracker/backend/models"

	"github.com/sirupsen/logrus"
)

// Recorder receives habit lifecycle events, typically for metrics.
type Recorder interface {
	HabitCreated()
	HabitDeleted()
	CompletionRecorded()
	DuplicateCompletion()
}

type nopRecorder struct{}

func (nopRecorder) HabitCreated()        {}
func (nopRecorder) HabitDeleted()        {}
func (nopRecorder) CompletionRecorded()  {}
func (nopRecorder) DuplicateCompletion() {}

// Store is the in-memory habit registry. All methods are safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	habits map[string]*models.Habit
	order  []string
	nextID int

	now      func() time.Time
	logger   logrus.FieldLogger
	recorder Recorder
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Store) { s.logger = logger }
}

func WithRecorder(r Recorder) Option {
	return func(s *Store) { s.recorder = r }
}

func New(opts ...Option) *Store {
	s := &Store{
		habits:   make(map[string]*models.Habit),
		nextID:   1,
		now:      time.Now,
		logger:   discardLogger(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Create registers a new habit under the next sequential id.
func (s *Store) Create(name string) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Habit{}, fmt.Errorf("create habit: %w", models.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := strconv.Itoa(s.nextID)
	s.nextID++

	h := &models.Habit{
		ID:          id,
		Name:        name,
		Completions: []time.Time{},
	}
	s.habits[id] = h
	s.order = append(s.order, id)
	s.recorder.HabitCreated()
	s.logger.WithFields(logrus.Fields{"habit_id": id, "name": name}).Debug("habit created")

	return h.Clone(), nil
}

// List returns habits in creation order.
func (s *Store) List() []models.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Habit, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.habits[id].Clone())
	}
	return out
}

func (s *Store) Get(id string) (models.Habit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.habits[id]
	if !ok {
		return models.Habit{}, false
	}
	return h.Clone(), true
}

// MarkDone records a completion for the current UTC day. A second call on the
// same day leaves the habit untouched.
func (s *Store) MarkDone(id string) (models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.habits[id]
	if !ok {
		return models.Habit{}, fmt.Errorf("mark habit %q done: %w", id, models.ErrNotFound)
	}

	now := s.now().UTC()
	today := CalendarDay(now)
	for _, c := range h.Completions {
		if CalendarDay(c).Equal(today) {
			s.recorder.DuplicateCompletion()
			s.logger.WithField("habit_id", id).Debug("habit already completed today")
			return h.Clone(), nil
		}
	}

	h.Completions = append(h.Completions, now)
	h.Points += models.PointsPerDay
	h.Streak = CalculateStreak(h.Completions)
	s.recorder.CompletionRecorded()
	s.logger.WithFields(logrus.Fields{
		"habit_id": id,
		"points":   h.Points,
		"streak":   h.Streak,
	}).Debug("habit completed")

	return h.Clone(), nil
}

// Delete removes the habit and reports whether it existed. Ids are never reused.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.habits[id]; !ok {
		return false
	}
	delete(s.habits, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.recorder.HabitDeleted()
	s.logger.WithField("habit_id", id).Debug("habit deleted")
	return true
}

// Reset drops every habit and restarts id assignment, as a process restart would.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.habits = make(map[string]*models.Habit)
	s.order = nil
	s.nextID = 1
	s.logger.Debug("habit store reset")
}

func (s *Store) Stats() models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := CalendarDay(s.now())
	stats := models.Stats{Habits: len(s.habits)}
	for _, h := range s.habits {
		stats.TotalPoints += h.Points
		if h.Streak > stats.LongestStreak {
			stats.LongestStreak = h.Streak
		}
		for _, c := range h.Completions {
			if CalendarDay(c).Equal(today) {
				stats.CompletedToday++
				break
			}
		}
	}
	return stats
}
