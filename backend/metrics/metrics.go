package metrics

import (
	"net/http"
	"strconv"
	"time"

	"habit-tracker/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "habit_tracker",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "habit_tracker",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "habit_tracker",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 10),
		},
		[]string{"method", "path"},
	)

	habitsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "habit_tracker",
			Subsystem: "habits",
			Name:      "created_total",
			Help:      "Total number of habits created.",
		},
	)

	habitsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "habit_tracker",
			Subsystem: "habits",
			Name:      "deleted_total",
			Help:      "Total number of habits deleted.",
		},
	)

	completions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "habit_tracker",
			Subsystem: "habits",
			Name:      "completions_total",
			Help:      "Mark-done calls, split by whether they scored or were same-day duplicates.",
		},
		[]string{"result"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		habitsCreated,
		habitsDeleted,
		completions,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency per route pattern.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = utils.StatusFromError(err)
		}
		path := c.Route().Path
		httpRequests.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())

		return err
	}
}

// HabitRecorder feeds habit store events into the registry.
type HabitRecorder struct{}

func (HabitRecorder) HabitCreated()        { habitsCreated.Inc() }
func (HabitRecorder) HabitDeleted()        { habitsDeleted.Inc() }
func (HabitRecorder) CompletionRecorded()  { completions.WithLabelValues("scored").Inc() }
func (HabitRecorder) DuplicateCompletion() { completions.WithLabelValues("duplicate").Inc() }
