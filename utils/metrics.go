package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "collection"},
	)

	// Mission Metrics
	MissionCompletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mission_completions_total",
			Help: "Total number of mission completions",
		},
		[]string{"frequency"},
	)

	MissionResetsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mission_resets_total",
			Help: "Total number of mission set resets",
		},
		[]string{"frequency"},
	)

	// Generator Metrics
	GeneratorFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generator_failures_total",
			Help: "Total number of mission generator failures",
		},
		[]string{"reason"}, // timeout, status, decode, empty
	)

	StaleGenerationsDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stale_generations_dropped_total",
			Help: "Generation responses discarded because their cycle was superseded",
		},
	)

	// Achievement Metrics
	AchievementsUnlockedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "achievements_unlocked_total",
			Help: "Total number of achievements unlocked",
		},
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by type",
		},
		[]string{"type", "reason"}, // database, generator, validation, etc.
	)
)

// TrackDBOperation tracks database operation duration
func TrackDBOperation(operation, collection string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, collection))
}

// TrackError increments the error counter by type and reason
func TrackError(errorType, reason string) {
	ErrorsTotal.WithLabelValues(errorType, reason).Inc()
}

// TrackMissionCompletion increments the completion counter
func TrackMissionCompletion(frequency string) {
	MissionCompletionsTotal.WithLabelValues(frequency).Inc()
}

// TrackMissionReset increments the reset counter
func TrackMissionReset(frequency string) {
	MissionResetsTotal.WithLabelValues(frequency).Inc()
}

// TrackGeneratorFailure records a failed generation attempt
func TrackGeneratorFailure(reason string) {
	GeneratorFailuresTotal.WithLabelValues(reason).Inc()
}
