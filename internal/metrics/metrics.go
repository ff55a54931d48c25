// Package metrics provides the centralized Prometheus metrics registry for
// the Squadra backend.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "squadra",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests served",
	}, []string{"method", "route", "status"})
	AssignmentsComputedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "squadra",
		Name:      "assignments_computed_total",
		Help:      "Total number of formation assignment computations",
	})
	StatsComputationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "squadra",
		Name:      "stats_computations_total",
		Help:      "Total number of derived statistics computations",
	})
	StatsCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "squadra",
		Name:      "stats_cache_hits_total",
		Help:      "Total number of derived statistics cache hits",
	})
	StatsCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "squadra",
		Name:      "stats_cache_misses_total",
		Help:      "Total number of derived statistics cache misses",
	})
	FixturesImportedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "squadra",
		Name:      "fixtures_imported_total",
		Help:      "Total number of fixtures imported from the federation feed",
	})
)

// Gauge metrics
var (
	RosterSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "squadra",
		Name:      "roster_size",
		Help:      "Number of players currently on the roster",
	})
	UnassignedPlayers = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "squadra",
		Name:      "unassigned_players",
		Help:      "Players left without a slot in the last assignment run",
	})
)

// Histogram metrics
var (
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "squadra",
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
	StatsComputationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "squadra",
		Name:      "stats_computation_duration_seconds",
		Help:      "Duration of derived statistics computations in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	FixturesImportDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "squadra",
		Name:      "fixtures_import_duration_seconds",
		Help:      "Duration of fixtures feed import runs in seconds",
		Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(HTTPRequestsTotal)
		registry.MustRegister(AssignmentsComputedTotal)
		registry.MustRegister(StatsComputationsTotal)
		registry.MustRegister(StatsCacheHitsTotal)
		registry.MustRegister(StatsCacheMissesTotal)
		registry.MustRegister(FixturesImportedTotal)

		registry.MustRegister(RosterSize)
		registry.MustRegister(UnassignedPlayers)

		registry.MustRegister(HTTPRequestDuration)
		registry.MustRegister(StatsComputationDuration)
		registry.MustRegister(FixturesImportDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordAssignment records a formation assignment run and how many players
// were left unassigned.
func RecordAssignment(unassigned int) {
	AssignmentsComputedTotal.Inc()
	UnassignedPlayers.Set(float64(unassigned))
}

// RecordStatsComputation records a derived statistics computation.
func RecordStatsComputation(durationSeconds float64) {
	StatsComputationsTotal.Inc()
	StatsComputationDuration.Observe(durationSeconds)
}

// RecordStatsCacheHit records a derived statistics cache hit.
func RecordStatsCacheHit() {
	StatsCacheHitsTotal.Inc()
}

// RecordStatsCacheMiss records a derived statistics cache miss.
func RecordStatsCacheMiss() {
	StatsCacheMissesTotal.Inc()
}

// RecordFixturesImport records a fixtures feed import run.
func RecordFixturesImport(count int, durationSeconds float64) {
	FixturesImportedTotal.Add(float64(count))
	FixturesImportDuration.Observe(durationSeconds)
}

// UpdateRosterSize updates the roster size gauge.
func UpdateRosterSize(count int) {
	RosterSize.Set(float64(count))
}
