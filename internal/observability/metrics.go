package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// scenario evaluation service.
type Metrics struct {
	ScenariosConsumed prometheus.Counter
	ResultsProduced   prometheus.Counter
	EvaluationErrors  prometheus.Counter
	PipelineRunning   prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Interactive evaluation metrics.
	EvaluateRequests *prometheus.CounterVec // labels: outcome={ok,bad_request,invalid_input}
	AirQualityLevels *prometheus.CounterVec // labels: label={Low,Medium,High}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ScenariosConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate_scenario",
			Name:      "scenarios_consumed_total",
			Help:      "Total scenario requests read from the source topic.",
		}),
		ResultsProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate_scenario",
			Name:      "results_produced_total",
			Help:      "Total evaluations written to the sink topic.",
		}),
		EvaluationErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate_scenario",
			Name:      "evaluation_errors_total",
			Help:      "Total scenario requests skipped for parse or validation failures.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "climate_scenario",
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "climate_scenario",
			Name:      "batch_size",
			Help:      "Number of scenario requests per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "climate_scenario",
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-evaluate-load cycle.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}),
		EvaluateRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climate_scenario",
			Name:      "evaluate_requests_total",
			Help:      "Interactive HTTP evaluation requests by outcome.",
		}, []string{"outcome"}),
		AirQualityLevels: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climate_scenario",
			Name:      "air_quality_levels_total",
			Help:      "Evaluations by resulting air-quality label.",
		}, []string{"label"}),
	}

	prometheus.MustRegister(
		m.ScenariosConsumed,
		m.ResultsProduced,
		m.EvaluationErrors,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.EvaluateRequests,
		m.AirQualityLevels,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ScenariosConsumed:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "climate_scenario", Name: "scenarios_consumed_total"}),
		ResultsProduced:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "climate_scenario", Name: "results_produced_total"}),
		EvaluationErrors:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "climate_scenario", Name: "evaluation_errors_total"}),
		PipelineRunning:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "climate_scenario", Name: "pipeline_running"}),
		BatchSize:               prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "climate_scenario", Name: "batch_size"}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "climate_scenario", Name: "batch_processing_duration_seconds"}),
		EvaluateRequests:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "climate_scenario", Name: "evaluate_requests_total"}, []string{"outcome"}),
		AirQualityLevels:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "climate_scenario", Name: "air_quality_levels_total"}, []string{"label"}),
	}
}
