package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/climate-scenario-service/internal/domain"
	"github.com/couchcryptid/climate-scenario-service/internal/observability"
)

// ScenarioTransformer implements Transformer using the domain model.
type ScenarioTransformer struct {
	baseline domain.Baseline
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewTransformer creates a ScenarioTransformer evaluating against the given
// baseline.
func NewTransformer(baseline domain.Baseline, logger *slog.Logger, metrics *observability.Metrics) *ScenarioTransformer {
	return &ScenarioTransformer{
		baseline: baseline,
		logger:   logger,
		metrics:  metrics,
	}
}

// Transform parses a raw scenario request, evaluates it, and serializes the
// evaluation for the sink topic.
func (t *ScenarioTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	in, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	ev, err := domain.Evaluate(in, t.baseline)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	t.metrics.AirQualityLevels.WithLabelValues(ev.AirQuality.Label).Inc()

	return domain.SerializeEvaluation(ev)
}
